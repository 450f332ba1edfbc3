package registry

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const defaultDebounce = 100 * time.Millisecond

// FileProvider builds registries from a base registry plus a set of catalog
// files, and rebuilds them whenever one of the files changes. Every published
// Registry is a fresh immutable snapshot.
type FileProvider struct {
	paths       []string
	watched     map[string]bool
	base        *Registry
	cache       *UnitCache
	logger      zerolog.Logger
	debounce    time.Duration
	watch       bool
	onReload    func(error)
	reloadMu    sync.Mutex
	mu          sync.RWMutex
	current     *Registry
	subscribers []chan *Registry
	closed      bool
	watcher     *fsnotify.Watcher
	cancel      context.CancelFunc
}

// ProviderOption configures a FileProvider.
type ProviderOption func(*FileProvider)

// WithBaseRegistry sets the registry the catalogs extend (default: Default()).
func WithBaseRegistry(reg *Registry) ProviderOption {
	return func(p *FileProvider) {
		p.base = reg
	}
}

// WithLogger sets the logger used for reload events.
func WithLogger(logger zerolog.Logger) ProviderOption {
	return func(p *FileProvider) {
		p.logger = logger
	}
}

// WithDebounce sets how long the provider waits for writes to settle.
func WithDebounce(d time.Duration) ProviderOption {
	return func(p *FileProvider) {
		if d > 0 {
			p.debounce = d
		}
	}
}

// WithWatch enables or disables reloading on file changes (default enabled).
func WithWatch(enabled bool) ProviderOption {
	return func(p *FileProvider) {
		p.watch = enabled
	}
}

// WithReloadHook registers fn to observe the outcome of every reload
// triggered by a file change.
func WithReloadHook(fn func(error)) ProviderOption {
	return func(p *FileProvider) {
		p.onReload = fn
	}
}

// WithUnitCache shares a custom unit cache with the provider.
func WithUnitCache(cache *UnitCache) ProviderOption {
	return func(p *FileProvider) {
		if cache != nil {
			p.cache = cache
		}
	}
}

// NewFileProvider loads the catalogs once and starts watching them. The
// initial load must succeed; later reload failures keep the previous registry.
func NewFileProvider(paths []string, opts ...ProviderOption) (*FileProvider, error) {
	p := &FileProvider{
		watched:  make(map[string]bool),
		cache:    NewUnitCache(),
		logger:   zerolog.Nop(),
		debounce: defaultDebounce,
		watch:    true,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.base == nil {
		p.base = Default()
	}

	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
		}
		if !p.watched[absPath] {
			p.watched[absPath] = true
			p.paths = append(p.paths, absPath)
		}
	}

	if err := p.Reload(); err != nil {
		return nil, err
	}
	if !p.watch {
		return p, nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	dirs := make(map[string]bool)
	for _, path := range p.paths {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		dirs[dir] = true
		if err := watcher.Add(dir); err != nil {
			_ = watcher.Close()
			return nil, fmt.Errorf("failed to watch directory: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	p.watcher = watcher
	p.cancel = cancel
	go p.watchLoop(ctx)

	return p, nil
}

// Current returns the latest registry.
func (p *FileProvider) Current() *Registry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

// Subscribe returns a channel that receives every rebuilt registry. The
// current registry is sent immediately. Slow consumers miss intermediate
// snapshots but always see the latest one next. The channel is closed by
// Close.
func (p *FileProvider) Subscribe() <-chan *Registry {
	p.mu.Lock()
	defer p.mu.Unlock()
	ch := make(chan *Registry, 1)
	if p.closed {
		close(ch)
		return ch
	}
	p.subscribers = append(p.subscribers, ch)
	ch <- p.current
	return ch
}

// Reload rebuilds the registry from the catalog files and publishes it.
func (p *FileProvider) Reload() error {
	p.reloadMu.Lock()
	defer p.reloadMu.Unlock()

	b := Extend(p.base)
	for _, path := range p.paths {
		catalog, err := LoadCatalog(path)
		if err != nil {
			return err
		}
		if _, err := catalog.Apply(b, p.cache); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	reg, err := b.Build()
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = reg
	if p.closed {
		return nil
	}
	// Sends never block, so holding mu keeps Close from closing a channel
	// mid-send.
	for _, ch := range p.subscribers {
		select {
		case ch <- reg:
		default:
			// Replace the stale snapshot waiting in the buffer.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- reg:
			default:
			}
		}
	}
	return nil
}

// Close stops the watcher and closes every subscriber channel. It is safe to
// call more than once.
func (p *FileProvider) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	for _, ch := range p.subscribers {
		close(ch)
	}
	p.subscribers = nil
	p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
	}
	if p.watcher != nil {
		return p.watcher.Close()
	}
	return nil
}

func (p *FileProvider) watchLoop(ctx context.Context) {
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return
		case event, ok := <-p.watcher.Events:
			if !ok {
				return
			}

			if !p.watched[filepath.Clean(event.Name)] {
				continue
			}

			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(p.debounce, func() {
					if ctx.Err() != nil {
						return
					}
					err := p.Reload()
					if p.onReload != nil {
						p.onReload(err)
					}
					if err != nil {
						p.logger.Error().Err(err).Msg("unit catalog reload failed, keeping previous registry")
						return
					}
					p.logger.Info().Int("units", p.Current().Len()).Msg("unit catalogs reloaded")
				})
			}
		case err, ok := <-p.watcher.Errors:
			if !ok {
				return
			}
			p.logger.Warn().Err(err).Msg("catalog watcher error")
		}
	}
}
