package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pointOnlyCatalog = `
families:
  - name: typography
    dimension: length
    units:
      - symbol: pt
        factor: "0.0254/72"
`

func writeCatalog(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFileProviderInitialLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeCatalog(t, path, pointOnlyCatalog)

	p, err := NewFileProvider([]string{path, path}, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	reg := p.Current()
	require.NotNil(t, reg)
	assert.Equal(t, Default().Len()+1, reg.Len())
	_, ok := reg.Lookup("pt")
	assert.True(t, ok)

	select {
	case got := <-p.Subscribe():
		assert.Same(t, reg, got)
	default:
		t.Fatal("subscribe should deliver the current registry immediately")
	}
}

func TestFileProviderInitialLoadMustSucceed(t *testing.T) {
	dir := t.TempDir()

	_, err := NewFileProvider([]string{filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	writeCatalog(t, bad, "families:\n  - name: x\n    dimension: nowhere\n    units: [{symbol: a, factor: '1'}]\n")
	_, err = NewFileProvider([]string{bad})
	assert.Error(t, err)
}

func TestFileProviderReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeCatalog(t, path, pointOnlyCatalog)

	p, err := NewFileProvider([]string{path}, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	updates := p.Subscribe()
	<-updates
	before, _ := p.Current().Lookup("pt")

	writeCatalog(t, path, typographyCatalog)

	require.Eventually(t, func() bool {
		_, ok := p.Current().Lookup("pc")
		return ok
	}, 2*time.Second, 10*time.Millisecond)

	after, ok := p.Current().Lookup("pt")
	require.True(t, ok)
	assert.True(t, before == after, "unit identity is preserved across reloads")

	select {
	case reg := <-updates:
		require.NotNil(t, reg)
	case <-time.After(time.Second):
		t.Fatal("subscriber was not notified")
	}
}

func TestFileProviderKeepsPreviousRegistryOnBadReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeCatalog(t, path, pointOnlyCatalog)

	p, err := NewFileProvider([]string{path}, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	reg := p.Current()

	writeCatalog(t, path, "families: [")
	assert.Error(t, p.Reload())
	assert.Same(t, reg, p.Current())
}

func TestFileProviderUsesBaseRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeCatalog(t, path, `
families:
  - name: counters
    dimension: data
    units:
      - symbol: word
        base: true
      - symbol: dword
        factor: "2"
`)

	p, err := NewFileProvider([]string{path}, WithBaseRegistry(mustBuild(t, NewBuilder())))
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	assert.Equal(t, 2, p.Current().Len())
}

func mustBuild(t *testing.T, b *Builder) *Registry {
	t.Helper()
	reg, err := b.Build()
	require.NoError(t, err)
	return reg
}

func TestFileProviderReloadHookAndWatchToggle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeCatalog(t, path, pointOnlyCatalog)

	results := make(chan error, 16)
	p, err := NewFileProvider([]string{path},
		WithDebounce(10*time.Millisecond),
		WithReloadHook(func(err error) { results <- err }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })

	writeCatalog(t, path, "families: [")
	select {
	case err := <-results:
		assert.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("reload hook was not called")
	}

	unwatched, err := NewFileProvider([]string{path}, WithWatch(false))
	assert.Error(t, err, "initial load still parses the broken catalog")
	assert.Nil(t, unwatched)

	writeCatalog(t, path, pointOnlyCatalog)
	unwatched, err = NewFileProvider([]string{path}, WithWatch(false))
	require.NoError(t, err)
	assert.Nil(t, unwatched.watcher)
	require.NoError(t, unwatched.Close())
}

func TestFileProviderCloseClosesSubscribers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	writeCatalog(t, path, pointOnlyCatalog)
	p, err := NewFileProvider([]string{path}, WithWatch(false))
	require.NoError(t, err)

	updates := p.Subscribe()
	<-updates

	require.NoError(t, p.Close())
	_, ok := <-updates
	assert.False(t, ok, "subscriber channel closed")

	require.NoError(t, p.Reload(), "reload after close does not send on closed channels")
	require.NoError(t, p.Close())

	_, ok = <-p.Subscribe()
	assert.False(t, ok, "subscribing after close yields a closed channel")
}
