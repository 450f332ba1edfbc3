package engine

import "context"

// Watch applies every registry rebuilt by the catalog watcher until ctx is
// done or the engine is closed, in which case it returns nil. It returns
// ErrNoCatalogs when the engine has nothing to watch.
func (e *Engine) Watch(ctx context.Context) error {
	if e.provider == nil || !e.cfg.Rules.Watch {
		return ErrNoCatalogs
	}

	updates := e.provider.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case reg, ok := <-updates:
			if !ok {
				return nil
			}
			e.applyIfChanged(reg)
		}
	}
}
