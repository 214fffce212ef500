package activity

import "context"

// Config controls emitter behavior.
type Config struct {
	Enabled bool
}

// Emitter publishes activity events to its hooks. A disabled or hookless
// emitter drops everything without error.
type Emitter struct {
	hooks   Hooks
	enabled bool
}

// NewEmitter builds an emitter over the hooks.
func NewEmitter(hooks Hooks, cfg Config) *Emitter {
	return &Emitter{hooks: hooks, enabled: cfg.Enabled}
}

// Enabled reports whether emitted events will be delivered.
func (e *Emitter) Enabled() bool {
	return e != nil && e.enabled && len(e.hooks) > 0
}

// Emit publishes one event.
func (e *Emitter) Emit(ctx context.Context, evt Event) error {
	if !e.Enabled() {
		return nil
	}
	return e.hooks.Notify(ctx, evt)
}
