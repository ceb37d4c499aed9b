package core

import "context"

// configKey is a typed context key; each config type gets its own slot.
type configKey[C any] struct{}

// WithConfig attaches a configuration value to ctx, keyed by its type.
// A later call with the same type replaces the earlier value.
//
// Example:
//
//	ctx := core.WithConfig(ctx, &core.DrainConfig{MaxItems: 10_000})
func WithConfig[C any](ctx context.Context, cfg C) context.Context {
	return context.WithValue(ctx, configKey[C]{}, cfg)
}

// GetConfig retrieves the configuration of type C from ctx.
//
// Example:
//
//	if cfg, ok := core.GetConfig[*core.DrainConfig](ctx); ok {
//	    limit = cfg.MaxItems
//	}
func GetConfig[C any](ctx context.Context) (C, bool) {
	if cfg, ok := ctx.Value(configKey[C]{}).(C); ok {
		return cfg, true
	}
	return *new(C), false
}

// DrainConfig bounds the terminal drivers. It is read from the context
// with GetConfig[*DrainConfig].
type DrainConfig struct {
	// MaxItems caps the number of entries a driver pulls before failing
	// with ErrDrainLimit. Zero means unlimited. Useful as a guard when a
	// Seq might be infinite.
	MaxItems int
}

func drainLimit(ctx context.Context) int {
	if cfg, ok := GetConfig[*DrainConfig](ctx); ok && cfg != nil && cfg.MaxItems > 0 {
		return cfg.MaxItems
	}
	return 0
}
