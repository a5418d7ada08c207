// Package memory is an in-process storage medium. It backs the CLI's
// throwaway sessions and stands in for a browser-style quota in tests.
package memory

import (
	"context"
	"sync"

	"github.com/KirkDiggler/combat-tracker/internal/errors"
	"github.com/KirkDiggler/combat-tracker/internal/storage"
)

// Config configures the in-memory medium
type Config struct {
	// MaxValueBytes rejects writes of longer values with ResourceExhausted.
	// Zero means unlimited.
	MaxValueBytes int
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.MaxValueBytes < 0 {
		vb.Field("MaxValueBytes", "must not be negative")
	}
	return vb.Build()
}

// Medium holds values in a map
type Medium struct {
	mu       sync.RWMutex
	values   map[string]string
	maxBytes int
}

var _ storage.Medium = (*Medium)(nil)

// New creates an empty in-memory medium. A nil config means no quota.
func New(cfg *Config) (*Medium, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Medium{
		values:   make(map[string]string),
		maxBytes: cfg.MaxValueBytes,
	}, nil
}

// Get returns the value at key
func (m *Medium) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errors.WrapWithCode(err, errors.CodeCanceled, "memory get canceled")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Set stores value at key
func (m *Medium) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "memory set canceled")
	}
	if m.maxBytes > 0 && len(value) > m.maxBytes {
		return errors.ResourceExhaustedf("value for %s is %d bytes, quota is %d", key, len(value), m.maxBytes).
			WithMeta("key", key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Delete removes key
func (m *Medium) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "memory delete canceled")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// Keys returns the number of stored keys
func (m *Medium) Keys() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.values)
}
