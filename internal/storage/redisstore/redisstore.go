// Package redisstore keeps the tracker slots in Redis
package redisstore

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/KirkDiggler/combat-tracker/internal/errors"
	"github.com/KirkDiggler/combat-tracker/internal/redis"
	"github.com/KirkDiggler/combat-tracker/internal/storage"
)

// Config configures the Redis medium
type Config struct {
	Client redis.Client
	// KeyPrefix is prepended to every slot key, so several trackers can
	// share one database.
	KeyPrefix string
	// TTL expires slots after a period of inactivity. Zero keeps them forever.
	TTL time.Duration
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

type medium struct {
	client redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a Redis-backed medium
func New(cfg *Config) (storage.Medium, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &medium{
		client: cfg.Client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.TTL,
	}, nil
}

func (m *medium) key(k string) string {
	return m.prefix + k
}

// Get returns the value at key
func (m *medium) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := m.client.Get(ctx, m.key(key)).Result()
	if stderrors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, classify(err, "failed to read "+key)
	}
	return value, true, nil
}

// Set stores value at key
func (m *medium) Set(ctx context.Context, key, value string) error {
	if err := m.client.Set(ctx, m.key(key), value, m.ttl).Err(); err != nil {
		return classify(err, "failed to write "+key)
	}
	return nil
}

// Delete removes key
func (m *medium) Delete(ctx context.Context, key string) error {
	if err := m.client.Del(ctx, m.key(key)).Err(); err != nil {
		return classify(err, "failed to delete "+key)
	}
	return nil
}

// classify maps client failures onto error codes: context errors keep their
// meaning, server OOM refusals are quota errors, anything else means the
// store could not be reached.
func classify(err error, message string) error {
	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.WrapWithCode(err, errors.CodeCanceled, message)
	case isOOM(err):
		return errors.WrapWithCode(err, errors.CodeResourceExhausted, message)
	default:
		return errors.WrapWithCode(err, errors.CodeUnavailable, message)
	}
}

func isOOM(err error) bool {
	return strings.Contains(err.Error(), "OOM")
}
