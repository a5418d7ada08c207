// Package bestiary looks up monster names in the D&D 5e API so the roster can
// be filled from the SRD monster list
package bestiary

//go:generate mockgen -destination=mock/mock_client.go -package=bestiarymock github.com/KirkDiggler/combat-tracker/internal/clients/bestiary Client

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"

	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

var (
	slugPattern   = regexp.MustCompile(`[^a-z0-9-]+`)
	hyphenPattern = regexp.MustCompile(`-+`)
)

// Slug turns a display name into the API's monster key form,
// "Adult Red Dragon" -> "adult-red-dragon"
func Slug(s string) string {
	slug := strings.ToLower(strings.TrimSpace(s))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return hyphenPattern.ReplaceAllString(slug, "-")
}

// Monster is one entry of the monster index
type Monster struct {
	Key  string
	Name string
}

// Client defines the monster lookups the tracker needs
type Client interface {
	// ListMonsters returns the full monster index
	ListMonsters(ctx context.Context) ([]Monster, error)

	// SearchMonsters returns monsters whose name or key contains query,
	// case-insensitively
	SearchMonsters(ctx context.Context, query string) ([]Monster, error)

	// ResolveMonster finds the single monster query names. An exact key or
	// name wins; otherwise the query must match exactly one monster.
	ResolveMonster(ctx context.Context, query string) (*Monster, error)
}

// Source is the part of the dnd5e API client the bestiary reads from
type Source interface {
	ListMonsters() ([]*entities.ReferenceItem, error)
}

// Config contains configuration options for the bestiary client
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
	// Source replaces the HTTP client, mainly for tests
	Source Source
}

// Validate sets defaults for unset options
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("timeouts must not be negative")
	}
	return nil
}

type client struct {
	source Source
}

var _ Client = (*client)(nil)

// New creates a bestiary client backed by the cached dnd5e API client
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if cfg.Source != nil {
		return &client{source: cfg.Source}, nil
	}

	base, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to create D&D 5e API client")
	}

	return &client{source: dnd5e.NewCachedClient(base, cfg.CacheTTL)}, nil
}

func (c *client) ListMonsters(ctx context.Context) ([]Monster, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "monster lookup canceled")
	}

	refs, err := c.source.ListMonsters()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list monsters")
	}

	monsters := make([]Monster, 0, len(refs))
	for _, ref := range refs {
		if ref == nil || ref.Key == "" {
			continue
		}
		monsters = append(monsters, Monster{Key: ref.Key, Name: ref.Name})
	}
	return monsters, nil
}

func (c *client) SearchMonsters(ctx context.Context, query string) ([]Monster, error) {
	all, err := c.ListMonsters(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return all, nil
	}
	slug := Slug(query)

	matches := make([]Monster, 0)
	for _, m := range all {
		if strings.Contains(strings.ToLower(m.Name), needle) || strings.Contains(m.Key, slug) {
			matches = append(matches, m)
		}
	}
	return matches, nil
}

func (c *client) ResolveMonster(ctx context.Context, query string) (*Monster, error) {
	if strings.TrimSpace(query) == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	matches, err := c.SearchMonsters(ctx, query)
	if err != nil {
		return nil, err
	}

	slug := Slug(query)
	for _, m := range matches {
		if m.Key == slug || strings.EqualFold(m.Name, strings.TrimSpace(query)) {
			found := m
			return &found, nil
		}
	}

	switch len(matches) {
	case 0:
		return nil, errors.NotFoundf("no monster matches %q", query)
	case 1:
		return &matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		return nil, errors.InvalidArgumentf("%q matches %d monsters", query, len(matches)).
			WithMeta("candidates", names)
	}
}
