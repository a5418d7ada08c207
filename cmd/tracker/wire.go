package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/KirkDiggler/combat-tracker/internal/clients/bestiary"
	"github.com/KirkDiggler/combat-tracker/internal/config"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
	"github.com/KirkDiggler/combat-tracker/internal/orchestrators/tracker"
	"github.com/KirkDiggler/combat-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/combat-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-tracker/internal/redis"
	"github.com/KirkDiggler/combat-tracker/internal/render"
	"github.com/KirkDiggler/combat-tracker/internal/repositories/encounters"
	"github.com/KirkDiggler/combat-tracker/internal/storage"
	"github.com/KirkDiggler/combat-tracker/internal/storage/memory"
	"github.com/KirkDiggler/combat-tracker/internal/storage/redisstore"
	"github.com/KirkDiggler/combat-tracker/internal/storage/sqlitestore"
	"github.com/KirkDiggler/combat-tracker/internal/storage/tomlfile"
)

// options replaces wired dependencies, mainly for tests
type options struct {
	svc      tracker.Service
	medium   storage.Medium
	bestiary bestiary.Client
	clock    clock.Clock
	ids      idgen.Generator
}

// flags are the persistent root flags
type flags struct {
	store   string
	baseURL string
	yes     bool
	verbose bool
}

type app struct {
	svc      tracker.Service
	monsters bestiary.Client
	baseURL  string
	out      io.Writer
	errOut   io.Writer
	closers  []func() error
}

func wireApp(opts options, f flags, in io.Reader, out, errOut io.Writer) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if f.store != "" {
		cfg.Store = config.Store(f.store)
	}
	if f.baseURL != "" {
		cfg.BaseURL = f.baseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	a := &app{baseURL: cfg.BaseURL, out: out, errOut: errOut}

	a.svc = opts.svc
	if a.svc == nil {
		if a.svc, err = a.wireService(opts, f, cfg, logger, in); err != nil {
			a.close()
			return nil, err
		}
	}

	a.monsters = opts.bestiary
	if a.monsters == nil {
		a.monsters, err = bestiary.New(&bestiary.Config{BaseURL: cfg.DND5eBaseURL})
		if err != nil {
			a.close()
			return nil, err
		}
	}

	logger.Debug("tracker wired", "store", cfg.Store)
	return a, nil
}

// wireService builds the orchestrator over the configured store
func (a *app) wireService(opts options, f flags, cfg *config.Config, logger *slog.Logger, in io.Reader) (tracker.Service, error) {
	medium := opts.medium
	if medium == nil {
		var err error
		medium, err = a.openMedium(cfg)
		if err != nil {
			return nil, err
		}
	}

	repo, err := encounters.NewRepository(&encounters.Config{Medium: medium, Logger: logger})
	if err != nil {
		return nil, err
	}

	var confirmer tracker.Confirmer = tracker.AlwaysConfirm
	if !f.yes {
		confirmer = &promptConfirmer{in: bufio.NewReader(in), out: a.errOut}
	}

	clk := opts.clock
	if clk == nil {
		clk = clock.New()
	}
	ids := opts.ids
	if ids == nil {
		ids = idgen.NewUUID("")
	}

	return tracker.NewOrchestrator(&tracker.Config{
		Repository:  repo,
		Clock:       clk,
		IDGenerator: ids,
		Confirmer:   confirmer,
		Logger:      logger,
	})
}

func (a *app) openMedium(cfg *config.Config) (storage.Medium, error) {
	switch cfg.Store {
	case config.StoreMemory:
		return memory.New(&memory.Config{MaxValueBytes: cfg.MemoryQuota})

	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{Password: cfg.RedisPassword})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}
		a.closers = append(a.closers, client.Close)
		return redisstore.New(&redisstore.Config{
			Client:    client,
			KeyPrefix: cfg.RedisKeyPrefix,
			TTL:       cfg.RedisTTL,
		})

	case config.StoreFile:
		v := viper.New()
		if cfg.FilePath != "" {
			v.Set(tomlfile.PathKey, cfg.FilePath)
		}
		return tomlfile.New(v)

	case config.StoreSQLite:
		store, err := sqlitestore.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		return store, nil
	}

	return nil, errors.InvalidArgumentf("unknown store %q", cfg.Store)
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			fmt.Fprintln(a.errOut, render.Error(errors.Wrapf(err, "failed to close store: %s", errors.GetMessage(err))))
		}
	}
	a.closers = nil
}

// session loads the current working state, reporting recoverable load
// failures on stderr
func (a *app) session(ctx context.Context) (*tracker.InitOutput, error) {
	out, err := a.svc.Init(ctx, nil)
	if err != nil {
		return nil, err
	}
	for _, loadErr := range []error{out.StorageError, out.RecordsError, out.StateError} {
		if loadErr != nil {
			a.warn(loadErr)
		}
	}
	return out, nil
}

// declined turns a declined confirmation into a notice
func (a *app) declined(err error) error {
	if errors.IsAborted(err) {
		fmt.Fprintln(a.errOut, render.Notice("Nothing changed."))
		return nil
	}
	return err
}

func (a *app) warn(err error) {
	fmt.Fprintln(a.errOut, render.Error(err))
}

// show prints the roster and any best-effort save failure
func (a *app) show(out *tracker.StateOutput) {
	fmt.Fprintln(a.out, render.Roster(out.State))
	if out.SaveError != nil {
		a.warn(errors.Wrapf(out.SaveError, "state was not saved: %s", errors.GetMessage(out.SaveError)))
	}
}

// promptConfirmer asks on the terminal; anything but y or yes declines
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *promptConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.WrapWithCode(err, errors.CodeCanceled, "confirmation canceled")
	}

	fmt.Fprintf(p.out, "%s [y/N] ", prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read answer")
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
