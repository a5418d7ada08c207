// Package tomlfile keeps the tracker slots in a single TOML document on
// disk. Every write replaces the whole file atomically.
package tomlfile

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/KirkDiggler/combat-tracker/internal/errors"
	"github.com/KirkDiggler/combat-tracker/internal/storage"
)

const (
	configName      = "config"
	configType      = "toml"
	configDir       = ".combat-tracker"
	stateFile       = "state.toml"
	tempFilePattern = ".state-*.toml.tmp"
	fileMode        = 0o600
	dirMode         = 0o700
	schemaVersion   = 1

	// PathKey is the viper key holding the state file location
	PathKey = "tracker.path"
)

type fileSchema struct {
	Version int               `toml:"version"`
	Slots   map[string]string `toml:"slots"`
}

// Medium stores slots in a TOML file
type Medium struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLocks      = map[string]*sync.RWMutex{}
)

var _ storage.Medium = (*Medium)(nil)

// New resolves the state file path from cfg. The path defaults to
// ~/.combat-tracker/state.toml and may be overridden by the tracker.path key,
// either set directly or read from ~/.combat-tracker/config.toml.
func New(cfg *viper.Viper) (*Medium, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to resolve home directory")
	}

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetDefault(PathKey, filepath.Join(homeDir, configDir, stateFile))

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !stderrors.As(err, &notFound) {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read tracker config")
		}
	}

	path := cfg.GetString(PathKey)
	if path == "" {
		return nil, errors.InvalidArgument("state file path is empty")
	}
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to resolve state file path")
	}
	path = filepath.Clean(path)

	return &Medium{path: path, mu: lockForPath(path)}, nil
}

// Path returns the resolved state file location
func (m *Medium) Path() string {
	return m.path
}

// Get returns the value at key
func (m *Medium) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errors.WrapWithCode(err, errors.CodeCanceled, "file get canceled")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	file, err := m.read()
	if err != nil {
		return "", false, err
	}
	value, ok := file.Slots[key]
	return value, ok, nil
}

// Set stores value at key
func (m *Medium) Set(ctx context.Context, key, value string) error {
	return m.update(ctx, func(slots map[string]string) {
		slots[key] = value
	})
}

// Delete removes key
func (m *Medium) Delete(ctx context.Context, key string) error {
	return m.update(ctx, func(slots map[string]string) {
		delete(slots, key)
	})
}

func (m *Medium) update(ctx context.Context, mutate func(map[string]string)) error {
	if err := ctx.Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeCanceled, "file write canceled")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	file, err := m.read()
	if err != nil {
		return err
	}
	mutate(file.Slots)
	return m.write(file)
}

func (m *Medium) read() (fileSchema, error) {
	file := fileSchema{Version: schemaVersion, Slots: map[string]string{}}

	data, err := os.ReadFile(m.path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return file, nil
		}
		return fileSchema{}, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read state file").
			WithMeta("path", m.path)
	}

	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, errors.WrapWithCode(err, errors.CodeDataLoss, "state file is not valid TOML").
			WithMeta("path", m.path)
	}
	if file.Version != schemaVersion {
		return fileSchema{}, errors.FailedPreconditionf("state file version %d is not supported", file.Version).
			WithMeta("path", m.path)
	}
	if file.Slots == nil {
		file.Slots = map[string]string{}
	}
	return file, nil
}

func (m *Medium) write(file fileSchema) error {
	if err := os.MkdirAll(filepath.Dir(m.path), dirMode); err != nil {
		return writeError(err, "failed to create state directory")
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return errors.Wrap(err, "failed to encode state file")
	}

	tempFile, err := os.CreateTemp(filepath.Dir(m.path), tempFilePattern)
	if err != nil {
		return writeError(err, "failed to create temp state file")
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return writeError(err, "failed to write temp state file")
	}
	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return writeError(err, "failed to chmod temp state file")
	}
	if err := tempFile.Close(); err != nil {
		return writeError(err, "failed to close temp state file")
	}
	if err := os.Rename(tempName, m.path); err != nil {
		return writeError(err, "failed to replace state file")
	}

	cleanup = false
	return nil
}

func writeError(err error, message string) error {
	if stderrors.Is(err, syscall.ENOSPC) {
		return errors.WrapWithCode(err, errors.CodeResourceExhausted, message)
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, message)
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLocks[path]; ok {
		return mu
	}
	mu := &sync.RWMutex{}
	pathLocks[path] = mu
	return mu
}
