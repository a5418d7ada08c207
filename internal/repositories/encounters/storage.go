package encounters

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
	"github.com/KirkDiggler/combat-tracker/internal/entities/encounter"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
	"github.com/KirkDiggler/combat-tracker/internal/storage"
)

// Config holds the dependencies for the repository
type Config struct {
	Medium storage.Medium
	Logger *slog.Logger
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Medium == nil {
		vb.RequiredField("Medium")
	}
	return vb.Build()
}

type repository struct {
	medium storage.Medium
	logger *slog.Logger
}

var _ Repository = (*repository)(nil)

// NewRepository creates a repository over the given medium
func NewRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &repository{
		medium: cfg.Medium,
		logger: logger,
	}, nil
}

func (r *repository) CheckAvailability(ctx context.Context) error {
	if err := r.write(ctx, ProbeKey, "1"); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "storage is unavailable: "+errors.GetMessage(err))
	}
	if err := r.remove(ctx, ProbeKey); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "storage is unavailable: "+errors.GetMessage(err))
	}
	return nil
}

func (r *repository) LoadActiveState(ctx context.Context) (*LoadActiveStateOutput, error) {
	raw, found, err := r.read(ctx, ActiveStateKey)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return &LoadActiveStateOutput{State: engine.EmptyState()}, nil
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored combat state is not valid JSON")
	}
	if decoded == nil {
		return &LoadActiveStateOutput{State: engine.EmptyState()}, nil
	}

	state, err := encounter.ParseCombatState(decoded)
	if err != nil {
		return nil, corrupt(err)
	}
	return &LoadActiveStateOutput{State: state, Found: true}, nil
}

func (r *repository) SaveActiveState(ctx context.Context, input SaveActiveStateInput) error {
	state := input.State
	if state.Combatants == nil {
		state.Combatants = []engine.Combatant{}
	}

	data, err := json.Marshal(state)
	if err != nil {
		return errors.Wrap(err, "failed to marshal combat state")
	}
	return r.write(ctx, ActiveStateKey, string(data))
}

func (r *repository) ClearActiveState(ctx context.Context) error {
	return r.remove(ctx, ActiveStateKey)
}

func (r *repository) LoadSavedRecords(ctx context.Context) (*LoadSavedRecordsOutput, error) {
	raw, found, err := r.read(ctx, SavedRecordsKey)
	if err != nil {
		return nil, err
	}
	if !found || raw == "" {
		return &LoadSavedRecordsOutput{Records: []encounter.SavedRecord{}}, nil
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "saved encounters are not valid JSON")
	}

	records, err := encounter.ParseSavedRecords(decoded)
	if err != nil {
		return nil, corrupt(err)
	}
	return &LoadSavedRecordsOutput{Records: records}, nil
}

func (r *repository) GetRecord(ctx context.Context, input GetRecordInput) (*GetRecordOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("record ID is required")
	}

	loaded, err := r.LoadSavedRecords(ctx)
	if err != nil {
		return nil, err
	}
	for _, record := range loaded.Records {
		if record.ID == input.ID {
			return &GetRecordOutput{Record: record}, nil
		}
	}
	return nil, errors.NotFoundf("saved encounter %s not found", input.ID)
}

func (r *repository) SaveRecord(ctx context.Context, input SaveRecordInput) (*SaveRecordOutput, error) {
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument("record ID is required")
	}

	loaded, err := r.LoadSavedRecords(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]encounter.SavedRecord, 0, len(loaded.Records)+1)
	updated = append(updated, input.Record)
	for _, record := range loaded.Records {
		if record.ID != input.Record.ID {
			updated = append(updated, record)
		}
	}

	if err := r.writeRecords(ctx, updated); err != nil {
		return nil, err
	}
	return &SaveRecordOutput{Records: updated}, nil
}

func (r *repository) DeleteRecord(ctx context.Context, input DeleteRecordInput) (*DeleteRecordOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("record ID is required")
	}

	loaded, err := r.LoadSavedRecords(ctx)
	if err != nil {
		return nil, err
	}

	updated := make([]encounter.SavedRecord, 0, len(loaded.Records))
	for _, record := range loaded.Records {
		if record.ID != input.ID {
			updated = append(updated, record)
		}
	}

	if err := r.writeRecords(ctx, updated); err != nil {
		return nil, err
	}
	return &DeleteRecordOutput{
		Records: updated,
		Deleted: len(updated) < len(loaded.Records),
	}, nil
}

func (r *repository) writeRecords(ctx context.Context, records []encounter.SavedRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return errors.Wrap(err, "failed to marshal saved encounters")
	}
	return r.write(ctx, SavedRecordsKey, string(data))
}

// read, write and remove shield callers from a medium that panics and
// normalize its error codes.

func (r *repository) read(ctx context.Context, key string) (value string, found bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("storage medium panicked", "op", "get", "key", key, "panic", rec)
			value, found, err = "", false, errors.FromPanic(rec, "storage read failed").WithMeta("key", key)
		}
	}()

	value, found, err = r.medium.Get(ctx, key)
	if err != nil {
		return "", false, mediumError(err, "storage read failed", key)
	}
	return value, found, nil
}

func (r *repository) write(ctx context.Context, key, value string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("storage medium panicked", "op", "set", "key", key, "panic", rec)
			err = errors.FromPanic(rec, "storage write failed").WithMeta("key", key)
		}
	}()

	if err := r.medium.Set(ctx, key, value); err != nil {
		return mediumError(err, "storage write failed", key)
	}
	return nil
}

func (r *repository) remove(ctx context.Context, key string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("storage medium panicked", "op", "delete", "key", key, "panic", rec)
			err = errors.FromPanic(rec, "storage delete failed").WithMeta("key", key)
		}
	}()

	if err := r.medium.Delete(ctx, key); err != nil {
		return mediumError(err, "storage delete failed", key)
	}
	return nil
}

// mediumError keeps the codes a medium reports on purpose, such as an
// unreadable file or a schema mismatch, and reports anything else as an
// internal failure.
func mediumError(err error, message, key string) error {
	code := errors.GetCode(err)
	switch code {
	case errors.CodeUnavailable, errors.CodeResourceExhausted, errors.CodeCanceled,
		errors.CodeDataLoss, errors.CodeFailedPrecondition:
	default:
		code = errors.CodeInternal
	}
	return errors.WrapWithCode(err, code, message+": "+errors.GetMessage(err)).WithMeta("key", key)
}

// corrupt re-codes a validation failure on stored data as data loss,
// keeping the validator's reason as the message shown to the user.
func corrupt(err error) error {
	return errors.WrapWithCode(err, errors.CodeDataLoss, "stored data is invalid: "+errors.GetMessage(err))
}
