package tracker

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
	"github.com/KirkDiggler/combat-tracker/internal/entities/encounter"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
	"github.com/KirkDiggler/combat-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/combat-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-tracker/internal/repositories/encounters"
	"github.com/KirkDiggler/combat-tracker/internal/share"
)

// Config holds the dependencies for the tracker orchestrator
type Config struct {
	Repository  encounters.Repository
	Clock       clock.Clock
	IDGenerator idgen.Generator
	Confirmer   Confirmer
	// Roller rolls initiative; nil uses the toolkit's default roller
	Roller dice.Roller
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Confirmer == nil {
		vb.RequiredField("Confirmer")
	}

	return vb.Build()
}

type orchestrator struct {
	repo      encounters.Repository
	clock     clock.Clock
	idGen     idgen.Generator
	confirmer Confirmer
	roller    dice.Roller
	logger    *slog.Logger
}

// NewOrchestrator creates a new tracker orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
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

	return &orchestrator{
		repo:      cfg.Repository,
		clock:     cfg.Clock,
		idGen:     cfg.IDGenerator,
		confirmer: cfg.Confirmer,
		roller:    cfg.Roller,
		logger:    logger,
	}, nil
}

func (o *orchestrator) Init(ctx context.Context, input *InitInput) (*InitOutput, error) {
	if input == nil {
		input = &InitInput{}
	}

	out := &InitOutput{State: engine.EmptyState()}

	if input.URL != "" {
		if _, ok := share.PayloadFromURL(input.URL); ok {
			shared, err := o.Preview(ctx, &PreviewInput{URL: input.URL})
			if err != nil {
				o.logger.Info("share link could not be decoded", "error", err)
				out.SharedError = err
			} else {
				out.Shared = shared
			}
		}
	}

	if err := o.repo.CheckAvailability(ctx); err != nil {
		o.logger.Warn("storage unavailable", "error", err)
		out.StorageError = err
		return o.finishInit(ctx, out)
	}
	out.StorageAvailable = true

	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "init canceled")
	}

	records, err := o.repo.LoadSavedRecords(ctx)
	if err != nil {
		o.logger.Warn("failed to load saved encounters", "error", err)
		out.RecordsError = err
	} else {
		out.Records = records.Records
	}

	active, err := o.repo.LoadActiveState(ctx)
	if err != nil {
		o.logger.Warn("failed to load active combat state", "error", err)
		out.StateError = err
	} else if active.Found {
		out.State = engine.Recover(active.State)
	}

	return o.finishInit(ctx, out)
}

// finishInit drops the whole result when the caller went away meanwhile
func (o *orchestrator) finishInit(ctx context.Context, out *InitOutput) (*InitOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeCanceled, "init canceled")
	}
	return out, nil
}

func (o *orchestrator) Add(ctx context.Context, input *AddInput) (*StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	initiative := input.Initiative
	if input.RollInitiative {
		rolled, err := engine.RollInitiative(o.roller, input.InitiativeModifier)
		if err != nil {
			return nil, err
		}
		initiative = rolled
	}

	c, err := engine.NewCombatant(o.idGen.Generate(), input.Name, initiative, input.MaxHP, input.ArmorClass)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("adding combatant", "id", c.ID, "name", c.Name, "initiative", c.Initiative)
	return o.commit(ctx, engine.AddCombatant(input.State, c)), nil
}

func (o *orchestrator) Remove(ctx context.Context, input *RemoveInput) (*StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, ok := engine.Find(input.State.Combatants, input.ID); !ok {
		return nil, errors.NotFoundf("combatant %s not found", input.ID)
	}
	return o.commit(ctx, engine.RemoveCombatant(input.State, input.ID)), nil
}

func (o *orchestrator) Start(ctx context.Context, input *StateInput) (*StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.commit(ctx, engine.StartCombat(input.State)), nil
}

func (o *orchestrator) Next(ctx context.Context, input *StateInput) (*StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	return o.commit(ctx, engine.AdvanceTurn(input.State)), nil
}

func (o *orchestrator) ApplyHP(ctx context.Context, input *ApplyHPInput) (*StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, ok := engine.Find(input.State.Combatants, input.ID); !ok {
		return nil, errors.NotFoundf("combatant %s not found", input.ID)
	}

	next := input.State
	next.Combatants = engine.UpdateCombatantHP(input.State.Combatants, input.ID, input.Input)
	return o.commit(ctx, next), nil
}

func (o *orchestrator) Clear(ctx context.Context) (*StateOutput, error) {
	return o.commit(ctx, engine.EmptyState()), nil
}

func (o *orchestrator) ListRecords(ctx context.Context) (*ListRecordsOutput, error) {
	out, err := o.repo.LoadSavedRecords(ctx)
	if err != nil {
		return nil, err
	}
	return &ListRecordsOutput{Records: out.Records}, nil
}

func (o *orchestrator) SaveRecord(ctx context.Context, input *SaveRecordInput) (*SaveRecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	record := encounter.NewRecord(input.State, strings.TrimSpace(input.Name), o.clock.Now(), o.idGen)
	saved, err := o.repo.SaveRecord(ctx, encounters.SaveRecordInput{Record: record})
	if err != nil {
		return nil, err
	}

	o.logger.Info("saved encounter", "record_id", record.ID, "participants", len(record.Encounter.Participants))
	return &SaveRecordOutput{Record: record, Records: saved.Records}, nil
}

func (o *orchestrator) LoadRecord(ctx context.Context, input *LoadRecordInput) (*StateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	found, err := o.repo.GetRecord(ctx, encounters.GetRecordInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	if err := encounter.CheckRecordVersion(found.Record); err != nil {
		return nil, err
	}
	if err := o.confirm(ctx, PromptLoadRecord); err != nil {
		return nil, err
	}

	return o.commit(ctx, encounter.Restore(found.Record.Encounter)), nil
}

func (o *orchestrator) DeleteRecord(ctx context.Context, input *DeleteRecordInput) (*DeleteRecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := o.confirm(ctx, PromptDeleteRecord); err != nil {
		return nil, err
	}

	out, err := o.repo.DeleteRecord(ctx, encounters.DeleteRecordInput{ID: input.ID})
	if err != nil {
		return nil, err
	}
	if !out.Deleted {
		return nil, errors.NotFoundf("saved encounter %s not found", input.ID)
	}
	return &DeleteRecordOutput{Records: out.Records}, nil
}

func (o *orchestrator) Share(_ context.Context, input *ShareInput) (*ShareOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	snapshot := encounter.NewSnapshot(input.State, strings.TrimSpace(input.Name), o.clock.Now(), o.idGen)
	encoded, err := share.Encode(snapshot)
	if err != nil {
		return nil, err
	}
	link, err := share.BuildURL(input.BaseURL, encoded.Payload)
	if err != nil {
		return nil, err
	}

	return &ShareOutput{
		URL:         link.URL,
		PayloadSize: encoded.Size,
		Snapshot:    snapshot,
	}, nil
}

func (o *orchestrator) Preview(_ context.Context, input *PreviewInput) (*PreviewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	payload, cleanURL, err := payloadOf(input.URL)
	if err != nil {
		return nil, err
	}
	snapshot, err := share.Decode(payload)
	if err != nil {
		return nil, err
	}

	return &PreviewOutput{
		Snapshot:     snapshot,
		VersionError: encounter.CheckSnapshotVersion(snapshot),
		CleanURL:     cleanURL,
	}, nil
}

func (o *orchestrator) LoadShared(ctx context.Context, input *LoadSharedInput) (*LoadSharedOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	preview, err := o.Preview(ctx, &PreviewInput{URL: input.URL})
	if err != nil {
		return nil, err
	}
	if preview.VersionError != nil {
		return nil, preview.VersionError
	}
	if err := o.confirm(ctx, PromptLoadShared); err != nil {
		return nil, err
	}

	return &LoadSharedOutput{
		StateOutput: *o.commit(ctx, encounter.Restore(preview.Snapshot.Encounter)),
		CleanURL:    preview.CleanURL,
	}, nil
}

// commit saves the new state best-effort
func (o *orchestrator) commit(ctx context.Context, state engine.State) *StateOutput {
	out := &StateOutput{State: state}
	if err := o.repo.SaveActiveState(ctx, encounters.SaveActiveStateInput{State: state}); err != nil {
		o.logger.Warn("failed to save active combat state", "error", err)
		out.SaveError = err
	}
	return out
}

func (o *orchestrator) confirm(ctx context.Context, prompt string) error {
	ok, err := o.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return errors.Wrap(err, "confirmation failed")
	}
	if !ok {
		return errors.Abortedf("declined: %s", prompt)
	}
	return nil
}

// payloadOf accepts a full share link or a bare payload
func payloadOf(raw string) (payload, cleanURL string, err error) {
	raw = strings.TrimSpace(raw)
	if p, ok := share.PayloadFromURL(raw); ok {
		return p, share.StripShareParam(raw), nil
	}
	if strings.Contains(raw, "://") {
		return "", "", errors.NotFound("link has no share payload")
	}
	return raw, "", nil
}
