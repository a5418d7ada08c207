// Package tracker wires the combat engine to persistence and link sharing.
// The working state is passed in and returned by value; after every
// transform the new state is saved best-effort.
package tracker

//go:generate mockgen -destination=mock/mock_service.go -package=trackermock github.com/KirkDiggler/combat-tracker/internal/orchestrators/tracker Service

import (
	"context"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
	"github.com/KirkDiggler/combat-tracker/internal/entities/encounter"
)

// Confirmation prompts
const (
	PromptLoadRecord   = "Load this saved encounter?"
	PromptDeleteRecord = "Delete this saved encounter?"
	PromptLoadShared   = "Load this shared snapshot?"
)

// Service is the tracker's application surface
type Service interface {
	// Init probes storage, loads the saved list and recovers the working
	// state. It also previews a share link when one is passed in.
	Init(ctx context.Context, input *InitInput) (*InitOutput, error)

	Add(ctx context.Context, input *AddInput) (*StateOutput, error)
	Remove(ctx context.Context, input *RemoveInput) (*StateOutput, error)
	Start(ctx context.Context, input *StateInput) (*StateOutput, error)
	Next(ctx context.Context, input *StateInput) (*StateOutput, error)
	ApplyHP(ctx context.Context, input *ApplyHPInput) (*StateOutput, error)
	Clear(ctx context.Context) (*StateOutput, error)

	ListRecords(ctx context.Context) (*ListRecordsOutput, error)
	SaveRecord(ctx context.Context, input *SaveRecordInput) (*SaveRecordOutput, error)
	LoadRecord(ctx context.Context, input *LoadRecordInput) (*StateOutput, error)
	DeleteRecord(ctx context.Context, input *DeleteRecordInput) (*DeleteRecordOutput, error)

	Share(ctx context.Context, input *ShareInput) (*ShareOutput, error)
	Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error)
	LoadShared(ctx context.Context, input *LoadSharedInput) (*LoadSharedOutput, error)
}

// Confirmer asks the user a yes/no question before a replacing or
// destructive operation
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer
type ConfirmFunc func(ctx context.Context, prompt string) (bool, error)

// Confirm calls f
func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) (bool, error) {
	return f(ctx, prompt)
}

// AlwaysConfirm accepts every prompt
var AlwaysConfirm Confirmer = ConfirmFunc(func(context.Context, string) (bool, error) {
	return true, nil
})

// InitInput optionally carries the URL the tracker was opened with
type InitInput struct {
	URL string
}

// InitOutput is the startup result. Storage problems are reported in the
// error fields rather than failing Init; the tracker still works from memory.
type InitOutput struct {
	StorageAvailable bool
	StorageError     error
	Records          []encounter.SavedRecord
	RecordsError     error
	State            engine.State
	StateError       error
	// Shared is set when the URL carried a share payload that decoded;
	// SharedError when it did not
	Shared      *PreviewOutput
	SharedError error
}

// StateInput carries the current working state
type StateInput struct {
	State engine.State
}

// StateOutput is the state after a transform. SaveError reports a failed
// best-effort save; the transform itself still happened.
type StateOutput struct {
	State     engine.State
	SaveError error
}

// AddInput describes a new combatant. When RollInitiative is set the
// initiative is d20 + InitiativeModifier instead of Initiative.
type AddInput struct {
	State              engine.State
	Name               string
	Initiative         int
	RollInitiative     bool
	InitiativeModifier int
	MaxHP              int
	ArmorClass         int
}

// RemoveInput names the combatant to drop
type RemoveInput struct {
	State engine.State
	ID    string
}

// ApplyHPInput is an HP edit for one combatant, as typed by the user
type ApplyHPInput struct {
	State engine.State
	ID    string
	Input string
}

// ListRecordsOutput is the saved list, newest first
type ListRecordsOutput struct {
	Records []encounter.SavedRecord
}

// SaveRecordInput names the state being saved
type SaveRecordInput struct {
	State engine.State
	Name  string
}

// SaveRecordOutput holds the new record and the list as written
type SaveRecordOutput struct {
	Record  encounter.SavedRecord
	Records []encounter.SavedRecord
}

// LoadRecordInput identifies the record to restore
type LoadRecordInput struct {
	ID string
}

// DeleteRecordInput identifies the record to drop
type DeleteRecordInput struct {
	ID string
}

// DeleteRecordOutput is the list as written
type DeleteRecordOutput struct {
	Records []encounter.SavedRecord
}

// ShareInput is the state to share and the page the link points at
type ShareInput struct {
	State   engine.State
	Name    string
	BaseURL string
}

// ShareOutput is the built link
type ShareOutput struct {
	URL         string
	PayloadSize int
	Snapshot    encounter.Snapshot
}

// PreviewInput is a share link or a bare payload
type PreviewInput struct {
	URL string
}

// PreviewOutput describes a decoded share link. VersionError is set when the
// snapshot decodes but cannot be loaded.
type PreviewOutput struct {
	Snapshot     encounter.Snapshot
	VersionError error
	// CleanURL is the link without its share parameter
	CleanURL string
}

// LoadSharedInput is the share link to restore
type LoadSharedInput struct {
	URL string
}

// LoadSharedOutput is the restored state and the link to show afterwards
type LoadSharedOutput struct {
	StateOutput
	CleanURL string
}
