// Package encounters persists the tracker's two storage slots: the active
// working state and the saved encounters list.
package encounters

//go:generate mockgen -destination=mock/mock_repository.go -package=encountersmock github.com/KirkDiggler/combat-tracker/internal/repositories/encounters Repository

import (
	"context"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
	"github.com/KirkDiggler/combat-tracker/internal/entities/encounter"
)

// Slot keys on the storage medium
const (
	ActiveStateKey  = "combat-tracker-state-v1"
	SavedRecordsKey = "combat-tracker-saved-v1"
	ProbeKey        = "__combat_tracker_test__"
)

// Repository reads and writes the tracker slots. Every failure of the
// underlying medium, including a panic, comes back as a coded error.
type Repository interface {
	// CheckAvailability writes and removes a probe key
	CheckAvailability(ctx context.Context) error

	// LoadActiveState reads the working state. Found is false when the slot
	// is empty; State is then the empty session.
	LoadActiveState(ctx context.Context) (*LoadActiveStateOutput, error)

	// SaveActiveState overwrites the working state slot
	SaveActiveState(ctx context.Context, input SaveActiveStateInput) error

	// ClearActiveState removes the working state slot
	ClearActiveState(ctx context.Context) error

	// LoadSavedRecords reads the saved encounters list, newest first
	LoadSavedRecords(ctx context.Context) (*LoadSavedRecordsOutput, error)

	// GetRecord finds one saved encounter by record id
	GetRecord(ctx context.Context, input GetRecordInput) (*GetRecordOutput, error)

	// SaveRecord puts the record at the front of the list, replacing any
	// entry with the same id, and rewrites the whole list
	SaveRecord(ctx context.Context, input SaveRecordInput) (*SaveRecordOutput, error)

	// DeleteRecord drops the record with the given id and rewrites the list
	DeleteRecord(ctx context.Context, input DeleteRecordInput) (*DeleteRecordOutput, error)
}

// LoadActiveStateOutput holds the stored working state
type LoadActiveStateOutput struct {
	State engine.State
	Found bool
}

// SaveActiveStateInput is the state to persist
type SaveActiveStateInput struct {
	State engine.State
}

// LoadSavedRecordsOutput is the saved list as stored
type LoadSavedRecordsOutput struct {
	Records []encounter.SavedRecord
}

// GetRecordInput identifies a saved record
type GetRecordInput struct {
	ID string
}

// GetRecordOutput holds the found record
type GetRecordOutput struct {
	Record encounter.SavedRecord
}

// SaveRecordInput is the record to store
type SaveRecordInput struct {
	Record encounter.SavedRecord
}

// SaveRecordOutput is the list as written
type SaveRecordOutput struct {
	Records []encounter.SavedRecord
}

// DeleteRecordInput identifies the record to drop
type DeleteRecordInput struct {
	ID string
}

// DeleteRecordOutput is the list as written
type DeleteRecordOutput struct {
	Records []encounter.SavedRecord
	Deleted bool
}
