package encounter

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
	"github.com/KirkDiggler/combat-tracker/internal/pkg/idgen"
)

// Messages shown when stored or shared data was written by another format
// version.
const (
	MsgSnapshotVersionMismatch = "This snapshot was created with an incompatible version and cannot be loaded."
	MsgRecordVersionMismatch   = "This saved encounter was created with an incompatible version and cannot be loaded."
)

// Stamp normalizes t to the precision kept by the persisted formats
func Stamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// FromState builds an encounter from the live session. The roster is sorted
// and clamped, every entrant becomes a monster with no temp HP and no
// conditions, and the turn stays with whoever held it.
func FromState(state engine.State, id, name string, now time.Time) Encounter {
	activeID := ""
	if current, ok := engine.Current(state); ok {
		activeID = current.ID
	}

	roster := engine.ClampAllHP(engine.SortRoster(state.Combatants))
	activeIndex := state.ActiveIndex
	if activeID != "" {
		for i, c := range roster {
			if c.ID == activeID {
				activeIndex = i
				break
			}
		}
	}

	participants := make([]Participant, 0, len(roster))
	for _, c := range roster {
		participants = append(participants, Participant{
			ID:         c.ID,
			Type:       RoleMonster,
			Name:       c.Name,
			Initiative: c.Initiative,
			ArmorClass: c.ArmorClass,
			HP:         HitPoints{Current: c.CurrentHP, Max: c.MaxHP},
			Conditions: []Condition{},
		})
	}

	stamp := Stamp(now)
	return Encounter{
		ID:           id,
		Name:         name,
		Version:      CurrentVersion,
		Round:        max(state.Round, 1),
		ActiveIndex:  activeIndex,
		Started:      state.Started,
		Participants: participants,
		CreatedAt:    stamp,
		UpdatedAt:    stamp,
	}
}

// NewSnapshot wraps the live session for sharing
func NewSnapshot(state engine.State, name string, now time.Time, ids idgen.Generator) Snapshot {
	return Snapshot{
		Version:   CurrentVersion,
		EncodedAt: Stamp(now),
		Encounter: FromState(state, ids.Generate(), name, now),
	}
}

// NewRecord builds a saved encounters entry for the live session. The record
// and the encounter get distinct fresh ids.
func NewRecord(state engine.State, name string, now time.Time, ids idgen.Generator) SavedRecord {
	return SavedRecord{
		ID:        ids.Generate(),
		Name:      name,
		SavedAt:   Stamp(now),
		Encounter: FromState(state, ids.Generate(), name, now),
	}
}

// Restore turns an encounter back into a live session. Participants keep
// their stored order; max HP is floored at 0 and current HP clamped into
// [0, max]. Round is raised to at least 1 and the active
// index is clamped into the roster: a started combat points at a real slot,
// an empty roster always yields -1 even when marked started.
func Restore(e Encounter) engine.State {
	combatants := make([]engine.Combatant, 0, len(e.Participants))
	for _, p := range e.Participants {
		combatants = append(combatants, engine.Combatant{
			ID:         p.ID,
			Name:       p.Name,
			Initiative: p.Initiative,
			MaxHP:      max(p.HP.Max, 0),
			CurrentHP:  p.HP.Current,
			ArmorClass: p.ArmorClass,
		})
	}

	activeIndex := -1
	if len(combatants) > 0 {
		floor := -1
		if e.Started {
			floor = 0
		}
		activeIndex = min(max(e.ActiveIndex, floor), len(combatants)-1)
	}

	return engine.State{
		Combatants:  engine.ClampAllHP(combatants),
		ActiveIndex: activeIndex,
		Round:       max(e.Round, 1),
		Started:     e.Started,
	}
}

// CheckSnapshotVersion refuses snapshots from another format version
func CheckSnapshotVersion(s Snapshot) error {
	if s.Version != CurrentVersion || s.Encounter.Version != CurrentVersion {
		return errors.FailedPrecondition(MsgSnapshotVersionMismatch).
			WithMeta("version", s.Version)
	}
	return nil
}

// CheckRecordVersion refuses saved records from another format version
func CheckRecordVersion(r SavedRecord) error {
	if r.Encounter.Version != CurrentVersion {
		return errors.FailedPrecondition(MsgRecordVersionMismatch).
			WithMeta("version", r.Encounter.Version).
			WithMeta("record_id", r.ID)
	}
	return nil
}

// MarshalJSON writes conditions as a list even when none were set
func (p Participant) MarshalJSON() ([]byte, error) {
	type plain Participant
	out := plain(p)
	if out.Conditions == nil {
		out.Conditions = []Condition{}
	}
	return json.Marshal(out)
}

// MarshalJSON writes participants as a list even when none were set
func (e Encounter) MarshalJSON() ([]byte, error) {
	type plain Encounter
	out := plain(e)
	if out.Participants == nil {
		out.Participants = []Participant{}
	}
	return json.Marshal(out)
}
