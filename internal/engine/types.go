// Package engine holds the combat state transitions: roster ordering, turn and
// round progression, and hit point arithmetic. Every function is a pure value
// transform; callers persist the returned state themselves.
package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// EntityType is the core.Entity type reported by every combatant
const EntityType = "combatant"

// Combatant is a roster entrant in the live working session
type Combatant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Initiative int    `json:"initiative"`
	MaxHP      int    `json:"maxHp"`
	CurrentHP  int    `json:"currentHp"`
	ArmorClass int    `json:"armorClass"`
}

var _ core.Entity = Combatant{}

// GetID returns the combatant id
func (c Combatant) GetID() string {
	return c.ID
}

// GetType returns EntityType
func (c Combatant) GetType() string {
	return EntityType
}

// State is the working combat session.
//
// Combatants are kept in turn order. ActiveIndex is -1 when no turn is active,
// always the case before combat starts or when the roster is empty.
type State struct {
	Combatants  []Combatant `json:"combatants"`
	ActiveIndex int         `json:"activeIndex"`
	Round       int         `json:"round"`
	Started     bool        `json:"started"`
}

// EmptyState returns a session with no combatants and no active turn
func EmptyState() State {
	return State{
		Combatants:  []Combatant{},
		ActiveIndex: -1,
		Round:       1,
		Started:     false,
	}
}

// Current returns the combatant whose turn it is
func Current(state State) (Combatant, bool) {
	if !state.Started || state.ActiveIndex < 0 || state.ActiveIndex >= len(state.Combatants) {
		return Combatant{}, false
	}
	return state.Combatants[state.ActiveIndex], true
}

func cloneRoster(combatants []Combatant) []Combatant {
	out := make([]Combatant, len(combatants))
	copy(out, combatants)
	return out
}

// indexOf returns the position of id in combatants, -1 when absent
func indexOf(combatants []Combatant, id string) int {
	for i, c := range combatants {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Find returns the combatant with the given id
func Find(combatants []Combatant, id string) (Combatant, bool) {
	if i := indexOf(combatants, id); i >= 0 {
		return combatants[i], true
	}
	return Combatant{}, false
}
