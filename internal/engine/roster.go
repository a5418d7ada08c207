package engine

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

// SortRoster orders combatants by initiative, highest first. Ties are broken
// by name using English collation, then by raw byte order so the result is a
// total order. The input slice is not modified.
func SortRoster(combatants []Combatant) []Combatant {
	sorted := cloneRoster(combatants)
	col := collate.New(language.English)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Initiative != b.Initiative {
			return a.Initiative > b.Initiative
		}
		if c := col.CompareString(a.Name, b.Name); c != 0 {
			return c < 0
		}
		return a.Name < b.Name
	})

	return sorted
}

// NewCombatant builds a combatant at full health. Negative max HP and armor
// class are raised to zero.
func NewCombatant(id, name string, initiative, maxHP, armorClass int) (Combatant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Combatant{}, errors.InvalidArgument("combatant name is required")
	}
	if id == "" {
		return Combatant{}, errors.InvalidArgument("combatant id is required")
	}

	maxHP = max(maxHP, 0)
	return Combatant{
		ID:         id,
		Name:       name,
		Initiative: initiative,
		MaxHP:      maxHP,
		CurrentHP:  maxHP,
		ArmorClass: max(armorClass, 0),
	}, nil
}

// UpsertCombatant replaces any combatant sharing c's id, then re-sorts
func UpsertCombatant(combatants []Combatant, c Combatant) []Combatant {
	filtered := make([]Combatant, 0, len(combatants)+1)
	for _, existing := range combatants {
		if existing.ID != c.ID {
			filtered = append(filtered, existing)
		}
	}
	return SortRoster(append(filtered, c))
}

// AddCombatant inserts c into the roster. When combat is running the same
// combatant keeps the turn after the re-sort.
func AddCombatant(state State, c Combatant) State {
	activeID := ""
	if current, ok := Current(state); ok {
		activeID = current.ID
	}

	roster := UpsertCombatant(state.Combatants, c)

	next := state
	next.Combatants = roster
	next.ActiveIndex = -1
	if state.Started {
		next.ActiveIndex = findActiveIndex(roster, activeID)
	}
	return next
}

// RemoveCombatant drops the combatant with id. If it held the turn, the turn
// passes to whoever now occupies its slot. Removing the last combatant resets
// to the empty state.
func RemoveCombatant(state State, id string) State {
	removedAt := indexOf(state.Combatants, id)
	if removedAt < 0 {
		return state
	}

	roster := make([]Combatant, 0, len(state.Combatants)-1)
	roster = append(roster, state.Combatants[:removedAt]...)
	roster = append(roster, state.Combatants[removedAt+1:]...)
	if len(roster) == 0 {
		next := EmptyState()
		next.Round = state.Round
		return next
	}

	next := state
	next.Combatants = roster
	if !state.Started {
		next.ActiveIndex = -1
		return next
	}

	switch {
	case state.ActiveIndex > removedAt:
		next.ActiveIndex = state.ActiveIndex - 1
	case state.ActiveIndex == removedAt && removedAt >= len(roster):
		next.ActiveIndex = 0
	}
	return next
}

// findActiveIndex locates activeID after a re-sort. With no previous active
// combatant the first slot takes the turn.
func findActiveIndex(combatants []Combatant, activeID string) int {
	if activeID == "" {
		if len(combatants) > 0 {
			return 0
		}
		return -1
	}
	return indexOf(combatants, activeID)
}
