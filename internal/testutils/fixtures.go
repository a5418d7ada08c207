package testutils

import (
	"time"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
)

// FixedTime is the instant test clocks are frozen at
var FixedTime = time.Date(2026, 10, 14, 10, 0, 0, 0, time.UTC)

// SampleState returns a started three-combatant session with the rogue active
func SampleState() engine.State {
	return engine.State{
		Combatants: []engine.Combatant{
			{ID: "c", Name: "Cleric", Initiative: 20, MaxHP: 30, CurrentHP: 30, ArmorClass: 18},
			{ID: "b", Name: "Rogue", Initiative: 15, MaxHP: 24, CurrentHP: 20, ArmorClass: 15},
			{ID: "a", Name: "Goblin", Initiative: 10, MaxHP: 7, CurrentHP: 7, ArmorClass: 13},
		},
		ActiveIndex: 1,
		Round:       2,
		Started:     true,
	}
}
