package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

// RollInitiative rolls a d20 and adds modifier
func RollInitiative(roller dice.Roller, modifier int) (int, error) {
	if roller == nil {
		roller = dice.DefaultRoller
	}

	roll, err := roller.Roll(20)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll initiative")
	}
	return roll + modifier, nil
}
