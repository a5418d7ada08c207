package engine

import (
	"math"
	"strconv"
	"strings"
)

// ClampHP forces value into [0, maxHP]
func ClampHP(value, maxHP int) int {
	maxHP = max(maxHP, 0)
	return min(max(value, 0), maxHP)
}

// ParseHPDelta applies an HP edit typed by the user.
//
// A leading "+" or "-" makes the rest a delta against current; anything else
// is an absolute value. The number is the leading run of digits after
// optional spaces and one optional sign, so "12abc" reads 12 and "-5.5"
// reads 5; trailing text is ignored. Values too large for an int saturate.
// Blank input or input with no digits leaves current unchanged. The result
// is clamped to [0, maxHP].
func ParseHPDelta(current, maxHP int, input string) int {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return current
	}

	sign := trimmed[0]
	rest := trimmed
	if sign == '+' || sign == '-' {
		rest = trimmed[1:]
	}

	negative, value, ok := leadingInt(rest)
	if !ok {
		return current
	}

	switch {
	case sign != '+' && sign != '-':
		return ClampHP(value, maxHP)
	case (sign == '-') != negative:
		if value > current {
			return 0
		}
		return ClampHP(current-value, maxHP)
	default:
		if value > maxHP-current {
			return ClampHP(maxHP, maxHP)
		}
		return ClampHP(current+value, maxHP)
	}
}

// leadingInt reads optional spaces, an optional sign and the digits that
// follow. The magnitude saturates at math.MaxInt.
func leadingInt(s string) (negative bool, value int, ok bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return false, 0, false
	}

	parsed, err := strconv.ParseUint(s[:end], 10, 64)
	if err != nil || parsed > math.MaxInt {
		return negative, math.MaxInt, true
	}
	return negative, int(parsed), true
}

// UpdateCombatantHP applies input to the combatant with id
func UpdateCombatantHP(combatants []Combatant, id, input string) []Combatant {
	out := cloneRoster(combatants)
	for i := range out {
		if out[i].ID == id {
			out[i].CurrentHP = ParseHPDelta(out[i].CurrentHP, out[i].MaxHP, input)
		}
	}
	return out
}

// ClampAllHP forces every combatant's current HP into [0, max]
func ClampAllHP(combatants []Combatant) []Combatant {
	out := cloneRoster(combatants)
	for i := range out {
		out[i].CurrentHP = ClampHP(out[i].CurrentHP, out[i].MaxHP)
	}
	return out
}
