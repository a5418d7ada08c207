package engine

// StartCombat sorts the roster and gives the first combatant the turn.
// Starting always resets the round counter to 1, including a restart of a
// combat already in progress. An empty roster yields a stopped session.
func StartCombat(state State) State {
	if len(state.Combatants) == 0 {
		next := state
		next.Combatants = []Combatant{}
		next.Started = false
		next.ActiveIndex = -1
		next.Round = 1
		return next
	}

	return State{
		Combatants:  SortRoster(state.Combatants),
		ActiveIndex: 0,
		Round:       1,
		Started:     true,
	}
}

// AdvanceTurn passes the turn to the next combatant. Wrapping back to the
// first slot starts a new round. It is a no-op before combat starts.
func AdvanceTurn(state State) State {
	total := len(state.Combatants)
	if total == 0 || !state.Started {
		return state
	}

	next := state
	next.ActiveIndex = (state.ActiveIndex + 1) % total
	if next.ActiveIndex == 0 {
		next.Round = state.Round + 1
	}
	return next
}

// Recover sanitizes a session read back from storage: the roster is sorted
// and HP clamped, the previously active combatant keeps the turn, and the
// round is at least 1.
func Recover(state State) State {
	activeID := ""
	if state.Started && state.ActiveIndex >= 0 && state.ActiveIndex < len(state.Combatants) {
		activeID = state.Combatants[state.ActiveIndex].ID
	}

	roster := ClampAllHP(SortRoster(state.Combatants))
	if len(roster) == 0 {
		next := EmptyState()
		next.Round = max(state.Round, 1)
		return next
	}

	next := State{
		Combatants:  roster,
		ActiveIndex: -1,
		Round:       max(state.Round, 1),
		Started:     state.Started,
	}
	if state.Started {
		next.ActiveIndex = findActiveIndex(roster, activeID)
		if next.ActiveIndex < 0 {
			next.ActiveIndex = 0
		}
	}
	return next
}
