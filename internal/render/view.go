// Package render draws tracker state for the terminal
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
	"github.com/KirkDiggler/combat-tracker/internal/entities/encounter"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

// UntitledEncounter labels saved or shared encounters with a blank name
const UntitledEncounter = "Untitled Encounter"

const activeMarker = ">"

// Roster renders the working session: status line, then one row per
// combatant in turn order with the active one marked.
func Roster(state engine.State) string {
	s := newStyles()

	status := "Ready"
	if state.Started {
		status = "Combat Active"
	}
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.title.Render("Combat Tracker"), "  ",
			s.status.Render(status), "  ",
			s.header.Render(fmt.Sprintf("Round %d", state.Round)),
		),
	}

	if len(state.Combatants) == 0 {
		lines = append(lines, s.empty.Render("No combatants yet. Add players or monsters to begin."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.header.Render(rosterRow(s, "  ", "Name", "Init", "AC", "HP", "ID")))
	for i, c := range state.Combatants {
		marker := "  "
		if state.Started && i == state.ActiveIndex {
			marker = activeMarker + " "
		}

		hp := fmt.Sprintf("%d / %d", c.CurrentHP, c.MaxHP)
		row := rosterRow(s, marker, c.Name, strconv.Itoa(c.Initiative), strconv.Itoa(c.ArmorClass), hp, c.ID)
		switch {
		case marker != "  ":
			row = s.active.Render(row)
		case c.CurrentHP == 0:
			row = s.downed.Render(row)
		default:
			row = s.row.Render(row)
		}
		lines = append(lines, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func rosterRow(s styles, marker, name, initiative, ac, hp, id string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		marker,
		s.name.Render(name),
		s.number.Render(initiative),
		s.number.Render(ac),
		s.hp.Render(hp),
		"  ",
		s.header.Render(id),
	)
}

// SavedRecords renders the saved-encounter list, newest first as stored
func SavedRecords(records []encounter.SavedRecord) string {
	s := newStyles()
	lines := []string{s.title.Render("Saved Encounters")}

	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No saved encounters yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, r := range records {
		lines = append(lines, lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render(displayName(r.Name))+" "+s.header.Render(r.ID),
			s.detail.Render(fmt.Sprintf("Saved %s · %s",
				r.SavedAt.Local().Format(time.DateTime), combatantCount(len(r.Encounter.Participants)))),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Snapshot renders a shared snapshot preview. versionErr, when set, is shown
// as the reason the snapshot cannot be loaded.
func Snapshot(snapshot encounter.Snapshot, versionErr error) string {
	s := newStyles()
	e := snapshot.Encounter

	lines := []string{
		s.title.Render("Shared Snapshot"),
		s.row.Render(displayName(e.Name)),
		s.detail.Render(fmt.Sprintf("%s · Round %d", combatantCount(len(e.Participants)), e.Round)),
	}
	if versionErr != nil {
		lines = append(lines, s.warning.Render(errors.GetMessage(versionErr)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Error renders a user-facing failure line
func Error(err error) string {
	return newStyles().warning.Render(errors.GetMessage(err))
}

// Notice renders a secondary informational line
func Notice(text string) string {
	return newStyles().detail.Render(text)
}

func displayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return UntitledEncounter
	}
	return name
}

func combatantCount(n int) string {
	if n == 1 {
		return "1 combatant"
	}
	return fmt.Sprintf("%d combatants", n)
}
