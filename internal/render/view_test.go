package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
	"github.com/KirkDiggler/combat-tracker/internal/entities/encounter"
	"github.com/KirkDiggler/combat-tracker/internal/pkg/idgen"
	"github.com/KirkDiggler/combat-tracker/internal/render"
	"github.com/KirkDiggler/combat-tracker/internal/testutils"
)

func TestRosterEmpty(t *testing.T) {
	output := render.Roster(engine.EmptyState())

	assert.Contains(t, output, "Ready")
	assert.Contains(t, output, "Round 1")
	assert.Contains(t, output, "No combatants yet.")
}

func TestRosterMarksActiveCombatant(t *testing.T) {
	output := render.Roster(testutils.SampleState())

	assert.Contains(t, output, "Combat Active")
	assert.Contains(t, output, "Round 2")
	assert.Contains(t, output, "> Rogue")
	assert.NotContains(t, output, "> Cleric")
	assert.Contains(t, output, "20 / 24")
	assert.Contains(t, output, "30 / 30")

	lines := strings.Split(output, "\n")
	assert.Len(t, lines, 5, "status, header and three rows")
	assert.Less(t, strings.Index(output, "Cleric"), strings.Index(output, "Goblin"))
}

func TestRosterBeforeStartHasNoMarker(t *testing.T) {
	state := testutils.SampleState()
	state.Started = false
	state.ActiveIndex = -1

	output := render.Roster(state)
	assert.Contains(t, output, "Ready")
	assert.NotContains(t, output, ">")
}

func TestSavedRecords(t *testing.T) {
	assert.Contains(t, render.SavedRecords(nil), "No saved encounters yet.")

	ids := idgen.NewSequential("r")
	named := encounter.NewRecord(testutils.SampleState(), "Goblin Ambush", testutils.FixedTime, ids)
	blank := encounter.NewRecord(engine.EmptyState(), "", testutils.FixedTime.Add(time.Hour), ids)

	output := render.SavedRecords([]encounter.SavedRecord{blank, named})
	assert.Contains(t, output, "Goblin Ambush")
	assert.Contains(t, output, render.UntitledEncounter)
	assert.Contains(t, output, "3 combatants")
	assert.Contains(t, output, "0 combatants")
	assert.Contains(t, output, named.ID)
	assert.Less(t, strings.Index(output, render.UntitledEncounter), strings.Index(output, "Goblin Ambush"))
}

func TestSnapshot(t *testing.T) {
	snapshot := encounter.NewSnapshot(testutils.SampleState(), "", testutils.FixedTime, idgen.NewSequential("s"))

	output := render.Snapshot(snapshot, nil)
	assert.Contains(t, output, "Shared Snapshot")
	assert.Contains(t, output, render.UntitledEncounter)
	assert.Contains(t, output, "3 combatants · Round 2")

	snapshot.Version = 7
	output = render.Snapshot(snapshot, encounter.CheckSnapshotVersion(snapshot))
	assert.Contains(t, output, encounter.MsgSnapshotVersionMismatch)
}
