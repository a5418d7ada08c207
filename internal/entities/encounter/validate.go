package encounter

import (
	"fmt"
	"math"
	"time"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

// Validators accept values produced by json.Unmarshal into an interface{}
// (maps, slices, float64, string, bool, nil). They never trust the shape and
// return InvalidArgument errors naming the first offending field. Scalar
// fields of an object are checked before any nested list is walked.

func invalid(path, problem string) error {
	return errors.InvalidArgumentf("%s %s", path, problem)
}

func child(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func asRecord(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asNumber(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// maxWhole is the largest magnitude a float64 holds exactly
const maxWhole = 1 << 53

// asInt accepts finite whole numbers within the exact float64 range
func asInt(v interface{}) (int, bool) {
	f, ok := asNumber(v)
	if !ok || f != math.Trunc(f) || math.Abs(f) > maxWhole {
		return 0, false
	}
	return int(f), true
}

func requireInt(m map[string]interface{}, path, field string) (int, error) {
	n, ok := asInt(m[field])
	if !ok {
		return 0, invalid(child(path, field), "must be a whole number")
	}
	return n, nil
}

func requireText(m map[string]interface{}, path, field string, nonEmpty bool) (string, error) {
	s, ok := asString(m[field])
	if !ok {
		return "", invalid(child(path, field), "must be text")
	}
	if nonEmpty && s == "" {
		return "", invalid(child(path, field), "must not be empty")
	}
	return s, nil
}

// optionalText accepts a missing key, null, or a string
func optionalText(m map[string]interface{}, path, field string) (string, error) {
	v, present := m[field]
	if !present || v == nil {
		return "", nil
	}
	s, ok := asString(v)
	if !ok {
		return "", invalid(child(path, field), "must be text or null")
	}
	return s, nil
}

// optionalInt accepts a missing key, null, or a whole number
func optionalInt(m map[string]interface{}, path, field string) (*int, error) {
	v, present := m[field]
	if !present || v == nil {
		return nil, nil
	}
	n, ok := asInt(v)
	if !ok {
		return nil, invalid(child(path, field), "must be a whole number or null")
	}
	return &n, nil
}

func requireTime(m map[string]interface{}, path, field string) (time.Time, error) {
	s, ok := asString(m[field])
	if !ok {
		return time.Time{}, invalid(child(path, field), "must be a timestamp")
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return time.Time{}, invalid(child(path, field), "must be an RFC 3339 timestamp")
	}
	return t, nil
}

// ParseTimestamp reads an RFC 3339 timestamp as written by FormatTimestamp
// (or any ISO 8601 instant with a zone) and returns it in UTC.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatTimestamp writes t in UTC with millisecond precision
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// ParseCondition validates one condition
func ParseCondition(v interface{}) (Condition, error) {
	return parseCondition(v, "condition")
}

func parseCondition(v interface{}, path string) (Condition, error) {
	m, ok := asRecord(v)
	if !ok {
		return Condition{}, invalid(path, "must be an object")
	}
	id, err := requireText(m, path, "id", false)
	if err != nil {
		return Condition{}, err
	}
	name, err := requireText(m, path, "name", false)
	if err != nil {
		return Condition{}, err
	}
	raw, present := m["remainingRounds"]
	if !present {
		return Condition{}, invalid(child(path, "remainingRounds"), "is required")
	}
	var rounds *int
	if raw != nil {
		n, ok := asInt(raw)
		if !ok {
			return Condition{}, invalid(child(path, "remainingRounds"), "must be a whole number or null")
		}
		rounds = &n
	}
	return Condition{ID: id, Name: name, RemainingRounds: rounds}, nil
}

// ParseParticipant validates one participant
func ParseParticipant(v interface{}) (Participant, error) {
	return parseParticipant(v, "participant")
}

func parseParticipant(v interface{}, path string) (Participant, error) {
	m, ok := asRecord(v)
	if !ok {
		return Participant{}, invalid(path, "must be an object")
	}

	var p Participant
	var err error
	if p.ID, err = requireText(m, path, "id", true); err != nil {
		return Participant{}, err
	}
	if p.Name, err = requireText(m, path, "name", true); err != nil {
		return Participant{}, err
	}
	role, _ := asString(m["type"])
	p.Type = Role(role)
	if !p.Type.Valid() {
		return Participant{}, invalid(child(path, "type"), fmt.Sprintf("must be %q or %q", RolePlayerCharacter, RoleMonster))
	}
	if p.Initiative, err = requireInt(m, path, "initiative"); err != nil {
		return Participant{}, err
	}
	if p.ArmorClass, err = requireInt(m, path, "armorClass"); err != nil {
		return Participant{}, err
	}

	hpPath := child(path, "hp")
	hp, ok := asRecord(m["hp"])
	if !ok {
		return Participant{}, invalid(hpPath, "must be an object")
	}
	if p.HP.Current, err = requireInt(hp, hpPath, "current"); err != nil {
		return Participant{}, err
	}
	if p.HP.Max, err = requireInt(hp, hpPath, "max"); err != nil {
		return Participant{}, err
	}
	if p.HP.Temp, err = optionalInt(hp, hpPath, "temp"); err != nil {
		return Participant{}, err
	}

	conditionsPath := child(path, "conditions")
	list, ok := m["conditions"].([]interface{})
	if !ok {
		return Participant{}, invalid(conditionsPath, "must be a list")
	}
	p.Conditions = make([]Condition, 0, len(list))
	for i, entry := range list {
		c, err := parseCondition(entry, fmt.Sprintf("%s[%d]", conditionsPath, i))
		if err != nil {
			return Participant{}, err
		}
		p.Conditions = append(p.Conditions, c)
	}
	return p, nil
}

// ParseEncounter validates an encounter and every participant in it
func ParseEncounter(v interface{}) (Encounter, error) {
	return parseEncounter(v, "encounter")
}

func parseEncounter(v interface{}, path string) (Encounter, error) {
	m, ok := asRecord(v)
	if !ok {
		return Encounter{}, invalid(path, "must be an object")
	}

	var e Encounter
	var err error
	if e.ID, err = requireText(m, path, "id", true); err != nil {
		return Encounter{}, err
	}
	if e.Name, err = optionalText(m, path, "name"); err != nil {
		return Encounter{}, err
	}
	if e.Version, err = requireInt(m, path, "version"); err != nil {
		return Encounter{}, err
	}
	if e.Round, err = requireInt(m, path, "round"); err != nil {
		return Encounter{}, err
	}
	if e.ActiveIndex, err = requireInt(m, path, "activeIndex"); err != nil {
		return Encounter{}, err
	}
	if e.Started, ok = m["started"].(bool); !ok {
		return Encounter{}, invalid(child(path, "started"), "must be true or false")
	}
	if e.CreatedAt, err = requireTime(m, path, "createdAt"); err != nil {
		return Encounter{}, err
	}
	if e.UpdatedAt, err = requireTime(m, path, "updatedAt"); err != nil {
		return Encounter{}, err
	}
	participantsPath := child(path, "participants")
	list, ok := m["participants"].([]interface{})
	if !ok {
		return Encounter{}, invalid(participantsPath, "must be a list")
	}

	e.Participants = make([]Participant, 0, len(list))
	for i, entry := range list {
		p, err := parseParticipant(entry, fmt.Sprintf("%s[%d]", participantsPath, i))
		if err != nil {
			return Encounter{}, err
		}
		e.Participants = append(e.Participants, p)
	}
	return e, nil
}

// ParseSnapshot validates a full-field snapshot
func ParseSnapshot(v interface{}) (Snapshot, error) {
	m, ok := asRecord(v)
	if !ok {
		return Snapshot{}, invalid("snapshot", "must be an object")
	}

	var s Snapshot
	var err error
	if s.Version, err = requireInt(m, "snapshot", "version"); err != nil {
		return Snapshot{}, err
	}
	if s.EncodedAt, err = requireTime(m, "snapshot", "encodedAt"); err != nil {
		return Snapshot{}, err
	}
	if s.Encounter, err = parseEncounter(m["encounter"], "snapshot.encounter"); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}

// ParseSavedRecords validates the saved encounters list
func ParseSavedRecords(v interface{}) ([]SavedRecord, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, invalid("saved encounters", "must be a list")
	}

	records := make([]SavedRecord, 0, len(list))
	for i, entry := range list {
		path := fmt.Sprintf("saved[%d]", i)
		m, ok := asRecord(entry)
		if !ok {
			return nil, invalid(path, "must be an object")
		}

		var r SavedRecord
		var err error
		if r.ID, err = requireText(m, path, "id", true); err != nil {
			return nil, err
		}
		if r.Name, err = optionalText(m, path, "name"); err != nil {
			return nil, err
		}
		if r.SavedAt, err = requireTime(m, path, "savedAt"); err != nil {
			return nil, err
		}
		if r.Encounter, err = parseEncounter(m["encounter"], child(path, "encounter")); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// ParseCombatState validates the active working state slot. Missing
// combatants, activeIndex, round and started default to an empty stopped
// session; present fields must have the right type.
func ParseCombatState(v interface{}) (engine.State, error) {
	m, ok := asRecord(v)
	if !ok {
		return engine.State{}, invalid("state", "must be an object")
	}

	state := engine.EmptyState()
	var err error
	if raw, present := m["activeIndex"]; present {
		n, ok := asInt(raw)
		if !ok {
			return engine.State{}, invalid("state.activeIndex", "must be a whole number")
		}
		state.ActiveIndex = n
	}
	if raw, present := m["round"]; present {
		n, ok := asInt(raw)
		if !ok {
			return engine.State{}, invalid("state.round", "must be a whole number")
		}
		state.Round = n
	}
	if raw, present := m["started"]; present {
		if state.Started, ok = raw.(bool); !ok {
			return engine.State{}, invalid("state.started", "must be true or false")
		}
	}

	raw, present := m["combatants"]
	if !present || raw == nil {
		return state, nil
	}
	list, ok := raw.([]interface{})
	if !ok {
		return engine.State{}, invalid("state.combatants", "must be a list")
	}
	for i, entry := range list {
		path := fmt.Sprintf("state.combatants[%d]", i)
		cm, ok := asRecord(entry)
		if !ok {
			return engine.State{}, invalid(path, "must be an object")
		}
		var c engine.Combatant
		if c.ID, err = requireText(cm, path, "id", true); err != nil {
			return engine.State{}, err
		}
		if c.Name, err = requireText(cm, path, "name", false); err != nil {
			return engine.State{}, err
		}
		if c.Initiative, err = requireInt(cm, path, "initiative"); err != nil {
			return engine.State{}, err
		}
		if c.MaxHP, err = requireInt(cm, path, "maxHp"); err != nil {
			return engine.State{}, err
		}
		if c.CurrentHP, err = requireInt(cm, path, "currentHp"); err != nil {
			return engine.State{}, err
		}
		if c.ArmorClass, err = requireInt(cm, path, "armorClass"); err != nil {
			return engine.State{}, err
		}
		state.Combatants = append(state.Combatants, c)
	}
	return state, nil
}
