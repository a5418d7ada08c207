package share

import (
	"strings"

	"github.com/KirkDiggler/combat-tracker/internal/entities/encounter"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
)

// Compact wire form:
//
//	{"v":1,"t":"<encodedAt>","e":{"i":id,"n":name,"v":version,"r":round,
//	 "a":activeIndex,"s":0|1,"p":[participant...],"c":createdAt,"u":updatedAt}}
//
// participant: [id, type, name, initiative, armorClass, hpCurrent, hpMax,
// tempOrNull, [[conditionID, conditionName, roundsOrNull]...]]
//
// n is dropped when blank, c and u when equal to t.

const (
	minParticipantArity = 7
	maxParticipantArity = 9
	conditionArity      = 3
)

type compactSnapshot struct {
	V int              `json:"v"`
	T string           `json:"t"`
	E compactEncounter `json:"e"`
}

type compactEncounter struct {
	I string          `json:"i"`
	N string          `json:"n,omitempty"`
	V int             `json:"v"`
	R int             `json:"r"`
	A int             `json:"a"`
	S int             `json:"s"`
	P [][]interface{} `json:"p"`
	C string          `json:"c,omitempty"`
	U string          `json:"u,omitempty"`
}

func toCompact(snapshot encounter.Snapshot) compactSnapshot {
	e := snapshot.Encounter
	encodedAt := encounter.FormatTimestamp(snapshot.EncodedAt)

	participants := make([][]interface{}, 0, len(e.Participants))
	for _, p := range e.Participants {
		conditions := make([]interface{}, 0, len(p.Conditions))
		for _, c := range p.Conditions {
			var rounds interface{}
			if c.RemainingRounds != nil {
				rounds = *c.RemainingRounds
			}
			conditions = append(conditions, []interface{}{c.ID, c.Name, rounds})
		}

		var temp interface{}
		if p.HP.Temp != nil {
			temp = *p.HP.Temp
		}
		participants = append(participants, []interface{}{
			p.ID, string(p.Type), p.Name, p.Initiative, p.ArmorClass,
			p.HP.Current, p.HP.Max, temp, conditions,
		})
	}

	out := compactSnapshot{
		V: snapshot.Version,
		T: encodedAt,
		E: compactEncounter{
			I: e.ID,
			V: e.Version,
			R: e.Round,
			A: e.ActiveIndex,
			P: participants,
		},
	}
	if e.Started {
		out.E.S = 1
	}
	if strings.TrimSpace(e.Name) != "" {
		out.E.N = e.Name
	}
	if created := encounter.FormatTimestamp(e.CreatedAt); created != encodedAt {
		out.E.C = created
	}
	if updated := encounter.FormatTimestamp(e.UpdatedAt); updated != encodedAt {
		out.E.U = updated
	}
	return out
}

// expandCompact rewrites the compact shape into the full-field shape so a
// single validator checks field values for both formats. Only the compact
// structure itself (object keys, tuple arity, the started flag) is checked
// here.
func expandCompact(v interface{}) (map[string]interface{}, error) {
	root, ok := v.(map[string]interface{})
	if !ok {
		return nil, errors.InvalidArgument("Snapshot is not an object.")
	}
	e, ok := root["e"].(map[string]interface{})
	if !ok {
		return nil, errors.InvalidArgument("Snapshot is missing required fields.")
	}

	var started bool
	switch flag := e["s"]; flag {
	case float64(0):
		started = false
	case float64(1):
		started = true
	default:
		return nil, errors.InvalidArgument("Snapshot encounter started flag is invalid.")
	}

	list, ok := e["p"].([]interface{})
	if !ok {
		return nil, errors.InvalidArgument("Snapshot participants are invalid.")
	}
	participants := make([]interface{}, 0, len(list))
	for i, entry := range list {
		p, err := expandParticipant(entry, i)
		if err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}

	encodedAt := root["t"]
	createdAt, present := e["c"]
	if !present {
		createdAt = encodedAt
	}
	updatedAt, present := e["u"]
	if !present {
		updatedAt = encodedAt
	}

	return map[string]interface{}{
		"version":   root["v"],
		"encodedAt": encodedAt,
		"encounter": map[string]interface{}{
			"id":           e["i"],
			"name":         e["n"],
			"version":      e["v"],
			"round":        e["r"],
			"activeIndex":  e["a"],
			"started":      started,
			"participants": participants,
			"createdAt":    createdAt,
			"updatedAt":    updatedAt,
		},
	}, nil
}

func expandParticipant(entry interface{}, index int) (map[string]interface{}, error) {
	tuple, ok := entry.([]interface{})
	if !ok || len(tuple) < minParticipantArity || len(tuple) > maxParticipantArity {
		return nil, errors.InvalidArgumentf("Snapshot participant %d is invalid.", index+1)
	}

	var temp interface{}
	if len(tuple) > 7 {
		temp = tuple[7]
	}

	conditions := []interface{}{}
	if len(tuple) > 8 && tuple[8] != nil {
		list, ok := tuple[8].([]interface{})
		if !ok {
			return nil, errors.InvalidArgumentf("Snapshot participant %d conditions are invalid.", index+1)
		}
		for _, raw := range list {
			c, ok := raw.([]interface{})
			if !ok || len(c) != conditionArity {
				return nil, errors.InvalidArgumentf("Snapshot participant %d has an invalid condition.", index+1)
			}
			conditions = append(conditions, map[string]interface{}{
				"id":              c[0],
				"name":            c[1],
				"remainingRounds": c[2],
			})
		}
	}

	return map[string]interface{}{
		"id":         tuple[0],
		"type":       tuple[1],
		"name":       tuple[2],
		"initiative": tuple[3],
		"armorClass": tuple[4],
		"hp": map[string]interface{}{
			"current": tuple[5],
			"max":     tuple[6],
			"temp":    temp,
		},
		"conditions": conditions,
	}, nil
}
