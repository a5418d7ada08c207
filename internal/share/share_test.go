package share_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/combat-tracker/internal/entities/encounter"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
	"github.com/KirkDiggler/combat-tracker/internal/share"
)

type ShareTestSuite struct {
	suite.Suite
	snapshot encounter.Snapshot
}

func TestShareSuite(t *testing.T) {
	suite.Run(t, new(ShareTestSuite))
}

func intPtr(n int) *int { return &n }

func (s *ShareTestSuite) SetupTest() {
	encodedAt := time.Date(2026, 10, 14, 10, 0, 0, 250000000, time.UTC)
	s.snapshot = encounter.Snapshot{
		Version:   encounter.CurrentVersion,
		EncodedAt: encodedAt,
		Encounter: encounter.Encounter{
			ID:          "enc-1",
			Name:        "Goblin Ambush",
			Version:     encounter.CurrentVersion,
			Round:       2,
			ActiveIndex: 1,
			Started:     true,
			Participants: []encounter.Participant{
				{
					ID: "p1", Type: encounter.RolePlayerCharacter, Name: "Rogue <3", Initiative: 18, ArmorClass: 15,
					HP: encounter.HitPoints{Current: 20, Max: 24, Temp: intPtr(5)},
					Conditions: []encounter.Condition{
						{ID: "c1", Name: "Hidden"},
						{ID: "c2", Name: "Blessed", RemainingRounds: intPtr(3)},
					},
				},
				{
					ID: "p2", Type: encounter.RoleMonster, Name: "Goblin", Initiative: -1, ArmorClass: 13,
					HP:         encounter.HitPoints{Current: 0, Max: 7},
					Conditions: []encounter.Condition{},
				},
			},
			CreatedAt: encodedAt.Add(-time.Hour),
			UpdatedAt: encodedAt,
		},
	}
}

func encodeRaw(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

func (s *ShareTestSuite) compactJSON(payload string) map[string]interface{} {
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	s.Require().NoError(err)
	var out map[string]interface{}
	s.Require().NoError(json.Unmarshal(raw, &out))
	return out
}

func (s *ShareTestSuite) TestRoundTrip() {
	out, err := share.Encode(s.snapshot)
	s.Require().NoError(err)
	s.Equal(len(out.Payload), out.Size)
	s.NotContains(out.Payload, "=")
	s.NotContains(out.Payload, "+")
	s.NotContains(out.Payload, "/")

	decoded, err := share.Decode(out.Payload)
	s.Require().NoError(err)
	s.Equal(s.snapshot, decoded)
}

func (s *ShareTestSuite) TestCompactOmitsRedundantFields() {
	s.snapshot.Encounter.Name = "   "
	out, err := share.Encode(s.snapshot)
	s.Require().NoError(err)

	compact := s.compactJSON(out.Payload)
	s.Equal("2026-10-14T10:00:00.250Z", compact["t"])
	e := compact["e"].(map[string]interface{})
	s.NotContains(e, "n", "blank name dropped")
	s.NotContains(e, "u", "updatedAt equal to encodedAt dropped")
	s.Equal("2026-10-14T09:00:00.250Z", e["c"])
	s.Equal(float64(1), e["s"])

	participants := e["p"].([]interface{})
	s.Require().Len(participants, 2)
	first := participants[0].([]interface{})
	s.Len(first, 9)
	s.Equal("pc", first[1])
	s.Equal(float64(5), first[7])
	s.Nil(participants[1].([]interface{})[7])

	decoded, err := share.Decode(out.Payload)
	s.Require().NoError(err)
	s.Empty(decoded.Encounter.Name)
	s.Equal(s.snapshot.EncodedAt, decoded.Encounter.UpdatedAt)
}

func (s *ShareTestSuite) TestOversizedPayload() {
	p := s.snapshot.Encounter.Participants[1]
	for i := 0; i < 60; i++ {
		p.ID = strings.Repeat("x", 10) + string(rune('a'+i%26))
		s.snapshot.Encounter.Participants = append(s.snapshot.Encounter.Participants, p)
	}

	out, err := share.Encode(s.snapshot)
	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsOutOfRange(err))
	s.Equal(share.MsgPayloadTooLarge, errors.GetMessage(err))

	s.Run("long name alone", func() {
		s.SetupTest()
		s.snapshot.Encounter.Name = strings.Repeat("x", share.MaxPayloadLength*2)
		_, err := share.Encode(s.snapshot)
		s.True(errors.IsOutOfRange(err))
	})
}

func (s *ShareTestSuite) TestLegacyPayload() {
	s.Run("full-field snapshot", func() {
		decoded, err := share.Decode(encodeRaw(s.snapshot))
		s.Require().NoError(err)
		s.Equal(s.snapshot, decoded)
	})

	s.Run("written by the browser tracker", func() {
		legacy := `{"version":1,"encodedAt":"2025-03-01T12:00:00.000Z","encounter":{"id":"enc-1","name":null,
			"version":1,"round":1,"activeIndex":0,"started":true,"participants":[{"id":"c1","type":"monster",
			"name":"Goblin","initiative":14,"armorClass":13,"hp":{"current":7,"max":7,"temp":null},"conditions":[]}],
			"createdAt":"2025-03-01T12:00:00.000Z","updatedAt":"2025-03-01T12:00:00.000Z"}}`
		payload := base64.URLEncoding.EncodeToString([]byte(legacy))

		decoded, err := share.Decode(payload)
		s.Require().NoError(err)
		s.Equal("enc-1", decoded.Encounter.ID)
		s.Empty(decoded.Encounter.Name)
		s.Require().Len(decoded.Encounter.Participants, 1)
		s.Equal("Goblin", decoded.Encounter.Participants[0].Name)
	})
}

func (s *ShareTestSuite) TestCompactTolerance() {
	s.Run("short tuples", func() {
		payload := encodeRaw(map[string]interface{}{
			"v": 1, "t": "2026-10-14T10:00:00Z",
			"e": map[string]interface{}{
				"i": "e", "v": 1, "r": 1, "a": -1, "s": 0,
				"p": []interface{}{[]interface{}{"p", "monster", "Orc", 3, 12, 9, 15}},
			},
		})
		decoded, err := share.Decode(payload)
		s.Require().NoError(err)
		s.Require().Len(decoded.Encounter.Participants, 1)
		s.Nil(decoded.Encounter.Participants[0].HP.Temp)
		s.Empty(decoded.Encounter.Participants[0].Conditions)
		s.Equal(decoded.EncodedAt, decoded.Encounter.CreatedAt)
	})
}

func (s *ShareTestSuite) TestMalformedPayloads() {
	compact := func(mutate func(e map[string]interface{})) string {
		e := map[string]interface{}{
			"i": "e", "v": 1, "r": 1, "a": 0, "s": 1,
			"p": []interface{}{[]interface{}{"p", "monster", "Orc", 3, 12, 9, 15, nil, []interface{}{}}},
		}
		mutate(e)
		return encodeRaw(map[string]interface{}{"v": 1, "t": "2026-10-14T10:00:00Z", "e": e})
	}

	cases := []struct {
		name    string
		payload string
		message string
	}{
		{"empty", "", "Snapshot payload is empty."},
		{"bad alphabet", "***", "Snapshot payload is not valid base64url."},
		{"not json", base64.RawURLEncoding.EncodeToString([]byte("goblins")), ""},
		{"not an object", encodeRaw([]int{1, 2}), "Snapshot is not an object."},
		{"missing encounter", encodeRaw(map[string]int{"v": 1}), "Snapshot is missing required fields."},
		{"bad started flag", compact(func(e map[string]interface{}) { e["s"] = 2 }), "Snapshot encounter started flag is invalid."},
		{"participants not a list", compact(func(e map[string]interface{}) { e["p"] = "orc" }), "Snapshot participants are invalid."},
		{"short tuple", compact(func(e map[string]interface{}) {
			e["p"] = []interface{}{[]interface{}{"p", "monster", "Orc", 3, 12, 9}}
		}), "Snapshot participant 1 is invalid."},
		{"long tuple", compact(func(e map[string]interface{}) {
			e["p"] = []interface{}{[]interface{}{"p", "monster", "Orc", 3, 12, 9, 15, nil, []interface{}{}, "extra"}}
		}), "Snapshot participant 1 is invalid."},
		{"condition arity", compact(func(e map[string]interface{}) {
			e["p"] = []interface{}{[]interface{}{"p", "monster", "Orc", 3, 12, 9, 15, nil, []interface{}{[]interface{}{"c", "Prone"}}}}
		}), "Snapshot participant 1 has an invalid condition."},
		{"unknown role", compact(func(e map[string]interface{}) {
			e["p"] = []interface{}{[]interface{}{"p", "npc", "Orc", 3, 12, 9, 15}}
		}), ""},
		{"fractional hp", compact(func(e map[string]interface{}) {
			e["p"] = []interface{}{[]interface{}{"p", "monster", "Orc", 3, 12, 9.5, 15}}
		}), ""},
		{"missing timestamp", encodeRaw(map[string]interface{}{"v": 1, "e": map[string]interface{}{"s": 0, "p": []interface{}{}}}), ""},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := share.Decode(tc.payload)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "unexpected code %s", errors.GetCode(err))
			if tc.message != "" {
				s.Equal(tc.message, errors.GetMessage(err))
			} else {
				s.NotEmpty(errors.GetMessage(err))
			}
		})
	}
}

func (s *ShareTestSuite) TestDecodeAcceptsPadding() {
	out, err := share.Encode(s.snapshot)
	s.Require().NoError(err)

	_, err = share.Decode(out.Payload + "==")
	s.NoError(err)
}

func (s *ShareTestSuite) TestBuildURL() {
	s.Run("sets the share parameter", func() {
		out, err := share.BuildURL("https://tracker.example/app?share=old&theme=dark", "abc-_")
		s.Require().NoError(err)
		s.Equal("https://tracker.example/app?share=abc-_&theme=dark", out.URL)
		s.Equal(len(out.URL), out.Size)
	})

	s.Run("keeps other parameters as written", func() {
		out, err := share.BuildURL("https://tracker.example/app?b=2&a=1%20x&flag", "P")
		s.Require().NoError(err)
		s.Equal("https://tracker.example/app?b=2&a=1%20x&flag&share=P", out.URL)
	})

	s.Run("replaces repeated share pairs once", func() {
		out, err := share.BuildURL("https://tracker.example/app?z=1&share=a&y=2&%73hare=b#top", "new")
		s.Require().NoError(err)
		s.Equal("https://tracker.example/app?z=1&share=new&y=2#top", out.URL)
	})

	s.Run("too long", func() {
		_, err := share.BuildURL("https://example.com", strings.Repeat("a", share.MaxURLLength*2))
		s.Require().Error(err)
		s.True(errors.IsOutOfRange(err))
		s.Equal(share.MsgURLTooLong, errors.GetMessage(err))
	})

	s.Run("payload under its cap can still overflow the URL", func() {
		base := "https://example.com/" + strings.Repeat("p", 600)
		_, err := share.BuildURL(base, strings.Repeat("a", share.MaxPayloadLength))
		s.True(errors.IsOutOfRange(err))
	})

	s.Run("relative base", func() {
		_, err := share.BuildURL("/app", "abc")
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Equal(share.MsgBadURL, errors.GetMessage(err))
	})
}

func (s *ShareTestSuite) TestURLHelpers() {
	payload, ok := share.PayloadFromURL("https://tracker.example/?share=xyz&theme=dark")
	s.True(ok)
	s.Equal("xyz", payload)

	_, ok = share.PayloadFromURL("https://tracker.example/?theme=dark")
	s.False(ok)

	_, ok = share.PayloadFromURL("not a url")
	s.False(ok)

	s.Equal("https://tracker.example/app?theme=dark", share.StripShareParam("https://tracker.example/app?share=xyz&theme=dark"))
	s.Equal("https://tracker.example/app", share.StripShareParam("https://tracker.example/app?share=xyz"))
	s.Equal("::bad", share.StripShareParam("::bad"))
	s.Equal("https://tracker.example/app?b=2&a=1%20x&flag", share.StripShareParam("https://tracker.example/app?b=2&share=xyz&a=1%20x&flag"))
	s.Equal("https://tracker.example/app#top", share.StripShareParam("https://tracker.example/app?share=xyz#top"))

	link, err := share.BuildURL("https://tracker.example/app?theme=dark&sort=init%2Cdesc", "xyz")
	s.Require().NoError(err)
	s.Equal("https://tracker.example/app?theme=dark&sort=init%2Cdesc", share.StripShareParam(link.URL))
}

func (s *ShareTestSuite) TestLinkFlow() {
	out, err := share.Encode(s.snapshot)
	s.Require().NoError(err)
	link, err := share.BuildURL("https://tracker.example/", out.Payload)
	s.Require().NoError(err)

	payload, ok := share.PayloadFromURL(link.URL)
	s.Require().True(ok)
	decoded, err := share.Decode(payload)
	s.Require().NoError(err)
	s.Equal(s.snapshot, decoded)
}
