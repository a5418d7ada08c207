// Package encounter defines the persisted and shared forms of a combat
// session and the validators that turn untrusted decoded JSON into them.
package encounter

import "time"

// CurrentVersion is the format version written by this build. Data carrying
// any other version is refused rather than migrated.
const CurrentVersion = 1

// Role tags a participant as a player character or a monster
type Role string

// Known roles. The tag values are part of the persisted and shared formats.
const (
	RolePlayerCharacter Role = "pc"
	RoleMonster         Role = "monster"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RolePlayerCharacter || r == RoleMonster
}

// Condition is an ongoing effect on a participant. A nil RemainingRounds
// means the condition lasts until removed.
type Condition struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	RemainingRounds *int   `json:"remainingRounds"`
}

// HitPoints holds a participant's health. Temp is nil when no temporary HP
// is tracked.
type HitPoints struct {
	Current int  `json:"current"`
	Max     int  `json:"max"`
	Temp    *int `json:"temp"`
}

// Participant is a combatant inside a persisted or shared encounter
type Participant struct {
	ID         string      `json:"id"`
	Type       Role        `json:"type"`
	Name       string      `json:"name"`
	Initiative int         `json:"initiative"`
	ArmorClass int         `json:"armorClass"`
	HP         HitPoints   `json:"hp"`
	Conditions []Condition `json:"conditions"`
}

// Encounter is the persisted/shared form of a combat session
type Encounter struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Version      int           `json:"version"`
	Round        int           `json:"round"`
	ActiveIndex  int           `json:"activeIndex"`
	Started      bool          `json:"started"`
	Participants []Participant `json:"participants"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Snapshot wraps an encounter for link sharing
type Snapshot struct {
	Version   int       `json:"version"`
	EncodedAt time.Time `json:"encodedAt"`
	Encounter Encounter `json:"encounter"`
}

// SavedRecord is one entry of the saved encounters list
type SavedRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SavedAt   time.Time `json:"savedAt"`
	Encounter Encounter `json:"encounter"`
}
