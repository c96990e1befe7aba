// Package domain contains entity without logic, just meta-data
package domain

import (
	"strings"

	"github.com/google/uuid"
)

const MaxBioLen = 50

type ParticipantID string

// NewParticipantID returns a fresh opaque connection id.
func NewParticipantID() ParticipantID {
	return ParticipantID(uuid.NewString())
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderAny    Gender = "any"
)

// ParseGender maps free-form input onto a Gender. Anything it does not
// recognise is GenderAny.
func ParseGender(s string) Gender {
	switch g := Gender(strings.ToLower(strings.TrimSpace(s))); g {
	case GenderMale, GenderFemale:
		return g
	default:
		return GenderAny
	}
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Participant is one connection's matchmaking profile.
// It is never mutated after creation; a rejoin replaces the record.
type Participant struct {
	ID         ParticipantID `json:"id"`
	Bio        string        `json:"bio"`
	Gender     Gender        `json:"gender"`
	LookingFor Gender        `json:"lookingFor"`
	Location   *Coordinates  `json:"location,omitempty"`
	IsPremium  bool          `json:"isPremium"`
}

// HasLocation reports whether both coordinates were supplied.
func (p *Participant) HasLocation() bool {
	return p != nil && p.Location != nil
}
