package app

import "github.com/Ashish-0130/PaprCup/internal/domain"

type BackpressureAction int

const (
	NoAction BackpressureAction = iota
	DropFrame
	KickMember
)

// Policy decides what happens to a peer whose send buffer is full.
type Policy interface {
	OnBackPressure(from, to domain.ParticipantID) BackpressureAction
}

// SimplePolicy kicks slow peers; their disconnect then releases the room.
type SimplePolicy struct{}

func (SimplePolicy) OnBackPressure(from, to domain.ParticipantID) BackpressureAction {
	return KickMember
}

// DropPolicy loses the event and keeps the peer.
type DropPolicy struct{}

func (DropPolicy) OnBackPressure(from, to domain.ParticipantID) BackpressureAction {
	return DropFrame
}

// PolicyByName maps a config value onto a Policy; unknown names kick.
func PolicyByName(name string) Policy {
	if name == "drop" {
		return DropPolicy{}
	}
	return SimplePolicy{}
}
