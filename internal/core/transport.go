//go:generate go run go.uber.org/mock/mockgen -source=transport.go -destination=../../mocks/mock_transport.go -package=mocks
package core

import (
	"errors"

	"github.com/Ashish-0130/PaprCup/internal/domain"
)

var (
	ErrBackpressure     = errors.New("backpressure")
	ErrUnknownSession   = errors.New("unknown session")
	ErrConnectionClosed = errors.New("connection closed")
)

// Frame is a raw encoded payload.
type Frame []byte

type EventType string

const (
	EventMatchFound     EventType = "match_found"
	EventWaiting        EventType = "waiting"
	EventReceiveMessage EventType = "receive_message"
	EventPartnerLeft    EventType = "partner_left"
	EventPong           EventType = "pong"
)

// Event is one outbound notification.
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data"`
}

type MatchFoundPayload struct {
	Bio string `json:"bio"`
}

func MatchFound(bio string) Event {
	return Event{Type: EventMatchFound, Data: MatchFoundPayload{Bio: bio}}
}

func Waiting() Event { return Event{Type: EventWaiting, Data: struct{}{}} }

func PartnerLeft() Event { return Event{Type: EventPartnerLeft, Data: struct{}{}} }

func ReceiveMessage(payload map[string]any) Event {
	return Event{Type: EventReceiveMessage, Data: payload}
}

// SignalConnection abstracts for a system messaging transport
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}

// Transport delivers events to a single connection. The core never learns
// about sockets; it only addresses participants.
type Transport interface {
	// Emit must not block. A full send buffer is reported as ErrBackpressure.
	Emit(to domain.ParticipantID, ev Event) error
	// Kick drops the connection; its disconnect flows back through the
	// facade like any other.
	Kick(id domain.ParticipantID)
}
