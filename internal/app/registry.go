package app

import (
	"sync"

	"github.com/Ashish-0130/PaprCup/internal/core"
	"github.com/Ashish-0130/PaprCup/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type MatchStatus int

const (
	MatchNoParticipant MatchStatus = iota
	MatchWaiting
	MatchFound
	MatchAlreadyPaired
)

func (s MatchStatus) String() string {
	switch s {
	case MatchWaiting:
		return "waiting"
	case MatchFound:
		return "matched"
	case MatchAlreadyPaired:
		return "already_paired"
	default:
		return "no_participant"
	}
}

// MatchResult is the decision of a match request. Self and Partner are the
// records as they were when the decision was taken; participants are
// immutable, so holding them outside the lock is safe.
type MatchResult struct {
	Status  MatchStatus
	Self    *domain.Participant
	Partner *domain.Participant
	Room    domain.RoomID
}

type Stats struct {
	Participants int
	Waiting      int
	Paired       int
}

// Registry is the single authority over participants, the waiting pool and
// room assignments. Every method takes the one lock, so the three structures
// always change together.
type Registry struct {
	mu           sync.RWMutex
	matcher      core.Matcher
	participants map[domain.ParticipantID]*domain.Participant
	pool         []domain.ParticipantID
	rooms        map[domain.ParticipantID]domain.RoomID
}

func NewRegistry(matcher core.Matcher) *Registry {
	return &Registry{
		matcher:      matcher,
		participants: make(map[domain.ParticipantID]*domain.Participant),
		rooms:        make(map[domain.ParticipantID]domain.RoomID),
	}
}

func (r *Registry) Register(p *domain.Participant) {
	if p == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.participants[p.ID] = p
	log.Debug().Str("module", "app.registry").Str("sid", string(p.ID)).Msg("registered participant")
}

func (r *Registry) GetParticipant(id domain.ParticipantID) (*domain.Participant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.participants[id]
	return p, ok
}

// RequestMatch scans the pool for the first compatible candidate. The caller
// must assign the room afterwards; Match does both in one step.
func (r *Registry) RequestMatch(id domain.ParticipantID) MatchResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requestMatchLocked(id)
}

// Match is RequestMatch followed by AssignRoom for both sides, without
// releasing the lock in between.
func (r *Registry) Match(id domain.ParticipantID) MatchResult {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := r.requestMatchLocked(id)
	if res.Status != MatchFound {
		return res
	}
	res.Room = domain.NewRoomID(id, res.Partner.ID)
	r.assignRoomLocked(id, res.Room)
	r.assignRoomLocked(res.Partner.ID, res.Room)
	log.Info().
		Str("module", "app.registry").
		Str("sid", string(id)).
		Str("partner", string(res.Partner.ID)).
		Str("room", string(res.Room)).
		Msg("matched")
	return res
}

func (r *Registry) requestMatchLocked(id domain.ParticipantID) MatchResult {
	me, ok := r.participants[id]
	if !ok {
		return MatchResult{Status: MatchNoParticipant}
	}
	if room, paired := r.rooms[id]; paired {
		return MatchResult{Status: MatchAlreadyPaired, Self: me, Room: room}
	}

	// Iterate over a copy: stale ids are dropped from r.pool while scanning.
	for _, cid := range append([]domain.ParticipantID(nil), r.pool...) {
		if cid == id {
			continue
		}
		candidate, ok := r.participants[cid]
		if !ok {
			r.dequeueLocked(cid)
			log.Debug().Str("module", "app.registry").Str("sid", string(cid)).Msg("dropped stale pool entry")
			continue
		}
		if !r.matcher.Compatible(me, candidate) {
			continue
		}
		r.dequeueLocked(id, cid)
		return MatchResult{Status: MatchFound, Self: me, Partner: candidate}
	}

	if !lo.Contains(r.pool, id) {
		r.pool = append(r.pool, id)
	}
	return MatchResult{Status: MatchWaiting, Self: me}
}

func (r *Registry) AssignRoom(id domain.ParticipantID, room domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignRoomLocked(id, room)
}

func (r *Registry) assignRoomLocked(id domain.ParticipantID, room domain.RoomID) {
	r.rooms[id] = room
	r.dequeueLocked(id)
}

func (r *Registry) GetRoom(id domain.ParticipantID) (domain.RoomID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	return room, ok
}

// RoomMates returns the other members of id's room.
func (r *Registry) RoomMates(id domain.ParticipantID) []domain.ParticipantID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil
	}
	return lo.Without(r.membersLocked(room), id)
}

func (r *Registry) membersLocked(room domain.RoomID) []domain.ParticipantID {
	out := make([]domain.ParticipantID, 0, 2)
	for sid, rid := range r.rooms {
		if rid == room {
			out = append(out, sid)
		}
	}
	return out
}

func (r *Registry) CleanupRoom(room domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleanupRoomLocked(room)
}

func (r *Registry) cleanupRoomLocked(room domain.RoomID) {
	for sid, rid := range r.rooms {
		if rid == room {
			delete(r.rooms, sid)
		}
	}
	log.Debug().Str("module", "app.registry").Str("room", string(room)).Msg("room cleaned up")
}

// Unpair tears down id's room and returns it with the members it had.
func (r *Registry) Unpair(id domain.ParticipantID) (domain.RoomID, []domain.ParticipantID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unpairLocked(id)
}

func (r *Registry) unpairLocked(id domain.ParticipantID) (domain.RoomID, []domain.ParticipantID, bool) {
	room, ok := r.rooms[id]
	if !ok {
		return "", nil, false
	}
	members := r.membersLocked(room)
	r.cleanupRoomLocked(room)
	return room, members, true
}

// Remove forgets id. Only id's own room entry is cleared; Disconnect also
// releases the partner.
func (r *Registry) Remove(id domain.ParticipantID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(id)
}

func (r *Registry) removeLocked(id domain.ParticipantID) {
	delete(r.participants, id)
	delete(r.rooms, id)
	r.dequeueLocked(id)
	log.Debug().Str("module", "app.registry").Str("sid", string(id)).Msg("removed participant")
}

// Disconnect is Unpair followed by Remove.
func (r *Registry) Disconnect(id domain.ParticipantID) (domain.RoomID, []domain.ParticipantID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, members, ok := r.unpairLocked(id)
	r.removeLocked(id)
	return room, members, ok
}

func (r *Registry) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Stats{
		Participants: len(r.participants),
		Waiting:      len(r.pool),
		Paired:       len(r.rooms),
	}
}

func (r *Registry) dequeueLocked(ids ...domain.ParticipantID) {
	r.pool = lo.Without(r.pool, ids...)
}
