package signal

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Ashish-0130/PaprCup/internal/core"
	"github.com/Ashish-0130/PaprCup/internal/domain"
	"github.com/rs/zerolog/log"
)

type sessionEntry struct {
	Conn   core.SignalConnection
	Cancel context.CancelFunc
}

// Hub owns the live connections and implements core.Transport over them.
type Hub struct {
	mu       sync.RWMutex
	sessions map[domain.ParticipantID]*sessionEntry
}

func NewHub() *Hub {
	return &Hub{sessions: make(map[domain.ParticipantID]*sessionEntry)}
}

func (h *Hub) Bind(sid domain.ParticipantID, conn core.SignalConnection, cancel context.CancelFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[sid] = &sessionEntry{Conn: conn, Cancel: cancel}
	log.Info().Str("module", "signal.hub").Str("sid", string(sid)).Msg("bound signal")
}

func (h *Hub) Unbind(sid domain.ParticipantID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, sid)
	log.Info().Str("module", "signal.hub").Str("sid", string(sid)).Msg("unbind session")
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

func (h *Hub) Emit(to domain.ParticipantID, ev core.Event) error {
	h.mu.RLock()
	e, ok := h.sessions[to]
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("emit %s to %s: %w", ev.Type, to, core.ErrUnknownSession)
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", ev.Type, err)
	}
	if err := e.Conn.TrySend(b); err != nil {
		return fmt.Errorf("emit %s to %s: %w", ev.Type, to, err)
	}
	return nil
}

// Kick cancels the session and closes its connection, which ends the read
// pump and runs the regular disconnect path.
func (h *Hub) Kick(sid domain.ParticipantID) {
	h.mu.RLock()
	e, ok := h.sessions[sid]
	h.mu.RUnlock()
	if !ok {
		return
	}
	if e.Cancel != nil {
		e.Cancel()
	}
	e.Conn.Close()
	log.Info().Str("module", "signal.hub").Str("sid", string(sid)).Msg("kicked session")
}

func (h *Hub) CloseAll() {
	h.mu.RLock()
	entries := make([]*sessionEntry, 0, len(h.sessions))
	for _, e := range h.sessions {
		entries = append(entries, e)
	}
	h.mu.RUnlock()
	for _, e := range entries {
		if e.Cancel != nil {
			e.Cancel()
		}
		e.Conn.Close()
	}
}
