// Package orch is the session facade: the transport hands it one inbound
// event at a time and it drives the registry and the outbound events.
package orch

import (
	"errors"

	"github.com/Ashish-0130/PaprCup/internal/app"
	"github.com/Ashish-0130/PaprCup/internal/core"
	"github.com/Ashish-0130/PaprCup/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Orchestrator struct {
	Registry  *app.Registry
	Transport core.Transport
	Policy    app.Policy

	MaxBioLen    int
	VerifyImages bool
}

func (o *Orchestrator) OnJoin(sid domain.ParticipantID, req JoinRequest) {
	// A rejoin while still paired releases the old partner first.
	if room, members, ok := o.Registry.Unpair(sid); ok {
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(room)).Msg("left room on rejoin")
		o.notifyPartnerLeft(sid, members)
	}

	p := o.shapeParticipant(sid, req)
	o.Registry.Register(p)

	res := o.Registry.Match(sid)
	switch res.Status {
	case app.MatchFound:
		o.emit(sid, res.Partner.ID, core.MatchFound(res.Self.Bio))
		o.emit(sid, sid, core.MatchFound(res.Partner.Bio))
	case app.MatchWaiting:
		o.emit(sid, sid, core.Waiting())
	default:
		log.Warn().Str("module", "orch").Str("sid", string(sid)).Stringer("status", res.Status).Msg("join not matched")
	}
	o.logStats()
}

// OnMessage relays payload to the sender's room mates. Unpaired senders are
// ignored.
func (o *Orchestrator) OnMessage(sid domain.ParticipantID, payload map[string]any) {
	mates := o.Registry.RoomMates(sid)
	if len(mates) == 0 {
		log.Debug().Str("module", "orch").Str("sid", string(sid)).Msg("message dropped, not paired")
		return
	}
	if payload == nil {
		payload = map[string]any{}
	}

	switch kind, _ := payload["type"].(string); kind {
	case MessageText:
		content, _ := payload["content"].(string)
		payload["content"] = core.Sanitize(content)
	case MessageImage:
		content, _ := payload["content"].(string)
		if o.VerifyImages && !core.IsImageDataURL(content) {
			log.Warn().Str("module", "orch").Str("sid", string(sid)).Msg("image message rejected")
			return
		}
	}

	ev := core.ReceiveMessage(payload)
	for _, to := range mates {
		o.emit(sid, to, ev)
	}
}

func (o *Orchestrator) OnSkip(sid domain.ParticipantID) {
	room, members, ok := o.Registry.Unpair(sid)
	if !ok {
		return
	}
	log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(room)).Msg("skip")
	o.notifyPartnerLeft(sid, members)
	o.logStats()
}

func (o *Orchestrator) OnDisconnect(sid domain.ParticipantID) {
	room, members, ok := o.Registry.Disconnect(sid)
	if ok {
		log.Info().Str("module", "orch").Str("sid", string(sid)).Str("room", string(room)).Msg("disconnect from room")
		o.notifyPartnerLeft(sid, members)
	}
	o.logStats()
}

func (o *Orchestrator) notifyPartnerLeft(sid domain.ParticipantID, members []domain.ParticipantID) {
	for _, to := range lo.Without(members, sid) {
		o.emit(sid, to, core.PartnerLeft())
	}
}

func (o *Orchestrator) emit(from, to domain.ParticipantID, ev core.Event) {
	err := o.Transport.Emit(to, ev)
	if err == nil {
		return
	}
	logger := log.With().Str("module", "orch").Str("sid", string(to)).Str("event", string(ev.Type)).Logger()
	if !errors.Is(err, core.ErrBackpressure) || o.Policy == nil {
		logger.Debug().Err(err).Msg("emit failed")
		return
	}
	switch o.Policy.OnBackPressure(from, to) {
	case app.KickMember:
		logger.Warn().Msg("slow peer kicked")
		o.Transport.Kick(to)
	case app.DropFrame, app.NoAction:
		logger.Debug().Msg("event dropped on backpressure")
	}
}

func (o *Orchestrator) logStats() {
	st := o.Registry.Stats()
	log.Debug().
		Str("module", "orch").
		Int("participants", st.Participants).
		Int("waiting", st.Waiting).
		Int("paired", st.Paired).
		Msg("registry stats")
}
