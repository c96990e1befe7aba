package signal

import (
	"encoding/json"

	"github.com/Ashish-0130/PaprCup/internal/app/orch"
	"github.com/Ashish-0130/PaprCup/internal/domain"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// joinPayload accepts both camelCase and snake_case keys.
type joinPayload struct {
	Bio             string   `json:"bio"`
	Gender          string   `json:"gender"`
	LookingFor      string   `json:"lookingFor"`
	LookingForSnake string   `json:"looking_for"`
	Lat             *float64 `json:"lat"`
	Lon             *float64 `json:"lon"`
	IsPremium       *bool    `json:"isPremium"`
	IsPremiumSnake  *bool    `json:"is_premium"`
}

func decodeJoin(data json.RawMessage) (orch.JoinRequest, error) {
	var p joinPayload
	var err error
	if len(data) > 0 {
		// A type mismatch leaves the other fields decoded.
		err = json.Unmarshal(data, &p)
	}
	return orch.JoinRequest{
		Bio:        p.Bio,
		Gender:     p.Gender,
		LookingFor: lo.CoalesceOrEmpty(p.LookingFor, p.LookingForSnake),
		Lat:        p.Lat,
		Lon:        p.Lon,
		IsPremium:  lo.FromPtr(lo.CoalesceOrEmpty(p.IsPremium, p.IsPremiumSnake)),
	}, err
}

func (ctl *SignalWSController) handleJoin(sid domain.ParticipantID, data json.RawMessage) {
	req, err := decodeJoin(data)
	if err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("partial join payload")
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Msg("join")
	ctl.Orch.OnJoin(sid, req)
}

func (ctl *SignalWSController) handleMessage(sid domain.ParticipantID, data json.RawMessage) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("bad message payload")
		return
	}
	ctl.Orch.OnMessage(sid, payload)
}
