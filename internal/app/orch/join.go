package orch

import (
	"errors"
	"strings"

	"github.com/Ashish-0130/PaprCup/internal/core"
	"github.com/Ashish-0130/PaprCup/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

const (
	MessageText  = "text"
	MessageImage = "image"
)

var validate = validator.New()

// JoinRequest is the join payload after transport decoding. Every field is
// optional; a field that fails validation falls back to its default.
type JoinRequest struct {
	Bio        string
	Gender     string   `validate:"omitempty,oneof=male female any"`
	LookingFor string   `validate:"omitempty,oneof=male female any"`
	Lat        *float64 `validate:"omitempty,gte=-90,lte=90"`
	Lon        *float64 `validate:"omitempty,gte=-180,lte=180"`
	IsPremium  bool
}

func (o *Orchestrator) shapeParticipant(sid domain.ParticipantID, req JoinRequest) *domain.Participant {
	req.Gender = strings.ToLower(strings.TrimSpace(req.Gender))
	req.LookingFor = strings.ToLower(strings.TrimSpace(req.LookingFor))

	var verrs validator.ValidationErrors
	if err := validate.Struct(req); errors.As(err, &verrs) {
		for _, fe := range verrs {
			log.Debug().Str("module", "orch").Str("sid", string(sid)).Str("field", fe.StructField()).Str("tag", fe.Tag()).Msg("join field defaulted")
			switch fe.StructField() {
			case "Gender":
				req.Gender = ""
			case "LookingFor":
				req.LookingFor = ""
			case "Lat":
				req.Lat = nil
			case "Lon":
				req.Lon = nil
			}
		}
	}

	maxBio := o.MaxBioLen
	if maxBio <= 0 {
		maxBio = domain.MaxBioLen
	}
	p := &domain.Participant{
		ID:         sid,
		Bio:        core.SanitizeBio(req.Bio, maxBio),
		Gender:     domain.ParseGender(req.Gender),
		LookingFor: domain.ParseGender(req.LookingFor),
		IsPremium:  req.IsPremium,
	}
	if req.Lat != nil && req.Lon != nil {
		p.Location = &domain.Coordinates{Lat: *req.Lat, Lon: *req.Lon}
	}
	return p
}
