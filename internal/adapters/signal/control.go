package signal

import (
	"github.com/Ashish-0130/PaprCup/internal/core"
	"github.com/Ashish-0130/PaprCup/internal/domain"
)

func (ctl *SignalWSController) handlePing(sid domain.ParticipantID) {
	_ = ctl.Hub.Emit(sid, core.Event{Type: core.EventPong, Data: struct{}{}})
}
