package signal

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/Ashish-0130/PaprCup/internal/core"
	"github.com/Ashish-0130/PaprCup/internal/domain"
	"github.com/Ashish-0130/PaprCup/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHub_Emit(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("should fail for unknown sessions", func(t *testing.T) {
		hub := NewHub()
		err := hub.Emit("ghost", core.Waiting())
		assert.ErrorIs(t, err, core.ErrUnknownSession)
	})

	t.Run("should encode the event envelope", func(t *testing.T) {
		hub := NewHub()
		conn := mocks.NewMockSignalConnection(ctrl)
		hub.Bind("a", conn, nil)

		var sent core.Frame
		conn.EXPECT().TrySend(gomock.Any()).DoAndReturn(func(f core.Frame) error {
			sent = f
			return nil
		})

		require.NoError(t, hub.Emit("a", core.MatchFound("hi")))
		assert.JSONEq(t, `{"type":"match_found","data":{"bio":"hi"}}`, string(sent))
	})

	t.Run("should surface backpressure", func(t *testing.T) {
		hub := NewHub()
		conn := mocks.NewMockSignalConnection(ctrl)
		hub.Bind("a", conn, nil)
		conn.EXPECT().TrySend(gomock.Any()).Return(core.ErrBackpressure)

		err := hub.Emit("a", core.PartnerLeft())
		assert.ErrorIs(t, err, core.ErrBackpressure)
	})
}

func TestHub_KickAndUnbind(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := NewHub()
	conn := mocks.NewMockSignalConnection(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	hub.Bind("a", conn, cancel)
	assert.Equal(t, 1, hub.Len())

	conn.EXPECT().Close().Times(1)
	hub.Kick("a")
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	hub.Kick("ghost")

	hub.Unbind("a")
	assert.Equal(t, 0, hub.Len())
}

func TestHub_CloseAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	hub := NewHub()
	for _, id := range []domain.ParticipantID{"a", "b", "c"} {
		conn := mocks.NewMockSignalConnection(ctrl)
		conn.EXPECT().Close().Times(1)
		hub.Bind(id, conn, nil)
	}
	hub.CloseAll()
}

func TestCheckOrigin(t *testing.T) {
	req := httptest.NewRequest("GET", "/ws", nil)
	req.Header.Set("Origin", "https://paprcup.example")

	assert.True(t, checkOrigin(nil)(req))
	assert.True(t, checkOrigin([]string{"*"})(req))
	assert.True(t, checkOrigin([]string{"https://paprcup.example"})(req))
	assert.False(t, checkOrigin([]string{"https://other.example"})(req))
}
