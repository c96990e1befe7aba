package signal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJoin(t *testing.T) {
	t.Run("camelCase keys", func(t *testing.T) {
		req, err := decodeJoin(json.RawMessage(`{"bio":"hi","gender":"male","lookingFor":"female","lat":1.5,"lon":2.5,"isPremium":true}`))
		require.NoError(t, err)
		assert.Equal(t, "hi", req.Bio)
		assert.Equal(t, "male", req.Gender)
		assert.Equal(t, "female", req.LookingFor)
		require.NotNil(t, req.Lat)
		require.NotNil(t, req.Lon)
		assert.Equal(t, 1.5, *req.Lat)
		assert.Equal(t, 2.5, *req.Lon)
		assert.True(t, req.IsPremium)
	})

	t.Run("snake_case keys", func(t *testing.T) {
		req, err := decodeJoin(json.RawMessage(`{"looking_for":"male","is_premium":true,"lat":null}`))
		require.NoError(t, err)
		assert.Equal(t, "male", req.LookingFor)
		assert.True(t, req.IsPremium)
		assert.Nil(t, req.Lat)
	})

	t.Run("missing payload", func(t *testing.T) {
		req, err := decodeJoin(nil)
		require.NoError(t, err)
		assert.False(t, req.IsPremium)
		assert.Empty(t, req.Gender)
	})

	t.Run("type mismatch keeps the rest", func(t *testing.T) {
		req, err := decodeJoin(json.RawMessage(`{"bio":"still here","isPremium":"yes"}`))
		assert.Error(t, err)
		assert.Equal(t, "still here", req.Bio)
		assert.False(t, req.IsPremium)
	})
}
