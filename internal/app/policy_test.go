package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyByName(t *testing.T) {
	assert.Equal(t, KickMember, PolicyByName("kick").OnBackPressure("a", "b"))
	assert.Equal(t, DropFrame, PolicyByName("drop").OnBackPressure("a", "b"))
	assert.Equal(t, KickMember, PolicyByName("").OnBackPressure("a", "b"))
}
