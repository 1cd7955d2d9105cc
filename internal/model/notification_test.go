package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusRetrying.IsTerminal())
	assert.True(t, StatusSent.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
}

func TestParseChannel(t *testing.T) {
	for _, name := range []string{"email", "sms", "push", "in_app"} {
		ch, err := ParseChannel(name)
		assert.NoError(t, err)
		assert.Equal(t, Channel(name), ch)
	}

	_, err := ParseChannel("EMAIL")
	assert.Error(t, err)

	_, err = ParseChannel("")
	assert.Error(t, err)
}
