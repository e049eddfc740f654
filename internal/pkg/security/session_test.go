package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTokenCodecRoundTrip(t *testing.T) {
	codec := NewPlainTokenCodec()

	token := codec.Issue("alice")
	username, err := codec.Resolve(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestPlainTokenCodecEmptyToken(t *testing.T) {
	codec := NewPlainTokenCodec()

	_, err := codec.Resolve("")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
