package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResetToken_DigestMatchesRaw(t *testing.T) {
	raw, digest, err := NewResetToken()
	require.NoError(t, err)

	assert.NotEmpty(t, raw)
	assert.Equal(t, HashResetToken(raw), digest)
	assert.NotEqual(t, raw, digest, "the stored digest must not reveal the raw token")
}

func TestNewResetToken_Unique(t *testing.T) {
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		raw, _, err := NewResetToken()
		require.NoError(t, err)

		_, dup := seen[raw]
		require.False(t, dup, "token %q generated twice", raw)
		seen[raw] = struct{}{}
	}
}

func TestHashResetToken_Deterministic(t *testing.T) {
	assert.Equal(t, HashResetToken("some-token"), HashResetToken("some-token"))
	assert.NotEqual(t, HashResetToken("some-token"), HashResetToken("other-token"))
}
