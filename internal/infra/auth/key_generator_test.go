package auth

import (
	"strings"
	"testing"

	"excerpta/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyGenerator_Prefixes(t *testing.T) {
	gen := NewKeyGenerator()

	webKey, err := gen.NewKey(service.KeyPrefixWeb)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(webKey, "phm_web_"), "got %q", webKey)

	liveKey, err := gen.NewKey(service.KeyPrefixLive)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(liveKey, "phm_live_"), "got %q", liveKey)
}

func TestKeyGenerator_KeysAreUnique(t *testing.T) {
	gen := NewKeyGenerator()

	seen := make(map[string]struct{})
	for range 32 {
		key, err := gen.NewKey(service.KeyPrefixLive)
		require.NoError(t, err)

		_, dup := seen[key]
		require.False(t, dup, "duplicate key %q", key)
		seen[key] = struct{}{}
	}
}

func TestKeyGenerator_LiveKeysCarryMoreEntropy(t *testing.T) {
	gen := NewKeyGenerator()

	webKey, err := gen.NewKey(service.KeyPrefixWeb)
	require.NoError(t, err)
	liveKey, err := gen.NewKey(service.KeyPrefixLive)
	require.NoError(t, err)

	webRandom := strings.TrimPrefix(webKey, "phm_web_")
	liveRandom := strings.TrimPrefix(liveKey, "phm_live_")
	assert.Greater(t, len(liveRandom), len(webRandom))
}
