package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2Hasher_RoundTrip(t *testing.T) {
	hasher := NewPBKDF2Hasher(minIterations)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("correct horse battery", hash))
}

func TestPBKDF2Hasher_StoredFormat(t *testing.T) {
	hasher := NewPBKDF2Hasher(minIterations)

	hash, err := hasher.Hash("secret")
	require.NoError(t, err)

	saltHex, keyHex, ok := strings.Cut(hash, "$")
	require.True(t, ok)
	assert.Len(t, saltHex, saltBytes*2)
	assert.Len(t, keyHex, keyBytes*2)
}

func TestPBKDF2Hasher_SaltsDiffer(t *testing.T) {
	hasher := NewPBKDF2Hasher(minIterations)

	first, err := hasher.Hash("secret")
	require.NoError(t, err)
	second, err := hasher.Hash("secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret", first))
	assert.True(t, hasher.Check("secret", second))
}

func TestPBKDF2Hasher_MalformedHashRejected(t *testing.T) {
	hasher := NewPBKDF2Hasher(minIterations)

	assert.False(t, hasher.Check("secret", ""))
	assert.False(t, hasher.Check("secret", "no-separator"))
	assert.False(t, hasher.Check("secret", "abcd$not-hex"))
	assert.False(t, hasher.Check("secret", "$"))
}
