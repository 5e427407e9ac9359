package crypto

import (
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/campus-auth/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast; production values come from config.
var testArgon2 = config.Argon2{Memory: 1024, Iterations: 1, Parallelism: 1}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := NewPasswordHasher(testArgon2)

	digest, err := h.Hash("Secret123")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(digest, "$argon2id$v=19$m=1024,t=1,p=1$"))
	assert.NotContains(t, digest, "Secret123")
	assert.True(t, h.Verify("Secret123", digest))
	assert.False(t, h.Verify("Secret124", digest))
	assert.False(t, h.Verify("", digest))
}

func TestPasswordHasher_SaltedDigestsDiffer(t *testing.T) {
	h := NewPasswordHasher(testArgon2)

	d1, err := h.Hash("same-password")
	require.NoError(t, err)
	d2, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, d1, d2)
	assert.True(t, h.Verify("same-password", d1))
	assert.True(t, h.Verify("same-password", d2))
}

// TestPasswordHasher_VerifiesDigestsOfOtherParameters ensures a cost change
// does not lock existing users out.
func TestPasswordHasher_VerifiesDigestsOfOtherParameters(t *testing.T) {
	old := NewPasswordHasher(config.Argon2{Memory: 2048, Iterations: 2, Parallelism: 2})
	digest, err := old.Hash("rotate-me")
	require.NoError(t, err)

	current := NewPasswordHasher(testArgon2)
	assert.True(t, current.Verify("rotate-me", digest))
}

func TestPasswordHasher_MalformedDigestNeverMatches(t *testing.T) {
	h := NewPasswordHasher(testArgon2)

	tests := []struct {
		name   string
		digest string
	}{
		{"empty", ""},
		{"plaintext", "Secret123"},
		{"wrong algorithm", "$argon2i$v=19$m=1024,t=1,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
		{"wrong version", "$argon2id$v=16$m=1024,t=1,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
		{"zero iterations", "$argon2id$v=19$m=1024,t=0,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
		{"zero parallelism", "$argon2id$v=19$m=1024,t=1,p=0$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
		{"parallelism overflow", "$argon2id$v=19$m=1024,t=1,p=256$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
		{"huge memory", "$argon2id$v=19$m=99999999,t=1,p=1$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
		{"bad salt", "$argon2id$v=19$m=1024,t=1,p=1$!!!$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"},
		{"empty key", "$argon2id$v=19$m=1024,t=1,p=1$AAAAAAAAAAAAAAAAAAAAAA$"},
		{"missing section", "$argon2id$v=19$m=1024,t=1,p=1$AAAAAAAAAAAAAAAAAAAAAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("Secret123", tt.digest))
			})
		})
	}
}

func TestPasswordHasher_DummyDigestMatchesNothing(t *testing.T) {
	h := NewPasswordHasher(testArgon2)

	_, _, _, ok := decodeDigest(DummyPasswordDigest)
	require.True(t, ok, "dummy digest must be well-formed")
	assert.False(t, h.Verify("", DummyPasswordDigest))
	assert.False(t, h.Verify("Secret123", DummyPasswordDigest))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestPasswordHasher_RandomFailure(t *testing.T) {
	h := &argon2Hasher{memory: 1024, iterations: 1, parallelism: 1, rand: failingReader{}}

	_, err := h.Hash("Secret123")
	assert.Error(t, err)
}
