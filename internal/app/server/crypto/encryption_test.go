package crypto

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixed test fixture key, never used outside tests
var testKey = bytes.Repeat([]byte{0x42}, KeySize)

func newTestCipher(t *testing.T, key []byte) *SecretCipher {
	t.Helper()
	k := make([]byte, len(key))
	copy(k, key)
	c, err := NewSecretCipher(k)
	require.NoError(t, err)
	return c
}

func TestNewSecretCipher_InvalidKey(t *testing.T) {
	for _, size := range []int{0, 16, 31, 33, 64} {
		_, err := NewSecretCipher(make([]byte, size))
		assert.ErrorIs(t, err, ErrInvalidKey, "size %d", size)
	}
}

func TestSecretCipher_RoundTrip(t *testing.T) {
	c := newTestCipher(t, testKey)

	tests := []string{"", "S3cret!", "пароль с юникодом", string(bytes.Repeat([]byte("x"), 4096))}
	for _, plain := range tests {
		env, err := c.Encrypt(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain, env)

		got, err := c.Decrypt(env)
		require.NoError(t, err)
		assert.Equal(t, plain, got)
	}
}

func TestSecretCipher_NonceUniqueness(t *testing.T) {
	c := newTestCipher(t, testKey)

	a, err := c.Encrypt("same")
	require.NoError(t, err)
	b, err := c.Encrypt("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSecretCipher_TamperDetection(t *testing.T) {
	c := newTestCipher(t, testKey)

	env, err := c.Encrypt("S3cret!")
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(env)
	require.NoError(t, err)

	for i := range raw {
		for bit := 0; bit < 8; bit++ {
			tampered := make([]byte, len(raw))
			copy(tampered, raw)
			tampered[i] ^= 1 << bit

			_, err := c.Decrypt(base64.StdEncoding.EncodeToString(tampered))
			require.ErrorIs(t, err, ErrIntegrity, "byte %d bit %d", i, bit)
		}
	}
}

func TestSecretCipher_WrongKey(t *testing.T) {
	c := newTestCipher(t, testKey)
	other := newTestCipher(t, bytes.Repeat([]byte{0x17}, KeySize))

	env, err := c.Encrypt("S3cret!")
	require.NoError(t, err)

	_, err = other.Decrypt(env)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestSecretCipher_Decrypt_Malformed(t *testing.T) {
	c := newTestCipher(t, testKey)

	tests := []struct {
		name     string
		envelope string
		wantErr  error
	}{
		{name: "not base64", envelope: "!!!not-base64!!!", wantErr: ErrDecode},
		{name: "shorter than nonce", envelope: base64.StdEncoding.EncodeToString([]byte("short")), wantErr: ErrIntegrity},
		{name: "nonce only", envelope: base64.StdEncoding.EncodeToString(make([]byte, 12)), wantErr: ErrIntegrity},
		{name: "empty", envelope: "", wantErr: ErrIntegrity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.envelope)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseKey(t *testing.T) {
	key, err := ParseKey(hex.EncodeToString(testKey))
	require.NoError(t, err)
	assert.Equal(t, testKey, key)

	_, err = ParseKey("zz")
	assert.ErrorIs(t, err, ErrInvalidKey)

	_, err = ParseKey(hex.EncodeToString([]byte("too short")))
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestGenerateKey(t *testing.T) {
	a, err := GenerateKey()
	require.NoError(t, err)
	b, err := GenerateKey()
	require.NoError(t, err)

	assert.Len(t, a, KeySize)
	assert.NotEqual(t, a, b)
}
