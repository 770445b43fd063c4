package cryptox

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	key1 := DeriveKey([]byte("secret-password"), []byte("fixed-salt"))
	key2 := DeriveKey([]byte("secret-password"), []byte("fixed-salt"))

	if !bytes.Equal(key1, key2) {
		t.Errorf("expected same result for same inputs, got different")
	}
	assert.Len(t, key1, 32)
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	key1 := DeriveKey([]byte("secret-password"), []byte("salt-1"))
	key2 := DeriveKey([]byte("secret-password"), []byte("salt-2"))

	if bytes.Equal(key1, key2) {
		t.Errorf("expected different results for different salts, got same")
	}
}

func TestSealOpen(t *testing.T) {
	plaintext := []byte(`{"accounts":[{"identifier":"Mena"}]}`)

	sealed, err := Seal(plaintext, []byte("pass"))
	require.NoError(t, err)
	assert.NotContains(t, string(sealed), "Mena")

	got, err := Open(sealed, []byte("pass"))
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestSeal_FreshSaltAndNonce(t *testing.T) {
	a, err := Seal([]byte("x"), []byte("pass"))
	require.NoError(t, err)
	b, err := Seal([]byte("x"), []byte("pass"))
	require.NoError(t, err)

	var ea, eb Envelope
	require.NoError(t, json.Unmarshal(a, &ea))
	require.NoError(t, json.Unmarshal(b, &eb))
	assert.NotEqual(t, ea.Salt, eb.Salt)
	assert.NotEqual(t, ea.Nonce, eb.Nonce)
	assert.Equal(t, 1, ea.Version)
}

func TestSeal_EmptyPassphrase(t *testing.T) {
	_, err := Seal([]byte("x"), nil)
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestOpen_Errors(t *testing.T) {
	sealed, err := Seal([]byte("x"), []byte("pass"))
	require.NoError(t, err)

	_, err = Open(sealed, []byte("Pass"))
	assert.ErrorIs(t, err, ErrDecrypt)

	_, err = Open([]byte("not json"), []byte("pass"))
	assert.ErrorContains(t, err, "decode envelope")

	var env Envelope
	require.NoError(t, json.Unmarshal(sealed, &env))
	env.Version = 7
	bad, _ := json.Marshal(env)
	_, err = Open(bad, []byte("pass"))
	assert.ErrorContains(t, err, "unsupported envelope version")

	env.Version = 1
	env.Nonce = env.Nonce[:3]
	bad, _ = json.Marshal(env)
	_, err = Open(bad, []byte("pass"))
	assert.ErrorIs(t, err, ErrDecrypt)
}
