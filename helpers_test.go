package crypt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testRecord struct {
	Title    string   `json:"title"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Tags     []string `json:"tags"`
}

func TestEncryptJSON_RoundTrip(t *testing.T) {
	codec := testCodec(t)
	records := map[string]testRecord{
		"bank":  {Title: "Bank", Username: "alice", Password: "hunter2", Tags: []string{"finance"}},
		"email": {Title: "Mail", Username: "alice@example.com", Password: "pässwörd"},
	}

	envelope, err := EncryptJSON(codec, string(AES256GCM), "master", records)
	require.NoError(t, err)
	require.True(t, IsEnvelope(envelope))

	got, err := DecryptJSON[map[string]testRecord](codec, string(AES256GCM), "master", envelope)
	require.NoError(t, err)
	require.Equal(t, records, got)
}

func TestEncryptJSON_MarshalError(t *testing.T) {
	_, err := EncryptJSON(testCodec(t), string(AES256GCM), "master", make(chan int))
	require.Error(t, err)
	require.Contains(t, err.Error(), "marshal")
}

func TestDecryptJSON_Errors(t *testing.T) {
	codec := testCodec(t)

	t.Run("wrong password", func(t *testing.T) {
		envelope, err := EncryptJSON(codec, string(AES256GCM), "master", testRecord{Title: "x"})
		require.NoError(t, err)

		_, err = DecryptJSON[testRecord](codec, string(AES256GCM), "other", envelope)
		require.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("not json", func(t *testing.T) {
		envelope, err := codec.Encrypt(string(AES256GCM), "master", "plain text")
		require.NoError(t, err)

		_, err = DecryptJSON[testRecord](codec, string(AES256GCM), "master", envelope)
		require.Error(t, err)
		require.Contains(t, err.Error(), "unmarshal")
	})
}

func TestEncryptBytes(t *testing.T) {
	codec := testCodec(t)

	envelope, err := codec.EncryptBytes(string(ChaCha20Poly1305), "secret", []byte("bytes in"))
	require.NoError(t, err)
	got, err := codec.Decrypt(string(ChaCha20Poly1305), "secret", envelope)
	require.NoError(t, err)
	require.Equal(t, "bytes in", got)

	_, err = codec.EncryptBytes(string(ChaCha20Poly1305), "secret", []byte{0xc3, 0x28})
	require.ErrorIs(t, err, ErrInvalidInputText)
}
