package crypt

import (
	"encoding/json"
	"fmt"
)

// EncryptJSON marshals v and seals the JSON text into an envelope.
func EncryptJSON[T any](c *Codec, alg, password string, v T) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("crypt: marshal: %w", err)
	}
	return c.Encrypt(alg, password, string(data))
}

// DecryptJSON opens an envelope and unmarshals the JSON text into a T.
func DecryptJSON[T any](c *Codec, alg, password, envelope string) (T, error) {
	var zero T

	plaintext, err := c.Decrypt(alg, password, envelope)
	if err != nil {
		return zero, err
	}

	var result T
	if err := json.Unmarshal([]byte(plaintext), &result); err != nil {
		return zero, fmt.Errorf("crypt: unmarshal: %w", err)
	}
	return result, nil
}

// EncryptBytes seals UTF-8 encoded text held in a byte slice.
func (c *Codec) EncryptBytes(alg, password string, plaintext []byte) (string, error) {
	return c.Encrypt(alg, password, string(plaintext))
}
