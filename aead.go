package crypt

import (
	"crypto/aes"
	"crypto/cipher"

	"github.com/secure-io/siv-go"
	"golang.org/x/crypto/chacha20poly1305"
)

// newAESGCM returns AES-256-GCM with the standard 12-byte nonce.
func newAESGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// newAESGCMSIV returns AES-256-GCM-SIV (RFC 8452).
func newAESGCMSIV(key []byte) (cipher.AEAD, error) {
	return siv.NewGCM(key)
}

func newChaCha20Poly1305(key []byte) (cipher.AEAD, error) {
	return chacha20poly1305.New(key)
}
