package crypt

// Key material layout:
//
//	[password:n][fill:32-n]
//
// n is the password length capped at 31. fill is the byte value n when the
// password fits, or 0 when it was truncated. This is not PKCS#7 and it is not
// a KDF; it must stay bit-for-bit identical for existing envelopes to open.

const (
	keySize        = 32
	maxPasswordLen = keySize - 1
	nonceSize      = 12
)

// DeriveKey expands or truncates password into 32 bytes of key material.
func DeriveKey(password []byte) [keySize]byte {
	n := len(password)
	fill := n
	if n > maxPasswordLen {
		fill = 0
		n = maxPasswordLen
	}

	var key [keySize]byte
	for i := range key {
		key[i] = byte(fill)
	}
	copy(key[:n], password[:n])
	return key
}

// DeriveNonce returns the first 12 bytes of the key material.
//
// The nonce is a function of the password, so every envelope sealed under the
// same password reuses it. Existing envelopes depend on this; new designs
// should draw nonces from crypto/rand instead.
func DeriveNonce(key [keySize]byte) []byte {
	n := min(len(key), nonceSize)
	nonce := make([]byte, n)
	copy(nonce, key[:n])
	return nonce
}

// zeroKey clears derived key material once a call is done with it.
func zeroKey(key *[keySize]byte) {
	for i := range key {
		key[i] = 0
	}
}
