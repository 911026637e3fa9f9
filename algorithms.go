package crypt

import (
	"crypto/cipher"
	"strconv"
)

// Algorithm identifies an envelope algorithm. The identifier is written into
// the envelope header and footer verbatim.
type Algorithm string

// Registered algorithm identifiers.
const (
	AES256GCM        Algorithm = "crypt-aes-256-gcm"
	AES256GCMSIV     Algorithm = "crypt-aes-256-gcm-siv"
	ChaCha20Poly1305 Algorithm = "crypt-chacha20-poly1305"
)

// DefaultAlgorithm is used by callers that do not pick one.
const DefaultAlgorithm = AES256GCM

// algorithm pairs a registered identifier with its AEAD constructor.
type algorithm struct {
	id      Algorithm
	newAEAD func(key []byte) (cipher.AEAD, error)
}

// registry is ordered; positional lookups depend on it.
var registry = [...]algorithm{
	{id: AES256GCM, newAEAD: newAESGCM},
	{id: AES256GCMSIV, newAEAD: newAESGCMSIV},
	{id: ChaCha20Poly1305, newAEAD: newChaCha20Poly1305},
}

// Count returns the number of registered algorithms.
func Count() int {
	return len(registry)
}

// At returns the algorithm at the given zero-based position.
func At(index int) (Algorithm, error) {
	if index < 0 || index >= len(registry) {
		return "", newError(OpAlgorithms, ErrIndexOutOfRange, strconv.Itoa(index), nil)
	}
	return registry[index].id, nil
}

// Contains reports whether candidate is a registered algorithm identifier.
func Contains(candidate string) bool {
	_, ok := lookup(candidate)
	return ok
}

// Algorithms returns the registered identifiers in registry order.
func Algorithms() []Algorithm {
	ids := make([]Algorithm, 0, len(registry))
	for _, a := range registry {
		ids = append(ids, a.id)
	}
	return ids
}

func lookup(candidate string) (*algorithm, bool) {
	for i := range registry {
		if string(registry[i].id) == candidate {
			return &registry[i], true
		}
	}
	return nil, false
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	return string(a)
}

// Valid reports whether a is registered.
func (a Algorithm) Valid() bool {
	return Contains(string(a))
}
