package crypt

import "strings"

// Normalizer transforms envelope text before it is parsed.
type Normalizer func(string) string

// NormalizeEnvelope repairs the damage clipboards and editors usually do to an
// envelope: CRLF and CR line endings become LF, surrounding whitespace is
// trimmed, and exactly one trailing newline is restored.
//
// Example: "\r\n--- ... prefix ---\r\nAAAA\r\n--- ... suffix ---\r\n\r\n"
// becomes "--- ... prefix ---\nAAAA\n--- ... suffix ---\n".
var NormalizeEnvelope Normalizer = func(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return s + "\n"
}

// NormalizeNone is an identity normalizer that returns the input unchanged.
var NormalizeNone Normalizer = func(s string) string {
	return s
}

// DecryptNormalized applies norm to envelope before decrypting it.
func (c *Codec) DecryptNormalized(alg, password, envelope string, norm Normalizer) (string, error) {
	return c.Decrypt(alg, password, norm(envelope))
}
