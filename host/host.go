// Package host exposes the codec through the string-only call surface used by
// WebAssembly and other foreign-function boundaries.
//
// Every function returns a plain string. Failures are reported as marker
// strings that start with "error:" followed by the operation and a reason,
// for example:
//
//	error:encrypt:invalid:bad-bad-bad
//	error:decrypt: invalid suffix "AAAA"
//
// Use IsError to test a result.
package host

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ai8future/crypt"
)

// Name is the module name reported by GetName.
const Name = "crypt"

const errorPrefix = "error:"

// headerMarker is returned by HeaderPrefix and HeaderSuffix for unknown algorithms.
const headerMarker = errorPrefix + "header:invalid-algorithm"

// reasons maps error kinds to the wording used in marker strings.
var reasons = map[error]string{
	crypt.ErrSealFailed:           "invalid encrypt",
	crypt.ErrInvalidInputText:     "invalid text",
	crypt.ErrInvalidPrefix:        "invalid prefix",
	crypt.ErrInvalidSuffix:        "invalid suffix",
	crypt.ErrInvalidBase64:        "invalid base64 conversion",
	crypt.ErrAuthenticationFailed: "invalid decrypt",
	crypt.ErrInvalidOutputText:    "invalid text",
	crypt.ErrDecompressionFailed:  "invalid decompress",
}

// Surface binds the call surface to a Codec.
type Surface struct {
	codec *crypt.Codec
}

// New returns a Surface backed by codec.
func New(codec *crypt.Codec) *Surface {
	return &Surface{codec: codec}
}

var defaultSurface = func() *Surface {
	codec, err := crypt.New()
	if err != nil {
		panic("host: default codec: " + err.Error())
	}
	return New(codec)
}()

// Encrypt seals plaintext and returns the envelope or an error marker.
func (s *Surface) Encrypt(algorithm, password, plaintext string) string {
	envelope, err := s.codec.Encrypt(algorithm, password, plaintext)
	if err != nil {
		return Marker(err)
	}
	return envelope
}

// Decrypt opens an envelope and returns the plaintext or an error marker.
func (s *Surface) Decrypt(algorithm, password, ciphertext string) string {
	plaintext, err := s.codec.Decrypt(algorithm, password, ciphertext)
	if err != nil {
		return Marker(err)
	}
	return plaintext
}

// GetName returns the module name.
func GetName() string {
	return Name
}

// GetNumAlgorithms returns the number of registered algorithms.
func GetNumAlgorithms() int {
	return crypt.Count()
}

// GetAlgorithm returns the i-th algorithm (zero based) or
// "error:algorithms:invalid-index:<i>".
func GetAlgorithm(i int) string {
	alg, err := crypt.At(i)
	if err != nil {
		return Marker(err)
	}
	return string(alg)
}

// HeaderPrefix returns the envelope header line or "error:header:invalid-algorithm".
func HeaderPrefix(algorithm string) string {
	prefix, err := crypt.HeaderPrefix(algorithm)
	if err != nil {
		return Marker(err)
	}
	return prefix
}

// HeaderSuffix returns the envelope footer line or "error:header:invalid-algorithm".
func HeaderSuffix(algorithm string) string {
	suffix, err := crypt.HeaderSuffix(algorithm)
	if err != nil {
		return Marker(err)
	}
	return suffix
}

// Encrypt seals plaintext with the default codec.
func Encrypt(algorithm, password, plaintext string) string {
	return defaultSurface.Encrypt(algorithm, password, plaintext)
}

// Decrypt opens an envelope with the default codec.
func Decrypt(algorithm, password, ciphertext string) string {
	return defaultSurface.Decrypt(algorithm, password, ciphertext)
}

// IsError reports whether a result is an error marker. Leading whitespace and
// case are ignored.
func IsError(result string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(result)), errorPrefix)
}

// Marker formats err as an error marker string.
func Marker(err error) string {
	var e *crypt.Error
	if !errors.As(err, &e) {
		return errorPrefix + "internal: " + err.Error()
	}

	switch {
	case e.Op == crypt.OpAlgorithms:
		return errorPrefix + "algorithms:invalid-index:" + e.Detail
	case e.Op == crypt.OpHeader:
		return headerMarker
	case errors.Is(e, crypt.ErrInvalidAlgorithm):
		return fmt.Sprintf("%s%s:invalid:%s", errorPrefix, e.Op, e.Detail)
	}

	reason, ok := reasons[e.Kind]
	if !ok {
		reason = strings.TrimPrefix(e.Kind.Error(), "crypt: ")
	}
	return fmt.Sprintf("%s%s: %s \"%s\"", errorPrefix, e.Op, reason, e.Detail)
}
