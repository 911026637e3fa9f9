package crypt

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAlgorithm indicates the algorithm identifier is not in the registry.
	ErrInvalidAlgorithm = errors.New("crypt: invalid algorithm")

	// ErrIndexOutOfRange indicates a registry lookup past the last algorithm.
	ErrIndexOutOfRange = errors.New("crypt: algorithm index out of range")

	// ErrInvalidPrefix indicates the first envelope line is not the expected header.
	ErrInvalidPrefix = errors.New("crypt: invalid prefix")

	// ErrInvalidSuffix indicates the envelope footer is missing or malformed.
	ErrInvalidSuffix = errors.New("crypt: invalid suffix")

	// ErrInvalidBase64 indicates the envelope body is not valid base64.
	ErrInvalidBase64 = errors.New("crypt: invalid base64 conversion")

	// ErrSealFailed indicates the AEAD primitive could not be created or could not seal.
	ErrSealFailed = errors.New("crypt: encryption failed")

	// ErrAuthenticationFailed indicates AEAD open failed (wrong password or tampered body).
	ErrAuthenticationFailed = errors.New("crypt: decryption failed")

	// ErrInvalidOutputText indicates the decrypted bytes are not valid UTF-8.
	ErrInvalidOutputText = errors.New("crypt: decrypted data is not valid text")

	// ErrInvalidInputText indicates the plaintext to encrypt is not valid UTF-8.
	ErrInvalidInputText = errors.New("crypt: plaintext is not valid text")

	// ErrDecompressionFailed indicates a compressed payload could not be expanded.
	ErrDecompressionFailed = errors.New("crypt: decompression failed")

	// ErrInvalidOption indicates a Codec option carries an unusable value.
	ErrInvalidOption = errors.New("crypt: invalid option")
)

// Op names the operation that produced an Error.
type Op string

const (
	OpEncrypt    Op = "encrypt"
	OpDecrypt    Op = "decrypt"
	OpHeader     Op = "header"
	OpAlgorithms Op = "algorithms"
)

// Error is the structured failure returned by every codec operation.
// Kind is one of the sentinel errors above and is matched by errors.Is.
// Detail carries the offending input (a header line, an index) or the
// message of the primitive that failed.
type Error struct {
	Op     Op
	Kind   error
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v %q", e.Op, e.Kind, e.Detail)
}

// Is reports whether target is the sentinel kind of this error.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(op Op, kind error, detail string, cause error) *Error {
	return &Error{Op: op, Kind: kind, Detail: detail, Err: cause}
}
