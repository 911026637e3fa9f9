package crypt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors_Identity(t *testing.T) {
	allErrors := []error{
		ErrInvalidAlgorithm,
		ErrIndexOutOfRange,
		ErrInvalidPrefix,
		ErrInvalidSuffix,
		ErrInvalidBase64,
		ErrSealFailed,
		ErrAuthenticationFailed,
		ErrInvalidOutputText,
		ErrInvalidInputText,
		ErrDecompressionFailed,
		ErrInvalidOption,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				require.False(t, errors.Is(err1, err2), "different errors should not be equal: %v and %v", err1, err2)
			}
		}
	}
}

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"ErrInvalidAlgorithm", ErrInvalidAlgorithm, "invalid algorithm"},
		{"ErrIndexOutOfRange", ErrIndexOutOfRange, "out of range"},
		{"ErrInvalidPrefix", ErrInvalidPrefix, "invalid prefix"},
		{"ErrInvalidSuffix", ErrInvalidSuffix, "invalid suffix"},
		{"ErrInvalidBase64", ErrInvalidBase64, "base64"},
		{"ErrSealFailed", ErrSealFailed, "encryption failed"},
		{"ErrAuthenticationFailed", ErrAuthenticationFailed, "decryption failed"},
		{"ErrInvalidOutputText", ErrInvalidOutputText, "not valid text"},
		{"ErrInvalidInputText", ErrInvalidInputText, "not valid text"},
		{"ErrDecompressionFailed", ErrDecompressionFailed, "decompression failed"},
		{"ErrInvalidOption", ErrInvalidOption, "invalid option"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Contains(t, tt.err.Error(), tt.contains)
			require.Contains(t, tt.err.Error(), "crypt:")
		})
	}
}

func TestError_Format(t *testing.T) {
	err := newError(OpDecrypt, ErrInvalidPrefix, "garbage", nil)
	require.Equal(t, `decrypt: crypt: invalid prefix "garbage"`, err.Error())

	err = newError(OpEncrypt, ErrSealFailed, "", nil)
	require.Equal(t, "encrypt: crypt: encryption failed", err.Error())
}

func TestError_IsAndUnwrap(t *testing.T) {
	cause := errors.New("cipher: message authentication failed")
	err := error(newError(OpDecrypt, ErrAuthenticationFailed, cause.Error(), cause))

	require.ErrorIs(t, err, ErrAuthenticationFailed)
	require.ErrorIs(t, err, cause)
	require.False(t, errors.Is(err, ErrInvalidPrefix))

	var e *Error
	require.ErrorAs(t, err, &e)
	require.Equal(t, OpDecrypt, e.Op)
	require.Equal(t, ErrAuthenticationFailed, e.Kind)
}

func TestErrors_Wrapping(t *testing.T) {
	wrapped := errors.Join(newError(OpDecrypt, ErrInvalidSuffix, "", nil), errors.New("additional context"))
	require.True(t, errors.Is(wrapped, ErrInvalidSuffix))
}
