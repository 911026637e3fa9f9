package crypt

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Envelope format:
//
//	<prefix header line>\n
//	<base64 line, at most LineWidth runes>\n
//	...
//	<suffix header line>\n
//
// The body is the standard padded base64 of the sealed AEAD output.

// formatEnvelope assembles the envelope for already sealed bytes.
func formatEnvelope(alg Algorithm, sealed []byte) string {
	prefix, suffix := headersFor(alg)
	encoded := base64.StdEncoding.EncodeToString(sealed)

	var b strings.Builder
	b.Grow(len(prefix) + len(suffix) + len(encoded) + len(encoded)/LineWidth + 4)
	b.WriteString(prefix)
	b.WriteByte('\n')
	for _, line := range wrapLines(encoded, LineWidth) {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(suffix)
	b.WriteByte('\n')
	return b.String()
}

// wrapLines splits s into lines of at most width runes. Splits always fall on
// rune boundaries.
func wrapLines(s string, width int) []string {
	if s == "" {
		return nil
	}
	lines := make([]string, 0, (len(s)+width-1)/width)
	start, runes := 0, 0
	for i := range s {
		if runes == width {
			lines = append(lines, s[start:i])
			start, runes = i, 0
		}
		runes++
	}
	return append(lines, s[start:])
}

// parseEnvelope validates the framing of text for alg and returns the decoded
// body bytes.
//
// One trailing blank line after the footer is tolerated. In strict mode blank
// or overlong body lines are rejected instead of being concatenated away.
func parseEnvelope(alg Algorithm, text string, strict bool) ([]byte, error) {
	prefix, suffix := headersFor(alg)
	lines := strings.Split(text, "\n")

	if lines[0] != prefix {
		return nil, newError(OpDecrypt, ErrInvalidPrefix, lines[0], nil)
	}

	footer := len(lines) - 1
	if lines[footer] != suffix {
		footer--
		if footer < 1 || lines[footer] != suffix {
			return nil, newError(OpDecrypt, ErrInvalidSuffix, lines[max(footer, 0)], nil)
		}
	}

	body := lines[1:footer]
	if strict {
		for i, line := range body {
			if line == "" || utf8.RuneCountInString(line) > LineWidth {
				detail := fmt.Sprintf("malformed body line %d", i+2)
				return nil, newError(OpDecrypt, ErrInvalidBase64, detail, nil)
			}
		}
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.Join(body, ""))
	if err != nil {
		return nil, newError(OpDecrypt, ErrInvalidBase64, err.Error(), err)
	}
	return decoded, nil
}

// DetectAlgorithm returns the registered algorithm whose header opens text.
func DetectAlgorithm(text string) (Algorithm, error) {
	first, _, _ := strings.Cut(text, "\n")
	first = strings.TrimSpace(first)
	for _, a := range registry {
		prefix, _ := headersFor(a.id)
		if first == prefix {
			return a.id, nil
		}
	}
	return "", newError(OpDecrypt, ErrInvalidPrefix, first, nil)
}

// IsEnvelope reports whether text starts with the header of a registered
// algorithm.
func IsEnvelope(text string) bool {
	_, err := DetectAlgorithm(strings.TrimLeft(text, " \t\r\n"))
	return err == nil
}
