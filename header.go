package crypt

import (
	"strings"
	"unicode/utf8"
)

// LineWidth is the envelope line width: body lines are wrapped at it and
// header lines are padded toward it.
const LineWidth = 72

const (
	kindPrefix = "prefix"
	kindSuffix = "suffix"
)

// HeaderPrefix returns the header line that opens an envelope for id.
func HeaderPrefix(id string) (string, error) {
	return headerSubject(id, kindPrefix)
}

// HeaderSuffix returns the footer line that closes an envelope for id.
func HeaderSuffix(id string) (string, error) {
	return headerSubject(id, kindSuffix)
}

// headerSubject centers "<id> <kind>" between two runs of dashes.
//
// The right run is (LineWidth - (len+2)) / 2 and the left run gets one extra
// dash when len is odd. The result is not always exactly LineWidth wide;
// existing envelopes were written with this arithmetic, so keep it.
func headerSubject(id, kind string) (string, error) {
	if !Contains(id) {
		return "", newError(OpHeader, ErrInvalidAlgorithm, id, nil)
	}
	return formatSubject(id+" "+kind), nil
}

func formatSubject(title string) string {
	n := utf8.RuneCountInString(title)
	right := max((LineWidth-(n+2))/2, 0)
	left := right
	if n%2 == 1 {
		left++
	}

	var b strings.Builder
	b.Grow(left + right + len(title) + 2)
	b.WriteString(strings.Repeat("-", left))
	b.WriteByte(' ')
	b.WriteString(title)
	b.WriteByte(' ')
	b.WriteString(strings.Repeat("-", right))
	return b.String()
}

// headersFor returns the prefix and suffix lines of an already validated algorithm.
func headersFor(alg Algorithm) (prefix, suffix string) {
	title := string(alg) + " "
	return formatSubject(title + kindPrefix), formatSubject(title + kindSuffix)
}
