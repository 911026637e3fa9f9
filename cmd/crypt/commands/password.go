package commands

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// passwordAlphabet is the character set of generated passwords.
const passwordAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_-!."

// GeneratePassword returns a random password whose length is uniformly
// chosen from [minLen, maxLen].
func GeneratePassword(minLen, maxLen int) (string, error) {
	if minLen < 1 || maxLen < minLen {
		return "", fmt.Errorf("invalid password length range [%d, %d]", minLen, maxLen)
	}

	length := minLen
	if maxLen > minLen {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(maxLen-minLen+1)))
		if err != nil {
			return "", fmt.Errorf("failed to generate password length: %w", err)
		}
		length += int(n.Int64())
	}

	size := big.NewInt(int64(len(passwordAlphabet)))
	out := make([]byte, length)
	for i := range out {
		n, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", fmt.Errorf("failed to generate password: %w", err)
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}

// RunPassword prints a generated password. Passwords longer than 31 bytes are
// truncated by key derivation, so the default maximum is 31.
func RunPassword(ioTuple IOTuple, minLen, maxLen int) error {
	password, err := GeneratePassword(minLen, maxLen)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ioTuple.Writer, password)
	return err
}
