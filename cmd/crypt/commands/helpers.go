// Package commands contains CLI command implementations for crypt.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
	// Prompt receives password prompts. Nil means os.Stderr.
	Prompt io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin, os.Stdout and os.Stderr.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
		Prompt: os.Stderr,
	}
}

// ErrNoPassword is returned when no password source yields a value.
var ErrNoPassword = errors.New("no password: use a password file, set the environment variable or run in a terminal")

// PasswordSource names where a password may come from, in priority order.
type PasswordSource struct {
	// File is a path whose first line is the password.
	File string
	// Env is the value taken from the environment.
	Env string
	// Label is shown when prompting.
	Label string
}

// readTerminalPassword prompts on the controlling terminal. Replaced in tests.
var readTerminalPassword = func(prompt io.Writer, label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoPassword
	}
	fmt.Fprintf(prompt, "%s: ", label)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(b), nil
}

// resolvePassword returns the first password found in src.File, src.Env or a
// terminal prompt.
func resolvePassword(src PasswordSource, ioTuple IOTuple) (string, error) {
	if src.File != "" {
		data, err := os.ReadFile(src.File)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		line, _, _ := strings.Cut(string(data), "\n")
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			return "", fmt.Errorf("password file %s is empty", src.File)
		}
		return line, nil
	}
	if src.Env != "" {
		return src.Env, nil
	}

	prompt := ioTuple.Prompt
	if prompt == nil {
		prompt = os.Stderr
	}
	password, err := readTerminalPassword(prompt, src.Label)
	if err != nil {
		return "", err
	}
	if password == "" {
		return "", ErrNoPassword
	}
	return password, nil
}

// readInput reads all of path, or of ioTuple.Reader when path is empty or "-".
func readInput(path string, ioTuple IOTuple) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(ioTuple.Reader)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// writeOutput writes s to path, or to ioTuple.Writer when path is empty or "-".
func writeOutput(path, s string, ioTuple IOTuple) error {
	if path == "" || path == "-" {
		if _, err := io.WriteString(ioTuple.Writer, s); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, []byte(s), 0o600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
