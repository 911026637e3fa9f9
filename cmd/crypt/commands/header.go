package commands

import (
	"fmt"

	"github.com/ai8future/crypt"
)

// RunHeader prints the prefix or suffix header line of an algorithm.
func RunHeader(ioTuple IOTuple, algorithm, kind string) error {
	var (
		line string
		err  error
	)
	switch kind {
	case "prefix":
		line, err = crypt.HeaderPrefix(algorithm)
	case "suffix":
		line, err = crypt.HeaderSuffix(algorithm)
	default:
		return fmt.Errorf("invalid header kind: %s (valid options: prefix, suffix)", kind)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ioTuple.Writer, line)
	return err
}
