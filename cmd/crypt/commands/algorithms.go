package commands

import (
	"fmt"

	"github.com/ai8future/crypt"
)

// RunAlgorithms prints one "<index>\t<id>" line per registered algorithm.
func RunAlgorithms(ioTuple IOTuple) error {
	for i, alg := range crypt.Algorithms() {
		if _, err := fmt.Fprintf(ioTuple.Writer, "%d\t%s\n", i, alg); err != nil {
			return fmt.Errorf("failed to write algorithms: %w", err)
		}
	}
	return nil
}
