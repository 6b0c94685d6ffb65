package cmd

import (
	"fmt"
	"io"
	"os"
)

// readSource reads program text from the file named by args[0], or from
// stdin if no file was given.
func readSource(args []string) (string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}

		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}

	return string(data), nil
}
