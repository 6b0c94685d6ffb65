// Command lam is the CLI driver for go-lam: typecheck and eval subcommands
// over the parser, checker, and evaluator packages.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lam/cmd/lam/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
