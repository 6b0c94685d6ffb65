package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/checker"
	"github.com/cwbudde/go-lam/internal/host"
	"github.com/cwbudde/go-lam/internal/parser"
	"github.com/spf13/cobra"
)

var typecheckCmd = &cobra.Command{
	Use:   "typecheck [file]",
	Short: "Parse and type-check a program, printing the resulting DataType",
	Long: `typecheck parses the given program (or stdin if no file is given),
runs the symbolic partial-evaluation checker, and prints the resulting
DataType. Exits non-zero on any parse or type error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTypecheck,
}

func init() {
	rootCmd.AddCommand(typecheckCmd)
}

func runTypecheck(cmd *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	root, err := parser.ParseProgram(source)
	if err != nil {
		exitWithError("%v", err)
	}

	if isVerbose(cmd) {
		fmt.Fprintln(os.Stderr, "parsed AST:")
		ast.Print(os.Stderr, root)
	}

	c := checker.New(host.NewRegistry())

	dt, err := c.Check(root)
	if err != nil {
		exitWithError("%v", err)
	}

	fmt.Println(dt)

	return nil
}
