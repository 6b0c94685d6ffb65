package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/checker"
	"github.com/cwbudde/go-lam/internal/errs"
	"github.com/cwbudde/go-lam/internal/eval"
	"github.com/cwbudde/go-lam/internal/host"
	"github.com/cwbudde/go-lam/internal/parser"
	"github.com/cwbudde/go-lam/internal/value"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Parse, type-check, and evaluate a program",
	Long: `eval parses the given program (or stdin if no file is given),
type-checks it, refuses to run anything the checker flags Divergent, and
otherwise evaluates it and prints the resulting value and top-level
environment.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
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

	hosts := host.NewRegistry()

	dt, err := checker.New(hosts).Check(root)
	if err != nil {
		exitWithError("%v", err)
	}

	if dt.IsDivergent() {
		exitWithError("program does not terminate (root type is Divergent); refusing to evaluate")
	}

	ev := eval.New(hosts)
	env := value.Empty()

	result, err := runGuarded(ev, root, env)
	if err != nil {
		exitWithError("%v", err)
	}

	fmt.Printf("value: %s\n", result)

	names := env.Names()
	sort.Strings(names)
	fmt.Printf("environment: %v\n", names)

	return nil
}

// runGuarded wraps ev.Eval so a fatal internal error (which the evaluator
// signals by panicking with *errs.Internal) surfaces as a normal error to
// the CLI instead of crashing the process — the type checker is supposed
// to prevent these, so reaching one here is itself a bug report.
func runGuarded(ev *eval.Evaluator, root *ast.Expr, env *value.Environment) (result value.RuntimeValue, err error) {
	defer func() {
		if r := recover(); r != nil {
			if internal, ok := r.(*errs.Internal); ok {
				err = internal

				return
			}

			panic(r)
		}
	}()

	return ev.Eval(root, env)
}
