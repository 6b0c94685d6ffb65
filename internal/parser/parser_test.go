package parser_test

import (
	"testing"

	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/errs"
	"github.com/cwbudde/go-lam/internal/parser"
)

func TestParseProgramScenarios(t *testing.T) {
	// spec.md §8 scenario table, structural shape only -- type/value
	// checks live in internal/checker and internal/eval.
	tests := []struct {
		name   string
		source string
	}{
		{"lambda application", "((\\x ($add x 1)) 41)"},
		{"if true", "(($if true 1 2))"},
		{"if computed predicate", "(($if ($lt 3 2) 10 20))"},
		{"div by zero literal", "(($div 5 0))"},
		{"higher order function", "((\\f (f 1)) (\\x ($add x x)))"},
		{"self application", "((\\loop (loop)) (\\loop (loop)))"},
		{"empty constant", "(~)"},
		{"comment before close", "(1 # trailing comment\n)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parser.ParseProgram(tt.source)
			if err != nil {
				t.Fatalf("unexpected parse error: %v", err)
			}

			if root == nil {
				t.Fatal("expected a non-nil root expression")
			}
		})
	}
}

func TestParseSingleTermCollapses(t *testing.T) {
	root, err := parser.ParseProgram("(42)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if root.Kind != ast.KindConst || root.IntVal != 42 {
		t.Fatalf("got %+v, want a bare Int(42) const, not wrapped in Apply", root)
	}
}

func TestParseMultiTermBecomesApply(t *testing.T) {
	root, err := parser.ParseProgram("($add 1 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if root.Kind != ast.KindApply {
		t.Fatalf("got Kind %s, want Apply", root.Kind)
	}

	if len(root.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(root.Args))
	}
}

func TestParseRequiresLeadingParen(t *testing.T) {
	_, err := parser.ParseProgram("42")

	perr := expectParseError(t, err)
	if perr.Kind != errs.ExpectingExprBegin {
		t.Fatalf("got kind %s, want ExpectingExprBegin", perr.Kind)
	}
}

func TestParseRejectsTrailingContent(t *testing.T) {
	_, err := parser.ParseProgram("(42) (43)")

	perr := expectParseError(t, err)
	if perr.Kind != errs.BracketMismatch {
		t.Fatalf("got kind %s, want BracketMismatch", perr.Kind)
	}
}

func TestParseRejectsEmptyBody(t *testing.T) {
	_, err := parser.ParseProgram("()")

	perr := expectParseError(t, err)
	if perr.Kind != errs.ExpectingExprBody {
		t.Fatalf("got kind %s, want ExpectingExprBody", perr.Kind)
	}
}

func TestParseFreeNameIsError(t *testing.T) {
	_, err := parser.ParseProgram("(undefined)")
	if err == nil {
		t.Fatal("expected a free-name error")
	}
}

func TestParseHostStub(t *testing.T) {
	root, err := parser.ParseProgram("($add 1 2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !root.Target.IsHost() || root.Target.HostName != "add" {
		t.Fatalf("got target %+v, want a host stub named add", root.Target)
	}
}

func TestParseLambdaParamsAreRenamed(t *testing.T) {
	root, err := parser.ParseProgram("(\\x (x))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if root.Params[0] != "x#1" {
		t.Fatalf("got param %q, want x#1", root.Params[0])
	}

	if root.Body.Name != "x#1" {
		t.Fatalf("got body name %q, want x#1", root.Body.Name)
	}
}

func expectParseError(t *testing.T, err error) *errs.ParseError {
	t.Helper()

	if err == nil {
		t.Fatal("expected a parse error, got none")
	}

	perr, ok := err.(*errs.ParseError)
	if !ok {
		t.Fatalf("got error of type %T, want *errs.ParseError", err)
	}

	return perr
}
