package eval_test

import (
	"testing"

	"github.com/cwbudde/go-lam/internal/checker"
	"github.com/cwbudde/go-lam/internal/eval"
	"github.com/cwbudde/go-lam/internal/host"
	"github.com/cwbudde/go-lam/internal/parser"
	"github.com/cwbudde/go-lam/internal/value"
)

func runSource(t *testing.T, source string) value.RuntimeValue {
	t.Helper()

	root, err := parser.ParseProgram(source)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	hosts := host.NewRegistry()

	dt, err := checker.New(hosts).Check(root)
	if err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}

	if dt.IsDivergent() {
		t.Fatal("program type-checked as Divergent; test picked a bad fixture")
	}

	result, err := eval.New(hosts).Eval(root, value.Empty())
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}

	return result
}

// spec.md §8 scenario table (runtime value column).
func TestScenarioRuntimeValues(t *testing.T) {
	tests := []struct {
		name   string
		source string
		kind   value.Kind
		want   int64
	}{
		{"1 lambda add", "((\\x ($add x 1)) 41)", value.KindInt, 42},
		{"2 if true", "(($if true 1 2))", value.KindInt, 1},
		{"3 if computed", "(($if ($lt 3 2) 10 20))", value.KindInt, 20},
		{"5 higher order", "((\\f (f 1)) (\\x ($add x x)))", value.KindInt, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := runSource(t, tt.source)

			if result.Kind != tt.kind {
				t.Fatalf("got kind %v, want %v", result.Kind, tt.kind)
			}

			if result.IntVal != tt.want {
				t.Fatalf("got Int(%d), want Int(%d)", result.IntVal, tt.want)
			}
		})
	}
}

func TestScenarioFourIsDivByZero(t *testing.T) {
	root, err := parser.ParseProgram("(($div 5 0))")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	hosts := host.NewRegistry()

	dt, err := checker.New(hosts).Check(root)
	if err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}

	if dt.IsDivergent() {
		t.Fatal("5/0 should type-check to Int, the division-by-zero is a runtime concern")
	}

	_, err = eval.New(hosts).Eval(root, value.Empty())
	if err == nil {
		t.Fatal("expected a DivByZero runtime error")
	}
}

// Divergence gating (spec.md §8 invariant 4): a caller must never invoke
// the evaluator on a root type that checked Divergent.
func TestDivergenceGating(t *testing.T) {
	root, err := parser.ParseProgram("((\\x (x x)) (\\x (x x)))")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	hosts := host.NewRegistry()

	dt, err := checker.New(hosts).Check(root)
	if err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}

	if !dt.IsDivergent() {
		t.Fatal("expected the checker to flag this program Divergent before any evaluation is attempted")
	}
}

// A shared thunk forced from several use sites yields the same value each
// time (spec.md §3 Invariant 2, §8 invariant 5). This test checks the
// result only; the evaluate-exactly-once count is checked by
// internal/value's TestThunkMemoizesExactlyOnce.
func TestThunkMemoizationAcrossApplications(t *testing.T) {
	// ((\x ($add ($add x x) x)) 5) -- forces the argument thunk for x three
	// times and must produce 5+5+5 = 15.
	root, err := parser.ParseProgram("((\\x ($add ($add x x) x)) 5)")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	hosts := host.NewRegistry()

	dt, err := checker.New(hosts).Check(root)
	if err != nil {
		t.Fatalf("unexpected type error: %v", err)
	}

	if dt.IsDivergent() {
		t.Fatal("unexpected Divergent")
	}

	result, err := eval.New(hosts).Eval(root, value.Empty())
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}

	if result.IntVal != 15 {
		t.Fatalf("got %v, want Int(15)", result)
	}
}
