package host_test

import (
	"testing"

	"github.com/cwbudde/go-lam/internal/ast"
	"github.com/cwbudde/go-lam/internal/datatype"
	"github.com/cwbudde/go-lam/internal/host"
	"github.com/cwbudde/go-lam/internal/token"
	"github.com/cwbudde/go-lam/internal/value"
)

type constEvaluator struct{}

func (c constEvaluator) Eval(e *ast.Expr, env *value.Environment) (value.RuntimeValue, error) {
	return value.MakeInt(e.IntVal), nil
}

func lookup(t *testing.T, r *host.Registry, name string) host.HostFunction {
	t.Helper()

	fn, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("registry has no %q", name)
	}

	return fn
}

func TestArithmeticTypeCheck(t *testing.T) {
	r := host.NewRegistry()
	add := lookup(t, r, "add")

	dt, err := add.TypeCheck([]datatype.DataType{datatype.Value(datatype.Int), datatype.Value(datatype.Int)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dt.ValueType != datatype.Int {
		t.Fatalf("got %s, want Int (int+int->int)", dt)
	}

	dt, err = add.TypeCheck([]datatype.DataType{datatype.Value(datatype.Int), datatype.Value(datatype.Float)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dt.ValueType != datatype.Float {
		t.Fatalf("got %s, want Float (mixed promotes to float)", dt)
	}
}

func TestArithmeticDivergentOperandPropagates(t *testing.T) {
	r := host.NewRegistry()
	add := lookup(t, r, "add")

	dt, err := add.TypeCheck([]datatype.DataType{datatype.Divergent(), datatype.Value(datatype.Int)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !dt.IsDivergent() {
		t.Fatalf("got %s, want Divergent", dt)
	}
}

func TestArithmeticRejectsNonNumeric(t *testing.T) {
	r := host.NewRegistry()
	add := lookup(t, r, "add")

	if _, err := add.TypeCheck([]datatype.DataType{datatype.Value(datatype.Bool), datatype.Value(datatype.Int)}); err == nil {
		t.Fatal("expected an operand-mismatch type error")
	}
}

func TestDivByZeroIsRuntimeError(t *testing.T) {
	r := host.NewRegistry()
	div := lookup(t, r, "div")
	ev := constEvaluator{}

	five := value.NewThunk(ast.NewInt(token.Position{}, 5), value.Empty())
	zero := value.NewThunk(ast.NewInt(token.Position{}, 0), value.Empty())

	_, err := div.Eval(ev, []*value.Thunk{five, zero})
	if err == nil {
		t.Fatal("expected a DivByZero runtime error")
	}
}

func TestCompareAcceptsBoolPairs(t *testing.T) {
	r := host.NewRegistry()
	eq := lookup(t, r, "eq")

	dt, err := eq.TypeCheck([]datatype.DataType{datatype.Value(datatype.Bool), datatype.Value(datatype.Bool)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dt.ValueType != datatype.Bool {
		t.Fatalf("got %s, want Bool", dt)
	}
}

func TestLogicalTruthifiesNumeric(t *testing.T) {
	r := host.NewRegistry()
	and := lookup(t, r, "and")
	ev := constEvaluator{}

	one := value.NewThunk(ast.NewInt(token.Position{}, 1), value.Empty())
	zero := value.NewThunk(ast.NewInt(token.Position{}, 0), value.Empty())

	result, err := and.Eval(ev, []*value.Thunk{one, zero})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.BoolVal {
		t.Fatal("and(1, 0) should be false: 0 truthifies to false")
	}
}

func TestIfBranchDivergencePriority(t *testing.T) {
	r := host.NewRegistry()
	ifFn := lookup(t, r, "if")

	dt, err := ifFn.TypeCheck([]datatype.DataType{
		datatype.Value(datatype.Bool),
		datatype.Divergent(),
		datatype.Value(datatype.Int),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dt.ValueType != datatype.Int {
		t.Fatalf("got %s, want Int (non-divergent branch wins)", dt)
	}
}

func TestIfBranchMismatchIsTypeError(t *testing.T) {
	r := host.NewRegistry()
	ifFn := lookup(t, r, "if")

	_, err := ifFn.TypeCheck([]datatype.DataType{
		datatype.Value(datatype.Bool),
		datatype.Value(datatype.Int),
		datatype.Value(datatype.Bool),
	})
	if err == nil {
		t.Fatal("expected an IfBranchMismatch type error")
	}
}

func TestIfEvaluatesExactlyOneBranch(t *testing.T) {
	r := host.NewRegistry()
	ifFn := lookup(t, r, "if")

	evaluated := map[string]bool{}
	ev := trackingEvaluator{evaluated: evaluated}

	pred := value.NewThunk(ast.NewBool(token.Position{}, true), value.Empty())
	thenExpr := ast.NewInt(token.Position{}, 1)
	thenExpr.Name = "then"
	elseExpr := ast.NewInt(token.Position{}, 2)
	elseExpr.Name = "else"

	then := value.NewThunk(thenExpr, value.Empty())
	els := value.NewThunk(elseExpr, value.Empty())

	result, err := ifFn.Eval(ev, []*value.Thunk{pred, then, els})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.IntVal != 1 {
		t.Fatalf("got %v, want Int(1)", result)
	}

	if evaluated["else"] {
		t.Fatal("if forced the else branch even though the predicate was true")
	}
}

type trackingEvaluator struct {
	evaluated map[string]bool
}

func (tr trackingEvaluator) Eval(e *ast.Expr, env *value.Environment) (value.RuntimeValue, error) {
	if e.Kind == ast.KindConst && e.Name != "" {
		tr.evaluated[e.Name] = true
	}

	if e.ConstKind == ast.ConstBool {
		return value.MakeBool(e.BoolVal), nil
	}

	return value.MakeInt(e.IntVal), nil
}
