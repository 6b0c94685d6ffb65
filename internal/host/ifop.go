package host

import (
	"fmt"

	"github.com/cwbudde/go-lam/internal/datatype"
	"github.com/cwbudde/go-lam/internal/errs"
	"github.com/cwbudde/go-lam/internal/value"
)

// ifOp implements the `if` ternary: a strictly-evaluated Bool predicate and
// two lazily-evaluated branches, of which only the selected one is forced
// (spec.md §4.2, §4.4).
//
// Its type rule gives the non-divergent branch priority: if exactly one
// branch type-checks as Divergent, the result is the other branch's type
// without requiring the two branches to agree; if neither branch is
// Divergent, both must check to the same DataType.
type ifOp struct{}

func (ifOp) TypeCheck(args []datatype.DataType) (datatype.DataType, error) {
	if len(args) != 3 {
		return datatype.DataType{}, errs.NewTypeError(errs.ArityMismatch,
			fmt.Sprintf("if expects 3 arguments, got %d", len(args)))
	}

	pred, then, els := args[0], args[1], args[2]

	if pred.IsDivergent() {
		return datatype.Divergent(), nil
	}

	if pred.Kind != datatype.KindValue || pred.ValueType != datatype.Bool {
		return datatype.DataType{}, errs.NewTypeError(errs.OperandMismatch,
			fmt.Sprintf("if predicate must be Bool, got %s", pred))
	}

	switch {
	case then.IsDivergent() && els.IsDivergent():
		return datatype.Divergent(), nil
	case then.IsDivergent():
		return els, nil
	case els.IsDivergent():
		return then, nil
	}

	if !then.Equal(els) {
		return datatype.DataType{}, errs.NewTypeError(errs.IfBranchMismatch,
			fmt.Sprintf("if branches disagree: %s vs %s", then, els))
	}

	return then, nil
}

func (ifOp) Eval(ev value.Evaluator, args []*value.Thunk) (value.RuntimeValue, error) {
	if len(args) != 3 {
		errs.Fatal("if called with %d arguments", len(args))
	}

	pred, err := args[0].Force(ev)
	if err != nil {
		return value.RuntimeValue{}, err
	}

	if pred.Kind != value.KindBool {
		errs.Fatal("if predicate evaluated to non-bool %v (checker should have rejected this)", pred)
	}

	if pred.BoolVal {
		return args[1].Force(ev)
	}

	return args[2].Force(ev)
}
