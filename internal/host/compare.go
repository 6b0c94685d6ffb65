package host

import (
	"fmt"

	"github.com/cwbudde/go-lam/internal/datatype"
	"github.com/cwbudde/go-lam/internal/errs"
	"github.com/cwbudde/go-lam/internal/value"
)

// relop implements eq/ne/lt/le/gt/ge: numeric pairs (with implicit
// int<->float promotion) or Bool/Bool pairs produce Bool; any Divergent
// operand is contagious (spec.md §4.2).
type relop struct {
	name    string
	intOp   func(a, b int64) bool
	floatOp func(a, b float64) bool
	boolOp  func(a, b bool) bool
}

func compareOps() []relop {
	return []relop{
		{name: "eq", intOp: func(a, b int64) bool { return a == b }, floatOp: func(a, b float64) bool { return a == b }, boolOp: func(a, b bool) bool { return a == b }},
		{name: "ne", intOp: func(a, b int64) bool { return a != b }, floatOp: func(a, b float64) bool { return a != b }, boolOp: func(a, b bool) bool { return a != b }},
		{name: "lt", intOp: func(a, b int64) bool { return a < b }, floatOp: func(a, b float64) bool { return a < b }, boolOp: func(a, b bool) bool { return !a && b }},
		{name: "le", intOp: func(a, b int64) bool { return a <= b }, floatOp: func(a, b float64) bool { return a <= b }, boolOp: func(a, b bool) bool { return !a || b }},
		{name: "gt", intOp: func(a, b int64) bool { return a > b }, floatOp: func(a, b float64) bool { return a > b }, boolOp: func(a, b bool) bool { return a && !b }},
		{name: "ge", intOp: func(a, b int64) bool { return a >= b }, floatOp: func(a, b float64) bool { return a >= b }, boolOp: func(a, b bool) bool { return a || !b }},
	}
}

// acceptsBool is always true: spec.md §4.2 describes the Bool/Bool operand
// case for the comparison family as a whole ("numeric pairs ... or
// Bool/Bool pairs"), not as an eq/ne-only carve-out. Ordering treats false
// < true.
func (op relop) acceptsBool() bool { return op.boolOp != nil }

func (op relop) TypeCheck(args []datatype.DataType) (datatype.DataType, error) {
	if len(args) != 2 {
		return datatype.DataType{}, errs.NewTypeError(errs.ArityMismatch,
			fmt.Sprintf("%s expects 2 arguments, got %d", op.name, len(args)))
	}

	if args[0].IsDivergent() || args[1].IsDivergent() {
		return datatype.Divergent(), nil
	}

	if isNumeric(args[0]) && isNumeric(args[1]) {
		return datatype.Value(datatype.Bool), nil
	}

	if op.acceptsBool() && args[0].Kind == datatype.KindValue && args[0].ValueType == datatype.Bool &&
		args[1].Kind == datatype.KindValue && args[1].ValueType == datatype.Bool {
		return datatype.Value(datatype.Bool), nil
	}

	return datatype.DataType{}, errs.NewTypeError(errs.OperandMismatch,
		fmt.Sprintf("%s requires two numeric or two bool operands, got %s and %s", op.name, args[0], args[1]))
}

func (op relop) Eval(ev value.Evaluator, args []*value.Thunk) (value.RuntimeValue, error) {
	if len(args) != 2 {
		errs.Fatal("%s called with %d arguments", op.name, len(args))
	}

	vals, err := forceArgs(ev, args)
	if err != nil {
		return value.RuntimeValue{}, err
	}

	a, b := vals[0], vals[1]

	if a.Kind == value.KindBool && b.Kind == value.KindBool {
		if !op.acceptsBool() {
			errs.Fatal("%s does not accept bool operands (checker should have rejected this)", op.name)
		}

		return value.MakeBool(op.boolOp(a.BoolVal, b.BoolVal)), nil
	}

	if a.Kind == value.KindInt && b.Kind == value.KindInt {
		return value.MakeBool(op.intOp(a.IntVal, b.IntVal)), nil
	}

	return value.MakeBool(op.floatOp(asFloat(a), asFloat(b))), nil
}
