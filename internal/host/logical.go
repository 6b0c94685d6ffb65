package host

import (
	"fmt"

	"github.com/cwbudde/go-lam/internal/datatype"
	"github.com/cwbudde/go-lam/internal/errs"
	"github.com/cwbudde/go-lam/internal/value"
)

// logicalop implements and/or: operands accept the same set as the
// comparison family (numeric or Bool), numeric operands are truthified by
// "!= 0" before combining, and any Divergent operand is contagious
// (spec.md §4.2).
type logicalop struct {
	name    string
	combine func(a, b bool) bool
}

func logicalOps() []logicalop {
	return []logicalop{
		{name: "and", combine: func(a, b bool) bool { return a && b }},
		{name: "or", combine: func(a, b bool) bool { return a || b }},
	}
}

func (op logicalop) TypeCheck(args []datatype.DataType) (datatype.DataType, error) {
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

	if args[0].Kind == datatype.KindValue && args[0].ValueType == datatype.Bool &&
		args[1].Kind == datatype.KindValue && args[1].ValueType == datatype.Bool {
		return datatype.Value(datatype.Bool), nil
	}

	return datatype.DataType{}, errs.NewTypeError(errs.OperandMismatch,
		fmt.Sprintf("%s requires two numeric or two bool operands, got %s and %s", op.name, args[0], args[1]))
}

func (op logicalop) Eval(ev value.Evaluator, args []*value.Thunk) (value.RuntimeValue, error) {
	if len(args) != 2 {
		errs.Fatal("%s called with %d arguments", op.name, len(args))
	}

	vals, err := forceArgs(ev, args)
	if err != nil {
		return value.RuntimeValue{}, err
	}

	return value.MakeBool(op.combine(vals[0].Truthy(), vals[1].Truthy())), nil
}
