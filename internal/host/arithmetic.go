package host

import (
	"fmt"
	"math"

	"github.com/cwbudde/go-lam/internal/datatype"
	"github.com/cwbudde/go-lam/internal/errs"
	"github.com/cwbudde/go-lam/internal/value"
)

// binop implements add/sub/mul/div/mod: both operands must be Int or
// Float, any Divergent operand is contagious, and the result is Int only
// when both operands are Int (spec.md §4.2, §9 resolves the Open Question
// on mixed-type promotion this way).
type binop struct {
	name    string
	intOp   func(a, b int64) (int64, error)
	floatOp func(a, b float64) (float64, error)
}

func arithmeticOps() []binop {
	return []binop{
		{name: "add",
			intOp:   func(a, b int64) (int64, error) { return a + b, nil },
			floatOp: func(a, b float64) (float64, error) { return a + b, nil }},
		{name: "sub",
			intOp:   func(a, b int64) (int64, error) { return a - b, nil },
			floatOp: func(a, b float64) (float64, error) { return a - b, nil }},
		{name: "mul",
			intOp:   func(a, b int64) (int64, error) { return a * b, nil },
			floatOp: func(a, b float64) (float64, error) { return a * b, nil }},
		{name: "div",
			intOp: func(a, b int64) (int64, error) {
				if b == 0 {
					return 0, errs.NewRuntimeError(errs.DivByZero, "")
				}

				return a / b, nil
			},
			floatOp: func(a, b float64) (float64, error) { return a / b, nil }}, // IEEE-754: a/0 -> +-Inf/NaN
		{name: "mod",
			intOp: func(a, b int64) (int64, error) {
				if b == 0 {
					return 0, errs.NewRuntimeError(errs.DivByZero, "")
				}

				return a % b, nil
			},
			floatOp: func(a, b float64) (float64, error) { return math.Mod(a, b), nil }},
	}
}

func (op binop) TypeCheck(args []datatype.DataType) (datatype.DataType, error) {
	if len(args) != 2 {
		return datatype.DataType{}, errs.NewTypeError(errs.ArityMismatch,
			fmt.Sprintf("%s expects 2 arguments, got %d", op.name, len(args)))
	}

	if args[0].IsDivergent() || args[1].IsDivergent() {
		return datatype.Divergent(), nil
	}

	if !isNumeric(args[0]) || !isNumeric(args[1]) {
		return datatype.DataType{}, errs.NewTypeError(errs.OperandMismatch,
			fmt.Sprintf("%s requires numeric operands, got %s and %s", op.name, args[0], args[1]))
	}

	if args[0].ValueType == datatype.Int && args[1].ValueType == datatype.Int {
		return datatype.Value(datatype.Int), nil
	}

	return datatype.Value(datatype.Float), nil
}

func (op binop) Eval(ev value.Evaluator, args []*value.Thunk) (value.RuntimeValue, error) {
	if len(args) != 2 {
		errs.Fatal("%s called with %d arguments", op.name, len(args))
	}

	vals, err := forceArgs(ev, args)
	if err != nil {
		return value.RuntimeValue{}, err
	}

	a, b := vals[0], vals[1]

	if a.Kind == value.KindInt && b.Kind == value.KindInt {
		r, err := op.intOp(a.IntVal, b.IntVal)
		if err != nil {
			return value.RuntimeValue{}, err
		}

		return value.MakeInt(r), nil
	}

	r, err := op.floatOp(asFloat(a), asFloat(b))
	if err != nil {
		return value.RuntimeValue{}, err
	}

	return value.MakeFloat(r), nil
}
