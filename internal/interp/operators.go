package interp

import (
	"github.com/tlscript/tlscript/internal/ast"
)

// evalBinary applies a binary operator. `&&` and `||` short-circuit: the
// right operand is only evaluated when the left does not already determine
// the result (spec.md §4.3).
func (i *Interpreter) evalBinary(e *ast.Binary, env *Environment) (Value, error) {
	switch e.Op {
	case "&&":
		left, err := i.evalExpr(e.Left, env)
		if err != nil {
			return nil, err
		}
		if !isTruthy(left) {
			return &BooleanValue{Value: false}, nil
		}
		right, err := i.evalExpr(e.Right, env)
		if err != nil {
			return nil, err
		}
		return &BooleanValue{Value: isTruthy(right)}, nil

	case "||":
		left, err := i.evalExpr(e.Left, env)
		if err != nil {
			return nil, err
		}
		if isTruthy(left) {
			return &BooleanValue{Value: true}, nil
		}
		right, err := i.evalExpr(e.Right, env)
		if err != nil {
			return nil, err
		}
		return &BooleanValue{Value: isTruthy(right)}, nil
	}

	left, err := i.evalExpr(e.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evalExpr(e.Right, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "+":
		return i.evalAdd(e, left, right)
	case "-", "*", "/", "%":
		return i.evalArith(e, e.Op, left, right)
	case "==":
		return &BooleanValue{Value: valuesEqual(left, right)}, nil
	case "!=":
		return &BooleanValue{Value: !valuesEqual(left, right)}, nil
	case "<", ">", "<=", ">=":
		return i.evalCompare(e, e.Op, left, right)
	default:
		return nil, i.fail(e.Pos(), "unknown binary operator %q", e.Op)
	}
}

// evalAdd implements `+`: string concatenation when either operand is a
// String, otherwise numeric addition (spec.md §4.3).
func (i *Interpreter) evalAdd(e *ast.Binary, left, right Value) (Value, error) {
	if _, ok := left.(*StringValue); ok {
		return &StringValue{Value: left.String() + right.String()}, nil
	}
	if _, ok := right.(*StringValue); ok {
		return &StringValue{Value: left.String() + right.String()}, nil
	}
	return i.evalArith(e, "+", left, right)
}

// evalArith implements `- * / %` and the numeric half of `+`.
//
// Integer `/` always promotes to Floating-point, matching the reference
// implementation's numeric tower (see DESIGN.md, resolving spec.md §9's open
// question). `%` preserves Integer-ness when both operands are Integer.
func (i *Interpreter) evalArith(e *ast.Binary, op string, left, right Value) (Value, error) {
	li, lIsInt := left.(*IntegerValue)
	ri, rIsInt := right.(*IntegerValue)

	if lIsInt && rIsInt {
		switch op {
		case "+":
			return &IntegerValue{Value: li.Value + ri.Value}, nil
		case "-":
			return &IntegerValue{Value: li.Value - ri.Value}, nil
		case "*":
			return &IntegerValue{Value: li.Value * ri.Value}, nil
		case "/":
			if ri.Value == 0 {
				return nil, i.fail(e.Pos(), "division by zero")
			}
			return &FloatValue{Value: float64(li.Value) / float64(ri.Value)}, nil
		case "%":
			if ri.Value == 0 {
				return nil, i.fail(e.Pos(), "division by zero")
			}
			return &IntegerValue{Value: li.Value % ri.Value}, nil
		}
	}

	lf, lOk := numericValue(left)
	rf, rOk := numericValue(right)
	if !lOk || !rOk {
		return nil, i.fail(e.Pos(), "operator %q requires numeric operands, got %s and %s", op, left.Type(), right.Type())
	}

	switch op {
	case "+":
		return &FloatValue{Value: lf + rf}, nil
	case "-":
		return &FloatValue{Value: lf - rf}, nil
	case "*":
		return &FloatValue{Value: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, i.fail(e.Pos(), "division by zero")
		}
		return &FloatValue{Value: lf / rf}, nil
	case "%":
		if rf == 0 {
			return nil, i.fail(e.Pos(), "division by zero")
		}
		return &FloatValue{Value: float64(int64(lf) % int64(rf))}, nil
	default:
		return nil, i.fail(e.Pos(), "unknown arithmetic operator %q", op)
	}
}

func (i *Interpreter) evalCompare(e *ast.Binary, op string, left, right Value) (Value, error) {
	lf, lOk := numericValue(left)
	rf, rOk := numericValue(right)
	if lOk && rOk {
		switch op {
		case "<":
			return &BooleanValue{Value: lf < rf}, nil
		case ">":
			return &BooleanValue{Value: lf > rf}, nil
		case "<=":
			return &BooleanValue{Value: lf <= rf}, nil
		case ">=":
			return &BooleanValue{Value: lf >= rf}, nil
		}
	}

	ls, lIsStr := left.(*StringValue)
	rs, rIsStr := right.(*StringValue)
	if lIsStr && rIsStr {
		switch op {
		case "<":
			return &BooleanValue{Value: ls.Value < rs.Value}, nil
		case ">":
			return &BooleanValue{Value: ls.Value > rs.Value}, nil
		case "<=":
			return &BooleanValue{Value: ls.Value <= rs.Value}, nil
		case ">=":
			return &BooleanValue{Value: ls.Value >= rs.Value}, nil
		}
	}

	return nil, i.fail(e.Pos(), "operator %q requires comparable operands, got %s and %s", op, left.Type(), right.Type())
}

// numericValue extracts a float64 view of an Integer or Float value.
func numericValue(v Value) (float64, bool) {
	switch n := v.(type) {
	case *IntegerValue:
		return float64(n.Value), true
	case *FloatValue:
		return n.Value, true
	default:
		return 0, false
	}
}

// valuesEqual implements `==`/`!=`. Numeric kinds compare by value across
// Integer/Float; everything else compares by type and value.
func valuesEqual(left, right Value) bool {
	if lf, lOk := numericValue(left); lOk {
		if rf, rOk := numericValue(right); rOk {
			return lf == rf
		}
		return false
	}

	switch l := left.(type) {
	case *StringValue:
		r, ok := right.(*StringValue)
		return ok && l.Value == r.Value
	case *BooleanValue:
		r, ok := right.(*BooleanValue)
		return ok && l.Value == r.Value
	case *NullValue:
		_, ok := right.(*NullValue)
		return ok
	default:
		return false
	}
}
