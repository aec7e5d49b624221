package interp

import (
	"strings"

	"github.com/tlscript/tlscript/internal/ast"
)

// evalExpr maps an AST expression to a Value (spec.md §4.3).
func (i *Interpreter) evalExpr(expr ast.Expression, env *Environment) (Value, error) {
	switch e := expr.(type) {
	case *ast.NumberLiteral:
		if e.IsFloat {
			return &FloatValue{Value: e.FltValue}, nil
		}
		return &IntegerValue{Value: e.IntValue}, nil

	case *ast.StringLiteral:
		return &StringValue{Value: e.Value}, nil

	case *ast.BoolLiteral:
		return &BooleanValue{Value: e.Value}, nil

	case *ast.VarRef:
		return i.evalVarRef(e, env)

	case *ast.Call:
		return i.evalCall(e, env)

	case *ast.Index:
		return i.evalIndex(e, env)

	case *ast.Unary:
		return i.evalUnary(e, env)

	case *ast.Binary:
		return i.evalBinary(e, env)

	default:
		return nil, i.fail(expr.Pos(), "cannot evaluate expression of type %T", expr)
	}
}

// evalVarRef resolves a simple name against local env, then global env,
// then the standard library; a dotted name resolves its first segment in
// the standard library and performs successive member lookups from there
// (spec.md §4.3).
func (i *Interpreter) evalVarRef(e *ast.VarRef, env *Environment) (Value, error) {
	if !strings.Contains(e.Name, ".") {
		if v, ok := env.Get(e.Name); ok {
			return v, nil
		}
		if v, ok := i.stdlib[e.Name]; ok {
			return v, nil
		}
		return nil, i.fail(e.Pos(), "NameError: undefined name %q", e.Name)
	}

	parts := strings.Split(e.Name, ".")
	v, ok := i.stdlib[parts[0]]
	if !ok {
		return nil, i.fail(e.Pos(), "NameError: undefined name %q", parts[0])
	}
	for _, member := range parts[1:] {
		ns, ok := v.(*NamespaceValue)
		if !ok {
			return nil, i.fail(e.Pos(), "%q is not a namespace", v.Type())
		}
		v, ok = ns.Members[member]
		if !ok {
			return nil, i.fail(e.Pos(), "NameError: namespace %q has no member %q", ns.Name, member)
		}
	}
	return v, nil
}

// evalIndex evaluates the target as a VarRef and indexes the resulting
// Sequence with the integer index value.
func (i *Interpreter) evalIndex(e *ast.Index, env *Environment) (Value, error) {
	targetVal, ok := env.Get(e.Target)
	if !ok {
		return nil, i.fail(e.Pos(), "NameError: undefined name %q", e.Target)
	}
	seq, ok := targetVal.(*SequenceValue)
	if !ok {
		return nil, i.fail(e.Pos(), "cannot index a value of type %s", targetVal.Type())
	}

	idxVal, err := i.evalExpr(e.Idx, env)
	if err != nil {
		return nil, err
	}
	idx, ok := idxVal.(*IntegerValue)
	if !ok {
		return nil, i.fail(e.Pos(), "sequence index must be an Integer, got %s", idxVal.Type())
	}
	if idx.Value < 0 || idx.Value >= int64(len(seq.Elements)) {
		return nil, i.fail(e.Pos(), "sequence index %d out of range (length %d)", idx.Value, len(seq.Elements))
	}
	return seq.Elements[idx.Value], nil
}

// evalUnary applies a prefix operator: `-` arithmetic negation, `+`
// identity, `!` logical negation over the operand's truthiness.
func (i *Interpreter) evalUnary(e *ast.Unary, env *Environment) (Value, error) {
	val, err := i.evalExpr(e.Expr, env)
	if err != nil {
		return nil, err
	}

	switch e.Op {
	case "!":
		return &BooleanValue{Value: !isTruthy(val)}, nil
	case "-":
		switch n := val.(type) {
		case *IntegerValue:
			return &IntegerValue{Value: -n.Value}, nil
		case *FloatValue:
			return &FloatValue{Value: -n.Value}, nil
		default:
			return nil, i.fail(e.Pos(), "unary - requires a numeric operand, got %s", val.Type())
		}
	case "+":
		switch val.(type) {
		case *IntegerValue, *FloatValue:
			return val, nil
		default:
			return nil, i.fail(e.Pos(), "unary + requires a numeric operand, got %s", val.Type())
		}
	default:
		return nil, i.fail(e.Pos(), "unknown unary operator %q", e.Op)
	}
}
