package interp

import (
	"strings"

	"github.com/tlscript/tlscript/internal/ast"
)

// evalCall dispatches a Call expression. Resolution order, synthesized from
// spec.md §4.3's Call notes and its standard-library paragraph:
//
//  1. List() with no arguments constructs a new, empty Sequence.
//  2. A dotted callee resolves its first segment: if that segment names a
//     Sequence bound in env, the remaining joined segment is a Sequence
//     method (push_back/add/size); otherwise the whole dotted name resolves
//     against the standard library, as evalVarRef does for values.
//  3. A bare name registered as a user function is invoked with the
//     evaluated arguments bound positionally.
//  4. A bare name bound in env or the standard library to a Builtin is
//     invoked directly.
//  5. Anything else is a NameError.
func (i *Interpreter) evalCall(e *ast.Call, env *Environment) (Value, error) {
	if e.Callee == "List" && len(e.Args) == 0 {
		return &SequenceValue{Elements: nil}, nil
	}

	if strings.Contains(e.Callee, ".") {
		return i.evalDottedCall(e, env)
	}

	if _, ok := i.functions[e.Callee]; ok {
		args, err := i.evalArgs(e.Args, env)
		if err != nil {
			return nil, err
		}
		return i.callUserFunction(e.Callee, args, e.Pos())
	}

	callee, ok := env.Get(e.Callee)
	if !ok {
		callee, ok = i.stdlib[e.Callee]
	}
	if !ok {
		return nil, i.fail(e.Pos(), "NameError: undefined name %q", e.Callee)
	}
	return i.invoke(e, callee, env)
}

// evalDottedCall handles a dotted callee such as Console.WriteLine or
// items.push_back(x).
func (i *Interpreter) evalDottedCall(e *ast.Call, env *Environment) (Value, error) {
	parts := strings.SplitN(e.Callee, ".", 2)
	head, rest := parts[0], parts[1]

	if recv, ok := env.Get(head); ok {
		if seq, ok := recv.(*SequenceValue); ok {
			args, err := i.evalArgs(e.Args, env)
			if err != nil {
				return nil, err
			}
			return i.callSequenceMethod(e, seq, rest, args)
		}
	}

	callee, err := i.evalVarRef(&ast.VarRef{Token: e.Token, Name: e.Callee}, env)
	if err != nil {
		return nil, err
	}
	return i.invoke(e, callee, env)
}

// invoke evaluates args and applies callee, which must be a Builtin.
func (i *Interpreter) invoke(e *ast.Call, callee Value, env *Environment) (Value, error) {
	builtin, ok := callee.(*BuiltinValue)
	if !ok {
		return nil, i.fail(e.Pos(), "cannot call a value of type %s", callee.Type())
	}
	args, err := i.evalArgs(e.Args, env)
	if err != nil {
		return nil, err
	}
	val, err := builtin.Fn(args)
	if err != nil {
		return nil, i.fail(e.Pos(), "%s", err)
	}
	return val, nil
}

// callSequenceMethod implements the Sequence's two growth methods and its
// size accessor (spec.md §3): push_back and add both append, matching the
// reference implementation's synonym pair; size reports the element count.
func (i *Interpreter) callSequenceMethod(e *ast.Call, seq *SequenceValue, method string, args []Value) (Value, error) {
	switch method {
	case "push_back", "add":
		if len(args) != 1 {
			return nil, i.fail(e.Pos(), "Sequence.%s expects 1 argument, got %d", method, len(args))
		}
		seq.Elements = append(seq.Elements, args[0])
		return Null, nil
	case "size":
		if len(args) != 0 {
			return nil, i.fail(e.Pos(), "Sequence.size expects 0 arguments, got %d", len(args))
		}
		return &IntegerValue{Value: int64(len(seq.Elements))}, nil
	default:
		return nil, i.fail(e.Pos(), "Sequence has no method %q", method)
	}
}
