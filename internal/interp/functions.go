package interp

import (
	"github.com/tlscript/tlscript/internal/ast"
	"github.com/tlscript/tlscript/internal/lexer"
)

// callUserFunction invokes a hoisted function declaration by name: a fresh
// environment, seeded with a snapshot copy of the globals as they stand at
// call time (spec.md §3 — a copy, not a chain, so the function cannot
// reassign a global), is further seeded with args bound positionally to the
// declaration's parameter names, then the body executes. A Return signal's
// value becomes the result; falling off the end yields Null (spec.md §4.3).
func (i *Interpreter) callUserFunction(name string, args []Value, pos lexer.Position) (Value, error) {
	fn, ok := i.functions[name]
	if !ok {
		return nil, i.fail(pos, "NameError: undefined function %q", name)
	}
	if len(args) != len(fn.Params) {
		return nil, i.fail(pos, "function %q expects %d argument(s), got %d", name, len(fn.Params), len(args))
	}

	local := i.global.Snapshot()
	for idx, param := range fn.Params {
		local.Define(param, args[idx])
	}

	sig, err := i.execStmt(fn.Body, local)
	if err != nil {
		return nil, err
	}
	if sig.isReturn {
		return sig.value, nil
	}
	return Null, nil
}

// evalArgs evaluates a Call's argument expressions left to right.
func (i *Interpreter) evalArgs(args []ast.Expression, env *Environment) ([]Value, error) {
	vals := make([]Value, len(args))
	for idx, a := range args {
		v, err := i.evalExpr(a, env)
		if err != nil {
			return nil, err
		}
		vals[idx] = v
	}
	return vals, nil
}
