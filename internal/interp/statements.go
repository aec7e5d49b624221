package interp

import (
	"github.com/tlscript/tlscript/internal/ast"
)

// execStmt executes a single statement, returning a signal that propagates
// a Return out of Block/If/While/For/Foreach to the enclosing call.
func (i *Interpreter) execStmt(stmt ast.Statement, env *Environment) (signal, error) {
	switch s := stmt.(type) {
	case *ast.Block:
		return i.execBlock(s, env)
	case *ast.VarDecl:
		return i.execVarDecl(s, env)
	case *ast.Assign:
		return i.execAssign(s, env)
	case *ast.ExprStmt:
		_, err := i.evalExpr(s.Expr, env)
		return signal{}, err
	case *ast.If:
		return i.execIf(s, env)
	case *ast.While:
		return i.execWhile(s, env)
	case *ast.For:
		return i.execFor(s, env)
	case *ast.Foreach:
		return i.execForeach(s, env)
	case *ast.Return:
		return i.execReturn(s, env)
	case *ast.FuncDecl:
		i.functions[s.Name] = s
		return signal{}, nil
	default:
		return signal{}, i.fail(stmt.Pos(), "cannot execute statement of type %T", stmt)
	}
}

// execBlock runs its members in order in the same environment (spec.md
// §4.3: "Block runs its members in order in the same environment").
func (i *Interpreter) execBlock(b *ast.Block, env *Environment) (signal, error) {
	for _, stmt := range b.Body {
		sig, err := i.execStmt(stmt, env)
		if err != nil {
			return signal{}, err
		}
		if sig.isReturn {
			return sig, nil
		}
	}
	return signal{}, nil
}

// execVarDecl binds the name in the current environment to the initializer
// value, or Null if absent.
func (i *Interpreter) execVarDecl(v *ast.VarDecl, env *Environment) (signal, error) {
	val := Value(Null)
	if v.Init != nil {
		evaluated, err := i.evalExpr(v.Init, env)
		if err != nil {
			return signal{}, err
		}
		val = evaluated
	}
	env.Define(v.Name, val)
	return signal{}, nil
}

// execAssign targets either a VarRef (update local-then-global-then-new) or
// an Index (in-place sequence store), per the invariant in spec.md §3.
func (i *Interpreter) execAssign(a *ast.Assign, env *Environment) (signal, error) {
	val, err := i.evalExpr(a.Value, env)
	if err != nil {
		return signal{}, err
	}

	switch target := a.Target.(type) {
	case *ast.VarRef:
		if !env.Set(target.Name, val) {
			env.Define(target.Name, val)
		}
		return signal{}, nil

	case *ast.Index:
		seqVal, ok := env.Get(target.Target)
		if !ok {
			return signal{}, i.fail(target.Pos(), "NameError: undefined name %q", target.Target)
		}
		seq, ok := seqVal.(*SequenceValue)
		if !ok {
			return signal{}, i.fail(target.Pos(), "cannot index a value of type %s", seqVal.Type())
		}
		idxVal, err := i.evalExpr(target.Idx, env)
		if err != nil {
			return signal{}, err
		}
		idx, ok := idxVal.(*IntegerValue)
		if !ok {
			return signal{}, i.fail(target.Pos(), "sequence index must be an Integer, got %s", idxVal.Type())
		}
		if idx.Value < 0 || idx.Value >= int64(len(seq.Elements)) {
			return signal{}, i.fail(target.Pos(), "sequence index %d out of range (length %d)", idx.Value, len(seq.Elements))
		}
		seq.Elements[idx.Value] = val
		return signal{}, nil

	default:
		return signal{}, i.fail(a.Pos(), "invalid assignment target %T", a.Target)
	}
}

func (i *Interpreter) execIf(s *ast.If, env *Environment) (signal, error) {
	cond, err := i.evalExpr(s.Cond, env)
	if err != nil {
		return signal{}, err
	}
	if isTruthy(cond) {
		return i.execStmt(s.Then, env)
	}
	if s.Otherwise != nil {
		return i.execStmt(s.Otherwise, env)
	}
	return signal{}, nil
}

func (i *Interpreter) execWhile(s *ast.While, env *Environment) (signal, error) {
	for {
		cond, err := i.evalExpr(s.Cond, env)
		if err != nil {
			return signal{}, err
		}
		if !isTruthy(cond) {
			return signal{}, nil
		}
		sig, err := i.execStmt(s.Body, env)
		if err != nil {
			return signal{}, err
		}
		if sig.isReturn {
			return sig, nil
		}
	}
}

// execFor runs the init part once, then loops: the optional condition is
// treated as true when absent, the body executes, then the optional
// post-expression is evaluated. The init VarDecl binds into the surrounding
// environment; there is no dedicated loop scope (spec.md §4.3).
func (i *Interpreter) execFor(s *ast.For, env *Environment) (signal, error) {
	if s.Init != nil {
		if _, err := i.execStmt(s.Init, env); err != nil {
			return signal{}, err
		}
	}

	for {
		if s.Cond != nil {
			cond, err := i.evalExpr(s.Cond, env)
			if err != nil {
				return signal{}, err
			}
			if !isTruthy(cond) {
				return signal{}, nil
			}
		}

		sig, err := i.execStmt(s.Body, env)
		if err != nil {
			return signal{}, err
		}
		if sig.isReturn {
			return sig, nil
		}

		if s.Post != nil {
			if _, err := i.evalExpr(s.Post, env); err != nil {
				return signal{}, err
			}
		}
	}
}

// execForeach iterates the Sequence named by Seq, rebinding Name on each
// step; the iteration variable persists after the loop (spec.md §4.3).
func (i *Interpreter) execForeach(s *ast.Foreach, env *Environment) (signal, error) {
	seqVal, ok := env.Get(s.Seq)
	if !ok {
		return signal{}, i.fail(s.Pos(), "NameError: undefined name %q", s.Seq)
	}
	seq, ok := seqVal.(*SequenceValue)
	if !ok {
		return signal{}, i.fail(s.Pos(), "cannot iterate a value of type %s", seqVal.Type())
	}

	for _, el := range seq.Elements {
		env.Define(s.Name, el)
		sig, err := i.execStmt(s.Body, env)
		if err != nil {
			return signal{}, err
		}
		if sig.isReturn {
			return sig, nil
		}
	}
	return signal{}, nil
}

func (i *Interpreter) execReturn(s *ast.Return, env *Environment) (signal, error) {
	if s.Value == nil {
		return signal{isReturn: true, value: Null}, nil
	}
	val, err := i.evalExpr(s.Value, env)
	if err != nil {
		return signal{}, err
	}
	return signal{isReturn: true, value: val}, nil
}
