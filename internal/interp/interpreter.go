package interp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tlscript/tlscript/internal/ast"
	"github.com/tlscript/tlscript/internal/errors"
	"github.com/tlscript/tlscript/internal/lexer"
)

// Interpreter walks a Program against a global Environment, a hoisted
// function table, and the fixed standard library (spec.md §4.3).
type Interpreter struct {
	global    *Environment
	functions map[string]*ast.FuncDecl
	stdlib    map[string]Value

	out io.Writer
	in  *bufio.Reader

	source string
	file   string
}

// New creates an Interpreter that writes Console.WriteLine output to out and
// reads Console.ReadLine input from in.
func New(out io.Writer, in io.Reader) *Interpreter {
	i := &Interpreter{
		global:    NewEnvironment(),
		functions: make(map[string]*ast.FuncDecl),
		out:       out,
		in:        bufio.NewReader(in),
	}
	i.stdlib = i.buildStdlib()
	return i
}

// Run executes prog in two phases, per spec.md §4.3: hoist every top-level
// FuncDecl into the function table, then execute every other top-level
// statement in declaration order. If a function named Main is registered, it
// is called afterward with zero arguments and its result becomes the
// program's result.
func (i *Interpreter) Run(prog *ast.Program, source, file string) (Value, error) {
	i.source = source
	i.file = file

	for _, stmt := range prog.Statements {
		if fn, ok := stmt.(*ast.FuncDecl); ok {
			i.functions[fn.Name] = fn
		}
	}

	for _, stmt := range prog.Statements {
		if _, ok := stmt.(*ast.FuncDecl); ok {
			continue
		}
		sig, err := i.execStmt(stmt, i.global)
		if err != nil {
			return nil, err
		}
		if sig.isReturn {
			return sig.value, nil
		}
	}

	if _, ok := i.functions["Main"]; ok {
		return i.callUserFunction("Main", nil, stmt0Pos())
	}

	return Null, nil
}

// stmt0Pos is the zero position used for the synthetic call to Main, which
// has no call-site token of its own.
func stmt0Pos() lexer.Position {
	return lexer.Position{Line: 1, Column: 1}
}

// signal is the non-local control-flow carrier a Return statement raises;
// the nearest enclosing function call catches it (spec.md §4.3).
type signal struct {
	isReturn bool
	value    Value
}

// fail constructs a runtime CompilerError positioned at pos.
func (i *Interpreter) fail(pos lexer.Position, format string, args ...any) error {
	return errors.New(errors.Runtime, pos, fmt.Sprintf(format, args...), i.source, i.file)
}
