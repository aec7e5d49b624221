package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tlscript/tlscript/internal/ast"
	"github.com/tlscript/tlscript/internal/lexer"
	"github.com/tlscript/tlscript/internal/parser"
)

// run parses and executes source, returning the program's result, the text
// written to Console, and any error. Used by table-driven tests across this
// package rather than wiring the lexer/parser by hand in every test.
func run(t *testing.T, source string) (Value, string, error) {
	t.Helper()

	l := lexer.New(source)
	p := parser.New(l, source, "test.tl")
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("parse errors: %v", errs)
	}

	var out bytes.Buffer
	i := New(&out, strings.NewReader(""))
	val, err := i.Run(prog, source, "test.tl")
	return val, out.String(), err
}

func mustRun(t *testing.T, source string) (Value, string) {
	t.Helper()
	val, out, err := run(t, source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return val, out
}

// parseExprForTest parses a single expression by wrapping it in a statement,
// since the parser only exposes whole-program parsing.
func parseExprForTest(t *testing.T, expr string) ast.Expression {
	t.Helper()

	source := expr + ";"
	l := lexer.New(source)
	p := parser.New(l, source, "test.tl")
	prog := p.ParseProgram()
	if errs := p.Errors(); len(errs) != 0 {
		t.Fatalf("parse errors for %q: %v", expr, errs)
	}
	if len(prog.Statements) != 1 {
		t.Fatalf("expected exactly one statement, got %d", len(prog.Statements))
	}
	stmt, ok := prog.Statements[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected ExprStmt, got %T", prog.Statements[0])
	}
	return stmt.Expr
}
