package parser

import (
	"testing"

	"github.com/tlscript/tlscript/internal/ast"
)

func TestIntegerLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"5;", 5},
		{"0;", 0},
		{"999;", 999},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := testParser(tt.input)
			program := p.ParseProgram()
			checkParserErrors(t, p)

			if len(program.Statements) != 1 {
				t.Fatalf("program has wrong number of statements. got=%d", len(program.Statements))
			}

			stmt, ok := program.Statements[0].(*ast.ExprStmt)
			if !ok {
				t.Fatalf("statement is not *ast.ExprStmt. got=%T", program.Statements[0])
			}

			num, ok := stmt.Expr.(*ast.NumberLiteral)
			if !ok {
				t.Fatalf("expression is not *ast.NumberLiteral. got=%T", stmt.Expr)
			}
			if num.IsFloat {
				t.Errorf("expected integer literal, got float")
			}
			if num.IntValue != tt.expected {
				t.Errorf("num.IntValue = %d, want %d", num.IntValue, tt.expected)
			}
		})
	}
}

func TestFloatLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"5.5;", 5.5},
		{"0.0;", 0.0},
		{"3.14159;", 3.14159},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := testParser(tt.input)
			program := p.ParseProgram()
			checkParserErrors(t, p)

			stmt := program.Statements[0].(*ast.ExprStmt)
			num, ok := stmt.Expr.(*ast.NumberLiteral)
			if !ok {
				t.Fatalf("expression is not *ast.NumberLiteral. got=%T", stmt.Expr)
			}
			if !num.IsFloat {
				t.Errorf("expected float literal, got integer")
			}
			if num.FltValue != tt.expected {
				t.Errorf("num.FltValue = %v, want %v", num.FltValue, tt.expected)
			}
		})
	}
}

// TestIntegerFollowedByDot ensures `5.` lexes as INT then DOT (no exponent
// or trailing-dot float syntax), matching the lexer's number grammar. A
// dotted chain only starts at an identifier, so the parser rejects the DOT
// that follows the integer literal.
func TestIntegerFollowedByDot(t *testing.T) {
	p := testParser("5.size();")
	p.ParseProgram()

	errs := p.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 parse error, got %d", len(errs))
	}
	if errs[0].Pos.Column != 2 {
		t.Errorf("Pos.Column = %d, want 2 (the '.' after the integer)", errs[0].Pos.Column)
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello";`, "hello"},
		{`"line\n";`, "line\n"},
		{`"";`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := testParser(tt.input)
			program := p.ParseProgram()
			checkParserErrors(t, p)

			stmt := program.Statements[0].(*ast.ExprStmt)
			str, ok := stmt.Expr.(*ast.StringLiteral)
			if !ok {
				t.Fatalf("expression is not *ast.StringLiteral. got=%T", stmt.Expr)
			}
			if str.Value != tt.expected {
				t.Errorf("str.Value = %q, want %q", str.Value, tt.expected)
			}
		})
	}
}

func TestBoolLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true;", true},
		{"false;", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := testParser(tt.input)
			program := p.ParseProgram()
			checkParserErrors(t, p)

			stmt := program.Statements[0].(*ast.ExprStmt)
			b, ok := stmt.Expr.(*ast.BoolLiteral)
			if !ok {
				t.Fatalf("expression is not *ast.BoolLiteral. got=%T", stmt.Expr)
			}
			if b.Value != tt.expected {
				t.Errorf("b.Value = %v, want %v", b.Value, tt.expected)
			}
		})
	}
}
