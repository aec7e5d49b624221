package parser

import (
	"testing"

	"github.com/tlscript/tlscript/internal/ast"
)

func TestVarDecl(t *testing.T) {
	tests := []struct {
		input        string
		declaredType string
		name         string
		hasInit      bool
	}{
		{"int x;", "int", "x", false},
		{"int x = 5;", "int", "x", true},
		{"var total = 0;", "var", "total", true},
		{"List items = List();", "List", "items", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := testParser(tt.input)
			program := p.ParseProgram()
			checkParserErrors(t, p)

			decl, ok := program.Statements[0].(*ast.VarDecl)
			if !ok {
				t.Fatalf("statement is not *ast.VarDecl. got=%T", program.Statements[0])
			}
			if decl.DeclaredType != tt.declaredType {
				t.Errorf("DeclaredType = %q, want %q", decl.DeclaredType, tt.declaredType)
			}
			if decl.Name != tt.name {
				t.Errorf("Name = %q, want %q", decl.Name, tt.name)
			}
			if (decl.Init != nil) != tt.hasInit {
				t.Errorf("hasInit = %v, want %v", decl.Init != nil, tt.hasInit)
			}
		})
	}
}

// TestVarDeclWithGenericArgs ensures `List<int>` style declarations are
// accepted, with the angle-bracket contents discarded (spec.md §4.2).
func TestVarDeclWithGenericArgs(t *testing.T) {
	p := testParser("List<int> items;")
	program := p.ParseProgram()
	checkParserErrors(t, p)

	decl, ok := program.Statements[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("statement is not *ast.VarDecl. got=%T", program.Statements[0])
	}
	if decl.DeclaredType != "List" {
		t.Errorf("DeclaredType = %q, want List", decl.DeclaredType)
	}
	if decl.Name != "items" {
		t.Errorf("Name = %q, want items", decl.Name)
	}
}

func TestFuncDecl(t *testing.T) {
	p := testParser(`int Add(int a, int b) { return a + b; }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	fn, ok := program.Statements[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("statement is not *ast.FuncDecl. got=%T", program.Statements[0])
	}
	if fn.Name != "Add" {
		t.Errorf("Name = %q, want Add", fn.Name)
	}
	if fn.ReturnType != "int" {
		t.Errorf("ReturnType = %q, want int", fn.ReturnType)
	}
	if len(fn.Params) != 2 || fn.Params[0] != "a" || fn.Params[1] != "b" {
		t.Errorf("Params = %v, want [a b]", fn.Params)
	}
	if len(fn.Body.Body) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body.Body))
	}
}

func TestFuncDeclNoParams(t *testing.T) {
	p := testParser(`void Main() { Console.WriteLine("hi"); }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	fn, ok := program.Statements[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("statement is not *ast.FuncDecl. got=%T", program.Statements[0])
	}
	if len(fn.Params) != 0 {
		t.Errorf("expected 0 params, got %d", len(fn.Params))
	}
}

func TestAssignToVarRef(t *testing.T) {
	p := testParser(`x = 10;`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	assign, ok := program.Statements[0].(*ast.Assign)
	if !ok {
		t.Fatalf("statement is not *ast.Assign. got=%T", program.Statements[0])
	}
	if _, ok := assign.Target.(*ast.VarRef); !ok {
		t.Errorf("target is not *ast.VarRef. got=%T", assign.Target)
	}
}

func TestAssignToIndex(t *testing.T) {
	p := testParser(`items[0] = 10;`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	assign, ok := program.Statements[0].(*ast.Assign)
	if !ok {
		t.Fatalf("statement is not *ast.Assign. got=%T", program.Statements[0])
	}
	if _, ok := assign.Target.(*ast.Index); !ok {
		t.Errorf("target is not *ast.Index. got=%T", assign.Target)
	}
}

func TestExprStatement(t *testing.T) {
	p := testParser(`Console.WriteLine("hi");`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	if _, ok := program.Statements[0].(*ast.ExprStmt); !ok {
		t.Fatalf("statement is not *ast.ExprStmt. got=%T", program.Statements[0])
	}
}

func TestIfElse(t *testing.T) {
	p := testParser(`if (x > 0) { y = 1; } else { y = 2; }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("statement is not *ast.If. got=%T", program.Statements[0])
	}
	if stmt.Otherwise == nil {
		t.Fatal("expected else branch, got nil")
	}
}

func TestIfNoElse(t *testing.T) {
	p := testParser(`if (x > 0) { y = 1; }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.If)
	if stmt.Otherwise != nil {
		t.Fatal("expected no else branch")
	}
}

func TestWhile(t *testing.T) {
	p := testParser(`while (i < 10) { i = i + 1; }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.While)
	if !ok {
		t.Fatalf("statement is not *ast.While. got=%T", program.Statements[0])
	}
	if stmt.Cond.String() != "(i < 10)" {
		t.Errorf("cond = %q", stmt.Cond.String())
	}
}

func TestForFullHeader(t *testing.T) {
	p := testParser(`for (int i = 0; i < 10; i) { Console.WriteLine(i); }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("statement is not *ast.For. got=%T", program.Statements[0])
	}
	if _, ok := stmt.Init.(*ast.VarDecl); !ok {
		t.Errorf("init is not *ast.VarDecl. got=%T", stmt.Init)
	}
	if stmt.Cond == nil {
		t.Error("expected cond, got nil")
	}
	if stmt.Post == nil {
		t.Error("expected post, got nil")
	}
}

func TestForEmptyHeader(t *testing.T) {
	p := testParser(`for (;;) { Console.WriteLine("loop"); }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.For)
	if !ok {
		t.Fatalf("statement is not *ast.For. got=%T", program.Statements[0])
	}
	if stmt.Init != nil || stmt.Cond != nil || stmt.Post != nil {
		t.Error("expected all for-header parts nil")
	}
}

func TestForExprInit(t *testing.T) {
	p := testParser(`for (i; i < 10; i) { Console.WriteLine(i); }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.For)
	if _, ok := stmt.Init.(*ast.ExprStmt); !ok {
		t.Errorf("init is not *ast.ExprStmt. got=%T", stmt.Init)
	}
}

func TestForeach(t *testing.T) {
	p := testParser(`foreach (item in items) { Console.WriteLine(item); }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt, ok := program.Statements[0].(*ast.Foreach)
	if !ok {
		t.Fatalf("statement is not *ast.Foreach. got=%T", program.Statements[0])
	}
	if stmt.Name != "item" || stmt.Seq != "items" {
		t.Errorf("got name=%q seq=%q", stmt.Name, stmt.Seq)
	}
}

func TestForeachWithTypeKeyword(t *testing.T) {
	p := testParser(`foreach (var item in items) { Console.WriteLine(item); }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	stmt := program.Statements[0].(*ast.Foreach)
	if stmt.Name != "item" {
		t.Errorf("name = %q, want item", stmt.Name)
	}
}

func TestReturnWithValue(t *testing.T) {
	p := testParser(`int Main() { return 5; }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	fn := program.Statements[0].(*ast.FuncDecl)
	ret, ok := fn.Body.Body[0].(*ast.Return)
	if !ok {
		t.Fatalf("statement is not *ast.Return. got=%T", fn.Body.Body[0])
	}
	if ret.Value == nil {
		t.Fatal("expected return value, got nil")
	}
}

func TestReturnBare(t *testing.T) {
	p := testParser(`void Main() { return; }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	fn := program.Statements[0].(*ast.FuncDecl)
	ret := fn.Body.Body[0].(*ast.Return)
	if ret.Value != nil {
		t.Fatal("expected no return value")
	}
}

func TestUsingDirectiveDiscarded(t *testing.T) {
	p := testParser(`using System.Collections; Console.WriteLine("hi");`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	if len(program.Statements) != 1 {
		t.Fatalf("expected using directive to produce no node, got %d statements", len(program.Statements))
	}
}

func TestNamespaceFlattened(t *testing.T) {
	p := testParser(`namespace App { int x = 1; }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 top-level statement, got %d", len(program.Statements))
	}
	block, ok := program.Statements[0].(*ast.Block)
	if !ok {
		t.Fatalf("statement is not *ast.Block. got=%T", program.Statements[0])
	}
	if len(block.Body) != 1 {
		t.Fatalf("expected 1 statement inside namespace, got %d", len(block.Body))
	}
}

func TestNestedBlock(t *testing.T) {
	p := testParser(`{ int x = 1; { int y = 2; } }`)
	program := p.ParseProgram()
	checkParserErrors(t, p)

	block, ok := program.Statements[0].(*ast.Block)
	if !ok {
		t.Fatalf("statement is not *ast.Block. got=%T", program.Statements[0])
	}
	if len(block.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(block.Body))
	}
}
