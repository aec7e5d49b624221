package ast

import (
	"strings"

	"github.com/tlscript/tlscript/internal/lexer"
)

// Block is a brace-delimited sequence of statements sharing one environment.
type Block struct {
	Token lexer.Token // the '{' token
	Body  []Statement
}

func (b *Block) statementNode()       {}
func (b *Block) TokenLiteral() string { return b.Token.Literal }
func (b *Block) Pos() lexer.Position  { return b.Token.Pos }
func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, s := range b.Body {
		sb.WriteString("  " + s.String() + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

// VarDecl declares a local name, optionally initialized. DeclaredType is
// retained for the AST dump but is never enforced (spec.md Non-goals).
type VarDecl struct {
	Token        lexer.Token
	DeclaredType string
	Name         string
	Init         Expression // nil if uninitialized
}

func (v *VarDecl) statementNode()       {}
func (v *VarDecl) TokenLiteral() string { return v.Token.Literal }
func (v *VarDecl) Pos() lexer.Position  { return v.Token.Pos }
func (v *VarDecl) String() string {
	if v.Init == nil {
		return v.DeclaredType + " " + v.Name + ";"
	}
	return v.DeclaredType + " " + v.Name + " = " + v.Init.String() + ";"
}

// Assign stores Value into Target, which is either a *VarRef or an *Index.
type Assign struct {
	Token  lexer.Token
	Target Expression
	Value  Expression
}

func (a *Assign) statementNode()       {}
func (a *Assign) TokenLiteral() string { return a.Token.Literal }
func (a *Assign) Pos() lexer.Position  { return a.Token.Pos }
func (a *Assign) String() string {
	return a.Target.String() + " = " + a.Value.String() + ";"
}

// ExprStmt evaluates Expr and discards the result.
type ExprStmt struct {
	Token lexer.Token
	Expr  Expression
}

func (e *ExprStmt) statementNode()       {}
func (e *ExprStmt) TokenLiteral() string { return e.Token.Literal }
func (e *ExprStmt) Pos() lexer.Position  { return e.Token.Pos }
func (e *ExprStmt) String() string       { return e.Expr.String() + ";" }

// If is a conditional statement with an optional else branch.
type If struct {
	Token     lexer.Token
	Cond      Expression
	Then      Statement
	Otherwise Statement // nil if no else clause
}

func (i *If) statementNode()       {}
func (i *If) TokenLiteral() string { return i.Token.Literal }
func (i *If) Pos() lexer.Position  { return i.Token.Pos }
func (i *If) String() string {
	s := "if (" + i.Cond.String() + ") " + i.Then.String()
	if i.Otherwise != nil {
		s += " else " + i.Otherwise.String()
	}
	return s
}

// While is a condition-first loop.
type While struct {
	Token lexer.Token
	Cond  Expression
	Body  Statement
}

func (w *While) statementNode()       {}
func (w *While) TokenLiteral() string { return w.Token.Literal }
func (w *While) Pos() lexer.Position  { return w.Token.Pos }
func (w *While) String() string {
	return "while (" + w.Cond.String() + ") " + w.Body.String()
}

// For is a C-style three-part loop. Each part may be nil.
type For struct {
	Token lexer.Token
	Init  Statement // *VarDecl or *ExprStmt, or nil
	Cond  Expression
	Post  Expression
	Body  Statement
}

func (f *For) statementNode()       {}
func (f *For) TokenLiteral() string { return f.Token.Literal }
func (f *For) Pos() lexer.Position  { return f.Token.Pos }
func (f *For) String() string {
	init, cond, post := "", "", ""
	if f.Init != nil {
		init = f.Init.String()
	}
	if f.Cond != nil {
		cond = f.Cond.String()
	}
	if f.Post != nil {
		post = f.Post.String()
	}
	return "for (" + init + " " + cond + "; " + post + ") " + f.Body.String()
}

// Foreach iterates Seq, rebinding Name on each step.
type Foreach struct {
	Token lexer.Token
	Name  string
	Seq   string
	Body  Statement
}

func (fe *Foreach) statementNode()       {}
func (fe *Foreach) TokenLiteral() string { return fe.Token.Literal }
func (fe *Foreach) Pos() lexer.Position  { return fe.Token.Pos }
func (fe *Foreach) String() string {
	return "foreach (" + fe.Name + " in " + fe.Seq + ") " + fe.Body.String()
}

// Return unwinds the nearest enclosing function call with an optional value.
type Return struct {
	Token lexer.Token
	Value Expression // nil if bare `return;`
}

func (r *Return) statementNode()       {}
func (r *Return) TokenLiteral() string { return r.Token.Literal }
func (r *Return) Pos() lexer.Position  { return r.Token.Pos }
func (r *Return) String() string {
	if r.Value == nil {
		return "return;"
	}
	return "return " + r.Value.String() + ";"
}

// FuncDecl declares a top-level (or nested) named function.
type FuncDecl struct {
	Token      lexer.Token
	Name       string
	Params     []string
	Body       *Block
	ReturnType string
}

func (f *FuncDecl) statementNode()       {}
func (f *FuncDecl) TokenLiteral() string { return f.Token.Literal }
func (f *FuncDecl) Pos() lexer.Position  { return f.Token.Pos }
func (f *FuncDecl) String() string {
	return f.ReturnType + " " + f.Name + "(" + strings.Join(f.Params, ", ") + ") " + f.Body.String()
}
