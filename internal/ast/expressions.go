package ast

import (
	"strconv"
	"strings"

	"github.com/tlscript/tlscript/internal/lexer"
)

// NumberLiteral is an integer or floating-point literal. IsFloat records
// whether the source lexeme carried a decimal point, per spec.md §3.
type NumberLiteral struct {
	Token    lexer.Token
	IntValue int64
	FltValue float64
	IsFloat  bool
}

func (n *NumberLiteral) expressionNode()      {}
func (n *NumberLiteral) TokenLiteral() string { return n.Token.Literal }
func (n *NumberLiteral) Pos() lexer.Position  { return n.Token.Pos }
func (n *NumberLiteral) String() string       { return n.Token.Literal }

// StringLiteral holds the already-escape-decoded contents of a string token.
type StringLiteral struct {
	Token lexer.Token
	Value string
}

func (s *StringLiteral) expressionNode()      {}
func (s *StringLiteral) TokenLiteral() string { return s.Token.Literal }
func (s *StringLiteral) Pos() lexer.Position  { return s.Token.Pos }
func (s *StringLiteral) String() string       { return strconv.Quote(s.Value) }

// BoolLiteral is the `true`/`false` literal.
type BoolLiteral struct {
	Token lexer.Token
	Value bool
}

func (b *BoolLiteral) expressionNode()      {}
func (b *BoolLiteral) TokenLiteral() string { return b.Token.Literal }
func (b *BoolLiteral) Pos() lexer.Position  { return b.Token.Pos }
func (b *BoolLiteral) String() string       { return b.Token.Literal }

// VarRef references a (possibly dotted) name, e.g. `x` or `Console.WriteLine`.
type VarRef struct {
	Token lexer.Token // the first identifier token of the dotted chain
	Name  string       // the full dotted name, joined with "."
}

func (v *VarRef) expressionNode()      {}
func (v *VarRef) TokenLiteral() string { return v.Token.Literal }
func (v *VarRef) Pos() lexer.Position  { return v.Token.Pos }
func (v *VarRef) String() string       { return v.Name }

// Call is a function or method invocation against a dotted callee name.
type Call struct {
	Token  lexer.Token
	Callee string
	Args   []Expression
}

func (c *Call) expressionNode()      {}
func (c *Call) TokenLiteral() string { return c.Token.Literal }
func (c *Call) Pos() lexer.Position  { return c.Token.Pos }
func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return c.Callee + "(" + strings.Join(args, ", ") + ")"
}

// Index is a zero-based sequence index expression: `target[index]`.
type Index struct {
	Token  lexer.Token
	Target string
	Idx    Expression
}

func (ix *Index) expressionNode()      {}
func (ix *Index) TokenLiteral() string { return ix.Token.Literal }
func (ix *Index) Pos() lexer.Position  { return ix.Token.Pos }
func (ix *Index) String() string       { return ix.Target + "[" + ix.Idx.String() + "]" }

// Unary is a prefix operator application: -x, !x, +x.
type Unary struct {
	Token lexer.Token
	Op    string
	Expr  Expression
}

func (u *Unary) expressionNode()      {}
func (u *Unary) TokenLiteral() string { return u.Token.Literal }
func (u *Unary) Pos() lexer.Position  { return u.Token.Pos }
func (u *Unary) String() string       { return "(" + u.Op + u.Expr.String() + ")" }

// Binary is a left-associative binary operator application.
type Binary struct {
	Token lexer.Token
	Op    string
	Left  Expression
	Right Expression
}

func (b *Binary) expressionNode()      {}
func (b *Binary) TokenLiteral() string { return b.Token.Literal }
func (b *Binary) Pos() lexer.Position  { return b.Token.Pos }
func (b *Binary) String() string {
	return "(" + b.Left.String() + " " + b.Op + " " + b.Right.String() + ")"
}
