package lexer

import "testing"

func TestNextTokenDigraphsBeforeSingleChar(t *testing.T) {
	tests := []struct {
		input string
		types []TokenType
	}{
		{"==", []TokenType{EQ_EQ}},
		{"!=", []TokenType{NOT_EQ}},
		{"<=", []TokenType{LT_EQ}},
		{">=", []TokenType{GT_EQ}},
		{"&&", []TokenType{AND_AND}},
		{"||", []TokenType{OR_OR}},
		{"=", []TokenType{ASSIGN}},
		{"!", []TokenType{BANG}},
		{"<", []TokenType{LT}},
		{">", []TokenType{GT}},
		{"=!", []TokenType{ASSIGN, BANG}},
	}

	for _, tt := range tests {
		l := New(tt.input)
		for _, want := range tt.types {
			tok := l.NextToken()
			if tok.Type != want {
				t.Fatalf("input %q: expected %s, got %s", tt.input, want, tok.Type)
			}
		}
	}
}

func TestNextTokenIllegalCharacter(t *testing.T) {
	l := New("@")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lexical error, got %d", len(l.Errors()))
	}
}
