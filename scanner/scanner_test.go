package scanner

import (
	"testing"

	"github.com/npillmayer/symbo"
)

func TestDefaultToken(t *testing.T) {
	tok := MakeDefaultToken(Ident, "x", symbo.Span{3, 4})
	if tok.TokType() != Ident {
		t.Errorf("expected token type Ident, is %d", tok.TokType())
	}
	if tok.Lexeme() != "x" || tok.Span().Len() != 1 {
		t.Errorf("unexpected token %v", tok)
	}
	var _ symbo.Token = tok
}

func TestLexeme(t *testing.T) {
	inputs := []interface{}{"ln", []byte("ln"), MakeDefaultToken(Ident, "ln", symbo.Span{})}
	for i, in := range inputs {
		if l := Lexeme(in); l != "ln" {
			t.Errorf("#%d: expected lexeme 'ln', got %q", i, l)
		}
	}
}
