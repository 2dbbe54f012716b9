package lexer_test

import (
	"testing"

	"github.com/uguisu-dev/uguisu/internal/lexer"
	"github.com/uguisu-dev/uguisu/internal/token"
)

func allTokens(input string) []token.Token {
	l := lexer.New(input)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestNextTokenBasics(t *testing.T) {
	input := `fn main() { var x: number = 1 + 2 * 3; }`
	want := []token.Type{
		token.FN, token.IDENT, token.LPAREN, token.RPAREN, token.LBRACE,
		token.VAR, token.IDENT, token.COLON, token.IDENT, token.ASSIGN,
		token.NUMBER, token.PLUS, token.NUMBER, token.ASTERISK, token.NUMBER,
		token.SEMI, token.RBRACE, token.EOF,
	}
	toks := allTokens(input)
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestCompoundAssignOperators(t *testing.T) {
	cases := map[string]token.Type{
		"+=": token.PLUS_ASSIGN,
		"-=": token.MINUS_ASSIGN,
		"*=": token.ASTERISK_ASSIGN,
		"/=": token.SLASH_ASSIGN,
		"%=": token.PERCENT_ASSIGN,
	}
	for lexeme, want := range cases {
		toks := allTokens(lexeme)
		if toks[0].Type != want {
			t.Errorf("%q: got %s, want %s", lexeme, toks[0].Type, want)
		}
	}
}

func TestLineCommentsAreSkipped(t *testing.T) {
	toks := allTokens("1 // a trailing remark\n+ 2")
	want := []token.Type{token.NUMBER, token.PLUS, token.NUMBER, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, tt := range want {
		if toks[i].Type != tt {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Type, tt)
		}
	}
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	toks := allTokens("loop loopy")
	if toks[0].Type != token.LOOP {
		t.Errorf("got %s, want LOOP", toks[0].Type)
	}
	if toks[1].Type != token.IDENT {
		t.Errorf("got %s, want IDENT (loopy should not be a keyword)", toks[1].Type)
	}
}

func TestNonASCIIIdentifier(t *testing.T) {
	toks := allTokens("var 変数 = 1;")
	if toks[1].Type != token.IDENT || toks[1].Lexeme != "変数" {
		t.Errorf("got %+v, want IDENT %q", toks[1], "変数")
	}
}

func TestOffsetsTrackByteposition(t *testing.T) {
	toks := allTokens("ab cd")
	if toks[0].Offset != 0 {
		t.Errorf("first token offset = %d, want 0", toks[0].Offset)
	}
	if toks[1].Offset != 3 {
		t.Errorf("second token offset = %d, want 3", toks[1].Offset)
	}
}

func TestIllegalCharacter(t *testing.T) {
	toks := allTokens("@")
	if toks[0].Type != token.ILLEGAL {
		t.Errorf("got %s, want ILLEGAL", toks[0].Type)
	}
}
