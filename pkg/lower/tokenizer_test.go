package lower

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	input := `total = a1 + 42*(b_c - 7) / x`

	// '=' is not part of an expression
	if _, err := Tokenize(input); !errors.Is(err, ErrInvalidCharacter) {
		t.Fatalf("expected ErrInvalidCharacter for '=', got %v", err)
	}

	input = `a1 + 42*(b_c - 7) / x`
	tests := []struct {
		expectedKind Kind
		expectedText string
		expectedPos  int
	}{
		{Ident, "a1", 0},
		{Operator, "+", 3},
		{IntLit, "42", 5},
		{Operator, "*", 7},
		{LParen, "(", 8},
		{Ident, "b_c", 9},
		{Operator, "-", 13},
		{IntLit, "7", 15},
		{RParen, ")", 16},
		{Operator, "/", 18},
		{Ident, "x", 20},
	}

	toks, err := Tokenize(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != len(tests) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(tests), toks)
	}
	for i, tt := range tests {
		tok := toks[i]
		if tok.Kind != tt.expectedKind {
			t.Errorf("tests[%d] - kind wrong. expected=%q, got=%q", i, tt.expectedKind, tok.Kind)
		}
		if tok.Text != tt.expectedText {
			t.Errorf("tests[%d] - text wrong. expected=%q, got=%q", i, tt.expectedText, tok.Text)
		}
		if tok.Pos != tt.expectedPos {
			t.Errorf("tests[%d] - pos wrong. expected=%d, got=%d", i, tt.expectedPos, tok.Pos)
		}
	}
}

func TestTokenizeLongestMatch(t *testing.T) {
	toks, err := Tokenize("abc123 123abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := make([]string, len(toks))
	for i, tok := range toks {
		got[i] = tok.Kind.String() + ":" + tok.Text
	}
	want := []string{"IDENT:abc123", "INT:123", "IDENT:abc"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeWhitespaceOnly(t *testing.T) {
	toks, err := Tokenize(" \t\n ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 0 {
		t.Errorf("got %d tokens, want 0", len(toks))
	}
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	tests := []struct {
		expr string
		char rune
		pos  int
	}{
		{"a % b", '%', 2},
		{"1.5", '.', 1},
		{"x = 3", '=', 2},
		{"é + 1", 'é', 0},
		{"a + b;", ';', 5},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			toks, err := Tokenize(tt.expr)
			if toks != nil {
				t.Errorf("expected no tokens on error, got %v", toks)
			}
			var ce *CharError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *CharError, got %v", err)
			}
			if ce.Char != tt.char {
				t.Errorf("char = %q, want %q", ce.Char, tt.char)
			}
			if ce.Pos != tt.pos {
				t.Errorf("pos = %d, want %d", ce.Pos, tt.pos)
			}
			if !errors.Is(err, ErrInvalidCharacter) {
				t.Errorf("expected errors.Is(err, ErrInvalidCharacter)")
			}
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	exprs := []string{"a + b * c", "(x - 1) / y2", "42", ""}
	for _, expr := range exprs {
		first, err1 := Tokenize(expr)
		second, err2 := Tokenize(expr)
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected errors: %v, %v", err1, err2)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Tokenize(%q) not idempotent (-first +second):\n%s", expr, diff)
		}
	}
}
