package token

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Invalid, "Invalid"},
		{EOF, "EOF"},
		{Ident, "Ident"},
		{Number, "Number"},
		{Arrow, "Arrow"},
		{Percent, "Percent"},
		{Kind(200), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindIsComparison(t *testing.T) {
	comparisons := []Kind{Gt, Lt, GtEq, LtEq, BangEq, EqEq}
	for _, k := range comparisons {
		if !k.IsComparison() {
			t.Errorf("%v.IsComparison() = false, want true", k)
		}
	}

	others := []Kind{Invalid, EOF, Ident, Number, Assign, Arrow, Plus, Minus, Amp, Percent}
	for _, k := range others {
		if k.IsComparison() {
			t.Errorf("%v.IsComparison() = true, want false", k)
		}
	}
}

func TestTokenClassifiers(t *testing.T) {
	if !(Token{Kind: Ident, Text: "foo"}).IsLiteral() {
		t.Error("Ident must be a literal")
	}
	if !(Token{Kind: Number, Text: "42"}).IsLiteral() {
		t.Error("Number must be a literal")
	}
	if (Token{Kind: LParen, Text: "("}).IsLiteral() {
		t.Error("LParen is not a literal")
	}
	if !(Token{Kind: Arrow, Text: "->"}).IsPunctOrOp() {
		t.Error("Arrow must be punctuation")
	}
	if (Token{Kind: Ident, Text: "x"}).IsPunctOrOp() {
		t.Error("Ident is not punctuation")
	}
}
