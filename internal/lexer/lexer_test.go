package lexer

import (
	"testing"

	"texparse/pkg/token"
)

func TestNextToken(t *testing.T) {
	input := `a+b \frac{1}{2} \\  %comment
x`

	tests := []string{
		"a", "+", "b", " ", `\frac`, "{", "1", "}", "{", "2", "}", " ", `\\`, " ", "x",
	}

	l := New(input)
	for i, want := range tests {
		tok := l.NextToken()
		if tok.Text != want {
			t.Fatalf("token %d: got %q, want %q", i, tok.Text, want)
		}
	}
	if eof := l.NextToken(); !eof.IsEOF() {
		t.Fatalf("expected EOF, got %q", eof.Text)
	}
}

func TestControlWordAbsorbsTrailingSpaces(t *testing.T) {
	l := New(`\alpha    x`)
	if tok := l.NextToken(); tok.Text != `\alpha` {
		t.Fatalf("got %q", tok.Text)
	}
	if tok := l.NextToken(); tok.Text != "x" {
		t.Fatalf("expected trailing spaces absorbed, got %q", tok.Text)
	}
}

func TestControlSymbolIsSingleChar(t *testing.T) {
	l := New(`\,x`)
	if tok := l.NextToken(); tok.Text != `\,` {
		t.Fatalf("got %q", tok.Text)
	}
	if tok := l.NextToken(); tok.Text != "x" {
		t.Fatalf("control symbols don't absorb trailing spaces, got %q", tok.Text)
	}
}

func TestVerbLiteral(t *testing.T) {
	l := New(`\verb|a+b|x`)
	tok := l.NextToken()
	if tok.Text != `\verb|a+b|` {
		t.Fatalf("got %q", tok.Text)
	}
	if tok := l.NextToken(); tok.Text != "x" {
		t.Fatalf("got %q", tok.Text)
	}
}

func TestVerbStarLiteral(t *testing.T) {
	l := New(`\verb*|a|`)
	tok := l.NextToken()
	if tok.Text != `\verb*|a|` {
		t.Fatalf("got %q", tok.Text)
	}
}

func TestControlWordAbsorbsTrailingStar(t *testing.T) {
	l := New(`\operatorname*\limits`)
	if tok := l.NextToken(); tok.Text != `\operatorname*` {
		t.Fatalf("got %q", tok.Text)
	}
	if tok := l.NextToken(); tok.Text != `\limits` {
		t.Fatalf("got %q", tok.Text)
	}
}

func TestActiveCatcodeEmitsLiteralChar(t *testing.T) {
	l := New(`a%b`)
	if tok := l.NextToken(); tok.Text != "a" {
		t.Fatalf("got %q", tok.Text)
	}
	if tok := l.NextToken(); !tok.IsEOF() {
		t.Fatalf("expected %%-comment to swallow rest of line, got %q", tok.Text)
	}

	l2 := New(`a%b`)
	l2.NextToken() // "a"
	l2.SetCatcode('%', token.CatcodeActive)
	if tok := l2.NextToken(); tok.Text != "%" {
		t.Fatalf("active %% should be its own token, got %q", tok.Text)
	}
}

func TestBeginEndGroupRestoresCatcodes(t *testing.T) {
	l := New(`a`)
	l.BeginGroup()
	l.SetCatcode('%', token.CatcodeActive)
	l.EndGroup()
	if l.catcodeOf('%') != token.CatcodeComment {
		t.Fatalf("expected catcode restored to comment, got %v", l.catcodeOf('%'))
	}
}
