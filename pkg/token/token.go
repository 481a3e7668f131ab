// Package token defines the token and mode types shared between the token
// source (lexer/macro expander) and the parser.
package token

import "fmt"

// Mode drives which symbols and functions are permitted, whether space
// tokens are significant, and certain text normalizations.
type Mode int

const (
	Math Mode = iota
	Text
)

func (m Mode) String() string {
	if m == Math {
		return "math"
	}
	return "text"
}

// Catcode is a TeX-style character category code. The core parser only
// ever inspects or mutates the catcode of a handful of characters (the URL
// grammar needs "%" switched from comment to active and back), so only the
// codes that distinction requires are named.
type Catcode int

const (
	CatcodeEscape  Catcode = 0
	CatcodeActive  Catcode = 13
	CatcodeComment Catcode = 14
	CatcodeOther   Catcode = 12
)

// EOF is the sentinel text for the end-of-input token.
const EOF = "EOF"

// Pos is an offset into the macro-expanded input stream; the reference
// lexer counts it in runes, not bytes.
type Pos int

// Range is a half-open span [Start, End) of source positions.
type Range struct {
	Start Pos
	End   Pos
}

// Token bears a text payload — the control-sequence name, a single
// character, or the sentinel EOF — and the source range it came from.
type Token struct {
	Text string
	Loc  Range
}

func New(text string, start, end Pos) Token {
	return Token{Text: text, Loc: Range{Start: start, End: end}}
}

// IsEOF reports whether this token is the end-of-stream sentinel.
func (t Token) IsEOF() bool { return t.Text == EOF }

// Range returns a composite token spanning from t through other, carrying
// the given textual payload. Used to build tokens out of several consumed
// tokens (string groups, regex-delimited groups, ligature runs).
func (t Token) Range(other Token, text string) Token {
	start, end := t.Loc.Start, t.Loc.End
	if other.Loc.Start < start {
		start = other.Loc.Start
	}
	if other.Loc.End > end {
		end = other.Loc.End
	}
	return Token{Text: text, Loc: Range{Start: start, End: end}}
}

func (t Token) String() string {
	return fmt.Sprintf("%q@[%d,%d)", t.Text, t.Loc.Start, t.Loc.End)
}
