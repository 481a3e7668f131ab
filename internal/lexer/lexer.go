// Package lexer is the reference token source the parser package is
// built against (pkg/parser.TokenSource): a rune-at-a-time scanner over
// UTF-8 source text that tracks catcodes, control-sequence scanning
// (including the special \verb literal form), group-scoped catcode and
// macro tables, and mode notifications. It performs no macro expansion
// of its own — every token it emits is exactly the literal text the
// parser sees.
package lexer

import (
	"unicode"

	"texparse/pkg/parser"
	"texparse/pkg/token"
)

// Lexer holds the state for scanning a single source input, in the same
// rune-position/byte-slice style as the teacher's own lexer: a flat rune
// slice plus a cursor, rather than a channel of pre-scanned tokens.
type Lexer struct {
	input []rune
	pos   int
	mode  token.Mode

	catcodes   map[rune]token.Catcode
	catcodeTOS []map[rune]token.Catcode

	macros   *macroTable
	macroTOS []*macroTable
}

// New creates a Lexer over src, ready to serve as a parser.TokenSource.
func New(src string) *Lexer {
	return &Lexer{
		input:    []rune(src),
		mode:     token.Math,
		catcodes: defaultCatcodes(),
		macros:   newMacroTable(),
	}
}

func defaultCatcodes() map[rune]token.Catcode {
	return map[rune]token.Catcode{
		'\\': token.CatcodeEscape,
		'%':  token.CatcodeComment,
	}
}

func (l *Lexer) catcodeOf(r rune) token.Catcode {
	if cc, ok := l.catcodes[r]; ok {
		return cc
	}
	return token.CatcodeOther
}

// SwitchMode records the parser's current mode. The reference lexer's
// scanning does not itself depend on mode (catcodes are identical in
// both), but the hook exists for a fuller macro expander layered on top
// to consult.
func (l *Lexer) SwitchMode(m token.Mode) { l.mode = m }

// BeginGroup/EndGroup snapshot and restore the catcode and macro tables,
// the scope a brace group or \begingroup...\endgroup opens in real TeX.
func (l *Lexer) BeginGroup() {
	cc := make(map[rune]token.Catcode, len(l.catcodes))
	for k, v := range l.catcodes {
		cc[k] = v
	}
	l.catcodeTOS = append(l.catcodeTOS, cc)
	l.macroTOS = append(l.macroTOS, l.macros)
	l.macros = l.macros.clone()
}

func (l *Lexer) EndGroup() {
	n := len(l.catcodeTOS)
	if n == 0 {
		return
	}
	l.catcodes = l.catcodeTOS[n-1]
	l.catcodeTOS = l.catcodeTOS[:n-1]
	l.macros = l.macroTOS[n-1]
	l.macroTOS = l.macroTOS[:n-1]
}

func (l *Lexer) Macros() parser.MacroTable { return l.macros }

func (l *Lexer) SetCatcode(ch rune, code token.Catcode) {
	l.catcodes[ch] = code
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// NextToken scans and returns the next token (§6). Runs of whitespace
// collapse to a single " " token; catcode-comment characters discard
// the rest of the line; catcode-escape characters begin a control
// sequence; every other character, including catcode-active ones,
// becomes its own token, together with any combining marks (Unicode
// categories Mn and Me) that directly follow it.
func (l *Lexer) NextToken() token.Token {
	for {
		if l.pos >= len(l.input) {
			p := token.Pos(l.pos)
			return token.New(token.EOF, p, p)
		}

		r := l.input[l.pos]

		if isSpace(r) {
			start := l.pos
			for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
				l.pos++
			}
			return token.New(" ", token.Pos(start), token.Pos(l.pos))
		}

		switch l.catcodeOf(r) {
		case token.CatcodeComment:
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
			if l.pos < len(l.input) {
				l.pos++ // consume the newline itself
			}
			continue

		case token.CatcodeEscape:
			return l.scanControlSequence()

		default:
			start := l.pos
			l.pos++
			for l.pos < len(l.input) && unicode.In(l.input[l.pos], unicode.Mn, unicode.Me) {
				l.pos++
			}
			return token.New(string(l.input[start:l.pos]), token.Pos(start), token.Pos(l.pos))
		}
	}
}

// scanControlSequence scans a control word (backslash + letters, with an
// optional single trailing "*" absorbed onto the name — the
// \operatorname*/\documentclass*-style starred spelling real TeX/KaTeX
// lexers recognize — then trailing spaces absorbed) or a control symbol
// (backslash + exactly one other character), special-casing \verb's raw
// delimited body.
func (l *Lexer) scanControlSequence() token.Token {
	start := l.pos
	l.pos++ // consume the escape character

	if l.pos >= len(l.input) {
		return token.New(`\`, token.Pos(start), token.Pos(l.pos))
	}

	r := l.input[l.pos]
	if !isASCIILetter(r) {
		l.pos++
		return token.New(`\`+string(r), token.Pos(start), token.Pos(l.pos))
	}

	nameStart := l.pos
	for l.pos < len(l.input) && isASCIILetter(l.input[l.pos]) {
		l.pos++
	}
	name := string(l.input[nameStart:l.pos])

	if name == "verb" {
		return l.scanVerbBody(start)
	}

	if l.pos < len(l.input) && l.input[l.pos] == '*' {
		l.pos++
		name += "*"
	}

	for l.pos < len(l.input) && isSpace(l.input[l.pos]) {
		l.pos++
	}
	return token.New(`\`+name, token.Pos(start), token.Pos(l.pos))
}

// scanVerbBody scans the \verb/\verb* raw literal as a single token: no
// trailing-space absorption, no catcode interpretation of its contents,
// ended by a second occurrence of whatever delimiter rune follows the
// name (§4.7 item 1).
func (l *Lexer) scanVerbBody(start int) token.Token {
	if l.pos < len(l.input) && l.input[l.pos] == '*' {
		l.pos++
	}
	if l.pos >= len(l.input) {
		return token.New(string(l.input[start:l.pos]), token.Pos(start), token.Pos(l.pos))
	}

	delim := l.input[l.pos]
	l.pos++
	for l.pos < len(l.input) && l.input[l.pos] != delim {
		l.pos++
	}
	if l.pos < len(l.input) {
		l.pos++ // consume closing delimiter
	}

	return token.New(string(l.input[start:l.pos]), token.Pos(start), token.Pos(l.pos))
}
