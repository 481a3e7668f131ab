package parser

import (
	"regexp"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"texparse/pkg/ast"
	"texparse/pkg/registry"
	"texparse/pkg/token"
)

var (
	colorRegex     = regexp.MustCompile(`(?i)^(#[a-f0-9]{3}|#?[a-f0-9]{6}|[a-z]+)$`)
	sizeRawRegex   = regexp.MustCompile(`^[-+]? *(?:$|\d+|\d+\.\d*|\.\d*) *[a-z]{0,2} *$`)
	sizeValueRegex = regexp.MustCompile(`([-+]?) *(\d+(?:\.\d*)?|\.\d+) *([a-z]{2})`)
	urlEscapeRegex = regexp.MustCompile(`\\([#$%&~_^{}])`)
)

var validSizeUnits = map[string]bool{
	"pt": true, "mm": true, "cm": true, "in": true, "bp": true,
	"pc": true, "dd": true, "cc": true, "sp": true, "em": true, "ex": true, "mu": true,
}

// ParseGroupOfType dispatches to the specialized argument grammar for
// argType (§4.6), satisfying registry.Parser so handlers may parse nested
// typed arguments of their own (e.g. \left's closing delimiter after
// \right).
func (p *Parser) ParseGroupOfType(name string, argType registry.ArgType, optional bool, greediness int, consumeSpaces bool) ast.Expr {
	switch argType {
	case registry.ArgColor:
		if consumeSpaces {
			p.skipSpaces()
		}
		return p.parseColorGroup(optional)

	case registry.ArgSize:
		if consumeSpaces {
			p.skipSpaces()
		}
		return p.parseSizeGroup(optional)

	case registry.ArgURL:
		return p.parseUrlGroup(optional, consumeSpaces)

	case registry.ArgMath:
		m := token.Math
		return p.parseGroup(name, optional, greediness, "", &m, consumeSpaces)

	case registry.ArgText:
		m := token.Text
		return p.parseGroup(name, optional, greediness, "", &m, consumeSpaces)

	case registry.ArgHBox:
		m := token.Text
		body := p.parseGroup(name, optional, greediness, "", &m, consumeSpaces)
		if body == nil {
			return nil
		}
		return &ast.Styling{
			Node:  ast.Node{NodeType: ast.TypeStyling, Mode: p.mode},
			Style: "text",
			Body:  []ast.Expr{body},
		}

	case registry.ArgRaw:
		if consumeSpaces {
			p.skipSpaces()
		}
		if optional && p.fetch().Text == "{" {
			return nil
		}
		tok := p.parseStringGroup("raw", optional, true)
		if tok == nil {
			return nil
		}
		return &ast.Raw{Node: ast.Node{NodeType: ast.TypeRaw, Mode: p.mode, Loc: &tok.Loc}, Str: tok.Text}

	case registry.ArgOriginal, "":
		return p.parseGroup(name, optional, greediness, "", nil, consumeSpaces)

	default:
		failNoToken("Unknown group type: %s", argType)
		return nil
	}
}

// parseStringGroup accumulates raw tokens between a delimiter pair
// ({}/[]) into a single composite token (§4.6). With raw set, nested
// matched braces are tolerated by depth-counting rather than ending the
// group at the first closer.
func (p *Parser) parseStringGroup(modeName string, optional bool, raw bool) *token.Token {
	opener, closer := "{", "}"
	if optional {
		opener, closer = "[", "]"
	}

	tok := p.fetch()
	if tok.Text != opener {
		if optional {
			return nil
		}
		if raw && !tok.IsEOF() && tok.Text != "{" && tok.Text != "}" && tok.Text != "[" && tok.Text != "]" {
			p.consume()
			return &tok
		}
		fail(tok, "Expected '%s', got '%s'", opener, tok.Text)
	}

	restore := p.switchMode(token.Text)
	defer restore()

	openTok := tok
	p.consume()

	var collected []token.Token
	nest := 0
	for {
		cur := p.fetch()
		if cur.IsEOF() {
			fail(cur, "Unexpected end of input in %s", modeName)
		}
		if cur.Text == closer {
			if nest == 0 {
				break
			}
			nest--
		} else if raw && cur.Text == opener {
			nest++
		}
		collected = append(collected, cur)
		p.consume()
	}

	closeTok := p.fetch()
	p.consume()

	result := openTok.Range(closeTok, joinTokenText(collected))
	return &result
}

// parseRegexGroup is maximal-munch (§8): it keeps consuming tokens while
// the accumulated text still matches regex, and stops at the first token
// that would break the match.
func (p *Parser) parseRegexGroup(re *regexp.Regexp, modeName string) *token.Token {
	restore := p.switchMode(token.Text)
	defer restore()

	var collected []token.Token
	var acc strings.Builder

	for {
		tok := p.fetch()
		if tok.IsEOF() {
			break
		}
		candidate := acc.String() + tok.Text
		if !re.MatchString(candidate) {
			break
		}
		acc.WriteString(tok.Text)
		collected = append(collected, tok)
		p.consume()
	}

	if len(collected) == 0 {
		tok := p.fetch()
		fail(tok, "Invalid %s: '%s'", modeName, tok.Text)
	}

	result := collected[0].Range(collected[len(collected)-1], acc.String())
	return &result
}

func joinTokenText(toks []token.Token) string {
	var b strings.Builder
	for _, t := range toks {
		b.WriteString(t.Text)
	}
	return b.String()
}

// parseColorGroup parses a color argument (§4.6). A bare six-hex-digit
// string without "#" is prefixed with one; a leading-# six-digit value is
// validated (never rewritten) through go-colorful; anything else matching
// colorRegex — including 3-digit shorthand hex and bare CSS-style names —
// is passed through unmodified, per the §8 worked example
// (`\color{#fff} x` -> color-token "#fff").
func (p *Parser) parseColorGroup(optional bool) ast.Expr {
	tok := p.parseStringGroup("color", optional, false)
	if tok == nil {
		return nil
	}
	if !colorRegex.MatchString(tok.Text) {
		fail(*tok, "Invalid color: '%s'", tok.Text)
	}

	colorStr := tok.Text
	if len(colorStr) == 6 && !strings.HasPrefix(colorStr, "#") {
		colorStr = "#" + colorStr
	}
	if len(colorStr) == 7 && strings.HasPrefix(colorStr, "#") {
		if _, err := colorful.Hex(colorStr); err != nil {
			fail(*tok, "Invalid color: '%s'", tok.Text)
		}
	}

	return &ast.ColorToken{
		Node:     ast.Node{NodeType: ast.TypeColorToken, Mode: p.mode, Loc: &tok.Loc},
		ColorStr: colorStr,
	}
}

// parseSizeGroup parses a {number, unit} dimension argument (§4.6).
func (p *Parser) parseSizeGroup(optional bool) ast.Expr {
	var tok *token.Token
	if !optional && p.fetch().Text != "{" {
		tok = p.parseRegexGroup(sizeRawRegex, "size")
	} else {
		tok = p.parseStringGroup("size", optional, false)
	}
	if tok == nil {
		return nil
	}

	text := tok.Text
	isBlank := false
	if !optional && strings.TrimSpace(text) == "" {
		text = "0pt"
		isBlank = true
	}

	m := sizeValueRegex.FindStringSubmatch(text)
	if m == nil {
		fail(*tok, "Invalid size: '%s'", text)
	}
	unit := m[3]
	if !validSizeUnits[unit] {
		fail(*tok, "Invalid unit: '%s'", unit)
	}
	num, _ := strconv.ParseFloat(m[1]+m[2], 64)

	return &ast.Size{
		Node:    ast.Node{NodeType: ast.TypeSize, Mode: p.mode, Loc: &tok.Loc},
		Number:  num,
		Unit:    unit,
		IsBlank: isBlank,
	}
}

// parseUrlGroup parses a \url{...} argument (§4.6), temporarily making "%"
// active so it reaches the raw string group instead of being swallowed as
// a comment.
func (p *Parser) parseUrlGroup(optional bool, consumeSpaces bool) ast.Expr {
	p.setCatcode('%', token.CatcodeActive)
	defer p.setCatcode('%', token.CatcodeComment)

	if consumeSpaces {
		p.skipSpaces()
	}

	tok := p.parseStringGroup("url", optional, true)
	if tok == nil {
		return nil
	}

	unescaped := urlEscapeRegex.ReplaceAllString(tok.Text, "$1")
	return &ast.URL{Node: ast.Node{NodeType: ast.TypeURL, Mode: p.mode, Loc: &tok.Loc}, URL: unescaped}
}
