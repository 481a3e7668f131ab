package parser

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"

	"texparse/pkg/ast"
	"texparse/pkg/token"
)

var verbRegex = regexp.MustCompile(`^\\verb[^a-zA-Z]`)

// parseSymbol handles a single nucleus (§4.7): a \verb literal, a
// Unicode-expanded character, a registered symbol, an unregistered
// high-codepoint character rendered as text, or nothing at all (EOF, ^,
// _, {, }).
func (p *Parser) parseSymbol() ast.Expr {
	tok := p.fetch()

	if verbRegex.MatchString(tok.Text) {
		return p.parseVerb(tok)
	}

	text := tok.Text
	if text == "" || text == token.EOF {
		return nil
	}

	r, size := utf8.DecodeRuneInString(text)
	if expansion, ok := p.reg.UnicodeSymbols[r]; ok {
		leadingCharText := string(r)
		if _, exists := p.reg.Symbols[p.mode][leadingCharText]; !exists {
			text = expansion + text[size:]
			if p.settings.Strict != StrictIgnore && p.mode == token.Math {
				p.reportNonstrict("unicodeTextInMathMode", "Unicode text character used in math mode", tok)
			}
		}
	}

	base, marks := splitBaseAndMarks(text)
	if len(marks) > 0 {
		switch base {
		case "i":
			base = "ı"
		case "j":
			base = "ȷ"
		}
	}

	var node ast.Expr
	header := ast.Node{Mode: p.mode, Loc: &tok.Loc}

	if entry, ok := p.reg.Symbols[p.mode][base]; ok {
		if p.settings.Strict != StrictIgnore && p.mode == token.Math && p.reg.ExtraLatin[base] {
			p.reportNonstrict("extraLatin", "Accented Latin letter used in math mode without \\text", tok)
		}
		if entry.IsAtomFamily() {
			h := header
			h.NodeType = ast.TypeAtom
			node = &ast.Atom{Node: h, Family: ast.AtomFamily(entry.Group), Text: base}
		} else {
			node = buildLeaf(header, entry.Group, base)
		}
	} else if r >= 0x80 {
		if p.settings.Strict == StrictError {
			p.reportNonstrict("unknownSymbol", "Unrecognized Unicode character", tok)
		} else if p.settings.Strict != StrictIgnore && p.mode == token.Math {
			p.reportNonstrict("unicodeTextInMathMode", "Unicode text character used in math mode", tok)
		}
		h := header
		h.NodeType = ast.TypeTextOrd
		h.Mode = token.Text
		node = &ast.TextOrd{Node: h, Text: base}
	} else {
		return nil
	}

	p.consume()

	for i := len(marks) - 1; i >= 0; i-- {
		mark := marks[i]
		perMode, ok := p.reg.UnicodeAccents[mark]
		if !ok {
			fail(tok, "Unknown accent '%c'", mark)
		}
		label, ok := perMode[p.mode]
		if !ok {
			fail(tok, "Accent '%c' unsupported in %s mode", mark, p.mode)
		}
		node = &ast.Accent{
			Node:       ast.Node{NodeType: ast.TypeAccent, Mode: p.mode, Loc: &tok.Loc},
			Label:      label,
			Base:       node,
			IsStretchy: false,
			IsShifty:   true,
		}
	}

	return node
}

func buildLeaf(header ast.Node, group, text string) ast.Expr {
	switch group {
	case "mathord":
		h := header
		h.NodeType = ast.TypeMathOrd
		return &ast.MathOrd{Node: h, Text: text}
	case "textord":
		h := header
		h.NodeType = ast.TypeTextOrd
		return &ast.TextOrd{Node: h, Text: text}
	case "op":
		h := header
		h.NodeType = ast.TypeOp
		return &ast.Op{Node: h, Name: text, Symbol: true}
	default:
		h := header
		h.NodeType = ast.Type(group)
		return &ast.Leaf{Node: h, Text: text}
	}
}

// parseVerb handles the \verb / \verb* forms (§4.7 item 1). The lexer is
// expected to have already scanned the whole "\verb|...|" literal into a
// single token, the way a TeX lexer special-cases \verb scanning instead
// of tokenizing its body normally.
func (p *Parser) parseVerb(tok token.Token) ast.Expr {
	p.consume()

	body := tok.Text[len(`\verb`):]
	star := strings.HasPrefix(body, "*")
	if star {
		body = body[1:]
	}
	if len(body) < 2 || body[0] != body[len(body)-1] {
		fail(tok, "\\verb assertion failed -- please report what input caused this bug")
	}

	return &ast.Verb{
		Node: ast.Node{NodeType: ast.TypeVerb, Mode: token.Text, Loc: &tok.Loc},
		Body: body[1 : len(body)-1],
		Star: star,
	}
}

// splitBaseAndMarks separates a symbol's leading base rune from a
// trailing run of combining diacritical marks, using grapheme-cluster
// segmentation rather than a hand-rolled combining-mark regex: the base
// rune plus its extending combining marks form exactly one grapheme
// cluster. Text that spans several clusters (a control word such as
// \sum, or a multi-character Unicode expansion) is returned whole, with
// no marks.
func splitBaseAndMarks(text string) (base string, marks []rune) {
	var first string
	clusters := 0
	for cluster := range graphemes.FromString(text) {
		if clusters == 0 {
			first = cluster
		}
		clusters++
	}
	rs := []rune(first)
	if clusters != 1 || len(rs) == 0 {
		return text, nil
	}
	return string(rs[0]), append([]rune{}, rs[1:]...)
}
