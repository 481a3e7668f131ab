package parser

import (
	"texparse/pkg/ast"
	"texparse/pkg/token"
)

// parseAtom parses a base nucleus plus optional super/subscripts, primes,
// and \limits/\nolimits modifiers (§4.3).
func (p *Parser) parseAtom(breakOnTokenText string) ast.Expr {
	base := p.parseGroup("atom", false, NoGreediness, breakOnTokenText, nil, false)

	if p.mode == token.Text {
		return base
	}

	var sup, sub ast.Expr
	for {
		p.skipSpaces()
		tok := p.fetch()

		switch tok.Text {
		case `\limits`, `\nolimits`:
			limits := tok.Text == `\limits`
			switch b := base.(type) {
			case *ast.Op:
				b.Limits = limits
				b.AlwaysHandleSupSub = true
			case *ast.OperatorName:
				if !b.AlwaysHandleSupSub {
					fail(tok, "Limit controls must follow a math operator")
				}
				b.Limits = limits
			default:
				fail(tok, "Limit controls must follow a math operator")
			}
			p.consume()
			continue

		case "^":
			if sup != nil {
				fail(tok, "Double superscript")
			}
			sup = p.handleSupSubscript("superscript")
			continue

		case "_":
			if sub != nil {
				fail(tok, "Double subscript")
			}
			sub = p.handleSupSubscript("subscript")
			continue

		case "'":
			if sup != nil {
				fail(tok, "Double superscript")
			}
			var primes []ast.Expr
			for p.fetch().Text == "'" {
				pt := p.fetch()
				loc := pt.Loc
				p.consume()
				primes = append(primes, &ast.TextOrd{
					Node: ast.Node{NodeType: ast.TypeTextOrd, Mode: p.mode, Loc: &loc},
					Text: `\prime`,
				})
			}
			if p.fetch().Text == "^" {
				primes = append(primes, p.handleSupSubscript("superscript"))
			}
			sup = ast.NewOrdGroup(p.mode, primes, false)
			continue
		}
		break
	}

	if sup != nil || sub != nil {
		return &ast.SupSub{Node: ast.Node{NodeType: ast.TypeSupSub, Mode: p.mode}, Base: base, Sup: sup, Sub: sub}
	}
	return base
}

// handleSupSubscript fetches the ^ or _ token, consumes it, and parses a
// group with the SUPSUB_GREEDINESS budget (§4.3).
func (p *Parser) handleSupSubscript(name string) ast.Expr {
	tok := p.fetch()
	p.consume()
	group := p.parseGroup(name, false, SupSubGreediness, "", nil, true)
	if group == nil {
		fail(tok, "Expected group after '%s'", tok.Text)
	}
	return group
}
