package parser

import (
	"texparse/pkg/ast"
	"texparse/pkg/token"
)

func isTerminator(text, breakOnTokenText string) bool {
	switch text {
	case "}", `\endgroup`, `\end`, `\right`, "&":
		return true
	}
	return breakOnTokenText != "" && text == breakOnTokenText
}

func (p *Parser) skipSpaces() {
	for p.fetch().Text == " " {
		p.consume()
	}
}

// ParseExpression iterates atoms until a terminator, an infix-flagged
// function (when breakOnInfix), or the caller-supplied breakOnTokenText is
// reached (§4.2). It satisfies registry.Parser so function handlers can
// recurse into it via their Context.
func (p *Parser) ParseExpression(breakOnInfix bool, breakOnTokenText string) []ast.Expr {
	var body []ast.Expr

	for {
		if p.mode == token.Math {
			p.skipSpaces()
		}

		tok := p.fetch()
		if isTerminator(tok.Text, breakOnTokenText) {
			break
		}
		if breakOnInfix {
			if spec, ok := p.reg.Lookup(tok.Text); ok && spec.Infix {
				break
			}
		}

		node := p.parseAtom(breakOnTokenText)
		if node == nil {
			break
		}
		body = append(body, node)
	}

	if p.mode == token.Text {
		body = formLigatures(body)
	}

	return p.handleInfixNodes(body)
}

// handleInfixNodes implements the infix rewrite (§4.2): at most one Infix
// node may appear per sibling list; it is spliced out and the list is
// partitioned into numerator/denominator, wrapped in a call to the
// replacement function.
//
// Per the REDESIGN FLAGS / open questions, an Infix node with an empty
// ReplaceWith is treated as a registry error rather than silently skipped.
func (p *Parser) handleInfixNodes(body []ast.Expr) []ast.Expr {
	overIndex := -1
	for i, n := range body {
		if inf, ok := n.(*ast.Infix); ok {
			if overIndex != -1 {
				fail(inf.Token, "only one infix operator per group")
			}
			overIndex = i
		}
	}
	if overIndex == -1 {
		return body
	}

	infixNode := body[overIndex].(*ast.Infix)
	if infixNode.ReplaceWith == "" {
		failNoToken("infix function registered with empty replacement name")
	}

	numerBody := append([]ast.Expr{}, body[:overIndex]...)
	denomBody := append([]ast.Expr{}, body[overIndex+1:]...)

	numerNode := p.singleOrdGroup(numerBody)
	denomNode := p.singleOrdGroup(denomBody)

	var args []ast.Expr
	if infixNode.ReplaceWith == `\\abovefrac` {
		args = []ast.Expr{numerNode, ast.Expr(infixNode), denomNode}
	} else {
		args = []ast.Expr{numerNode, denomNode}
	}

	result := p.callFunction(infixNode.ReplaceWith, args, nil, infixNode.Token, "")
	return []ast.Expr{result}
}

// singleOrdGroup reuses a lone ordgroup sibling as-is; otherwise it wraps
// the sibling list in a fresh one (§4.2: "if either side is already a
// single ordgroup, reuse it; else wrap").
func (p *Parser) singleOrdGroup(nodes []ast.Expr) ast.Expr {
	if len(nodes) == 1 {
		if og, ok := nodes[0].(*ast.OrdGroup); ok {
			return og
		}
	}
	return ast.NewOrdGroup(p.mode, nodes, false)
}
