package parser

import (
	"texparse/pkg/ast"
	"texparse/pkg/token"
)

// formatUnsupportedCmd builds the graceful-degradation node for an
// undefined control sequence when throwOnError is false (§4.9): a color
// node in the configured error color, wrapping a text node with one
// textord per character of the command's literal text.
func (p *Parser) formatUnsupportedCmd(text string) ast.Expr {
	chars := []rune(text)
	body := make([]ast.Expr, 0, len(chars))
	for _, r := range chars {
		body = append(body, &ast.TextOrd{
			Node: ast.Node{NodeType: ast.TypeTextOrd, Mode: token.Text},
			Text: string(r),
		})
	}

	return &ast.UnsupportedCmd{
		Node: ast.Node{NodeType: ast.TypeUnsupportedCmd, Mode: p.mode},
		Wrapped: &ast.Color{
			Node:     ast.Node{NodeType: ast.TypeColor, Mode: token.Text},
			ColorStr: p.settings.ErrorColor,
			Body:     []ast.Expr{&ast.Text{Node: ast.Node{NodeType: ast.TypeText, Mode: token.Text}, Body: body}},
		},
	}
}
