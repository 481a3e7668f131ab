package cmd

import (
	"fmt"

	"github.com/pterm/pterm"

	"texparse/pkg/ast"
)

// buildTree renders n and its children as a pterm.TreeNode, for the
// "ast" subcommand's --tree view.
func buildTree(n ast.Expr) pterm.TreeNode {
	if n == nil {
		return pterm.TreeNode{Text: "nil"}
	}

	label := string(n.Type())
	var children []ast.Expr

	switch v := n.(type) {
	case *ast.Atom:
		label = fmt.Sprintf("%s(%s) %q", label, v.Family, v.Text)
	case *ast.TextOrd:
		label = fmt.Sprintf("%s %q", label, v.Text)
	case *ast.MathOrd:
		label = fmt.Sprintf("%s %q", label, v.Text)
	case *ast.Leaf:
		label = fmt.Sprintf("%s %q", label, v.Text)
	case *ast.Op:
		label = fmt.Sprintf("%s %s limits=%v", label, v.Name, v.Limits)
	case *ast.OperatorName:
		label = fmt.Sprintf("%s limits=%v", label, v.Limits)
		children = v.Body
	case *ast.Raw:
		label = fmt.Sprintf("%s %q", label, v.Str)
	case *ast.URL:
		label = fmt.Sprintf("%s %q", label, v.URL)
	case *ast.ColorToken:
		label = fmt.Sprintf("%s %s", label, v.ColorStr)
	case *ast.Size:
		label = fmt.Sprintf("%s %g%s", label, v.Number, v.Unit)
	case *ast.Verb:
		label = fmt.Sprintf("%s %q star=%v", label, v.Body, v.Star)
	case *ast.OrdGroup:
		children = v.Body
	case *ast.SupSub:
		if v.Base != nil {
			children = append(children, v.Base)
		}
		if v.Sup != nil {
			children = append(children, v.Sup)
		}
		if v.Sub != nil {
			children = append(children, v.Sub)
		}
	case *ast.Accent:
		label = fmt.Sprintf("%s %s", label, v.Label)
		children = []ast.Expr{v.Base}
	case *ast.Color:
		label = fmt.Sprintf("%s %s", label, v.ColorStr)
		children = v.Body
	case *ast.Styling:
		label = fmt.Sprintf("%s %s", label, v.Style)
		children = v.Body
	case *ast.Text:
		children = v.Body
	case *ast.Function:
		label = fmt.Sprintf("%s %s", label, v.Name)
		children = append(append([]ast.Expr{}, v.Args...), v.OptArgs...)
	case *ast.UnsupportedCmd:
		children = []ast.Expr{v.Wrapped}
	}

	node := pterm.TreeNode{Text: label}
	for _, c := range children {
		node.Children = append(node.Children, buildTree(c))
	}
	return node
}
