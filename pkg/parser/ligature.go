package parser

import (
	"texparse/pkg/ast"
	"texparse/pkg/token"
)

// formLigatures collapses contiguous text-mode textord runs into a single
// node: "---" from three hyphens, "--" from two, "''"/"``" from a doubled
// quote or backtick (§4.8). It is idempotent: the merged text ("---",
// "--", "''", "``") never matches the single-character patterns it looks
// for, so re-running on an already-formed body is a no-op (§8).
func formLigatures(body []ast.Expr) []ast.Expr {
	result := make([]ast.Expr, 0, len(body))
	i := 0
	for i < len(body) {
		cur, ok := body[i].(*ast.TextOrd)
		if !ok {
			result = append(result, body[i])
			i++
			continue
		}

		switch cur.Text {
		case "-":
			if i+2 < len(body) && textOrdIs(body[i+1], "-") && textOrdIs(body[i+2], "-") {
				result = append(result, mergeTextOrd("---", cur, body[i+1].(*ast.TextOrd), body[i+2].(*ast.TextOrd)))
				i += 3
				continue
			}
			if i+1 < len(body) && textOrdIs(body[i+1], "-") {
				result = append(result, mergeTextOrd("--", cur, body[i+1].(*ast.TextOrd)))
				i += 2
				continue
			}
		case "'":
			if i+1 < len(body) && textOrdIs(body[i+1], "'") {
				result = append(result, mergeTextOrd("''", cur, body[i+1].(*ast.TextOrd)))
				i += 2
				continue
			}
		case "`":
			if i+1 < len(body) && textOrdIs(body[i+1], "`") {
				result = append(result, mergeTextOrd("``", cur, body[i+1].(*ast.TextOrd)))
				i += 2
				continue
			}
		}

		result = append(result, cur)
		i++
	}
	return result
}

func textOrdIs(n ast.Expr, text string) bool {
	to, ok := n.(*ast.TextOrd)
	return ok && to.Text == text
}

func mergeTextOrd(text string, nodes ...*ast.TextOrd) *ast.TextOrd {
	var loc *token.Range
	mode := nodes[0].Mode
	for _, n := range nodes {
		loc = unionLoc(loc, n.Loc)
	}
	return &ast.TextOrd{Node: ast.Node{NodeType: ast.TypeTextOrd, Mode: mode, Loc: loc}, Text: text}
}

func unionLoc(a, b *token.Range) *token.Range {
	if a == nil {
		if b == nil {
			return nil
		}
		v := *b
		return &v
	}
	if b == nil {
		v := *a
		return &v
	}
	start, end := a.Start, a.End
	if b.Start < start {
		start = b.Start
	}
	if b.End > end {
		end = b.End
	}
	return &token.Range{Start: start, End: end}
}
