package parser

import (
	"testing"

	"texparse/pkg/ast"
	"texparse/pkg/token"
)

func textOrd(text string) *ast.TextOrd {
	return &ast.TextOrd{Node: ast.Node{NodeType: ast.TypeTextOrd, Mode: token.Text}, Text: text}
}

func dumpTexts(body []ast.Expr) []string {
	out := make([]string, len(body))
	for i, n := range body {
		out[i] = n.(*ast.TextOrd).Text
	}
	return out
}

func TestFormLigaturesTripleHyphen(t *testing.T) {
	body := []ast.Expr{textOrd("a"), textOrd("-"), textOrd("-"), textOrd("-"), textOrd("b")}
	got := dumpTexts(formLigatures(body))
	want := []string{"a", "---", "b"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFormLigaturesDoubleHyphen(t *testing.T) {
	got := dumpTexts(formLigatures([]ast.Expr{textOrd("-"), textOrd("-")}))
	if len(got) != 1 || got[0] != "--" {
		t.Fatalf("got %v", got)
	}
}

func TestFormLigaturesQuotes(t *testing.T) {
	got := dumpTexts(formLigatures([]ast.Expr{textOrd("'"), textOrd("'")}))
	if len(got) != 1 || got[0] != "''" {
		t.Fatalf("got %v", got)
	}
	got = dumpTexts(formLigatures([]ast.Expr{textOrd("`"), textOrd("`")}))
	if len(got) != 1 || got[0] != "``" {
		t.Fatalf("got %v", got)
	}
}

func TestFormLigaturesIsIdempotent(t *testing.T) {
	body := []ast.Expr{textOrd("a"), textOrd("-"), textOrd("-"), textOrd("-"), textOrd("b")}
	once := formLigatures(body)
	twice := formLigatures(once)
	if len(once) != len(twice) {
		t.Fatalf("not idempotent: once=%v twice=%v", dumpTexts(once), dumpTexts(twice))
	}
	for i := range once {
		if once[i].(*ast.TextOrd).Text != twice[i].(*ast.TextOrd).Text {
			t.Fatalf("not idempotent at %d: %v vs %v", i, dumpTexts(once), dumpTexts(twice))
		}
	}
}

func TestFormLigaturesLeavesNonTextOrdAlone(t *testing.T) {
	other := &ast.MathOrd{Node: ast.Node{NodeType: ast.TypeMathOrd, Mode: token.Math}, Text: "x"}
	body := []ast.Expr{textOrd("-"), other, textOrd("-")}
	got := formLigatures(body)
	if len(got) != 3 {
		t.Fatalf("expected hyphens either side of a non-textord to stay unmerged, got %d nodes", len(got))
	}
}
