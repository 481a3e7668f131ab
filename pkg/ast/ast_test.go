package ast

import (
	"strings"
	"testing"

	"texparse/pkg/token"
)

func TestNewOrdGroupCarriesSemisimpleFlag(t *testing.T) {
	g := NewOrdGroup(token.Math, nil, true)
	if !g.SemiSimple {
		t.Fatal("expected SemiSimple true")
	}
	if g.Type() != TypeOrdGroup {
		t.Fatalf("got %v", g.Type())
	}
}

func TestDumpIndentsChildren(t *testing.T) {
	group := NewOrdGroup(token.Math, []Expr{
		&TextOrd{Node: Node{NodeType: TypeTextOrd, Mode: token.Text}, Text: "a"},
	}, false)
	out := Dump(group)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if strings.HasPrefix(lines[0], " ") {
		t.Fatalf("expected root line unindented, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "  ") {
		t.Fatalf("expected child line indented by two spaces, got %q", lines[1])
	}
}

func TestDumpHandlesNilNode(t *testing.T) {
	out := Dump(nil)
	if !strings.Contains(out, "nil") {
		t.Fatalf("got %q", out)
	}
}
