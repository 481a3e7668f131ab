package parser_test

import (
	"testing"

	"texparse/internal/builtins"
	"texparse/internal/lexer"
	"texparse/pkg/ast"
	"texparse/pkg/parser"
	"texparse/pkg/registry"
)

func newTestParser(src string, opts ...parser.Option) *parser.Parser {
	reg := registry.New()
	builtins.Install(reg)
	return parser.New(lexer.New(src), reg, opts...)
}

func TestSimpleSuperscript(t *testing.T) {
	nodes, err := newTestParser(`x^2`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ss, ok := nodes[0].(*ast.SupSub)
	if !ok {
		t.Fatalf("expected *ast.SupSub, got %T", nodes[0])
	}
	if _, ok := ss.Base.(*ast.MathOrd); !ok {
		t.Fatalf("expected mathord base, got %T", ss.Base)
	}
	sup, ok := ss.Sup.(*ast.TextOrd)
	if !ok || sup.Text != "2" {
		t.Fatalf("expected textord \"2\" superscript, got %#v", ss.Sup)
	}
	if ss.Sub != nil {
		t.Fatalf("expected no subscript, got %#v", ss.Sub)
	}
}

func TestDoubleSuperscriptFails(t *testing.T) {
	_, err := newTestParser(`x^2^3`).Parse()
	if err == nil {
		t.Fatal("expected an error for a double superscript")
	}
}

func TestPrimesCollectIntoOrdgroup(t *testing.T) {
	nodes, err := newTestParser(`x''`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ss, ok := nodes[0].(*ast.SupSub)
	if !ok {
		t.Fatalf("expected *ast.SupSub, got %T", nodes[0])
	}
	group, ok := ss.Sup.(*ast.OrdGroup)
	if !ok || len(group.Body) != 2 {
		t.Fatalf("expected a 2-prime ordgroup superscript, got %#v", ss.Sup)
	}
	for _, n := range group.Body {
		prime, ok := n.(*ast.TextOrd)
		if !ok || prime.Text != `\prime` {
			t.Fatalf("expected \\prime textord, got %#v", n)
		}
	}
}

func TestPrimeFollowedBySuperscript(t *testing.T) {
	nodes, err := newTestParser(`x'^2`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ss := nodes[0].(*ast.SupSub)
	group, ok := ss.Sup.(*ast.OrdGroup)
	if !ok || len(group.Body) != 2 {
		t.Fatalf("expected [prime, superscript-group], got %#v", ss.Sup)
	}
	if _, ok := group.Body[0].(*ast.TextOrd); !ok {
		t.Fatalf("expected first child to be the prime, got %#v", group.Body[0])
	}
}

func TestLimitsRequireOperator(t *testing.T) {
	_, err := newTestParser(`x\limits`).Parse()
	if err == nil {
		t.Fatal("expected an error: \\limits must follow an operator")
	}
}

func TestLimitsOnOpSetsFlag(t *testing.T) {
	nodes, err := newTestParser(`\sum\limits_1`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ss, ok := nodes[0].(*ast.SupSub)
	if !ok {
		t.Fatalf("expected *ast.SupSub, got %T", nodes[0])
	}
	op, ok := ss.Base.(*ast.Op)
	if !ok {
		t.Fatalf("expected *ast.Op base, got %T", ss.Base)
	}
	if !op.Limits || !op.AlwaysHandleSupSub {
		t.Fatalf("expected limits=true and alwaysHandleSupSub=true, got %#v", op)
	}
}

func TestTextModeDoesNotParseSupSub(t *testing.T) {
	nodes, err := newTestParser(`\text{x^2}`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := nodes[0].(*ast.Text)
	for _, n := range text.Body {
		if _, ok := n.(*ast.SupSub); ok {
			t.Fatalf("text mode should not form a supsub node, got %#v", n)
		}
	}
}

func TestGroupModeRestoredOnError(t *testing.T) {
	p := newTestParser(`\text{`, parser.WithThrowOnError(true))
	if _, err := p.Parse(); err == nil {
		t.Fatal("expected an error for an unterminated group")
	}
	if p.Mode() != 0 {
		t.Fatalf("expected mode restored to math (0) after the failed text-mode group, got %v", p.Mode())
	}
}

func TestBracketOptionalArgument(t *testing.T) {
	nodes, err := newTestParser(`\sqrt[3]{8}`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := nodes[0].(*ast.Function)
	if fn.Name != `\sqrt` {
		t.Fatalf("got %q", fn.Name)
	}
	if len(fn.OptArgs) != 1 || fn.OptArgs[0] == nil {
		t.Fatalf("expected the optional index argument to be present, got %#v", fn.OptArgs)
	}
}

func TestSqrtWithoutIndexLeavesOptArgNil(t *testing.T) {
	nodes, err := newTestParser(`\sqrt{2}`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := nodes[0].(*ast.Function)
	if len(fn.OptArgs) != 1 || fn.OptArgs[0] != nil {
		t.Fatalf("expected a nil placeholder for the missing optional index, got %#v", fn.OptArgs)
	}
}
