package parser_test

import (
	"testing"

	"texparse/pkg/ast"
)

func TestParseColorGroupThreeDigitHexPassesThrough(t *testing.T) {
	nodes, err := newTestParser(`\textcolor{#abc}{x}`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := nodes[0].(*ast.Color)
	if c.ColorStr != "#abc" {
		t.Fatalf("got %q", c.ColorStr)
	}
}

func TestParseColorGroupSixDigitWithoutHashGetsPrefixed(t *testing.T) {
	nodes, err := newTestParser(`\textcolor{aabbcc}{x}`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := nodes[0].(*ast.Color)
	if c.ColorStr != "#aabbcc" {
		t.Fatalf("got %q", c.ColorStr)
	}
}

func TestParseColorGroupBareNamePassesThrough(t *testing.T) {
	nodes, err := newTestParser(`\textcolor{red}{x}`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := nodes[0].(*ast.Color)
	if c.ColorStr != "red" {
		t.Fatalf("got %q", c.ColorStr)
	}
}

func TestParseSizeGroupBraceForm(t *testing.T) {
	nodes, err := newTestParser(`\kern{2.5pt}`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := nodes[0].(*ast.Function)
	size := fn.Args[0].(*ast.Size)
	if size.Number != 2.5 || size.Unit != "pt" {
		t.Fatalf("got number=%v unit=%q", size.Number, size.Unit)
	}
}

func TestParseSizeGroupSignedRawForm(t *testing.T) {
	nodes, err := newTestParser(`\kern-1em`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := nodes[0].(*ast.Function)
	size := fn.Args[0].(*ast.Size)
	if size.Number != -1 || size.Unit != "em" {
		t.Fatalf("got number=%v unit=%q", size.Number, size.Unit)
	}
}

func TestParseUrlGroupUnescapesHyperrefEscapes(t *testing.T) {
	nodes, err := newTestParser(`\url{a\_b\#c}`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	u := nodes[0].(*ast.URL)
	if u.URL != "a_b#c" {
		t.Fatalf("got %q", u.URL)
	}
}

func TestOptionalArgumentMissingBracketReturnsNil(t *testing.T) {
	// \sqrt's optional index is ArgOriginal: with no "[" present, parseGroup
	// returns nil for it and parsing continues with the mandatory argument.
	nodes, err := newTestParser(`\sqrt{9}`).Parse()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fn := nodes[0].(*ast.Function)
	if len(fn.OptArgs) != 1 || fn.OptArgs[0] != nil {
		t.Fatalf("expected nil optional index, got %#v", fn.OptArgs)
	}
}
