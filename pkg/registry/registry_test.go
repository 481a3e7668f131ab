package registry

import (
	"testing"

	"texparse/pkg/ast"
	"texparse/pkg/token"
)

func TestNewPopulatesAtomFamilies(t *testing.T) {
	reg := New()
	for _, fam := range []ast.AtomFamily{ast.FamilyBin, ast.FamilyClose, ast.FamilyInner, ast.FamilyOpen, ast.FamilyPunct, ast.FamilyRel} {
		if !reg.Atoms[string(fam)] {
			t.Fatalf("expected %q registered as an atom family", fam)
		}
	}
}

func TestRegisterFunctionInstallsEveryAlias(t *testing.T) {
	reg := New()
	spec := FunctionSpec{NumArgs: 1}
	reg.RegisterFunction(spec, `\over`, `\atop`)

	if _, ok := reg.Lookup(`\over`); !ok {
		t.Fatal("expected \\over registered")
	}
	if _, ok := reg.Lookup(`\atop`); !ok {
		t.Fatal("expected \\atop registered")
	}
	if _, ok := reg.Lookup(`\undefined`); ok {
		t.Fatal("expected \\undefined to be absent")
	}
}

func TestRegisterSymbolIsPerMode(t *testing.T) {
	reg := New()
	reg.RegisterSymbol(token.Math, "x", "mathord")
	if _, ok := reg.Symbols[token.Text]["x"]; ok {
		t.Fatal("expected text-mode table untouched by a math-mode registration")
	}
	if entry, ok := reg.Symbols[token.Math]["x"]; !ok || entry.Group != "mathord" {
		t.Fatalf("got %#v, %v", entry, ok)
	}
}

func TestSymbolEntryIsAtomFamily(t *testing.T) {
	if !(SymbolEntry{Group: string(ast.FamilyBin)}).IsAtomFamily() {
		t.Fatal("expected bin to be an atom family")
	}
	if (SymbolEntry{Group: "mathord"}).IsAtomFamily() {
		t.Fatal("expected mathord not to be an atom family")
	}
}

func TestFunctionSpecArgTypeOutOfRangeIsOriginal(t *testing.T) {
	spec := FunctionSpec{ArgTypes: []ArgType{ArgColor}}
	if spec.ArgType(0) != ArgColor {
		t.Fatalf("got %v", spec.ArgType(0))
	}
	if spec.ArgType(5) != "" {
		t.Fatalf("expected empty ArgType for an out-of-range position, got %v", spec.ArgType(5))
	}
}

func TestFunctionSpecAllowedInMathDefaultsTrue(t *testing.T) {
	spec := FunctionSpec{}
	if !spec.AllowedIn(token.Math) {
		t.Fatal("expected math mode allowed by default (nil AllowedInMath means allowed)")
	}
	if spec.AllowedIn(token.Text) {
		t.Fatal("expected text mode disallowed by default (AllowedInText zero value is false)")
	}
}

func TestFunctionSpecAllowedInMathExplicitFalse(t *testing.T) {
	disallowed := false
	spec := FunctionSpec{AllowedInMath: &disallowed}
	if spec.AllowedIn(token.Math) {
		t.Fatal("expected math mode disallowed when AllowedInMath points at false")
	}
}
