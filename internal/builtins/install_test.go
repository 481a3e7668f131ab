package builtins

import (
	"testing"

	"texparse/pkg/registry"
	"texparse/pkg/token"
)

func TestInstallRegistersKnownFunctions(t *testing.T) {
	reg := registry.New()
	Install(reg)

	for _, name := range []string{`\frac`, `\sqrt`, `\kern`, `\color`, `\textcolor`,
		`\operatorname`, `\left`, `\hat`, `\text`, `\hbox`, `\url`, `\over`, `\atop`, `\above`} {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("expected %q to be registered", name)
		}
	}
}

func TestInstallRegistersImplicitCommands(t *testing.T) {
	reg := registry.New()
	Install(reg)
	if !reg.ImplicitCommands[`\relax`] {
		t.Error(`expected \relax to be an implicit command`)
	}
	if reg.ImplicitCommands[`\frac`] {
		t.Error(`did not expect \frac to be an implicit command`)
	}
}

func TestInstallRegistersLettersInBothModes(t *testing.T) {
	reg := registry.New()
	Install(reg)
	if entry, ok := reg.Symbols[token.Math]["a"]; !ok || entry.Group != "mathord" {
		t.Errorf("got %#v, %v", entry, ok)
	}
	if entry, ok := reg.Symbols[token.Text]["a"]; !ok || entry.Group != "textord" {
		t.Errorf("got %#v, %v", entry, ok)
	}
}

func TestOverIsRegisteredAsInfix(t *testing.T) {
	reg := registry.New()
	Install(reg)
	spec, ok := reg.Lookup(`\over`)
	if !ok || !spec.Infix {
		t.Fatalf("expected \\over registered as infix, got %#v, %v", spec, ok)
	}
}

func TestUnicodeAccentsCoverBothModes(t *testing.T) {
	reg := registry.New()
	Install(reg)
	for mark, perMode := range reg.UnicodeAccents {
		if _, ok := perMode[token.Math]; !ok {
			t.Errorf("mark %q missing math mode label", mark)
		}
		if _, ok := perMode[token.Text]; !ok {
			t.Errorf("mark %q missing text mode label", mark)
		}
	}
	if len(reg.UnicodeAccents) == 0 {
		t.Fatal("expected at least one registered accent mark")
	}
}
