// Package registry holds the read-only tables the parser consults: the
// function dispatch table and the symbol tables. Structurally this plays
// the role the teacher's BindingTable played for its Pratt parser — a
// name-keyed lookup populated once at startup and never mutated by the
// parser itself — generalized from a single (LBP, RBP, prefix/infix flag)
// tuple per name to the richer per-function arity/type/mode contract a TeX
// function table needs.
package registry

import (
	"texparse/pkg/ast"
	"texparse/pkg/token"
)

// ArgType names the specialized argument grammar used to parse one
// positional argument of a function.
type ArgType string

const (
	ArgColor    ArgType = "color"
	ArgSize     ArgType = "size"
	ArgURL      ArgType = "url"
	ArgRaw      ArgType = "raw"
	ArgMath     ArgType = "math"
	ArgText     ArgType = "text"
	ArgHBox     ArgType = "hbox"
	ArgOriginal ArgType = "original"
)

// Context is passed to a function handler: the command token that
// triggered dispatch, the name it was invoked under (functions may be
// registered under several aliases), and the terminator the caller was
// parsing under (so handlers that recurse into parseExpression honor it).
type Context struct {
	FuncName        string
	Token           token.Token
	BreakOnTokenText string
	Parser          Parser
}

// Parser is the subset of the parser's public surface a function handler
// is allowed to call back into. It is declared here, rather than imported
// from pkg/parser, to avoid a dependency cycle (parser depends on
// registry, not the other way around).
type Parser interface {
	ParseExpression(breakOnInfix bool, breakOnTokenText string) []ast.Expr
	ParseGroupOfType(name string, t ArgType, optional bool, greediness int, consumeSpaces bool) ast.Expr
	Mode() token.Mode
	LeftRightDepth() int
	SetLeftRightDepth(int)
	// Fetch/Consume expose the one-token lookahead directly, for the rare
	// handler (\left...\right) that must consume a terminator token the
	// expression loop deliberately left unconsumed.
	Fetch() token.Token
	Consume()
}

// Handler builds the AST node for a function invocation from its already
// parsed arguments.
type Handler func(ctx Context, args []ast.Expr, optArgs []ast.Expr) ast.Expr

// FunctionSpec describes one registered function.
type FunctionSpec struct {
	NumArgs         int
	NumOptionalArgs int
	ArgTypes        []ArgType // indexed by argument position; nil entries fall back to "original"
	Greediness      int
	AllowedInText   bool
	AllowedInMath   *bool // nil means "allowed" (spec: only `=== false` forbids)
	Infix           bool
	Handler         Handler
}

func (f FunctionSpec) ArgType(i int) ArgType {
	if i >= 0 && i < len(f.ArgTypes) {
		return f.ArgTypes[i]
	}
	return ""
}

func (f FunctionSpec) AllowedIn(mode token.Mode) bool {
	if mode == token.Text {
		return f.AllowedInText
	}
	return f.AllowedInMath == nil || *f.AllowedInMath
}

// SymbolEntry is one entry of symbols[mode][text].
type SymbolEntry struct {
	// Group is either an ast.AtomFamily (for bin/close/inner/open/punct/rel)
	// or a bare leaf kind ("mathord", "textord", ...).
	Group string
}

func (e SymbolEntry) IsAtomFamily() bool {
	switch ast.AtomFamily(e.Group) {
	case ast.FamilyBin, ast.FamilyClose, ast.FamilyInner, ast.FamilyOpen, ast.FamilyPunct, ast.FamilyRel:
		return true
	}
	return false
}

// Registry is the read-only bundle of tables described in spec §3 and §6.
// Callers build one with New and populate it before handing it to
// parser.New; the parser never mutates it.
type Registry struct {
	Functions        map[string]FunctionSpec
	ImplicitCommands map[string]bool
	Symbols          map[token.Mode]map[string]SymbolEntry
	UnicodeSymbols   map[rune]string
	UnicodeAccents   map[rune]map[token.Mode]string
	ExtraLatin       map[string]bool
	Atoms            map[string]bool
}

func New() *Registry {
	return &Registry{
		Functions:        map[string]FunctionSpec{},
		ImplicitCommands: map[string]bool{},
		Symbols:          map[token.Mode]map[string]SymbolEntry{token.Math: {}, token.Text: {}},
		UnicodeSymbols:   map[rune]string{},
		UnicodeAccents:   map[rune]map[token.Mode]string{},
		ExtraLatin:       map[string]bool{},
		Atoms: map[string]bool{
			string(ast.FamilyBin): true, string(ast.FamilyClose): true, string(ast.FamilyInner): true,
			string(ast.FamilyOpen): true, string(ast.FamilyPunct): true, string(ast.FamilyRel): true,
		},
	}
}

// RegisterFunction installs a FunctionSpec under one or more aliases, the
// way BindingTable.RegisterInfix/RegisterPrefix installed one operator
// under one name; a TeX function frequently needs several (\over,
// \above, \atop and their \\-prefixed primitive spellings all share a
// handler family).
func (r *Registry) RegisterFunction(spec FunctionSpec, names ...string) {
	for _, name := range names {
		r.Functions[name] = spec
	}
}

func (r *Registry) RegisterSymbol(mode token.Mode, text string, group string) {
	r.Symbols[mode][text] = SymbolEntry{Group: group}
}

func (r *Registry) Lookup(name string) (FunctionSpec, bool) {
	spec, ok := r.Functions[name]
	return spec, ok
}
