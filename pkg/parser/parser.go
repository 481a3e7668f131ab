// Package parser implements the recursive-descent, one-token-lookahead
// TeX/LaTeX math-expression parser described by the core specification:
// mode switching, group recognition, function dispatch against a
// read-only registry, atom parsing with super/subscripts and primes,
// infix-operator rewriting, ligature formation, and symbol resolution.
package parser

import (
	"devt.de/krotik/common/errorutil"
	"github.com/emirpasic/gods/stacks/arraystack"

	"texparse/pkg/ast"
	"texparse/pkg/registry"
	"texparse/pkg/token"
)

// SupSubGreediness is the greediness budget a super/subscript group is
// parsed with (§4.3).
const SupSubGreediness = 1

// groupMarker is pushed on beginGroup and popped on endGroup; it records
// enough state to make the brace-balance invariant (§3, §8) checkable
// without re-deriving it from the mode-restore closures, the way
// emirpasic/gods' stack types are used elsewhere in the pack (e.g.
// npillmayer-gorgo's LR tables) to track nested parse state explicitly
// rather than via the call stack alone.
type groupMarker struct {
	mode token.Mode
}

// Parser is the recursive-descent driver. It owns mutable state (current
// mode, the lookahead cache, leftrightDepth, a settings reference) and is
// not safe to share across goroutines (§5).
type Parser struct {
	ts       TokenSource
	reg      *registry.Registry
	settings Settings

	la          *lookaheadCache
	mode        token.Mode
	groupStack  *arraystack.Stack
	leftright   int
	diagnostics []Diagnostic
}

// New creates a Parser over a token source and a populated registry.
func New(ts TokenSource, reg *registry.Registry, opts ...Option) *Parser {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return &Parser{
		ts:         ts,
		reg:        reg,
		settings:   s,
		la:         newLookaheadCache(),
		mode:       token.Math,
		groupStack: arraystack.New(),
	}
}

func (p *Parser) Mode() token.Mode          { return p.mode }
func (p *Parser) LeftRightDepth() int       { return p.leftright }
func (p *Parser) SetLeftRightDepth(d int)   { p.leftright = d }
func (p *Parser) IncLeftRightDepth()        { p.leftright++ }
func (p *Parser) DecLeftRightDepth()        { p.leftright-- }

// Parse is the top-level driver (§4.10): establish the root group, parse
// the expression, require EOF, tear down the group.
func (p *Parser) Parse() (result []ast.Expr, err error) {
	// Bad input unwinds as a *ParseError (§7); a panic of any other shape
	// indicates a bug in the parser itself (a violated internal invariant,
	// asserted below via errorutil) rather than malformed input, and is
	// rewrapped here rather than left to crash the caller — the same
	// "assert deep in the recursion, recover at the boundary" shape
	// krotik-ecal's parser/prettyprinter.go uses around its own
	// errorutil.AssertOk/AssertTrue calls.
	defer func() {
		if r := recover(); r != nil {
			if pe, ok := r.(*ParseError); ok {
				err = pe
				return
			}
			if e, ok := r.(error); ok {
				err = errNoToken("internal parser error: %s", e.Error())
				return
			}
			err = errNoToken("internal parser error: %v", r)
		}
	}()

	if !p.settings.GlobalGroup {
		p.beginGroup()
	}
	if p.settings.ColorIsTextColor {
		p.ts.Macros().Set(`\color`, `\textcolor`)
	}

	expr := p.ParseExpression(false, "")

	if e := p.expect(token.EOF, false); e != nil {
		return nil, e
	}

	if !p.settings.GlobalGroup {
		p.endGroup()
	}

	// Brace-balance invariant (§3, §8): every beginGroup paired with an
	// endGroup by the time parsing reaches EOF. A violation here means the
	// parser itself mismatched a begin/end pair, not that the input was
	// malformed — the same class of bug errorutil.AssertTrue guards against
	// in krotik-ecal's parser package.
	errorutil.AssertTrue(p.groupDepth() == 0, "unbalanced groups at end of parse")

	return expr, nil
}

// mustOk panics with a *ParseError built from err when err is non-nil;
// paired with the recover in Parse so internal helpers can fail with a
// plain `return nil, err`-free style deep in the recursion, the way
// krotik-ecal's parser/prettyprinter.go pairs errorutil.AssertOk with a
// recover at its own call boundary.
func mustOk(err error) {
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			panic(pe)
		}
		panic(errNoToken("%s", err.Error()))
	}
}

func fail(tok token.Token, format string, args ...interface{}) {
	panic(errAt(tok, format, args...))
}

func failNoToken(format string, args ...interface{}) {
	panic(errNoToken(format, args...))
}
