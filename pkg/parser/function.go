package parser

import (
	"texparse/pkg/ast"
	"texparse/pkg/registry"
	"texparse/pkg/token"
)

// NoGreediness marks the absence of a caller-supplied greediness budget
// (the top-level atom base is parsed this way: nothing may reject it as
// "bare").
const NoGreediness = -1

// parseFunction looks up the lookahead text in the function registry,
// consumes the command token, enforces the mode/greediness preconditions,
// parses its declared arguments, and invokes its handler (§4.5).
func (p *Parser) parseFunction(breakOnTokenText, name string, greediness int) ast.Expr {
	tok := p.fetch()
	spec, ok := p.reg.Lookup(tok.Text)
	if !ok {
		return nil
	}
	p.consume()

	if greediness != NoGreediness && spec.Greediness <= greediness {
		fail(tok, "Got function '%s' with no arguments as %s", tok.Text, name)
	}
	if p.mode == token.Text && !spec.AllowedInText {
		fail(tok, "Can't use function '%s' in text mode", tok.Text)
	}
	if p.mode == token.Math && spec.AllowedInMath != nil && !*spec.AllowedInMath {
		fail(tok, "Can't use function '%s' in math mode", tok.Text)
	}

	args, optArgs := p.parseArguments(tok.Text, tok, spec)
	return p.callFunction(tok.Text, args, optArgs, tok, breakOnTokenText)
}

// parseArguments parses a function's declared positional and optional
// arguments in order, optional arguments first (§4.5).
func (p *Parser) parseArguments(name string, tok token.Token, spec registry.FunctionSpec) ([]ast.Expr, []ast.Expr) {
	total := spec.NumArgs + spec.NumOptionalArgs
	if total == 0 {
		return nil, nil
	}

	args := make([]ast.Expr, 0, spec.NumArgs)
	optArgs := make([]ast.Expr, 0, spec.NumOptionalArgs)

	for i := 0; i < total; i++ {
		isOptional := i < spec.NumOptionalArgs
		argType := spec.ArgType(i)
		consumeSpaces := (i > 0 && !isOptional) || (i == 0 && !isOptional && p.mode == token.Math)

		result := p.ParseGroupOfType(name, argType, isOptional, spec.Greediness, consumeSpaces)
		if result == nil {
			if isOptional {
				optArgs = append(optArgs, nil)
				continue
			}
			fail(tok, "Expected group after '%s'", name)
		}

		if isOptional {
			optArgs = append(optArgs, result)
		} else {
			args = append(args, result)
		}
	}
	return args, optArgs
}

// callFunction constructs the handler context and invokes the registered
// handler (§4.5).
func (p *Parser) callFunction(name string, args, optArgs []ast.Expr, tok token.Token, breakOnTokenText string) ast.Expr {
	spec, ok := p.reg.Lookup(name)
	if !ok {
		fail(tok, "No function handler for %s", name)
	}
	ctx := registry.Context{
		FuncName:         name,
		Token:            tok,
		BreakOnTokenText: breakOnTokenText,
		Parser:           p,
	}
	return spec.Handler(ctx, args, optArgs)
}
