package parser

import (
	"strings"

	"texparse/pkg/ast"
	"texparse/pkg/token"
)

var groupEnds = map[string]string{
	"[":           "]",
	"{":           "}",
	`\begingroup`: `\endgroup`,
}

// parseGroup parses a brace/bracket-delimited expression, a semi-simple
// \begingroup group, a bare function application, or a bare symbol (§4.4).
// mode, when non-nil, is switched to for the entire call and restored on
// every exit path including error paths.
func (p *Parser) parseGroup(name string, optional bool, greediness int, breakOnTokenText string, mode *token.Mode, consumeSpaces bool) ast.Expr {
	if mode != nil {
		restore := p.switchMode(*mode)
		defer restore()
	}

	if consumeSpaces {
		p.skipSpaces()
	}

	tok := p.fetch()
	text := tok.Text

	opensExplicit := !optional && (text == "{" || text == `\begingroup`)
	opensOptional := optional && text == "["

	if opensExplicit || opensOptional {
		groupEnd := groupEnds[text]
		p.consume()
		p.beginGroup()
		body := p.ParseExpression(false, groupEnd)
		mustOk(p.expect(groupEnd, true))
		p.endGroup()
		return ast.NewOrdGroup(p.mode, body, text == `\begingroup`)
	}

	if optional {
		return nil
	}

	if node := p.parseFunction(breakOnTokenText, name, greediness); node != nil {
		return node
	}
	if node := p.parseSymbol(); node != nil {
		return node
	}

	if strings.HasPrefix(text, `\`) && !p.reg.ImplicitCommands[text] {
		if p.settings.ThrowOnError {
			fail(tok, "Undefined control sequence: %s", text)
		}
		node := p.formatUnsupportedCmd(text)
		p.consume()
		return node
	}

	return nil
}
