package parser

import (
	"fmt"

	"texparse/pkg/token"
)

// ParseError is the single fault kind the parser raises (§7). It carries a
// human-readable message and, when available, the token whose source
// range a caller should point a caret at.
type ParseError struct {
	Message string
	Token   *token.Token
}

func (e *ParseError) Error() string {
	if e.Token == nil {
		return e.Message
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Token.String())
}

func errAt(tok token.Token, format string, args ...interface{}) *ParseError {
	t := tok
	return &ParseError{Message: fmt.Sprintf(format, args...), Token: &t}
}

func errNoToken(format string, args ...interface{}) *ParseError {
	return &ParseError{Message: fmt.Sprintf(format, args...)}
}

// Diagnostic is a non-fatal report produced under §7 item 6 (strict-mode
// diagnostics) — suspicious input accepted instead of rejected.
type Diagnostic struct {
	Kind    string
	Message string
	Token   token.Token
}

func (p *Parser) reportNonstrict(kind, message string, tok token.Token) {
	p.diagnostics = append(p.diagnostics, Diagnostic{Kind: kind, Message: message, Token: tok})
	if p.settings.ReportNonstrict != nil {
		p.settings.ReportNonstrict(kind, message, tok)
	}
}

// Diagnostics returns every non-fatal report collected during the last
// parse.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}
