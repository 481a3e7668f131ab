package parser

import (
	"devt.de/krotik/common/datautil"

	"texparse/pkg/token"
)

// lookaheadCache caches exactly one fetched-but-not-yet-consumed token, the
// way krotik-ecal's parser/helper.go LABuffer caches lookahead tokens from
// its lexer channel — generalized here from a configurable window down to
// the single slot §4.1 mandates. After consume, the slot is empty until
// the next fetch.
type lookaheadCache struct {
	buf *datautil.RingBuffer
}

func newLookaheadCache() *lookaheadCache {
	return &lookaheadCache{buf: datautil.NewRingBuffer(1)}
}

func (c *lookaheadCache) fetch(pull func() token.Token) token.Token {
	if c.buf.Size() == 0 {
		c.buf.Add(pull())
	}
	return c.buf.Get(0).(token.Token)
}

func (c *lookaheadCache) consume() {
	c.buf.Poll()
}

// fetch returns the cached lookahead, pulling the next token from the
// expander if the slot is empty.
func (p *Parser) fetch() token.Token {
	return p.la.fetch(p.ts.NextToken)
}

// consume clears the lookahead slot.
func (p *Parser) consume() {
	p.la.consume()
}

// Fetch and Consume are the exported forms of fetch/consume, reachable
// through registry.Parser by a handler (\left) that must pull the
// \right terminator itself instead of leaving it for the expression
// loop.
func (p *Parser) Fetch() token.Token { return p.fetch() }
func (p *Parser) Consume()           { p.consume() }

// expect fails if the lookahead text is not text; otherwise consumes it
// when asked.
func (p *Parser) expect(text string, doConsume bool) error {
	tok := p.fetch()
	if tok.Text != text {
		return errAt(tok, "Expected '%s', got '%s'", text, tok.Text)
	}
	if doConsume {
		p.consume()
	}
	return nil
}

// switchMode propagates a mode change to the expander and returns a
// restore function the caller must invoke on every exit path, including
// error paths.
func (p *Parser) switchMode(m token.Mode) func() {
	prev := p.mode
	if prev == m {
		return func() {}
	}
	p.mode = m
	p.ts.SwitchMode(m)
	return func() {
		p.mode = prev
		p.ts.SwitchMode(prev)
	}
}

func (p *Parser) beginGroup() {
	p.ts.BeginGroup()
	p.groupStack.Push(groupMarker{mode: p.mode})
}

func (p *Parser) endGroup() {
	p.ts.EndGroup()
	p.groupStack.Pop()
}

// groupDepth reports the number of currently open groups, used by the
// top-level driver to assert brace balance (§3 invariant, §8).
func (p *Parser) groupDepth() int {
	return p.groupStack.Size()
}

func (p *Parser) setCatcode(ch rune, code token.Catcode) {
	p.ts.SetCatcode(ch, code)
}
