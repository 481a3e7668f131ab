package parser

import "texparse/pkg/token"

// MacroTable is the subset of the macro expander's namespace the parser
// needs to mutate: installing the \color -> \textcolor alias when
// Settings.ColorIsTextColor is set (§4.10).
type MacroTable interface {
	Set(name string, expansion string)
}

// TokenSource is the contract the upstream lexer/macro expander must
// satisfy (§6). The parser treats it as a one-token-lookahead stream with
// mode notification and group-scope/catcode control; it never peeks more
// than one token ahead of what TokenSource itself buffers.
type TokenSource interface {
	// NextToken produces the next already-macro-expanded token, EOF at
	// end of input.
	NextToken() token.Token
	// SwitchMode informs the expander of a math/text mode change.
	SwitchMode(m token.Mode)
	// BeginGroup/EndGroup bracket a macro-definition scope (brace groups,
	// \begingroup...\endgroup).
	BeginGroup()
	EndGroup()
	// Macros exposes the macro namespace for definitions installed by the
	// top-level driver (or by function handlers, e.g. \global\def).
	Macros() MacroTable
	// SetCatcode mutates the category code of a character on the
	// upstream lexer; used by the URL grammar to make "%" active for the
	// duration of parsing a \url argument.
	SetCatcode(ch rune, code token.Catcode)
}

// StrictMode controls how unicode/undefined-symbol diagnostics are
// reported.
type StrictMode int

const (
	StrictWarn StrictMode = iota
	StrictIgnore
	StrictError
)

// Settings is the configuration surface consumed by the parser (§6).
type Settings struct {
	GlobalGroup      bool
	ColorIsTextColor bool
	ThrowOnError     bool
	Strict           StrictMode
	ErrorColor       string
	// ReportNonstrict receives non-fatal diagnostics; may be nil.
	ReportNonstrict func(kind, message string, tok token.Token)
}

// Option configures a Parser at construction time.
type Option func(*Settings)

func WithGlobalGroup(v bool) Option         { return func(s *Settings) { s.GlobalGroup = v } }
func WithColorIsTextColor(v bool) Option    { return func(s *Settings) { s.ColorIsTextColor = v } }
func WithThrowOnError(v bool) Option        { return func(s *Settings) { s.ThrowOnError = v } }
func WithStrict(v StrictMode) Option        { return func(s *Settings) { s.Strict = v } }
func WithErrorColor(v string) Option        { return func(s *Settings) { s.ErrorColor = v } }
func WithReportNonstrict(f func(kind, message string, tok token.Token)) Option {
	return func(s *Settings) { s.ReportNonstrict = f }
}

func defaultSettings() Settings {
	return Settings{
		ThrowOnError: true,
		ErrorColor:   "#cc0000",
	}
}
