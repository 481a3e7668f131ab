package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"texparse/internal/builtins"
	"texparse/internal/lexer"
	"texparse/pkg/parser"
	"texparse/pkg/registry"
	"texparse/pkg/token"
)

// parseFlags mirrors the settings surface §6 lists as consumed by the
// parser; each flag maps onto one parser.Option.
type parseFlags struct {
	throwOnError     bool
	strict           string
	colorIsTextColor bool
	globalGroup      bool
	errorColor       string
}

func addParseFlags(cmd *cobra.Command, f *parseFlags) {
	cmd.Flags().BoolVar(&f.throwOnError, "throw-on-error", true, "fail on the first parse error instead of degrading gracefully")
	cmd.Flags().StringVar(&f.strict, "strict", "warn", "unicode/undefined-symbol diagnostic policy: warn, ignore, error")
	cmd.Flags().BoolVar(&f.colorIsTextColor, "color-is-text-color", false, `treat \color as an alias for \textcolor`)
	cmd.Flags().BoolVar(&f.globalGroup, "global-group", false, "skip the implicit root brace group")
	cmd.Flags().StringVar(&f.errorColor, "error-color", "#cc0000", "color used to render unsupported commands")
}

func (f *parseFlags) strictMode() (parser.StrictMode, error) {
	switch f.strict {
	case "warn":
		return parser.StrictWarn, nil
	case "ignore":
		return parser.StrictIgnore, nil
	case "error":
		return parser.StrictError, nil
	default:
		return 0, fmt.Errorf("unknown --strict value %q", f.strict)
	}
}

func (f *parseFlags) options() ([]parser.Option, error) {
	strict, err := f.strictMode()
	if err != nil {
		return nil, err
	}
	return []parser.Option{
		parser.WithThrowOnError(f.throwOnError),
		parser.WithStrict(strict),
		parser.WithColorIsTextColor(f.colorIsTextColor),
		parser.WithGlobalGroup(f.globalGroup),
		parser.WithErrorColor(f.errorColor),
		parser.WithReportNonstrict(func(kind, message string, tok token.Token) {
			fmt.Fprintf(os.Stderr, "%s: %s: %s\n", subtextStyle.Render("warn"), kind, message)
		}),
	}, nil
}

// newParser builds a fully wired parser over src: a fresh lexer token
// source, a registry populated by internal/builtins, and the options
// derived from f.
func newParser(src string, f *parseFlags) (*parser.Parser, error) {
	opts, err := f.options()
	if err != nil {
		return nil, err
	}
	reg := registry.New()
	builtins.Install(reg)
	ts := lexer.New(src)
	return parser.New(ts, reg, opts...), nil
}

// readInput reads source text from the named file, or from stdin when
// args is empty or names "-".
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}
