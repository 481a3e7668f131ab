package builtins

import (
	"texparse/pkg/ast"
	"texparse/pkg/registry"
	"texparse/pkg/token"
)

func installSymbols(reg *registry.Registry) {
	installLetters(reg)
	installPunctuation(reg)
	installControlSymbols(reg)
	installUnicodeSymbols(reg)
	installUnicodeAccents(reg)
	installExtraLatin(reg)
}

// installLetters registers every ASCII letter and digit in both modes;
// in math mode letters are mathord and digits are textord (§4.7: unregistered ASCII characters resolve to nothing, matching
// real TeX's closed symbol table rather than an open alphabet).
func installLetters(reg *registry.Registry) {
	for r := 'a'; r <= 'z'; r++ {
		reg.RegisterSymbol(token.Math, string(r), "mathord")
		reg.RegisterSymbol(token.Text, string(r), "textord")
	}
	for r := 'A'; r <= 'Z'; r++ {
		reg.RegisterSymbol(token.Math, string(r), "mathord")
		reg.RegisterSymbol(token.Text, string(r), "textord")
	}
	for r := '0'; r <= '9'; r++ {
		reg.RegisterSymbol(token.Math, string(r), "textord")
		reg.RegisterSymbol(token.Text, string(r), "textord")
	}
}

// installPunctuation registers the bare ASCII punctuation characters
// that act as atoms (open/close/bin/rel/punct) in both modes.
func installPunctuation(reg *registry.Registry) {
	family := map[string]ast.AtomFamily{
		"(": ast.FamilyOpen, "[": ast.FamilyOpen,
		")": ast.FamilyClose, "]": ast.FamilyClose,
		",": ast.FamilyPunct, ";": ast.FamilyPunct, "!": ast.FamilyPunct, "?": ast.FamilyPunct,
		".": ast.FamilyPunct, ":": ast.FamilyPunct,
		"+": ast.FamilyBin, "-": ast.FamilyBin, "*": ast.FamilyBin, "/": ast.FamilyBin,
		"=": ast.FamilyRel, "<": ast.FamilyRel, ">": ast.FamilyRel,
		"|": ast.FamilyInner,
	}
	for text, fam := range family {
		reg.RegisterSymbol(token.Math, text, string(fam))
		reg.RegisterSymbol(token.Text, text, "textord")
	}

	// In text mode "^" and "_" are ordinary characters, not script operators.
	reg.RegisterSymbol(token.Text, "^", "textord")
	reg.RegisterSymbol(token.Text, "_", "textord")
}

// installControlSymbols registers a representative set of multi-letter
// math control sequences spanning every atom family plus the "op" leaf
// kind for named and symbolic big operators (which parseSymbol's
// buildLeaf turns into *ast.Op nodes, so \lim etc. can later receive
// \limits/\nolimits like any other operator).
func installControlSymbols(reg *registry.Registry) {
	rel := []string{`\leq`, `\geq`, `\neq`, `\equiv`, `\sim`, `\approx`, `\in`, `\notin`,
		`\subset`, `\subseteq`, `\supset`, `\to`, `\rightarrow`, `\leftarrow`, `\Rightarrow`, `\Leftarrow`, `\iff`}
	for _, s := range rel {
		reg.RegisterSymbol(token.Math, s, string(ast.FamilyRel))
	}

	bin := []string{`\times`, `\div`, `\cdot`, `\pm`, `\mp`, `\cup`, `\cap`, `\oplus`, `\otimes`}
	for _, s := range bin {
		reg.RegisterSymbol(token.Math, s, string(ast.FamilyBin))
	}

	reg.RegisterSymbol(token.Math, `\langle`, string(ast.FamilyOpen))
	reg.RegisterSymbol(token.Math, `\rangle`, string(ast.FamilyClose))

	mathord := []string{`\alpha`, `\beta`, `\gamma`, `\delta`, `\epsilon`, `\theta`, `\lambda`, `\mu`,
		`\pi`, `\sigma`, `\phi`, `\omega`, `\Gamma`, `\Delta`, `\Theta`, `\Lambda`, `\Pi`, `\Sigma`, `\Phi`, `\Omega`,
		`\infty`, `\partial`, `\nabla`, `\forall`, `\exists`, `\emptyset`, `\hbar`, `\ell`, `\ldots`}
	for _, s := range mathord {
		reg.RegisterSymbol(token.Math, s, "mathord")
	}

	op := []string{`\sin`, `\cos`, `\tan`, `\log`, `\ln`, `\exp`, `\lim`, `\sup`, `\inf`, `\max`, `\min`, `\det`, `\gcd`,
		`\sum`, `\int`, `\prod`, `\bigcup`, `\bigcap`, `\bigoplus`}
	for _, s := range op {
		reg.RegisterSymbol(token.Math, s, "op")
	}
}

// installUnicodeSymbols registers the small set of Unicode characters
// that expand to an ASCII-visible equivalent before symbol-table
// lookup when the Unicode character itself isn't a registered symbol
// in the current mode (§4.7 item 2).
func installUnicodeSymbols(reg *registry.Registry) {
	reg.UnicodeSymbols['−'] = "-"      // minus sign
	reg.UnicodeSymbols['‘'] = "`"      // left single quote
	reg.UnicodeSymbols['’'] = "'"      // right single quote
	reg.UnicodeSymbols['–'] = "--"     // en dash
	reg.UnicodeSymbols['—'] = "---"    // em dash
	reg.UnicodeSymbols['…'] = `\ldots` // horizontal ellipsis
}

// installUnicodeAccents registers the standard combining marks over
// their TeX accent-command labels (§4.7 item 5).
func installUnicodeAccents(reg *registry.Registry) {
	set := map[rune]string{
		'́': `\acute`,
		'̀': `\grave`,
		'̂': `\hat`,
		'̃': `\tilde`,
		'̈': `\ddot`,
		'̇': `\dot`,
		'̄': `\bar`,
		'̆': `\breve`,
		'̌': `\check`,
		'̊': `\mathring`,
	}
	for mark, label := range set {
		reg.UnicodeAccents[mark] = map[token.Mode]string{token.Math: label, token.Text: label}
	}
}

// installExtraLatin registers precomposed accented Latin letters as
// ordinary symbols, flagged so parseSymbol's nonstrict diagnostic fires
// when one is used in math mode outside \text (§4.7 item 4).
func installExtraLatin(reg *registry.Registry) {
	letters := []string{"é", "è", "ê", "ë", "á", "à", "â", "ä", "í", "ì", "î", "ï",
		"ó", "ò", "ô", "ö", "ú", "ù", "û", "ü", "ñ", "ç"}
	for _, l := range letters {
		reg.RegisterSymbol(token.Math, l, "mathord")
		reg.RegisterSymbol(token.Text, l, "textord")
		reg.ExtraLatin[l] = true
	}
}
