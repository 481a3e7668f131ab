// Package builtins populates a registry.Registry with the function and
// symbol tables a complete parse needs: \frac and its \over/\atop/\above
// infix family, \sqrt, \kern, \color/\textcolor, \operatorname,
// \left/\right, accent commands, \text/\hbox, \url, and the symbol
// tables parseSymbol consults for every ASCII letter/digit, common math
// operators, and a representative set of Unicode punctuation and
// combining accents.
package builtins

import "texparse/pkg/registry"

// Install populates reg with the full builtin function and symbol
// tables. Callers that need a narrower surface (tests exercising a
// single function family) can build a bare registry.New() and populate
// it through its own RegisterFunction/RegisterSymbol methods instead.
func Install(reg *registry.Registry) {
	installFunctions(reg)
	installSymbols(reg)
}
