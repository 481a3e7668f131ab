package builtins

import (
	"texparse/pkg/ast"
	"texparse/pkg/registry"
)

const noGreediness = -1

func bodyOf(e ast.Expr) []ast.Expr {
	if e == nil {
		return nil
	}
	if og, ok := e.(*ast.OrdGroup); ok {
		return og.Body
	}
	return []ast.Expr{e}
}

func installFunctions(reg *registry.Registry) {
	installFrac(reg)
	installSqrt(reg)
	installKern(reg)
	installColor(reg)
	installOperatorName(reg)
	installLeftRight(reg)
	installAccents(reg)
	installTextBoxes(reg)
	installURL(reg)
	installImplicitCommands(reg)
}

// installFrac registers \frac and the \over/\atop/\above infix family
// that rewrites to it (§4.2's infix rewrite, example table row
// "{1 \over 2}"). \\atopfrac and \\abovefrac are dispatch-only names —
// never directly typeable, since the lexer only ever scans a single
// leading backslash into a control sequence — that handleInfixNodes
// reaches via callFunction.
func installFrac(reg *registry.Registry) {
	fracHandler := func(name string) registry.Handler {
		return func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			return &ast.Function{
				Node: ast.Node{NodeType: ast.TypeFunction, Mode: ctx.Parser.Mode()},
				Name: name,
				Args: args,
			}
		}
	}

	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:       2,
		ArgTypes:      []registry.ArgType{registry.ArgOriginal, registry.ArgOriginal},
		Greediness:    2,
		AllowedInText: true,
		Handler:       fracHandler(`\frac`),
	}, `\frac`)

	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs: 3,
		Handler: func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			// args[1] is the \above infix node itself; it is not kept in the tree.
			return fracHandler(`\abovefrac`)(ctx, []ast.Expr{args[0], args[2]}, optArgs)
		},
	}, `\\abovefrac`)

	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs: 2,
		Handler: fracHandler(`\atopfrac`),
	}, `\\atopfrac`)

	infixHandler := func(replaceWith string) registry.Handler {
		return func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			return &ast.Infix{
				Node:        ast.Node{NodeType: ast.TypeInfix, Mode: ctx.Parser.Mode()},
				ReplaceWith: replaceWith,
				Token:       ctx.Token,
			}
		}
	}

	reg.RegisterFunction(registry.FunctionSpec{Infix: true, Handler: infixHandler(`\frac`)}, `\over`)
	reg.RegisterFunction(registry.FunctionSpec{Infix: true, Handler: infixHandler(`\\atopfrac`)}, `\atop`)
	reg.RegisterFunction(registry.FunctionSpec{Infix: true, Handler: infixHandler(`\\abovefrac`)}, `\above`)
}

// installSqrt registers \sqrt[index]{radicand}; the optional index, per
// §4.5's "optional arguments first", occupies argument position 0.
func installSqrt(reg *registry.Registry) {
	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:         1,
		NumOptionalArgs: 1,
		ArgTypes:        []registry.ArgType{registry.ArgOriginal, registry.ArgOriginal},
		Handler: func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			return &ast.Function{
				Node:    ast.Node{NodeType: ast.TypeFunction, Mode: ctx.Parser.Mode()},
				Name:    `\sqrt`,
				Args:    args,
				OptArgs: optArgs,
			}
		},
	}, `\sqrt`)
}

// installKern registers \kern, exercising the size argument grammar
// (example table row "\kern1.5em").
func installKern(reg *registry.Registry) {
	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:       1,
		ArgTypes:      []registry.ArgType{registry.ArgSize},
		AllowedInText: true,
		Handler: func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			return &ast.Function{
				Node: ast.Node{NodeType: ast.TypeFunction, Mode: ctx.Parser.Mode()},
				Name: `\kern`,
				Args: args,
			}
		},
	}, `\kern`)
}

// installColor registers \color (applies to the remainder of the
// enclosing group, example table row "\color{#fff} x") and \textcolor
// (applies to an explicit body argument).
func installColor(reg *registry.Registry) {
	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:       1,
		ArgTypes:      []registry.ArgType{registry.ArgColor},
		AllowedInText: true,
		Handler: func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			colorTok := args[0].(*ast.ColorToken)
			body := ctx.Parser.ParseExpression(false, ctx.BreakOnTokenText)
			return &ast.Color{
				Node:     ast.Node{NodeType: ast.TypeColor, Mode: ctx.Parser.Mode()},
				ColorStr: colorTok.ColorStr,
				Body:     body,
			}
		},
	}, `\color`)

	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:       2,
		ArgTypes:      []registry.ArgType{registry.ArgColor, registry.ArgOriginal},
		AllowedInText: true,
		Handler: func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			colorTok := args[0].(*ast.ColorToken)
			return &ast.Color{
				Node:     ast.Node{NodeType: ast.TypeColor, Mode: ctx.Parser.Mode()},
				ColorStr: colorTok.ColorStr,
				Body:     bodyOf(args[1]),
			}
		},
	}, `\textcolor`)
}

// installOperatorName registers \operatorname and its starred
// \operatorname* spelling, which sets alwaysHandleSupSub so a following
// \limits/\nolimits is accepted (§4.3 item 1).
func installOperatorName(reg *registry.Registry) {
	handler := func(alwaysHandleSupSub bool) registry.Handler {
		return func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			return &ast.OperatorName{
				Node:               ast.Node{NodeType: ast.TypeOperatorName, Mode: ctx.Parser.Mode()},
				Body:               bodyOf(args[0]),
				AlwaysHandleSupSub: alwaysHandleSupSub,
			}
		}
	}

	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:  1,
		ArgTypes: []registry.ArgType{registry.ArgText},
		Handler:  handler(false),
	}, `\operatorname`)

	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:  1,
		ArgTypes: []registry.ArgType{registry.ArgText},
		Handler:  handler(true),
	}, `\operatorname*`)
}

// installLeftRight registers \left, which consumes its own delimiter
// argument, parses the body up to (but not past) \right, then consumes
// \right and its delimiter directly through the exported lookahead
// primitives — \right is deliberately never registered as a function of
// its own, since it only ever appears as the terminator \left is
// waiting for (§4.2's fixed terminator set; §6's leftrightDepth note).
func installLeftRight(reg *registry.Registry) {
	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:  1,
		ArgTypes: []registry.ArgType{registry.ArgOriginal},
		Handler: func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			p := ctx.Parser
			p.SetLeftRightDepth(p.LeftRightDepth() + 1)

			body := p.ParseExpression(false, `\right`)

			rightTok := p.Fetch()
			if rightTok.Text != `\right` {
				p.SetLeftRightDepth(p.LeftRightDepth() - 1)
				return &ast.Styling{
					Node:  ast.Node{NodeType: ast.TypeStyling, Mode: p.Mode()},
					Style: "leftright",
					Body:  append([]ast.Expr{args[0]}, body...),
				}
			}
			p.Consume()
			rightDelim := p.ParseGroupOfType(`\right`, registry.ArgOriginal, false, noGreediness, true)

			p.SetLeftRightDepth(p.LeftRightDepth() - 1)

			all := make([]ast.Expr, 0, len(body)+2)
			all = append(all, args[0])
			all = append(all, body...)
			all = append(all, rightDelim)
			return &ast.Styling{
				Node:  ast.Node{NodeType: ast.TypeStyling, Mode: p.Mode()},
				Style: "leftright",
				Body:  all,
			}
		},
	}, `\left`)
}

// installAccents registers the fixed-width and stretchy accent commands
// (§3's accent node: label, base, isStretchy, isShifty).
func installAccents(reg *registry.Registry) {
	register := func(name, label string, stretchy bool) {
		reg.RegisterFunction(registry.FunctionSpec{
			NumArgs:  1,
			ArgTypes: []registry.ArgType{registry.ArgOriginal},
			Handler: func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
				return &ast.Accent{
					Node:       ast.Node{NodeType: ast.TypeAccent, Mode: ctx.Parser.Mode()},
					Label:      label,
					Base:       args[0],
					IsStretchy: stretchy,
					IsShifty:   true,
				}
			},
		}, name)
	}

	register(`\hat`, `\hat`, false)
	register(`\tilde`, `\tilde`, false)
	register(`\bar`, `\bar`, false)
	register(`\vec`, `\vec`, false)
	register(`\dot`, `\dot`, false)
	register(`\ddot`, `\ddot`, false)
	register(`\acute`, `\acute`, false)
	register(`\grave`, `\grave`, false)
	register(`\breve`, `\breve`, false)
	register(`\check`, `\check`, false)
	register(`\mathring`, `\mathring`, false)
	register(`\widehat`, `\hat`, true)
	register(`\widetilde`, `\tilde`, true)
}

// installTextBoxes registers \text (ArgText) and \hbox (ArgHBox), each
// exercising a distinct entry of the typed-argument dispatch table
// (§4.6).
func installTextBoxes(reg *registry.Registry) {
	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:       1,
		ArgTypes:      []registry.ArgType{registry.ArgText},
		AllowedInText: true,
		Handler: func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			return &ast.Text{
				Node: ast.Node{NodeType: ast.TypeText, Mode: ctx.Parser.Mode()},
				Body: bodyOf(args[0]),
			}
		},
	}, `\text`)

	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:       1,
		ArgTypes:      []registry.ArgType{registry.ArgHBox},
		AllowedInText: true,
		Handler: func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			return args[0]
		},
	}, `\hbox`)
}

// installURL registers \url, whose argument grammar already produces a
// finished *ast.URL (§4.6's parseUrlGroup).
func installURL(reg *registry.Registry) {
	reg.RegisterFunction(registry.FunctionSpec{
		NumArgs:       1,
		ArgTypes:      []registry.ArgType{registry.ArgURL},
		AllowedInText: true,
		Handler: func(ctx registry.Context, args, optArgs []ast.Expr) ast.Expr {
			return args[0]
		},
	}, `\url`)
}

// installImplicitCommands marks control sequences that are recognized
// but intentionally inert: group.go's undefined-control-sequence check
// only fires for control sequences absent from both the function table
// and this set.
func installImplicitCommands(reg *registry.Registry) {
	for _, name := range []string{`\relax`, `\,`, `\;`, `\!`, `\ `, `\quad`, `\qquad`} {
		reg.ImplicitCommands[name] = true
	}
}
