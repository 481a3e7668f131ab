package cmd

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"texparse/pkg/ast"
)

var (
	astFlagsVar parseFlags
	astTree     bool
)

var astCmd = &cobra.Command{
	Use:   "ast [input]",
	Short: "Parse and print the resulting AST",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		p, err := newParser(src, &astFlagsVar)
		if err != nil {
			return err
		}

		nodes, err := p.Parse()
		if err != nil {
			printError(err)
			os.Exit(1)
		}

		if !astTree {
			for _, n := range nodes {
				fmt.Print(ast.Dump(n))
			}
			return nil
		}

		root := pterm.TreeNode{Text: "root"}
		for _, n := range nodes {
			root.Children = append(root.Children, buildTree(n))
		}
		return pterm.DefaultTree.WithRoot(root).Render()
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
	addParseFlags(astCmd, &astFlagsVar)
	astCmd.Flags().BoolVar(&astTree, "tree", false, "render as a pterm tree instead of an indented dump")
}
