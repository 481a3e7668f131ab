package cmd

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"texparse/pkg/ast"
)

var (
	replFlagsVar parseFlags
	replNoBanner bool
	replHistory  string
	replTree     bool
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "Start an interactive read-parse-print loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !replNoBanner {
			pterm.Info.Println("texparse REPL — one expression per line, Ctrl+D to quit")
		}

		rl, err := readline.NewEx(&readline.Config{
			Prompt:      "tex> ",
			HistoryFile: replHistory,
		})
		if err != nil {
			return err
		}
		defer rl.Close()

		for {
			line, err := rl.Readline()
			if err != nil { // io.EOF on Ctrl+D
				break
			}
			if line = strings.TrimSpace(line); line == "" {
				continue
			}
			evalLine(line)
		}
		fmt.Println("Good bye!")
		return nil
	},
}

func evalLine(line string) {
	p, err := newParser(line, &replFlagsVar)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	nodes, err := p.Parse()
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	if !replTree {
		for _, n := range nodes {
			fmt.Print(ast.Dump(n))
		}
		return
	}
	root := pterm.TreeNode{Text: "root"}
	for _, n := range nodes {
		root.Children = append(root.Children, buildTree(n))
	}
	pterm.DefaultTree.WithRoot(root).Render()
}

func init() {
	rootCmd.AddCommand(replCmd)
	addParseFlags(replCmd, &replFlagsVar)
	replCmd.Flags().BoolVar(&replNoBanner, "no-banner", false, "hide the welcome message")
	replCmd.Flags().StringVar(&replHistory, "history", "", "path to a history file")
	replCmd.Flags().BoolVar(&replTree, "tree", false, "render each result as a pterm tree")
}
