package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"texparse/pkg/ast"
)

var parseFlagsVar parseFlags

var parseCmd = &cobra.Command{
	Use:   "parse [input]",
	Short: "Parse a TeX/LaTeX math expression and report success or the first error",
	Long:  `Reads source from the named file, or stdin when omitted or "-", and runs it through the full parser.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		p, err := newParser(src, &parseFlagsVar)
		if err != nil {
			return err
		}

		printHeader("Parse")
		nodes, err := p.Parse()
		if err != nil {
			printError(err)
			os.Exit(1)
		}

		printInfo("Nodes", fmt.Sprintf("%d", len(nodes)))
		for _, n := range nodes {
			fmt.Print(ast.Dump(n))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	addParseFlags(parseCmd, &parseFlagsVar)
}
