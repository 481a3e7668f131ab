package cmd

import (
	"github.com/spf13/cobra"
)

var checkFlagsVar parseFlags

var checkCmd = &cobra.Command{
	Use:     "check [input]",
	Short:   "Parse without printing the AST, reporting only success or the first error",
	Aliases: []string{"vet"},
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		p, err := newParser(src, &checkFlagsVar)
		if err != nil {
			return err
		}

		printHeader("Check")
		if _, err := p.Parse(); err != nil {
			printError(err)
			return err
		}
		printInfo("Status", "ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	addParseFlags(checkCmd, &checkFlagsVar)
}
