package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	logoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true) // Blue accent
	subtextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))           // Dim gray
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

var rootCmd = &cobra.Command{
	Use:   "texparse",
	Short: "TeX/LaTeX math expression parser",
	Long: logoStyle.Render("texparse") + ` - a recursive-descent parser for TeX/LaTeX
math expressions: token consumption through to AST.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func printHeader(title string) {
	fmt.Println(headerStyle.Render(title))
}

func printInfo(label, value string) {
	fmt.Printf("%s: %s\n", subtextStyle.Render(label), value)
}

func printError(err error) {
	fmt.Println(errorStyle.Render("Error:"), err)
}
