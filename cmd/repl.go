package cmd

import (
	"fmt"
	"os"

	"github.com/Islam0mar/micro-lisp/repl"
	"github.com/spf13/cobra"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive read-eval-print loop.  Expressions may span
multiple lines and the read primitive reads from the terminal.  Interrupt
discards a partial expression.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := repl.RunRepl("> ", repl.WithSymbolTable(symbolTable()))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
