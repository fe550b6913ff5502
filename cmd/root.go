package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Islam0mar/micro-lisp/lisp"
	"github.com/Islam0mar/micro-lisp/parser"
	"github.com/spf13/cobra"
)

var symbolMax int

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "micro-lisp",
	Short: "A minimal lisp interpreter",
	Long: `Read one expression from standard input, evaluate it and print the
result.  The read primitive continues reading standard input after the
expression.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		err := evalOne(os.Stdin, os.Stdout, os.Stderr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&symbolMax, "symbol-max", lisp.SymbolMax,
		"Symbol buffer size, names are significant up to one less byte (0 for no limit)")
}

// symbolTable returns the table selected by the --symbol-max flag.
func symbolTable() *lisp.SymbolTable {
	if symbolMax == lisp.SymbolMax {
		return lisp.DefaultSymbolTable
	}
	return lisp.NewSymbolTable(symbolMax)
}

// evalOne reads a single expression from in, evaluates it and writes the
// result and a newline to out.  The program's read primitive shares in.
func evalOne(in io.Reader, out, errout io.Writer) error {
	table := symbolTable()
	reader := parser.NewReader("stdin", in, table)
	rt := lisp.NewRuntime(
		lisp.WithSymbolTable(table),
		lisp.WithReader(reader),
		lisp.WithStdout(out),
		lisp.WithStderr(errout),
	)
	expr, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return errors.New("no expression on input")
	}
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	v := rt.EvalGlobal(expr)
	if _, err := lisp.Format(out, v); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}
