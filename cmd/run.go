package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/Islam0mar/micro-lisp/lisp"
	"github.com/Islam0mar/micro-lisp/parser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE|EXPR ...",
	Short: "Run lisp code",
	Long: `Run lisp code supplied via the command line or files.  Every
expression of every argument is evaluated in one global environment.  The read
primitive reads standard input.`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		err = runSources(sources, os.Stdin, os.Stdout, os.Stderr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

type runSource struct {
	name string
	text []byte
}

func runReadSources(args []string) ([]runSource, error) {
	sources := make([]runSource, len(args))
	if runExpression {
		for i := range args {
			sources[i] = runSource{fmt.Sprintf("expression%d", i+1), []byte(args[i])}
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = runSource{path, b}
	}
	return sources, nil
}

// runSources evaluates the expressions of each source in order.  When the
// print flag is set each result is written to out.  Expressions preceding a
// syntax error in a source are evaluated before the error is returned.
func runSources(sources []runSource, in io.Reader, out, errout io.Writer) error {
	table := symbolTable()
	rt := lisp.NewRuntime(
		lisp.WithSymbolTable(table),
		lisp.WithReader(parser.NewReader("stdin", in, table)),
		lisp.WithStdout(out),
		lisp.WithStderr(errout),
	)
	for _, src := range sources {
		exprs, err := parser.ParseBytes(src.name, src.text, table)
		for _, expr := range exprs {
			v := rt.EvalGlobal(expr)
			if runPrint {
				fmt.Fprintln(out, lisp.FormatString(v))
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
