/*
File: monke/cmd/monke/main.go

Package main implements the monke command-line interface: an interactive
REPL, a single-expression mode (-e), and a file mode, per spec.md §6.

Examples:

	monke                    # start the REPL
	monke -e "1 + 2 * 3"     # evaluate one expression and print its value
	monke script.mk          # evaluate a file
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/akashmaji946/monke/evaluator"
	"github.com/akashmaji946/monke/lexer"
	"github.com/akashmaji946/monke/object"
	"github.com/akashmaji946/monke/parser"
	"github.com/akashmaji946/monke/repl"
)

const banner = `
   __  __             _
  |  \/  | ___  _ __ | | _____
  | |\/| |/ _ \| '_ \| |/ / _ \
  | |  | | (_) | | | |   <  __/
  |_|  |_|\___/|_| |_|_|\_\___|
`

const version = "0.1.0"

func main() {
	expression := flag.String("e", "", "evaluate EXPR and print its value")
	flag.Parse()

	switch {
	case *expression != "":
		evalExpression(*expression)
	case flag.NArg() > 0:
		evalFile(flag.Arg(0))
	default:
		startREPL()
	}
}

// evalExpression runs expr in a fresh environment and prints its value,
// exiting with status 1 on a parse or evaluation error.
func evalExpression(expr string) {
	program, errs := parser.ParseProgram(lexer.New(expr))
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
		}
		os.Exit(1)
	}

	result, err := evaluator.EvalReturn(program, object.NewEnvironment())
	if err != nil {
		fmt.Fprintf(os.Stderr, "eval error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(result.Inspect())
}

// evalFile reads filename and evaluates its contents as a single program,
// sharing the exit-on-error behavior of evalExpression.
func evalFile(filename string) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading file: %v\n", err)
		os.Exit(1)
	}
	evalExpression(string(content))
}

func startREPL() {
	r := repl.NewRepl(banner, version, "----------------------------------------", "monke >> ")
	r.Start(os.Stdout)
}
