/*
File: monke/repl/repl.go

Package repl implements Monke's interactive Read-Eval-Print Loop: one
shared environment threaded across every line, readline-backed history and
editing, and colored output (spec.md §6).
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/monke/evaluator"
	"github.com/akashmaji946/monke/lexer"
	"github.com/akashmaji946/monke/object"
	"github.com/akashmaji946/monke/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's configuration.
type Repl struct {
	Banner  string
	Version string
	Line    string
	Prompt  string
}

// NewRepl creates a Repl ready to Start.
func NewRepl(banner, version, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type 'exit' or press enter on a blank line to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the loop until the user types `exit`, submits a blank line,
// or readline reports EOF (spec.md §6). One object.Environment is shared
// across every line, so `let` bindings from earlier lines stay visible.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[IO ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		line = strings.TrimSpace(line)
		if line == "" || line == "exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}

		rl.SaveHistory(line)
		r.evalAndPrint(writer, line, env)
	}
}

func (r *Repl) evalAndPrint(writer io.Writer, line string, env *object.Environment) {
	program, errs := parser.ParseProgram(lexer.New(line))
	if len(errs) > 0 {
		for _, err := range errs {
			redColor.Fprintf(writer, "[PARSE ERROR] %v\n", err)
		}
		return
	}

	result, err := evaluator.EvalReturn(program, env)
	if err != nil {
		redColor.Fprintf(writer, "[EVAL ERROR] %v\n", err)
		return
	}

	if result == object.NullValue {
		return
	}
	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
