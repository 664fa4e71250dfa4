// Command lumen is the REPL and script runner for the lumen language.
//
// With no arguments it starts an interactive prompt. With one or more
// file arguments it loads each file in turn, the same way the `load`
// builtin does, and exits.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/eval"
	"github.com/lumen-lang/lumen/value"
)

func main() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lumen [files...]",
		Short:         "lumen is a small Lisp interpreter",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env := value.NewEnvironment(nil)
			eval.LoadPrimitives(env)
			if err := eval.LoadPrelude(env); err != nil {
				log.Fatalf("lumen: %v", err)
			}

			if len(args) == 0 {
				runREPL(env)
				return nil
			}
			return runFiles(env, args)
		},
	}
	return cmd
}

// runFiles loads each named file via the `load` builtin's own machinery,
// printing any error it surfaces. This mirrors evaluating `(load "f")`
// for every argument, so command-line behavior never diverges from
// what a script can do to itself.
func runFiles(env *value.Environment, files []string) error {
	for _, f := range files {
		args := value.NewSexpr(value.NewString(f))
		loaded := eval.Call(env, env.Get("load"), args)
		if loaded.Kind == value.Error {
			fmt.Println(loaded.String())
		}
	}
	return nil
}

// runREPL drives an interactive lumen session using line-edited input,
// evaluating each line against a shared environment until the user
// exits with Ctrl+C, Ctrl+D, or EOF.
func runREPL(env *value.Environment) {
	fmt.Println("lumen Version 0.0.0.0.1")
	fmt.Println("Press Ctrl+c to Exit")
	fmt.Println()

	rl, err := readline.New("lumen> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "lumen: could not start line editor:", err)
		return
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		if line == "" {
			continue
		}

		result := eval.EvalSource(env, line)
		fmt.Println(result.String())
	}
}
