/*
Package parley is a declarative command-dispatch engine for CLIs and REPLs.

Callers describe a tree of commands inside a builder callback; the engine
matches an input token line against that tree, extracts typed arguments,
and runs the handler of the first matching command. The same callback is
also run in introspect mode, where nothing matches and nothing executes,
to produce the snapshot behind the built-in `help` command and the
"did you mean" suggestions on failed input.

# Concept

A command's name and its arguments are the same thing: constraints over a
prefix of the token stream. An exact word names a command, a numeric range
extracts a bounded value, and combinators (Either, Tuple2, Optional)
compose both. Because the whole tree is a repeatable description rather
than a one-shot registration, one source of truth drives execution, help
text, and error diagnostics.

# Usage

	package main

	import (
		"fmt"

		"github.com/aretw0/parley"
		"github.com/aretw0/parley/pkg/constraint"
	)

	func main() {
		code, _ := parley.UserLoop(func(c *parley.Ctx, cf *parley.ControlFlow[int]) {
			var name string
			c.Command(constraint.Exact("greet")).
				Describe("Print a greeting").
				Arg(constraint.Bind(constraint.String(), &name)).
				Run(func() {
					fmt.Println("hello,", name)
				})

			c.Command(constraint.Either(constraint.Exact("q"), constraint.Exact("quit"))).
				Describe("Leave the program").
				Run(func() {
					cf.Quit(0)
				})
		})
		_ = code
	}

Typing `help` at the prompt prints the generated command overview, and a
typo such as `griet` produces a caret diagnostic with a suggestion. See
the examples directory for one-shot argument dispatch, nested loops, and
YAML-defined command manifests.
*/
package parley
