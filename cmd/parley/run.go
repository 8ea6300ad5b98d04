package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/internal/presentation/tui"
	"github.com/aretw0/parley/pkg/constraint"
	"github.com/aretw0/parley/pkg/manifest"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run MANIFEST [-- TOKENS...]",
	Short: "Dispatch input against a manifest",
	Long: `Loads a YAML command manifest and dispatches against it. Tokens after
"--" are dispatched once; without them an interactive loop starts.
Handlers are stubbed to echo their name and arguments, which makes run
useful for trying out a manifest's matching, help, and diagnostics.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		levelFlag, _ := cmd.Flags().GetString("log-level")
		markdown, _ := cmd.Flags().GetBool("markdown")
		width, _ := cmd.Flags().GetInt("width")

		if err := runManifest(args[0], args[1:], levelFlag, markdown, width); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("markdown", false, "Render command descriptions as markdown")
	runCmd.Flags().Int("width", 0, "Help wrap width (default: terminal width)")
}

func runManifest(path string, tokens []string, levelFlag string, markdown bool, width int) error {
	level, err := logging.ParseLevel(levelFlag)
	if err != nil {
		return err
	}
	logger := logging.New(level)

	spec, err := manifest.Load(path)
	if err != nil {
		return err
	}

	reg := manifest.NewRegistry()
	registerEchoHandlers(reg, spec.Commands)

	opts := []parley.Option{
		parley.WithLogger(logger),
	}
	if spec.Prompt != "" {
		opts = append(opts, parley.WithPrompt(spec.Prompt))
	}
	if width > 0 {
		opts = append(opts, parley.WithWidth(width))
	}
	if markdown {
		r, err := tui.NewRenderer(width)
		if err != nil {
			return fmt.Errorf("markdown renderer: %w", err)
		}
		opts = append(opts, parley.WithRenderer(r))
	}
	d := parley.New(opts...)

	build := manifest.NewBuilder(spec, reg, manifest.WithLogger(logger)).Bind()

	if len(tokens) > 0 {
		if err := d.Parse(tokens, build); err != nil {
			d.Explain(err, build)
			return err
		}
		return nil
	}

	tui.PrintBanner(os.Stdout)

	_, err = parley.LoopWith(d, func(c *parley.Ctx, cf *parley.ControlFlow[parley.Unit]) {
		build(c)
		c.Command(quitConstraint()).
			Describe("Leave the interactive session").
			Run(func() { cf.Quit(parley.Unit{}) })
	})
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func quitConstraint() constraint.Constraint[parley.Unit] {
	return constraint.Either(constraint.Exact("q"), constraint.Exact("quit"))
}

// registerEchoHandlers stubs every handler the manifest references.
func registerEchoHandlers(reg *manifest.Registry, cmds []manifest.CommandSpec) {
	for _, c := range cmds {
		if c.Handler != "" {
			name := c.Handler
			reg.Register(name, func(ctx context.Context, args []any) error {
				fmt.Printf("%s(%v)\n", name, args)
				return nil
			})
		}
		registerEchoHandlers(reg, c.Commands)
	}
}
