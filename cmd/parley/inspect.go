package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/pkg/manifest"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect MANIFEST",
	Short: "Print the command tree of a manifest",
	Long:  `Compiles the manifest and renders its introspected command tree, the same view the built-in help command shows at runtime.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInspect(args[0]); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(path string) error {
	spec, err := manifest.Load(path)
	if err != nil {
		return err
	}

	reg := manifest.NewRegistry()
	registerEchoHandlers(reg, spec.Commands)
	build := manifest.NewBuilder(spec, reg).Bind()

	d := parley.New()
	return d.Parse([]string{"help"}, build)
}
