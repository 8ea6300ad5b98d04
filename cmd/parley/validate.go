package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/parley/pkg/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate MANIFEST",
	Short: "Check a manifest for consistency",
	Long:  `Parses the manifest and reports structural problems: unnamed commands, malformed argument shapes, and commands with neither handler nor sub-commands.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Manifest is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	spec, err := manifest.Load(path)
	if err != nil {
		return err
	}

	// Handler names cannot be resolved here since the CLI stubs them;
	// report shadowed commands instead, the one mistake Load accepts.
	var shadowed []string
	var walk func(cmds []manifest.CommandSpec, scope string)
	walk = func(cmds []manifest.CommandSpec, scope string) {
		for i, c := range cmds {
			if c.Fallback && i != len(cmds)-1 {
				shadowed = append(shadowed, scope)
			}
			name := c.Name
			if scope != "" && name != "" {
				name = scope + "." + name
			}
			walk(c.Commands, name)
		}
	}
	walk(spec.Commands, "(root)")
	if len(shadowed) > 0 {
		return fmt.Errorf("fallback shadows later commands at: %s", strings.Join(shadowed, ", "))
	}
	return nil
}
