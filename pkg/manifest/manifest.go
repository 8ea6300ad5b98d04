// Package manifest builds command trees from declarative YAML documents.
//
// A manifest names commands, their aliases, argument shapes, and the
// handlers to run; handlers are resolved by name through a Registry. The
// compiled result is an ordinary builder callback, so manifest-defined
// trees get the same dispatch, help, and diagnostics as hand-written ones.
package manifest

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Spec is the root of a command manifest.
type Spec struct {
	// Prompt overrides the interactive prompt, when the manifest is run
	// as a loop.
	Prompt string `mapstructure:"prompt"`

	Commands []CommandSpec `mapstructure:"commands"`
}

// CommandSpec describes one command. Order in the manifest is match
// priority, like registration order in a builder callback.
type CommandSpec struct {
	Name        string   `mapstructure:"name"`
	Aliases     []string `mapstructure:"aliases"`
	Description string   `mapstructure:"description"`

	// Args lists positional argument shapes: "string", "int", "number",
	// or a bounded "int:0..100" / "number:0..1" (half-open ranges).
	Args []string `mapstructure:"args"`

	// Handler is the registry name of the function to run when the
	// command matches. Empty for pure grouping commands.
	Handler string `mapstructure:"handler"`

	// Fallback marks the command as matching any input. It should be the
	// last entry of its scope.
	Fallback bool `mapstructure:"fallback"`

	Commands []CommandSpec `mapstructure:"commands"`
}

// Parse decodes a manifest document. YAML is first unmarshalled into a
// generic map, then decoded with mapstructure, so unknown keys fail
// loudly instead of silently vanishing.
func Parse(data []byte) (*Spec, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid manifest yaml: %w", err)
	}

	var spec Spec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &spec,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid manifest structure: %w", err)
	}

	if err := spec.validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

func (s *Spec) validate() error {
	return validateCommands(s.Commands, "")
}

func validateCommands(cmds []CommandSpec, path string) error {
	for i, c := range cmds {
		at := c.Name
		if at == "" {
			at = fmt.Sprintf("#%d", i)
		}
		if path != "" {
			at = path + "." + at
		}

		if c.Name == "" && !c.Fallback {
			return fmt.Errorf("command %s: needs a name or fallback: true", at)
		}
		if c.Handler == "" && len(c.Commands) == 0 {
			return fmt.Errorf("command %s: needs a handler or sub-commands", at)
		}
		for _, a := range c.Args {
			if _, err := parseArgSpec(a); err != nil {
				return fmt.Errorf("command %s: %w", at, err)
			}
		}
		if err := validateCommands(c.Commands, at); err != nil {
			return err
		}
	}
	return nil
}
