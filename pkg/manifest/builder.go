package manifest

import (
	"context"
	"log/slog"

	"github.com/aretw0/parley"
	"github.com/aretw0/parley/internal/logging"
	"github.com/aretw0/parley/pkg/constraint"
)

// Builder compiles a Spec into a dispatchable builder callback.
type Builder struct {
	spec   *Spec
	reg    *Registry
	logger *slog.Logger
	ctx    context.Context
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger handler errors are reported to.
func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) { b.logger = logger }
}

// WithContext sets the context handed to handlers.
func WithContext(ctx context.Context) BuilderOption {
	return func(b *Builder) { b.ctx = ctx }
}

// NewBuilder creates a builder for the given spec and handler registry.
func NewBuilder(spec *Spec, reg *Registry, opts ...BuilderOption) *Builder {
	b := &Builder{spec: spec, reg: reg}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		b.logger = logging.NewNop()
	}
	if b.ctx == nil {
		b.ctx = context.Background()
	}
	return b
}

// Bind returns the builder callback for parley.Parse, parley.UserLoop,
// and friends. The callback re-registers the manifest's commands on every
// traversal, which is exactly the repeatable-description contract the
// dispatcher expects.
func (b *Builder) Bind() func(*parley.Ctx) {
	return func(c *parley.Ctx) {
		for i := range b.spec.Commands {
			b.register(c, &b.spec.Commands[i])
		}
	}
}

func (b *Builder) register(c *parley.Ctx, spec *CommandSpec) {
	var cmd *parley.Command
	if spec.Fallback {
		cmd = c.Otherwise()
	} else {
		cmd = c.Command(nameConstraint(spec))
	}
	if spec.Description != "" {
		cmd = cmd.Describe(spec.Description)
	}

	vals := make([]any, 0, len(spec.Args))
	for _, raw := range spec.Args {
		// Validated at load time; a spec that fails here is a caller bug.
		a, err := parseArgSpec(raw)
		if err != nil {
			b.logger.Error("bad arg spec survived validation", "arg", raw, "err", err)
			continue
		}
		cmd = cmd.Arg(a.binder(&vals))
	}

	if len(spec.Commands) > 0 {
		cmd = cmd.SubCommands(func(sc *parley.Ctx) {
			for i := range spec.Commands {
				b.register(sc, &spec.Commands[i])
			}
		})
	}

	if spec.Handler != "" {
		cmd.Run(func() {
			if err := b.reg.Execute(b.ctx, spec.Handler, vals); err != nil {
				b.logger.Error("handler failed", "handler", spec.Handler, "err", err)
			}
		})
	}
}

// nameConstraint builds the naming constraint for a command: its name,
// extended by Either chains for each alias.
func nameConstraint(spec *CommandSpec) constraint.Constraint[parley.Unit] {
	con := constraint.Exact(spec.Name)
	for _, alias := range spec.Aliases {
		con = constraint.Either(con, constraint.Exact(alias))
	}
	return con
}
