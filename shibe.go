// Package shibe runs shibe scripts: each input is read, normalized and
// driven through lex, tokenize, parse and interpret by a pluggable dialect.
package shibe

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/execution/source/loader"
	"github.com/robbyt/go-shibe/internal/helpers"
	shibelang "github.com/robbyt/go-shibe/machines/shibe"
	"github.com/robbyt/go-shibe/machines/shibe/interpreter"
	"github.com/robbyt/go-shibe/machines/starlark"
	"github.com/robbyt/go-shibe/machines/types"
	"github.com/robbyt/go-shibe/options"
)

// Runner turns command line arguments into inputs and runs them as one batch.
type Runner struct {
	cfg          *options.Config
	orchestrator *pipeline.Orchestrator
	logger       *slog.Logger
}

// New builds a Runner. Options are applied in order over DefaultConfig, then
// WithDefaults fills whatever is still unset.
func New(opts ...options.Option) (*Runner, error) {
	cfg := options.DefaultConfig()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dialect, err := dialectFor(cfg)
	if err != nil {
		return nil, err
	}

	handler, logger := helpers.SetupLogger(cfg.GetHandler(), "shibe", "Runner")
	orchestrator, err := pipeline.New(
		handler,
		dialect(handler, cfg.GetOutput()),
		cfg.GetOutput(),
		pipeline.WithBOMMode(cfg.GetBOMMode()),
		pipeline.WithContinueOnError(cfg.GetContinueOnError()),
	)
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:          cfg,
		orchestrator: orchestrator,
		logger:       logger,
	}, nil
}

// dialectFor maps the configured dialect to its stage constructors.
func dialectFor(cfg *options.Config) (pipeline.Dialect, error) {
	steps := cfg.GetMaxSteps()
	switch cfg.GetDialect() {
	case types.Shibe:
		return func(handler slog.Handler, out io.Writer) pipeline.Stages {
			return shibelang.NewStages(handler, out, interpreter.WithMaxSteps(steps))
		}, nil
	case types.Starlark:
		return func(handler slog.Handler, out io.Writer) pipeline.Stages {
			return starlark.NewStages(handler, out, starlark.WithMaxSteps(uint64(steps)))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownType, cfg.GetDialect())
	}
}

func (r *Runner) String() string {
	return fmt.Sprintf("shibe.Runner{Dialect: %s, %s}", r.cfg.GetDialect(), r.orchestrator)
}

// Run processes args in order: "-" reads the configured stdin, anything else
// is a file path. An argument that cannot name an input fails when its turn
// comes, exactly like a file that cannot be opened.
func (r *Runner) Run(ctx context.Context, args []string) *pipeline.Outcome {
	r.logger.DebugContext(ctx, "running batch", "inputs", len(args))
	return r.orchestrator.Run(ctx, loader.FromArgs(args, r.cfg.GetStdin()))
}

// RunLoaders processes already constructed inputs.
func (r *Runner) RunLoaders(ctx context.Context, loaders ...loader.Loader) *pipeline.Outcome {
	return r.orchestrator.Run(ctx, loaders)
}

// RunString runs content as a single in-memory script.
func RunString(ctx context.Context, content string, opts ...options.Option) error {
	r, err := New(opts...)
	if err != nil {
		return err
	}

	// A blank script is a valid program that does nothing.
	if strings.TrimSpace(content) == "" {
		return nil
	}
	l, err := loader.NewFromString(content)
	if err != nil {
		return err
	}
	return r.RunLoaders(ctx, l).Err()
}
