package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-shibe/execution/normalize"
	"github.com/robbyt/go-shibe/execution/source"
	"github.com/robbyt/go-shibe/execution/source/loader"
	"github.com/robbyt/go-shibe/internal/helpers"
)

// Orchestrator drives inputs through read → normalize → lex → tokenize →
// parse → interpret, one input at a time, owning each intermediate artifact
// until the next stage has consumed it.
type Orchestrator struct {
	stages          Stages
	out             io.Writer
	bomMode         normalize.BOMMode
	continueOnError bool

	// read is the Source Reader; tests replace it to observe the buffer.
	read func(loader.Loader) (*source.RawBuffer, error)

	logHandler slog.Handler
	logger     *slog.Logger
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithBOMMode selects the byte-order mark predicate. The default is strict.
func WithBOMMode(mode normalize.BOMMode) Option {
	return func(o *Orchestrator) {
		o.bomMode = mode
	}
}

// WithContinueOnError keeps processing later inputs after a failure.
// The batch still fails; only the stopping point changes.
func WithContinueOnError(enabled bool) Option {
	return func(o *Orchestrator) {
		o.continueOnError = enabled
	}
}

// New creates an Orchestrator. out receives the byte-order mark echo and
// should be the same stream the interpreter writes to.
func New(handler slog.Handler, stages Stages, out io.Writer, opts ...Option) (*Orchestrator, error) {
	if err := stages.Validate(); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%w: output is nil", ErrInvalidStages)
	}

	handler, logger := helpers.SetupLogger(handler, "pipeline", "Orchestrator")
	o := &Orchestrator{
		stages:     stages,
		out:        out,
		bomMode:    normalize.BOMStrict,
		read:       source.ReadFrom,
		logHandler: handler,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

func (o *Orchestrator) String() string {
	return fmt.Sprintf("pipeline.Orchestrator{BOMMode: %s, ContinueOnError: %t}", o.bomMode, o.continueOnError)
}

// Run processes loaders in order. By default the first failure ends the
// batch and later inputs are never opened.
func (o *Orchestrator) Run(ctx context.Context, loaders []loader.Loader) *Outcome {
	outcome := &Outcome{Total: len(loaders)}

	for i, l := range loaders {
		outcome.Processed++
		err := o.RunOne(ctx, l)
		if err == nil {
			outcome.Succeeded++
			continue
		}

		outcome.Errors = append(outcome.Errors, err)
		if !o.continueOnError || ctx.Err() != nil {
			o.logger.DebugContext(ctx, "batch aborted", "remaining", len(loaders)-i-1)
			break
		}
	}

	o.logger.DebugContext(ctx, "batch finished",
		"total", outcome.Total,
		"succeeded", outcome.Succeeded,
		"failed", len(outcome.Errors),
	)
	return outcome
}

// RunOne takes a single input through every stage. On any failure the
// artifact currently owned is released and an *InputError is returned.
func (o *Orchestrator) RunOne(ctx context.Context, l loader.Loader) error {
	r := &run{
		name:   l.GetSourceName(),
		state:  StateReading,
		logger: o.logger.With("source", l.GetSourceName()),
	}

	if err := r.checkpoint(ctx, nil); err != nil {
		return err
	}
	buf, err := o.read(l)
	if err != nil {
		return r.fail(ctx, readKind(err), err)
	}
	r.logger.DebugContext(ctx, "input read", "length", buf.Len(), "capacity", buf.Cap())

	r.enter(ctx, StateNormalizing)
	report, err := normalize.Normalize(buf, o.out, o.bomMode)
	if err != nil {
		buf.Release()
		return r.fail(ctx, KindNormalize, err)
	}
	r.logger.DebugContext(ctx, "input normalized",
		"directiveStripped", report.DirectiveStripped,
		"bomDetected", report.BOMDetected,
	)

	if err := r.checkpoint(ctx, buf); err != nil {
		return err
	}
	r.enter(ctx, StateLexing)
	lexemes, err := o.stages.Lexer.Lex(normalize.WithReport(ctx, report), buf.Bytes(), r.name)
	buf.Release()
	if err = r.produced(lexemes, err); err != nil {
		release(lexemes)
		return r.fail(ctx, stageKind(r.state, err), err)
	}

	if err := r.checkpoint(ctx, lexemes); err != nil {
		return err
	}
	r.enter(ctx, StateTokenizing)
	tokens, err := o.stages.Tokenizer.Tokenize(ctx, lexemes)
	lexemes.Release()
	if err = r.produced(tokens, err); err != nil {
		release(tokens)
		return r.fail(ctx, stageKind(r.state, err), err)
	}

	if err := r.checkpoint(ctx, tokens); err != nil {
		return err
	}
	r.enter(ctx, StateParsing)
	tree, err := o.stages.Parser.Parse(ctx, tokens)
	tokens.Release()
	if err = r.produced(tree, err); err != nil {
		release(tree)
		return r.fail(ctx, stageKind(r.state, err), err)
	}

	if err := r.checkpoint(ctx, tree); err != nil {
		return err
	}
	r.enter(ctx, StateInterpreting)
	err = o.stages.Interpreter.Interpret(ctx, tree)
	tree.Release()
	if err != nil {
		return r.fail(ctx, stageKind(r.state, err), err)
	}

	r.enter(ctx, StateDone)
	return nil
}

// run tracks the state of one input.
type run struct {
	name   string
	state  State
	logger *slog.Logger
}

func (r *run) enter(ctx context.Context, s State) {
	r.state = s
	r.logger.DebugContext(ctx, "entering state", "state", s)
}

// checkpoint releases owned and fails the input when ctx is done.
func (r *run) checkpoint(ctx context.Context, owned Artifact) error {
	err := ctx.Err()
	if err == nil {
		return nil
	}
	release(owned)
	return r.fail(ctx, KindCanceled, err)
}

// produced turns a missing artifact into an error.
func (r *run) produced(a Artifact, err error) error {
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("%w: %s", ErrNoArtifact, r.state)
	}
	return nil
}

func (r *run) fail(ctx context.Context, kind Kind, err error) error {
	failedIn := r.state
	r.state = StateFailed
	r.logger.ErrorContext(ctx, "input failed", "kind", kind, "state", failedIn, "error", err)
	return &InputError{
		Source: r.name,
		Kind:   kind,
		State:  failedIn,
		Err:    err,
	}
}
