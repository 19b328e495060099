package starlark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/robbyt/go-shibe/execution/pipeline"
	"github.com/robbyt/go-shibe/internal/helpers"

	starlarkLib "go.starlark.net/starlark"
)

// Interpreter executes compiled programs on a fresh thread per run.
type Interpreter struct {
	out      io.Writer
	maxSteps uint64
	logger   *slog.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithMaxSteps bounds the Starlark computation steps of one program. Zero
// means unbounded.
func WithMaxSteps(n uint64) Option {
	return func(i *Interpreter) {
		i.maxSteps = n
	}
}

func NewInterpreter(handler slog.Handler, out io.Writer, opts ...Option) *Interpreter {
	_, logger := helpers.SetupLogger(handler, "starlark", "Interpreter")
	i := &Interpreter{out: out, logger: logger}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

func (i *Interpreter) String() string {
	return "starlark.Interpreter"
}

// Interpret implements pipeline.Interpreter.
func (i *Interpreter) Interpret(ctx context.Context, tree pipeline.Tree) error {
	prog, ok := tree.(*Program)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedArtifact, tree)
	}
	return i.Exec(ctx, prog)
}

// Exec initializes prog's globals, which runs its top-level statements.
func (i *Interpreter) Exec(ctx context.Context, prog *Program) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if prog.prog == nil {
		return fmt.Errorf("%w: %s has been released", ErrUnexpectedArtifact, prog.name)
	}

	logger := i.logger.With("file", prog.name)
	w := &printer{out: i.out}
	thread := &starlarkLib.Thread{
		Name:  prog.name,
		Print: w.print,
	}
	if i.maxSteps > 0 {
		thread.SetMaxExecutionSteps(i.maxSteps)
	}

	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(ctx.Err().Error())
	})
	defer stop()

	start := time.Now()
	_, err := prog.prog.Init(thread, standardModules())
	logger.DebugContext(ctx, "executed", "duration", time.Since(start), "steps", thread.ExecutionSteps())

	switch {
	case w.err != nil:
		return fmt.Errorf("%w: %w", ErrOutput, w.err)
	case err == nil:
		return nil
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %w", ctx.Err(), err)
	default:
		return fmt.Errorf("%w: %w", ErrExecution, err)
	}
}

// printer forwards print() lines and stops the thread on the first failed write.
type printer struct {
	out io.Writer
	err error
}

func (p *printer) print(thread *starlarkLib.Thread, msg string) {
	if p.err != nil {
		return
	}
	if _, err := io.WriteString(p.out, msg+"\n"); err != nil {
		p.err = err
		thread.Cancel(err.Error())
	}
}
