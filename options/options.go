package options

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-shibe/execution/normalize"
	"github.com/robbyt/go-shibe/machines/types"
)

// Config holds everything needed to build a Runner.
type Config struct {
	// Log handler; stdout stays reserved for program output
	handler slog.Handler
	// Level of the default handler, ignored when a handler is supplied
	logLevel slog.Level
	// Destination of program output and the byte-order mark echo
	output io.Writer
	// Stream read for the "-" argument
	stdin io.Reader
	// Stage implementations to use (shibe, starlark)
	dialect         types.Type
	continueOnError bool
	bomMode         normalize.BOMMode
	// Interpreter step bound, zero for none
	maxSteps int
}

// Option is a function that modifies Config
type Option func(*Config) error

// WithLogger sets the log handler. A nil handler is ignored.
func WithLogger(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithLogLevel sets the level of the default handler: debug, info, warn or error.
func WithLogLevel(level string) Option {
	return func(c *Config) error {
		var l slog.Level
		if err := l.UnmarshalText([]byte(level)); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidConfig, level)
		}
		c.logLevel = l
		return nil
	}
}

// WithOutput sets the program output writer. A nil writer is ignored.
func WithOutput(w io.Writer) Option {
	return func(c *Config) error {
		if w != nil {
			c.output = w
		}
		return nil
	}
}

// WithStdin sets the stream used for the "-" argument. A nil reader is ignored.
func WithStdin(r io.Reader) Option {
	return func(c *Config) error {
		if r != nil {
			c.stdin = r
		}
		return nil
	}
}

// WithDialect selects the stage implementations.
func WithDialect(t types.Type) Option {
	return func(c *Config) error {
		parsed, err := types.Parse(string(t))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		c.dialect = parsed
		return nil
	}
}

// WithContinueOnError keeps processing later inputs after a failure.
func WithContinueOnError(enabled bool) Option {
	return func(c *Config) error {
		c.continueOnError = enabled
		return nil
	}
}

// WithBOMMode selects the byte-order mark predicate.
func WithBOMMode(mode normalize.BOMMode) Option {
	return func(c *Config) error {
		parsed, err := normalize.ParseBOMMode(string(mode))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		c.bomMode = parsed
		return nil
	}
}

// WithMaxSteps bounds how many steps one program may execute. Zero means
// unbounded.
func WithMaxSteps(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("%w: max steps %d is negative", ErrInvalidConfig, n)
		}
		c.maxSteps = n
		return nil
	}
}

// WithConfigFile applies the settings of a YAML or HCL file. Options after it
// override the file.
func WithConfigFile(path string) Option {
	return func(c *Config) error {
		f, err := LoadFile(path)
		if err != nil {
			return err
		}
		for _, opt := range f.Options() {
			if err := opt(c); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
		return nil
	}
}

// Validate performs basic validation on the configuration
func (c *Config) Validate() error {
	var errs []error
	if c.handler == nil {
		errs = append(errs, errors.New("no log handler specified"))
	}
	if c.output == nil {
		errs = append(errs, errors.New("no output specified"))
	}
	if c.stdin == nil {
		errs = append(errs, errors.New("no stdin specified"))
	}
	if _, err := types.Parse(string(c.dialect)); err != nil || c.dialect == "" {
		errs = append(errs, fmt.Errorf("dialect %q is not supported", c.dialect))
	}
	if _, err := normalize.ParseBOMMode(string(c.bomMode)); err != nil || c.bomMode == "" {
		errs = append(errs, fmt.Errorf("bom mode %q is not supported", c.bomMode))
	}
	if c.maxSteps < 0 {
		errs = append(errs, fmt.Errorf("max steps %d is negative", c.maxSteps))
	}
	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

func (c *Config) GetHandler() slog.Handler {
	return c.handler
}

func (c *Config) GetLogLevel() slog.Level {
	return c.logLevel
}

func (c *Config) GetOutput() io.Writer {
	return c.output
}

func (c *Config) GetStdin() io.Reader {
	return c.stdin
}

func (c *Config) GetDialect() types.Type {
	return c.dialect
}

func (c *Config) GetContinueOnError() bool {
	return c.continueOnError
}

func (c *Config) GetBOMMode() normalize.BOMMode {
	return c.bomMode
}

func (c *Config) GetMaxSteps() int {
	return c.maxSteps
}
