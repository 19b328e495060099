package options

import (
	"log/slog"
	"os"

	"github.com/robbyt/go-shibe/execution/normalize"
	"github.com/robbyt/go-shibe/internal/helpers"
	"github.com/robbyt/go-shibe/machines/types"
)

// DefaultLogLevel keeps the default handler quiet unless something fails.
const DefaultLogLevel = slog.LevelWarn

// DefaultConfig initializes a Config for the process streams. The handler is
// left for WithDefaults so that a configured log level is honored.
func DefaultConfig() *Config {
	return &Config{
		logLevel: DefaultLogLevel,
		output:   os.Stdout,
		stdin:    os.Stdin,
		dialect:  types.Default,
		bomMode:  normalize.BOMStrict,
	}
}

// WithDefaults fills in any config properties that are still unset.
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = helpers.DefaultHandler(c.logLevel)
		}
		if c.output == nil {
			c.output = os.Stdout
		}
		if c.stdin == nil {
			c.stdin = os.Stdin
		}
		if c.dialect == "" {
			c.dialect = types.Default
		}
		if c.bomMode == "" {
			c.bomMode = normalize.BOMStrict
		}
		return nil
	}
}
