package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"github.com/robbyt/go-shibe/execution/normalize"
	"github.com/robbyt/go-shibe/machines/types"
	"github.com/robbyt/go-shibe/options"
)

// Exit codes of the shibe command.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// quietLogLevel silences the log handler by default: failures already reach
// the user as one diagnostic line each.
const quietLogLevel = "ERROR+4"

// ExitError is an error type that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line.
type Config struct {
	ConfigFile      string
	Dialect         string
	ContinueOnError bool
	LegacyBOM       bool
	LogLevel        string
	Files           []string

	// set records which flags were given explicitly.
	set map[string]bool
}

// Parse processes command-line arguments. It returns the parsed Config, a
// boolean telling the caller to exit cleanly (help or version was printed),
// or an *ExitError with ExitUsage.
func Parse(args []string, output io.Writer, version string) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("shibe", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `Usage: shibe [options] [FILE] ...
Interpret FILE(s) as shibe. Let FILE be '-' for stdin.

Options:
`)
		flagSet.PrintDefaults()
	}

	cfg := &Config{set: make(map[string]bool)}
	flagSet.StringVar(&cfg.ConfigFile, "config", "", "Path to a YAML (.yaml, .yml) or HCL (.hcl) config file.")
	flagSet.StringVar(&cfg.Dialect, "dialect", string(types.Default), "Language of the inputs. Options: 'shibe' or 'starlark'.")
	flagSet.BoolVar(&cfg.ContinueOnError, "continue-on-error", false, "Keep running later inputs after one fails.")
	flagSet.BoolVar(&cfg.LegacyBOM, "legacy-bom", false, "Treat any one matching byte-order mark byte as a mark.")
	flagSet.StringVar(&cfg.LogLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Logging is off when unset.")
	showVersion := flagSet.Bool("version", false, "Print the program version.")
	flagSet.BoolVar(showVersion, "v", false, "Print the program version (shorthand).")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	flagSet.Visit(func(f *flag.Flag) {
		cfg.set[f.Name] = true
	})

	if *showVersion {
		fmt.Fprintf(output, "shibe %s\n", version)
		return nil, true, nil
	}

	if _, err := types.Parse(cfg.Dialect); err != nil {
		return nil, false, &ExitError{Code: ExitUsage, Message: fmt.Sprintf("invalid dialect: %v", err)}
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, false, &ExitError{Code: ExitUsage, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
		}
	}

	cfg.Files = flagSet.Args()
	return cfg, false, nil
}

// Options turns the command line into runner options. The config file is
// applied first, so only flags given explicitly override it.
func (c *Config) Options() []options.Option {
	var opts []options.Option
	if !c.set["log-level"] {
		opts = append(opts, options.WithLogLevel(quietLogLevel))
	}
	if c.ConfigFile != "" {
		opts = append(opts, options.WithConfigFile(c.ConfigFile))
	}
	if c.set["dialect"] {
		opts = append(opts, options.WithDialect(types.Type(c.Dialect)))
	}
	if c.set["continue-on-error"] {
		opts = append(opts, options.WithContinueOnError(c.ContinueOnError))
	}
	if c.set["legacy-bom"] {
		mode := normalize.BOMStrict
		if c.LegacyBOM {
			mode = normalize.BOMLegacy
		}
		opts = append(opts, options.WithBOMMode(mode))
	}
	if c.set["log-level"] {
		opts = append(opts, options.WithLogLevel(c.LogLevel))
	}
	return opts
}
