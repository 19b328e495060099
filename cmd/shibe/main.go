package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/robbyt/go-shibe"
	"github.com/robbyt/go-shibe/internal/cli"
	"github.com/robbyt/go-shibe/options"
)

// version is replaced at build time with -ldflags "-X main.version=...".
var version = "v0.0.1"

// main is the entrypoint for the shibe interpreter.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Stderr, os.Stdin, os.Args[1:])
	stop()

	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "shibe: %v\n", err)
		os.Exit(cli.ExitFailure)
	}
}

// run interprets the files named by args. Diagnostics go to stderr as
// "shibe: <input>: <kind>: <detail>", one line per failed input.
func run(ctx context.Context, stdout, stderr io.Writer, stdin io.Reader, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, stderr, version)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	opts := append([]options.Option{
		options.WithOutput(stdout),
		options.WithStdin(stdin),
	}, cfg.Options()...)

	runner, err := shibe.New(opts...)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitUsage, Message: fmt.Sprintf("shibe: %v", err)}
	}

	outcome := runner.Run(ctx, cfg.Files)
	for _, inputErr := range outcome.Errors {
		fmt.Fprintf(stderr, "shibe: %v\n", inputErr)
	}
	if code := outcome.ExitCode(); code != cli.ExitOK {
		return &cli.ExitError{Code: code}
	}
	return nil
}
