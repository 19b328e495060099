package loader

import (
	"io"
	"net/url"
)

// StdinArg is the command line argument that selects standard input.
const StdinArg = "-"

// Loader opens one script input for the Source Reader.
type Loader interface {
	// GetReader opens the input. The caller owns the returned stream and must close it.
	GetReader() (io.ReadCloser, error)

	// GetSourceURL returns a stable identifier for the input.
	GetSourceURL() *url.URL

	// GetSourceName returns the name used in diagnostics and lexeme positions.
	GetSourceName() string
}

// FromArg maps a command line argument to a Loader. The literal "-" selects stdin.
func FromArg(arg string, stdin io.Reader) (Loader, error) {
	if arg == StdinArg {
		return NewFromStdin(stdin)
	}
	return NewFromDisk(arg)
}

// FromArgs maps every argument with FromArg, keeping order. An argument that
// names no input becomes an Unavailable loader, so it fails when opened in its
// turn instead of preventing the arguments before it from running.
func FromArgs(args []string, stdin io.Reader) []Loader {
	loaders := make([]Loader, 0, len(args))
	for _, arg := range args {
		l, err := FromArg(arg, stdin)
		if err != nil {
			l = NewUnavailable(arg, err)
		}
		loaders = append(loaders, l)
	}
	return loaders
}
