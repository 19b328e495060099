package loader

import (
	"fmt"
	"io"
	"net/url"
)

// StdinName is the source name reported for standard input.
const StdinName = "stdin"

// FromStdin loads a script from a process stream such as os.Stdin. Unlike the
// other loaders it does not buffer anything: the stream is handed to the
// Source Reader as-is, and closing it leaves the process stream open.
type FromStdin struct {
	reader    io.Reader
	sourceURL *url.URL
}

// NewFromStdin creates a Loader reading from the given stream.
func NewFromStdin(reader io.Reader) (*FromStdin, error) {
	if reader == nil {
		return nil, fmt.Errorf("%w: reader is nil", ErrScriptNotAvailable)
	}

	return &FromStdin{
		reader:    reader,
		sourceURL: &url.URL{Scheme: "stdin", Opaque: StdinName},
	}, nil
}

func (l *FromStdin) String() string {
	return "loader.FromStdin{}"
}

// GetReader returns the wrapped stream. Close is a no-op.
func (l *FromStdin) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(l.reader), nil
}

// GetSourceURL returns the source URL of the script.
func (l *FromStdin) GetSourceURL() *url.URL {
	return l.sourceURL
}

func (l *FromStdin) GetSourceName() string {
	return StdinName
}
