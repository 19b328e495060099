package loader

import (
	"fmt"
	"io"
	"net/url"
)

// Unavailable stands in for an argument that names no readable input. Opening
// it fails with the stored error, so the argument is reported in batch order
// like any other input that cannot be opened.
type Unavailable struct {
	name string
	err  error
}

func NewUnavailable(name string, err error) *Unavailable {
	if err == nil {
		err = ErrScriptNotAvailable
	}
	return &Unavailable{name: name, err: err}
}

func (l *Unavailable) String() string {
	return fmt.Sprintf("loader.Unavailable{Name: %s, Err: %v}", l.name, l.err)
}

func (l *Unavailable) GetReader() (io.ReadCloser, error) {
	return nil, l.err
}

func (l *Unavailable) GetSourceURL() *url.URL {
	return &url.URL{Scheme: "unavailable", Opaque: url.PathEscape(l.name)}
}

func (l *Unavailable) GetSourceName() string {
	return l.name
}
