package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/robbyt/go-shibe/execution/source/loader"
)

// Read consumes r until end-of-input. The buffer grows by ReadIncrement
// before every read attempt, so even an empty stream yields one increment of
// capacity. A short read ends the loop only when the stream reports EOF.
func Read(r io.Reader) (*RawBuffer, error) {
	buf := &RawBuffer{}
	for {
		n, err := io.ReadFull(r, buf.grow())
		buf.length += n
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}
		buf.Release()
		return nil, fmt.Errorf("%w: %w", ErrInputUnreadable, err)
	}

	// The last read came up short, so Len() < Cap() and the terminator fits.
	buf.terminate()
	return buf, nil
}

// ReadFrom opens the loader's stream, reads all of it and closes it.
// A close failure releases the partial buffer before returning.
func ReadFrom(l loader.Loader) (*RawBuffer, error) {
	stream, err := l.GetReader()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputOpen, l.GetSourceName(), err)
	}

	buf, readErr := Read(stream)
	closeErr := stream.Close()

	if readErr != nil {
		return nil, fmt.Errorf("%s: %w", l.GetSourceName(), readErr)
	}
	if closeErr != nil {
		buf.Release()
		return nil, fmt.Errorf("%w: %s: %w", ErrInputClose, l.GetSourceName(), closeErr)
	}
	return buf, nil
}
