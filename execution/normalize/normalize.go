// Package normalize neutralizes constructs that may legally prefix a source
// file but are not part of the language: an interpreter directive line and a
// UTF-8 byte-order mark. Both rules overwrite bytes with spaces in place, so
// every byte offset and line number seen by the lexer is unchanged.
//
// Normalize has one side effect: when a byte-order mark is found, the mark is
// written to the output stream, on the assumption that input carrying a mark
// expects output carrying one too. Callers must invoke it before any stage
// writes interpreted output.
package normalize

import (
	"fmt"
	"io"

	"github.com/robbyt/go-shibe/execution/source"
)

// ByteOrderMark is the canonical UTF-8 byte-order mark.
var ByteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Report describes which rules fired.
type Report struct {
	DirectiveStripped bool
	BOMDetected       bool
}

// Normalize applies the interpreter directive rule and then the byte-order
// mark rule to buf. When the mark rule fires, the mark is echoed to out.
func Normalize(buf *source.RawBuffer, out io.Writer, mode BOMMode) (Report, error) {
	var report Report
	if buf == nil || buf.Released() {
		return report, source.ErrReleased
	}

	content := buf.Bytes()
	report.DirectiveStripped = StripDirective(content)

	if !mode.Detect(content) {
		return report, nil
	}
	report.BOMDetected = true
	blank(content[:min(len(content), len(ByteOrderMark))])

	if _, err := out.Write(ByteOrderMark); err != nil {
		return report, fmt.Errorf("%w: %w", ErrEchoFailed, err)
	}
	return report, nil
}

// StripDirective blanks a leading "#!" line up to, but not including, the
// first '\n' or '\r'. It reports whether the line was present.
func StripDirective(content []byte) bool {
	if len(content) < 2 || content[0] != '#' || content[1] != '!' {
		return false
	}
	for i, b := range content {
		if b == '\n' || b == '\r' {
			break
		}
		content[i] = ' '
	}
	return true
}

func blank(b []byte) {
	for i := range b {
		b[i] = ' '
	}
}
