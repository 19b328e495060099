package normalize

import "fmt"

// BOMMode selects the byte-order mark detection predicate.
type BOMMode string

const (
	// BOMStrict requires EF BB BF at offsets 0, 1 and 2.
	BOMStrict BOMMode = "strict"

	// BOMLegacy fires when any one of the three offsets holds its mark byte.
	// It over-detects (a Latin-1 file starting with 0xEF trips it) and exists
	// only for scripts that rely on the historical behavior.
	BOMLegacy BOMMode = "legacy"
)

// ParseBOMMode converts a configuration string. Empty means BOMStrict.
func ParseBOMMode(s string) (BOMMode, error) {
	switch BOMMode(s) {
	case "", BOMStrict:
		return BOMStrict, nil
	case BOMLegacy:
		return BOMLegacy, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownBOMMode, s)
	}
}

// Detect reports whether content starts with a byte-order mark under this
// mode. Offsets at or past len(content) never match.
func (m BOMMode) Detect(content []byte) bool {
	at := func(i int) bool {
		return i < len(content) && content[i] == ByteOrderMark[i]
	}

	if m == BOMLegacy {
		return at(0) || at(1) || at(2)
	}
	return at(0) && at(1) && at(2)
}
