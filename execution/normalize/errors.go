package normalize

import "errors"

var (
	ErrEchoFailed     = errors.New("failed to echo byte-order mark")
	ErrUnknownBOMMode = errors.New("unknown byte-order mark mode")
)
