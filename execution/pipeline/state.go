package pipeline

// State is the position of one input in the pipeline.
type State int

const (
	StateReading State = iota
	StateNormalizing
	StateLexing
	StateTokenizing
	StateParsing
	StateInterpreting
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReading:
		return "reading"
	case StateNormalizing:
		return "normalizing"
	case StateLexing:
		return "lexing"
	case StateTokenizing:
		return "tokenizing"
	case StateParsing:
		return "parsing"
	case StateInterpreting:
		return "interpreting"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
