package pipeline

import "errors"

// Outcome summarizes a batch.
type Outcome struct {
	// Total is the number of inputs given.
	Total int

	// Processed counts the inputs that were started.
	Processed int

	// Succeeded counts the inputs that completed interpretation.
	Succeeded int

	// Errors holds one *InputError per failed input, in order.
	Errors []error
}

// OK reports whether every input completed successfully.
func (o *Outcome) OK() bool {
	return len(o.Errors) == 0 && o.Succeeded == o.Total
}

// Skipped counts inputs never started because the batch stopped early.
func (o *Outcome) Skipped() int {
	return o.Total - o.Processed
}

// Err joins the per-input errors, or returns nil on success.
func (o *Outcome) Err() error {
	return errors.Join(o.Errors...)
}

// ExitCode is 0 when every input succeeded and 1 otherwise.
func (o *Outcome) ExitCode() int {
	if o.OK() {
		return 0
	}
	return 1
}
