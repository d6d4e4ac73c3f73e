package registry

import "fmt"

// StoreError reports a registry store that cannot be read or does not hold
// the expected mapping literal. It aborts the run: generating against a
// half-read registry would fork identifier sequences.
type StoreError struct {
	Path   string
	Reason string
	Err    error
}

func (e *StoreError) Error() string {
	msg := fmt.Sprintf("registry store %s: %s", e.Path, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StoreError) Unwrap() error { return e.Err }
