package events

import "time"

// FragmentStart is emitted before a root fragment document is resolved.
type FragmentStart struct {
	Name string
	Path string
}

// FragmentFinish is emitted after a root fragment document is resolved or
// abandoned.
type FragmentFinish struct {
	Name     string
	Err      error
	Duration time.Duration
}
