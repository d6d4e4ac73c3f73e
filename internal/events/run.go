// Package events declares the generation-run events published through the
// eventbus.
package events

import "time"

// RunStart is emitted when a generation run begins.
type RunStart struct {
	Schema    string
	Documents int
}

// RunFinish is emitted when a generation run ends.
type RunFinish struct {
	Artifacts int
	Failed    int
	Duration  time.Duration
}

// RegistryPersisted is emitted after the sample identifier registry is
// written back to its store.
type RegistryPersisted struct {
	Path    string
	Entries int
}
