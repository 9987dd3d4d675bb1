// Package cue defines the interaction cue boundary.
//
// The scheduling core emits discrete named cues at fixed trigger points
// (drag start, successful drop, delete); how a cue is rendered — sound,
// flash, nothing — is the notifier's business.
package cue

import (
	"fmt"
	"io"
)

// Kind names a cue signal.
type Kind string

const (
	// Start fires when a drag begins.
	Start Kind = "start"
	// Drop fires when a drag ends with a move.
	Drop Kind = "drop"
	// Delete fires when a task is deleted.
	Delete Kind = "delete"
)

// Notifier receives cue signals.
type Notifier interface {
	Cue(kind Kind)
}

// Nop is a Notifier that discards all cues.
type Nop struct{}

func (Nop) Cue(Kind) {}

// Bell rings the terminal bell for every cue while enabled. Enabled
// follows the sound-fx preference toggle.
type Bell struct {
	Out     io.Writer
	Enabled func() bool
}

// Cue writes BEL when enabled. Write errors are ignored: a missed cue is
// cosmetic.
func (b *Bell) Cue(Kind) {
	if b.Out == nil || b.Enabled == nil || !b.Enabled() {
		return
	}
	_, _ = fmt.Fprint(b.Out, "\a")
}
