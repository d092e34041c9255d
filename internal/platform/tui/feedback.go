package tui

import (
	"io"

	"github.com/vovakirdan/tui-2048/internal/session"
)

// Feedback receives the cue for every accepted move.
type Feedback interface {
	Cue(c session.Cue)
}

// FeedbackFunc adapts a function to the Feedback interface.
type FeedbackFunc func(c session.Cue)

// Cue calls f(c).
func (f FeedbackFunc) Cue(c session.Cue) { f(c) }

// BellFeedback rings the terminal bell on merges and wins.
// Plain slides stay silent.
type BellFeedback struct {
	w       io.Writer
	enabled bool
}

// NewBellFeedback returns a bell sink writing to w.
func NewBellFeedback(w io.Writer, enabled bool) *BellFeedback {
	return &BellFeedback{w: w, enabled: enabled}
}

// Cue rings the bell for merge and win cues.
func (b *BellFeedback) Cue(c session.Cue) {
	if !b.enabled || b.w == nil {
		return
	}
	switch c {
	case session.CueMerge, session.CueWin:
		//nolint:errcheck // Best-effort bell
		b.w.Write([]byte{'\a'})
	}
}

type nopFeedback struct{}

func (nopFeedback) Cue(session.Cue) {}
