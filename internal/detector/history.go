package detector

import "time"

// HistoryWindow is how long gesture results are retained for motion
// analysis.
const HistoryWindow = 2000 * time.Millisecond

// History is a bounded, time-windowed buffer of recent detection results.
// It exists to give motion classifiers (swipes, circular motion) temporal
// context for velocity and trajectory analysis.
type History struct {
	entries []Result
}

// Add appends results and drops everything outside the window.
func (h *History) Add(results []Result, now time.Time) {
	h.entries = append(h.entries, results...)
	h.Prune(now)
}

// Prune drops entries older than the history window.
func (h *History) Prune(now time.Time) {
	cutoff := now.Add(-HistoryWindow)
	keep := h.entries[:0]
	for _, r := range h.entries {
		if !r.Timestamp.Before(cutoff) {
			keep = append(keep, r)
		}
	}
	h.entries = keep
}

// Recent returns the retained results for one hand, oldest first. HandNone
// selects two-hand results.
func (h *History) Recent(hand Hand) []Result {
	var out []Result
	for _, r := range h.entries {
		if r.Hand == hand {
			out = append(out, r)
		}
	}
	return out
}

// All returns a copy of every retained result, oldest first.
func (h *History) All() []Result {
	return append([]Result(nil), h.entries...)
}

// Len returns the number of retained results.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear empties the buffer.
func (h *History) Clear() {
	h.entries = nil
}
