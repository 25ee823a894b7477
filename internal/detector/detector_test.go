package detector

import (
	"testing"
	"time"
)

func TestDetect_SingleHand(t *testing.T) {
	d := New(Config{ConfidenceThreshold: 0.5})
	peace := PeaceHand()

	results := d.Detect(&peace, nil, 1, 1)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.Type != GesturePeaceSign {
		t.Errorf("expected peace_sign, got %s", r.Type)
	}
	if r.Hand != HandLeft {
		t.Errorf("expected left hand, got %q", r.Hand)
	}
	if r.Timestamp.IsZero() {
		t.Error("expected a timestamp on the result")
	}
}

func TestDetect_RightHand(t *testing.T) {
	d := New(Config{ConfidenceThreshold: 0.5})
	thumbs := ThumbsUpHand()

	results := d.Detect(nil, &thumbs, 1, 1)
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Hand != HandRight {
		t.Errorf("expected right hand, got %q", results[0].Hand)
	}
}

func TestDetect_NoHands(t *testing.T) {
	d := New(DefaultConfig())

	if results := d.Detect(nil, nil, 1, 1); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestDetect_SkipsSparseHand(t *testing.T) {
	d := New(Config{ConfidenceThreshold: 0.5})
	sparse := SparseHand()

	if results := d.Detect(&sparse, nil, 1, 1); len(results) != 0 {
		t.Errorf("expected sparse hand to be skipped, got %d results", len(results))
	}
	if d.History().Len() != 0 {
		t.Error("expected no history entries from a sparse hand")
	}
}

func TestDetect_ThresholdFiltersResults(t *testing.T) {
	// Open palm scores 0.95 * 0.75 = 0.7125, under the default threshold.
	d := New(DefaultConfig())
	palm := OpenPalmHand()

	if results := d.Detect(&palm, nil, 1, 1); len(results) != 0 {
		t.Errorf("expected open palm filtered at default threshold, got %d results", len(results))
	}

	d = New(Config{ConfidenceThreshold: 0.5})
	results := d.Detect(&palm, nil, 1, 1)
	if _, ok := findType(results, GestureOpenPalm); !ok {
		t.Error("expected open palm at threshold 0.5")
	}
}

func TestDetect_HistoryKeepsUnfilteredResults(t *testing.T) {
	d := New(Config{ConfidenceThreshold: 0.99})
	peace := PeaceHand()

	results := d.Detect(&peace, nil, 1, 1)
	if len(results) != 0 {
		t.Fatalf("expected everything filtered at threshold 0.99, got %d results", len(results))
	}

	// The history still records the sub-threshold detection.
	if d.History().Len() != 1 {
		t.Errorf("expected 1 history entry, got %d", d.History().Len())
	}
}

func TestDetect_BothHands(t *testing.T) {
	d := New(Config{ConfidenceThreshold: 0.5})
	left, right := CrossfaderHands()

	results := d.Detect(&left, &right, 1, 1)

	// Two open palms, plus crossfader, spread and dual control from the
	// two-hand classifiers.
	if _, ok := findType(results, GestureCrossfader); !ok {
		t.Error("expected crossfader result")
	}

	var palms int
	for _, r := range results {
		if r.Type == GestureOpenPalm {
			palms++
			if r.Hand != HandLeft && r.Hand != HandRight {
				t.Errorf("expected open palm tagged with a hand, got %q", r.Hand)
			}
		}
		if r.Type == GestureCrossfader && r.Hand != HandNone {
			t.Errorf("expected two-hand result without a hand tag, got %q", r.Hand)
		}
	}
	if palms != 2 {
		t.Errorf("expected 2 open palm results, got %d", palms)
	}
}

func TestDetect_HistoryWindow(t *testing.T) {
	d := New(Config{ConfidenceThreshold: 0.5})
	peace := PeaceHand()

	current := time.Now()
	d.now = func() time.Time { return current }

	// 60 ticks at 50ms cover three seconds; only the last two belong in
	// the history.
	for i := 0; i < 60; i++ {
		d.Detect(&peace, nil, 1, 1)
		current = current.Add(50 * time.Millisecond)
	}
	current = current.Add(-50 * time.Millisecond) // back to the last tick

	cutoff := current.Add(-HistoryWindow)
	for _, r := range d.History().All() {
		if r.Timestamp.Before(cutoff) {
			t.Errorf("history entry at %v older than cutoff %v", r.Timestamp, cutoff)
		}
	}

	// Ticks at 950ms through 2950ms survive: 41 entries.
	if got := d.History().Len(); got != 41 {
		t.Errorf("expected 41 retained entries, got %d", got)
	}
}

func TestDetect_Reset(t *testing.T) {
	d := New(Config{ConfidenceThreshold: 0.5})
	peace := PeaceHand()

	d.Detect(&peace, nil, 1, 1)
	if d.History().Len() == 0 {
		t.Fatal("expected history entries before reset")
	}

	d.Reset()
	if d.History().Len() != 0 {
		t.Errorf("expected empty history after reset, got %d entries", d.History().Len())
	}
}

func TestNew_DefaultsInvalidThreshold(t *testing.T) {
	d := New(Config{ConfidenceThreshold: -1})
	if d.config.ConfidenceThreshold != DefaultConfig().ConfidenceThreshold {
		t.Errorf("expected default threshold, got %f", d.config.ConfidenceThreshold)
	}
}
