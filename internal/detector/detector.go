package detector

import "time"

// Config holds configuration options for gesture detection.
type Config struct {
	// ConfidenceThreshold is the minimum confidence for a detection result
	// to be surfaced (0.0-1.0).
	ConfidenceThreshold float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		ConfidenceThreshold: 0.75,
	}
}

// Detector turns hand-landmark frames into gesture detection results. The
// shape classifiers are stateless per frame; a short rolling history is
// kept for motion gestures.
type Detector struct {
	config  Config
	history History
	now     func() time.Time
}

// New creates a Detector with the given configuration.
func New(config Config) *Detector {
	if config.ConfidenceThreshold <= 0 {
		config.ConfidenceThreshold = DefaultConfig().ConfidenceThreshold
	}
	return &Detector{
		config: config,
		now:    time.Now,
	}
}

// Detect classifies the hands present this tick and returns the results
// that clear the confidence threshold. Single-hand classifiers run
// independently on each present hand, two-hand classifiers run when both
// hands are present, then the history is updated with the full result set
// before filtering. A hand frame without the full landmark set is skipped
// for the tick.
func (d *Detector) Detect(left, right *HandFrame, frameWidth, frameHeight float64) []Result {
	now := d.now()

	var results []Result
	if left.Valid() {
		results = append(results, d.classifyHand(left, HandLeft, now)...)
	}
	if right.Valid() {
		results = append(results, d.classifyHand(right, HandRight, now)...)
	}
	if left.Valid() && right.Valid() {
		for _, r := range classifyTwoHands(left, right, frameWidth, frameHeight) {
			r.Timestamp = now
			results = append(results, r)
		}
	}

	// History keeps the unfiltered set so future motion classifiers see
	// low-confidence context too.
	d.history.Add(results, now)

	var filtered []Result
	for _, r := range results {
		if r.Confidence >= d.config.ConfidenceThreshold {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// classifyHand runs every shape classifier on one hand.
func (d *Detector) classifyHand(f *HandFrame, hand Hand, now time.Time) []Result {
	var results []Result
	for _, classify := range shapeClassifiers {
		r, ok := classify(f)
		if !ok {
			continue
		}
		r.Hand = hand
		r.Timestamp = now
		results = append(results, r)
	}
	return results
}

// History returns the rolling gesture history.
func (d *Detector) History() *History {
	return &d.history
}

// Reset clears the gesture history.
func (d *Detector) Reset() {
	d.history.Clear()
}
