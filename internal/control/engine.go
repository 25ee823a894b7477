package control

import (
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

// Options holds configuration for the engine. Use DefaultOptions as the
// base and override individual fields.
type Options struct {
	// GestureConfidenceThreshold is the minimum confidence for a detection
	// result to be surfaced. Defaults to 0.75.
	GestureConfidenceThreshold float64

	// LatencyTarget is the gesture-to-control latency budget. Informational
	// only: it is reported alongside feedback, never enforced. Defaults to
	// 50ms.
	LatencyTarget time.Duration

	// SmoothingEnabled reserves optional pre-filtering of raw landmark
	// noise before classification. Not implemented yet.
	SmoothingEnabled bool

	// FeedbackEnabled gates feedback snapshot updates and feedback events.
	FeedbackEnabled bool

	// DefaultControlMode seeds the mode of newly built control states.
	DefaultControlMode ControlMode

	// GestureSensitivity seeds per-mapping sensitivity. Defaults to 1.0.
	GestureSensitivity float64

	// DeadzoneSensitivity seeds per-mapping deadzone. Defaults to 0.05.
	DeadzoneSensitivity float64
}

// DefaultOptions returns Options with the documented default values.
func DefaultOptions() Options {
	return Options{
		GestureConfidenceThreshold: 0.75,
		LatencyTarget:              50 * time.Millisecond,
		FeedbackEnabled:            true,
		DefaultControlMode:         ModeAbsolute,
		GestureSensitivity:         1.0,
		DeadzoneSensitivity:        0.05,
	}
}

// withDefaults fills invalid zero values and clamps the tuning seeds.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.GestureConfidenceThreshold <= 0 {
		o.GestureConfidenceThreshold = def.GestureConfidenceThreshold
	}
	if o.LatencyTarget <= 0 {
		o.LatencyTarget = def.LatencyTarget
	}
	if o.DefaultControlMode == "" {
		o.DefaultControlMode = def.DefaultControlMode
	}
	if o.GestureSensitivity <= 0 {
		o.GestureSensitivity = def.GestureSensitivity
	}
	o.GestureSensitivity = geom.Clamp(o.GestureSensitivity, MinSensitivity, MaxSensitivity)
	o.DeadzoneSensitivity = geom.Clamp(o.DeadzoneSensitivity, MinDeadzone, MaxDeadzone)
	return o
}

// Engine is the gesture-to-control mapping engine. One instance owns its
// profiles, control states, gesture history and listeners; construct it
// explicitly and pass it by reference, there are no process-wide globals.
// All shared state is mutated under the engine lock, and listener callbacks
// run outside it so a listener may call back into the engine.
type Engine struct {
	opts     Options
	detector *detector.Detector

	mu        sync.Mutex
	profiles  map[string]*MappingProfile
	order     []string
	activeID  string
	states    map[string]*ControlState
	listeners []Listener
	feedback  FeedbackState
	closed    bool
}

// NewEngine creates an engine with the default profile registered and
// active.
func NewEngine(opts Options) *Engine {
	opts = opts.withDefaults()
	e := &Engine{
		opts: opts,
		detector: detector.New(detector.Config{
			ConfidenceThreshold: opts.GestureConfidenceThreshold,
		}),
		profiles: make(map[string]*MappingProfile),
		states:   make(map[string]*ControlState),
	}
	e.AddProfile(DefaultProfile())
	e.SetActiveProfile(DefaultProfile().ID)
	return e
}

// Detector returns the engine's gesture detector.
func (e *Engine) Detector() *detector.Detector {
	return e.detector
}

// AddProfile registers a profile. A profile with an already registered id
// replaces the existing registration; replacing the active profile rebuilds
// its control states.
func (e *Engine) AddProfile(p *MappingProfile) {
	if p == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if _, exists := e.profiles[p.ID]; !exists {
		e.order = append(e.order, p.ID)
	}
	e.profiles[p.ID] = p
	if p.ID == e.activeID {
		p.IsActive = true
		e.rebuildStates(p)
	}
}

// RemoveProfile unregisters a profile. Removing the active profile leaves
// the engine with no active profile and discards its control states.
func (e *Engine) RemoveProfile(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	if _, ok := e.profiles[id]; !ok {
		return false
	}
	delete(e.profiles, id)
	for i, pid := range e.order {
		if pid == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	if e.activeID == id {
		e.activeID = ""
		e.states = make(map[string]*ControlState)
	}
	return true
}

// SetActiveProfile activates the profile with the given id and rebuilds a
// fresh control state for every one of its mappings, discarding prior
// state. An unknown id is a no-op returning false: the currently active
// profile is left untouched.
func (e *Engine) SetActiveProfile(id string) bool {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}
	p, ok := e.profiles[id]
	if !ok {
		e.mu.Unlock()
		return false
	}
	if prev := e.profiles[e.activeID]; prev != nil && prev.ID != id {
		prev.IsActive = false
	}
	e.activeID = id
	p.IsActive = true
	e.rebuildStates(p)
	listeners := e.snapshotListeners()
	changed := *p
	e.mu.Unlock()

	broadcast("profileChanged", listeners, func(l Listener) { l.OnProfileChanged(changed) })
	return true
}

// ActiveProfile returns the active profile, or nil before first activation.
func (e *Engine) ActiveProfile() *MappingProfile {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profiles[e.activeID]
}

// Profiles returns all registered profiles in registration order.
func (e *Engine) Profiles() []*MappingProfile {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*MappingProfile, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.profiles[id])
	}
	return out
}

// rebuildStates replaces every control state with a fresh one seeded from
// the engine options. Caller holds the lock.
func (e *Engine) rebuildStates(p *MappingProfile) {
	e.states = make(map[string]*ControlState, len(p.Mappings))
	for _, m := range p.Mappings {
		e.states[m.ID] = &ControlState{
			Mode:        e.opts.DefaultControlMode,
			Sensitivity: e.opts.GestureSensitivity,
			Deadzone:    e.opts.DeadzoneSensitivity,
		}
	}
}

// Tick runs one frame through the engine: detection, control mapping,
// feedback aggregation and event dispatch. It returns the control events
// emitted this tick.
func (e *Engine) Tick(left, right *detector.HandFrame, frameWidth, frameHeight float64, channel uint32) []ControlEvent {
	start := time.Now()

	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	results := e.detector.Detect(left, right, frameWidth, frameHeight)
	events := e.process(results, channel)
	feedbackOn := e.opts.FeedbackEnabled
	var fb FeedbackState
	if feedbackOn {
		e.feedback = e.buildFeedback(results, time.Since(start))
		fb = e.feedback.clone()
	}
	listeners := e.snapshotListeners()
	e.mu.Unlock()

	for _, ev := range events {
		ev := ev
		broadcast("gestureControl", listeners, func(l Listener) { l.OnControlEvent(ev) })
	}
	if feedbackOn {
		broadcast("feedbackUpdate", listeners, func(l Listener) { l.OnFeedbackUpdate(fb) })
	}
	return events
}

// ProcessGestures converts detection results into control events using the
// active profile, dispatching one event per qualifying mapping per result.
func (e *Engine) ProcessGestures(results []detector.Result, channel uint32) []ControlEvent {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	events := e.process(results, channel)
	listeners := e.snapshotListeners()
	e.mu.Unlock()

	for _, ev := range events {
		ev := ev
		broadcast("gestureControl", listeners, func(l Listener) { l.OnControlEvent(ev) })
	}
	return events
}

// process matches results against the active profile's mappings and folds
// them through the control states. Caller holds the lock.
func (e *Engine) process(results []detector.Result, channel uint32) []ControlEvent {
	active := e.profiles[e.activeID]
	if active == nil {
		return nil
	}
	var events []ControlEvent
	for _, r := range results {
		for i := range active.Mappings {
			m := &active.Mappings[i]
			if !m.matches(r) {
				continue
			}
			st, ok := e.states[m.ID]
			if !ok {
				// Defensive: activation rebuilds states for every mapping,
				// so a missing entry means the profile was mutated in
				// place. Skip rather than fabricate state mid-tick.
				continue
			}
			value, accepted := st.apply(r)
			if !accepted {
				continue
			}
			events = append(events, ControlEvent{
				MappingID:   m.ID,
				ControlType: m.ControlType,
				TargetStem:  m.TargetStem,
				Value:       value,
				Gesture:     r,
				Channel:     channel,
			})
		}
	}
	return events
}

// Feedback returns a copy of the latest feedback snapshot.
func (e *Engine) Feedback() FeedbackState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.feedback.clone()
}

// State returns a copy of the control state for one mapping in the active
// profile.
func (e *Engine) State(mappingID string) (ControlState, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.states[mappingID]
	if !ok {
		return ControlState{}, false
	}
	return *st, true
}

// SetControlMode switches a mapping between absolute and relative mode.
// The delta baseline is cleared so relative mode re-seeds from the next
// gesture.
func (e *Engine) SetControlMode(mappingID string, mode ControlMode) bool {
	e.mu.Lock()
	st, ok := e.states[mappingID]
	if !ok || e.closed {
		e.mu.Unlock()
		return false
	}
	st.Mode = mode
	st.LastGesture = nil
	listeners := e.snapshotListeners()
	e.mu.Unlock()

	broadcast("controlModeChanged", listeners, func(l Listener) { l.OnControlModeChanged(mappingID, mode) })
	return true
}

// SetSensitivity sets a mapping's relative-mode sensitivity, clamped to
// [0.1, 2.0].
func (e *Engine) SetSensitivity(mappingID string, v float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.states[mappingID]
	if !ok || e.closed {
		return false
	}
	st.Sensitivity = geom.Clamp(v, MinSensitivity, MaxSensitivity)
	return true
}

// SetDeadzone sets a mapping's deadzone, clamped to [0, 0.2].
func (e *Engine) SetDeadzone(mappingID string, v float64) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	st, ok := e.states[mappingID]
	if !ok || e.closed {
		return false
	}
	st.Deadzone = geom.Clamp(v, MinDeadzone, MaxDeadzone)
	return true
}

// AddListener registers an engine event listener.
func (e *Engine) AddListener(l Listener) {
	if l == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.listeners = append(e.listeners, l)
}

// RemoveListener unregisters a previously added listener.
func (e *Engine) RemoveListener(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, existing := range e.listeners {
		if existing == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// snapshotListeners copies the listener slice for dispatch outside the
// lock. Caller holds the lock.
func (e *Engine) snapshotListeners() []Listener {
	if len(e.listeners) == 0 {
		return nil
	}
	return append([]Listener(nil), e.listeners...)
}

// Close disposes the engine: profiles, control states, gesture history and
// listeners are cleared atomically. Safe to call more than once.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.profiles = make(map[string]*MappingProfile)
	e.order = nil
	e.activeID = ""
	e.states = make(map[string]*ControlState)
	e.listeners = nil
	e.feedback = FeedbackState{}
	e.detector.Reset()
}
