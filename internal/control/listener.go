package control

import "log"

// Listener receives engine events. Callbacks are invoked synchronously and
// in registration order. A panicking listener is recovered and logged with
// the originating event name so it cannot abort the tick or starve the
// remaining listeners.
type Listener interface {
	OnControlEvent(ControlEvent)
	OnFeedbackUpdate(FeedbackState)
	OnProfileChanged(MappingProfile)
	OnControlModeChanged(mappingID string, mode ControlMode)
}

// ListenerFuncs adapts plain functions to the Listener interface. Nil
// fields are ignored.
type ListenerFuncs struct {
	ControlEvent       func(ControlEvent)
	FeedbackUpdate     func(FeedbackState)
	ProfileChanged     func(MappingProfile)
	ControlModeChanged func(mappingID string, mode ControlMode)
}

// OnControlEvent implements Listener.
func (l *ListenerFuncs) OnControlEvent(e ControlEvent) {
	if l.ControlEvent != nil {
		l.ControlEvent(e)
	}
}

// OnFeedbackUpdate implements Listener.
func (l *ListenerFuncs) OnFeedbackUpdate(f FeedbackState) {
	if l.FeedbackUpdate != nil {
		l.FeedbackUpdate(f)
	}
}

// OnProfileChanged implements Listener.
func (l *ListenerFuncs) OnProfileChanged(p MappingProfile) {
	if l.ProfileChanged != nil {
		l.ProfileChanged(p)
	}
}

// OnControlModeChanged implements Listener.
func (l *ListenerFuncs) OnControlModeChanged(mappingID string, mode ControlMode) {
	if l.ControlModeChanged != nil {
		l.ControlModeChanged(mappingID, mode)
	}
}

// dispatch invokes fn on one listener, isolating panics.
func dispatch(event string, l Listener, fn func(Listener)) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("listener panic during %s: %v", event, r)
		}
	}()
	fn(l)
}

// broadcast invokes fn on every listener in order.
func broadcast(event string, listeners []Listener, fn func(Listener)) {
	for _, l := range listeners {
		dispatch(event, l, fn)
	}
}
