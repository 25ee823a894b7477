package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// frameMessage is one landmark observation pushed by the producer.
type frameMessage struct {
	Left    *detector.HandFrame `json:"left,omitempty"`
	Right   *detector.HandFrame `json:"right,omitempty"`
	Width   float64             `json:"width"`
	Height  float64             `json:"height"`
	Channel uint32              `json:"channel"`
}

// FramesHandler accepts landmark frames from the producer over WebSocket
// and drives one engine tick per frame. A single read loop per connection
// keeps frames processed strictly in arrival order.
type FramesHandler struct {
	engine *control.Engine
}

// NewFramesHandler creates a new FramesHandler driving the given engine.
func NewFramesHandler(e *control.Engine) *FramesHandler {
	return &FramesHandler{engine: e}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *FramesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg frameMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("frame read error: %v", err)
			}
			return
		}
		h.engine.Tick(msg.Left, msg.Right, msg.Width, msg.Height, msg.Channel)
	}
}

// eventEnvelope tags an outbound engine event with its name.
type eventEnvelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// modeChange is the payload for controlModeChanged events.
type modeChange struct {
	MappingID string              `json:"mappingId"`
	Mode      control.ControlMode `json:"mode"`
}

// EventsHandler broadcasts engine events (control events, feedback
// snapshots, profile and mode changes) to all connected clients.
type EventsHandler struct {
	clients map[*websocket.Conn]bool
	mu      sync.Mutex
}

// NewEventsHandler creates an EventsHandler and subscribes it to the
// engine.
func NewEventsHandler(e *control.Engine) *EventsHandler {
	h := &EventsHandler{
		clients: make(map[*websocket.Conn]bool),
	}
	e.AddListener(&control.ListenerFuncs{
		ControlEvent: func(ev control.ControlEvent) {
			h.broadcast("gestureControl", ev)
		},
		FeedbackUpdate: func(fb control.FeedbackState) {
			h.broadcast("feedbackUpdate", fb)
		},
		ProfileChanged: func(p control.MappingProfile) {
			h.broadcast("profileChanged", p)
		},
		ControlModeChanged: func(mappingID string, mode control.ControlMode) {
			h.broadcast("controlModeChanged", modeChange{MappingID: mappingID, Mode: mode})
		},
	})
	return h
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast sends one tagged event to all connected clients.
func (h *EventsHandler) broadcast(event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(eventEnvelope{Event: event, Data: data}); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}
