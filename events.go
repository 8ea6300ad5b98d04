package parley

import "time"

// EventType categorizes a dispatch lifecycle event.
type EventType string

const (
	EventDispatch EventType = "dispatch"
	EventMatch    EventType = "match"
	EventRun      EventType = "run"
	EventError    EventType = "error"
)

// EventBase holds the fields every event carries.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// DispatchEvent marks the start of one execute-mode traversal.
type DispatchEvent struct {
	EventBase
	Tokens []string `json:"tokens"`
}

// MatchEvent records one command committing to its tokens.
type MatchEvent struct {
	EventBase
	Usage string `json:"usage"`
	Depth int    `json:"depth"`
}

// RunEvent records a terminal handler firing.
type RunEvent struct {
	EventBase
	Usage string `json:"usage"`
	Depth int    `json:"depth"`
}

// ErrorEvent records a traversal ending in a dispatch failure.
type ErrorEvent struct {
	EventBase
	Kind    string `json:"kind"`
	Depth   int    `json:"depth"`
	Message string `json:"message"`
}

// LifecycleHooks defines callbacks for dispatcher observability. Any field
// may be nil. Hooks run synchronously on the dispatching goroutine and must
// not re-enter the dispatcher.
type LifecycleHooks struct {
	OnDispatch func(*DispatchEvent)
	OnMatch    func(*MatchEvent)
	OnRun      func(*RunEvent)
	OnError    func(*ErrorEvent)
}

func eventBase(t EventType) EventBase {
	return EventBase{Timestamp: time.Now(), Type: t}
}
