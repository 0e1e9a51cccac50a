package http

import (
	"net/http"
	"strconv"
	"sync"

	"bankist/internal/session"
)

const (
	EventSessionStarted = "session_started"
	EventSessionEnded   = "session_ended"
	EventLedgerChanged  = "ledger_changed"
	EventTimerTick      = "timer_tick"
)

type Event struct {
	Sequence         uint64           `json:"sequence"`
	Type             string           `json:"type"`
	Session          *SessionResponse `json:"session,omitempty"`
	SecondsRemaining *int             `json:"seconds_remaining,omitempty"`
}

// EventLog is the session.Notifier behind GET /events. It keeps the most
// recent events; clients poll with the last sequence they have seen.
type EventLog struct {
	mu       sync.Mutex
	capacity int
	next     uint64
	events   []Event
}

var _ session.Notifier = (*EventLog)(nil)

func NewEventLog(capacity int) *EventLog {
	if capacity <= 0 {
		capacity = 1
	}

	return &EventLog{
		capacity: capacity,
		next:     1,
	}
}

func (l *EventLog) SessionStarted(snapshot session.Snapshot) {
	response := NewSessionResponse(snapshot)
	l.append(Event{Type: EventSessionStarted, Session: &response})
}

func (l *EventLog) SessionEnded() {
	l.append(Event{Type: EventSessionEnded})
}

func (l *EventLog) LedgerChanged(snapshot session.Snapshot) {
	response := NewSessionResponse(snapshot)
	l.append(Event{Type: EventLedgerChanged, Session: &response})
}

func (l *EventLog) TimerTick(secondsRemaining int) {
	l.append(Event{Type: EventTimerTick, SecondsRemaining: &secondsRemaining})
}

// Since returns the retained events with a sequence greater than after.
func (l *EventLog) Since(after uint64) []Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Event, 0)
	for _, e := range l.events {
		if e.Sequence > after {
			out = append(out, e)
		}
	}

	return out
}

func (l *EventLog) append(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e.Sequence = l.next
	l.next++

	l.events = append(l.events, e)
	if len(l.events) > l.capacity {
		l.events = l.events[len(l.events)-l.capacity:]
	}
}

func (h Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	var after uint64
	if raw := r.URL.Query().Get("after"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "after must be a sequence number")
			return
		}
		after = parsed
	}

	writeJSON(w, http.StatusOK, h.events.Since(after))
}
