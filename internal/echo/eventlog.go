package echo

import (
	"fmt"
	"strings"
)

// Event is one recorded occurrence during a headless run.
type Event struct {
	Frame    int
	Category string  // move, ping, state
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the event as a fixed-width log line.
//
//	[F=0042] move   step         (3,4) -> (3,5)
func (e Event) String() string {
	return fmt.Sprintf("[F=%04d] %-6s %-12s %s", e.Frame, e.Category, e.Key, e.Value)
}

// EventLog collects structured events while the harness steps a
// session. It is unbounded and machine-readable; tests assert against
// it instead of scraping rendered output.
type EventLog struct {
	events  []Event
	verbose bool
}

// NewEventLog creates an EventLog. When verbose is true, per-frame
// position events are also recorded.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new event.
func (el *EventLog) Add(frame int, category, key, value string, numVal float64) {
	el.events = append(el.events, Event{
		Frame:    frame,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an event only when verbose mode is on.
func (el *EventLog) AddVerbose(frame int, category, key, value string, numVal float64) {
	if !el.verbose {
		return
	}
	el.Add(frame, category, key, value, numVal)
}

// Events returns all recorded events.
func (el *EventLog) Events() []Event {
	return el.events
}

// Filter returns events matching the given category and/or key. Pass
// the empty string to match any value for that field.
func (el *EventLog) Filter(category, key string) []Event {
	var out []Event
	for _, e := range el.events {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many events match the given category and key.
func (el *EventLog) Count(category, key string) int {
	return len(el.Filter(category, key))
}

// LastOf returns the most recent event matching category+key, or false
// if none.
func (el *EventLog) LastOf(category, key string) (Event, bool) {
	events := el.Filter(category, key)
	if len(events) == 0 {
		return Event{}, false
	}
	return events[len(events)-1], true
}

// Has returns true if at least one event matches category, key, and
// value substring.
func (el *EventLog) Has(category, key, valueSubstr string) bool {
	for _, e := range el.events {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (el *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range el.events {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
