// Package analytics provides the event sink the site widgets report to.
// The sink is an injected dependency rather than ambient global state, so
// tests and alternative frontends can supply their own.
package analytics

import "sync"

// Event is a single analytics record.
type Event struct {
	// Name identifies the event type, e.g. "lead_submission".
	Name string
	// Category is the fixed campaign tag attached to the event.
	Category string
	// Email is the submitted lead email, carried verbatim.
	Email string
}

// Sink receives analytics events. Implementations must not block.
type Sink interface {
	Record(event Event)
}

// DataLayer is an append-only in-memory Sink, the analog of a tag manager's
// dataLayer array.
type DataLayer struct {
	mu     sync.Mutex
	events []Event
}

// NewDataLayer creates an empty DataLayer.
func NewDataLayer() *DataLayer {
	return &DataLayer{}
}

// Record appends the event.
func (d *DataLayer) Record(event Event) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
}

// Events returns a copy of all recorded events.
func (d *DataLayer) Events() []Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]Event, len(d.events))
	copy(out, d.events)
	return out
}

// Discard is a Sink that drops every event.
type Discard struct{}

// Record implements Sink.
func (Discard) Record(Event) {}
