package game

import "go-enemy-drills/internal/event"

// Entry is one recorded action.
type Entry struct {
	Type   event.EventType
	Action Action
}

// Transcript records every enemy action a registry reports.
type Transcript struct {
	entries []Entry
}

// NewTranscript creates a transcript subscribed to every enemy action on d.
func NewTranscript(d *event.Dispatcher) *Transcript {
	t := &Transcript{}
	d.SubscribeAll(t, event.EnemyActions...)
	return t
}

// OnEvent implements event.Listener.
func (t *Transcript) OnEvent(e event.Event) {
	a, ok := e.Data.(Action)
	if !ok {
		return
	}
	t.entries = append(t.entries, Entry{Type: e.Type, Action: a})
}

// Entries returns the recorded actions in order.
func (t *Transcript) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Reset drops everything recorded so far.
func (t *Transcript) Reset() {
	t.entries = t.entries[:0]
}
