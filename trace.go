package glud

import (
	"fmt"
	"slices"
)

// EventKind identifies what a construction step did.
type EventKind uint8

const (
	// EventProductionAdded a production was translated into an NFA transition
	EventProductionAdded EventKind = iota
	// EventProductionSkipped a production could not be classified and was dropped
	EventProductionSkipped
	// EventClosure an ε-closure was computed; Source is the input set, Target the closure
	EventClosure
	// EventStateDiscovered determinization interned a new composite state
	EventStateDiscovered
	// EventTransition determinization recorded a DFA transition
	EventTransition
	// EventSinkCompleted the sink state received its self loops
	EventSinkCompleted
	// EventStateRenamed Reverse assigned a fresh NFA name to a composite state
	EventStateRenamed
)

func (k EventKind) String() string {
	switch k {
	case EventProductionAdded:
		return "ProductionAdded"
	case EventProductionSkipped:
		return "ProductionSkipped"
	case EventClosure:
		return "Closure"
	case EventStateDiscovered:
		return "StateDiscovered"
	case EventTransition:
		return "Transition"
	case EventSinkCompleted:
		return "SinkCompleted"
	case EventStateRenamed:
		return "StateRenamed"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is one record of the construction log. Fields that do not apply to a kind are zero.
type Event struct {
	Kind   EventKind
	Source string
	Symbol Symbol
	Target string
	Detail string
}

func (e Event) String() string {
	switch e.Kind {
	case EventTransition, EventProductionAdded:
		return fmt.Sprintf("%s: %s --%s--> %s", e.Kind, e.Source, e.Symbol, e.Target)
	case EventClosure:
		return fmt.Sprintf("%s: ε-closure(%s) = %s", e.Kind, e.Source, e.Target)
	default:
		return fmt.Sprintf("%s: %s %s", e.Kind, e.Source, e.Detail)
	}
}

// Tracer receives events from the construction algorithms, which are otherwise silent.
type Tracer interface {
	Trace(e Event)
}

// TracerFunc adapts a function to the Tracer interface.
type TracerFunc func(e Event)

func (f TracerFunc) Trace(e Event) {
	f(e)
}

type nopTracer struct{}

func (nopTracer) Trace(Event) {}

// EventLog accumulates every event it receives.
type EventLog struct {
	events []Event
}

func (l *EventLog) Trace(e Event) {
	l.events = append(l.events, e)
}

// Events Returns a copy of the recorded events in emission order.
func (l *EventLog) Events() []Event {
	return slices.Clone(l.events)
}

// Filter Returns the recorded events of the given kinds in emission order.
func (l *EventLog) Filter(kinds ...EventKind) []Event {
	out := make([]Event, 0)
	for _, e := range l.events {
		if slices.Contains(kinds, e.Kind) {
			out = append(out, e)
		}
	}
	return out
}

func (l *EventLog) Len() int {
	return len(l.events)
}
