package domain

// EventKind discriminates the two members of the Event union.
type EventKind string

const (
	EventActivity EventKind = "activity"
	EventTravel   EventKind = "travel"
)

// Event is the tagged union wrapping either an Activity or a Travel.
// A well-formed day sequence strictly alternates activity, travel,
// activity, ... starting with an activity, with at most one trailing
// travel (the end-of-day leg).
type Event struct {
	Kind     EventKind `json:"kind"`
	Activity *Activity `json:"activity,omitempty"`
	Travel   *Travel   `json:"travel,omitempty"`
}

// NewActivityEvent wraps an activity.
func NewActivityEvent(a *Activity) Event {
	return Event{Kind: EventActivity, Activity: a}
}

// NewTravelEvent wraps a travel segment.
func NewTravelEvent(t *Travel) Event {
	return Event{Kind: EventTravel, Travel: t}
}

// Cost returns the event's cost contribution to the plan total.
func (e Event) Cost() float64 {
	switch e.Kind {
	case EventActivity:
		if e.Activity != nil {
			return e.Activity.Cost
		}
	case EventTravel:
		if e.Travel != nil {
			return e.Travel.Cost
		}
	}
	return 0
}

// DurationMin returns the event's duration contribution in minutes.
func (e Event) DurationMin() int {
	switch e.Kind {
	case EventActivity:
		if e.Activity != nil {
			return e.Activity.DurationMin
		}
	case EventTravel:
		if e.Travel != nil {
			return e.Travel.DurationMin
		}
	}
	return 0
}

// Clone returns a deep copy of the event.
func (e Event) Clone() Event {
	cp := Event{Kind: e.Kind}
	if e.Activity != nil {
		cp.Activity = e.Activity.Clone()
	}
	if e.Travel != nil {
		cp.Travel = e.Travel.Clone()
	}
	return cp
}
