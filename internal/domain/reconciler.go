package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	// ErrActivityNotFound signals a delete for an id the plan does not hold.
	ErrActivityNotFound = errors.New("activity not found in plan")

	// ErrIndexOutOfRange signals a reorder with indices outside the event sequence.
	ErrIndexOutOfRange = errors.New("event index out of range")
)

// Reconciler rebuilds a consistent event sequence and totals after a
// mutation of the activity list.
//
// Every operation is pure with respect to its input: it works on a deep
// copy and returns a new plan, so a failing mutation leaves the caller's
// plan untouched and no partial state is ever committed.
type Reconciler struct {
	synth *Synthesizer
	now   func() time.Time
}

// NewReconciler builds a reconciler over the given synthesizer.
func NewReconciler(synth *Synthesizer) *Reconciler {
	return &Reconciler{synth: synth, now: time.Now}
}

// Load performs initial construction on a freshly ingested or resumed
// plan: when the last event is an activity, it synthesizes one trailing
// travel event from that activity's location to the plan's end location
// (falling back to the start location), marked as the end-of-day leg.
// Totals are recomputed either way.
//
// Intermediate events are trusted as supplied; upstream travel segments
// (including bus and train legs) survive until the first mutation.
func (r *Reconciler) Load(plan *DayPlan) (*DayPlan, error) {
	cp := plan.Clone()

	if n := len(cp.Events); n > 0 && cp.Events[n-1].Kind == EventActivity {
		last := cp.Events[n-1].Activity
		dest := r.dayEnd(cp)
		if dest != "" {
			leg, err := r.synth.Segment(last.Location, dest, last.EndTime, cp.Preferences.TravelModes)
			if err != nil {
				return nil, fmt.Errorf("end-of-day leg from %q: %w", last.Location, err)
			}
			leg.EndOfDay = true
			cp.Events = append(cp.Events, NewTravelEvent(leg))
		}
	}

	cp.RecomputeTotals()
	cp.UpdatedAt = r.now()
	return cp, nil
}

// DeleteActivity removes the matching activity, preserving the order of
// the rest, and rebuilds the sequence.
func (r *Reconciler) DeleteActivity(plan *DayPlan, activityID string) (*DayPlan, error) {
	cp := plan.Clone()

	acts := cp.Activities()
	kept := acts[:0]
	found := false
	for _, a := range acts {
		if a.ID == activityID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrActivityNotFound, activityID)
	}

	return r.assemble(cp, kept)
}

// Reorder applies drag-and-drop semantics: the event at src is removed
// from the full sequence and reinserted at dst, then the activities are
// re-extracted and the sequence rebuilt. Because travel events are
// discarded and regenerated from activity order alone, reordering a
// travel event itself has no lasting effect.
func (r *Reconciler) Reorder(plan *DayPlan, src, dst int) (*DayPlan, error) {
	if src < 0 || src >= len(plan.Events) || dst < 0 || dst >= len(plan.Events) {
		return nil, fmt.Errorf("%w: src=%d dst=%d len=%d", ErrIndexOutOfRange, src, dst, len(plan.Events))
	}

	cp := plan.Clone()

	events := cp.Events
	moved := events[src]
	events = append(events[:src], events[src+1:]...)
	events = append(events, Event{})
	copy(events[dst+1:], events[dst:])
	events[dst] = moved
	cp.Events = events

	return r.assemble(cp, cp.Activities())
}

// InsertActivities merges the selected activities into the existing
// list, slots everything chronologically by start time, and rebuilds.
// User-added activities are never simply appended at the end.
func (r *Reconciler) InsertActivities(plan *DayPlan, selected []Activity) (*DayPlan, error) {
	cp := plan.Clone()

	acts := cp.Activities()
	for i := range selected {
		acts = append(acts, selected[i].Clone())
	}

	type keyed struct {
		act   *Activity
		start int
	}
	items := make([]keyed, len(acts))
	for i, a := range acts {
		start, ok := ParseClock(a.StartTime)
		if !ok {
			return nil, fmt.Errorf("%w: activity %q start time %q", ErrInvalidClock, a.ID, a.StartTime)
		}
		items[i] = keyed{act: a, start: start.Minutes()}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].start < items[j].start })
	for i := range items {
		acts[i] = items[i].act
	}

	return r.assemble(cp, acts)
}

// assemble rebuilds cp's event sequence from the ordered activity list:
// activities interleaved with freshly synthesized travel segments, plus
// the trailing end-of-day leg, then recomputed totals. cp is only
// returned on success; on error the caller discards it.
func (r *Reconciler) assemble(cp *DayPlan, acts []*Activity) (*DayPlan, error) {
	events := make([]Event, 0, 2*len(acts))
	for i, a := range acts {
		events = append(events, NewActivityEvent(a))
		if i+1 == len(acts) {
			break
		}
		seg, err := r.synth.Segment(a.Location, acts[i+1].Location, a.EndTime, cp.Preferences.TravelModes)
		if err != nil {
			return nil, fmt.Errorf("travel after activity %q: %w", a.ID, err)
		}
		events = append(events, NewTravelEvent(seg))
	}

	if len(acts) > 0 {
		if dest := r.dayEnd(cp); dest != "" {
			last := acts[len(acts)-1]
			leg, err := r.synth.Segment(last.Location, dest, last.EndTime, cp.Preferences.TravelModes)
			if err != nil {
				return nil, fmt.Errorf("end-of-day leg from %q: %w", last.Location, err)
			}
			leg.EndOfDay = true
			events = append(events, NewTravelEvent(leg))
		}
	}

	cp.Events = events
	cp.RecomputeTotals()
	cp.UpdatedAt = r.now()
	return cp, nil
}

// dayEnd resolves the trailing leg destination: the explicit end
// location when set, otherwise back to the start location.
func (r *Reconciler) dayEnd(p *DayPlan) string {
	if p.Preferences.EndLocation != "" {
		return p.Preferences.EndLocation
	}
	return p.Preferences.StartLocation
}
