package domain

import "time"

// Preferences captures the user inputs the generator worked from, as far
// as reconciliation cares about them.
type Preferences struct {
	// StartLocation is where the day begins.
	StartLocation string `json:"startLocation"`

	// EndLocation is where the day should finish. When empty the
	// trailing leg returns to StartLocation instead.
	EndLocation string `json:"endLocation,omitempty"`

	// TravelModes lists the user's preferred transport modes in order.
	// Empty means the synthesizer default (walking, driving).
	TravelModes []TransportMode `json:"travelModes,omitempty"`
}

// WeatherSnapshot is collaborator-owned data carried opaquely on the plan.
type WeatherSnapshot struct {
	Summary      string  `json:"summary"`
	TemperatureC float64 `json:"temperatureC"`
	Icon         string  `json:"icon,omitempty"`
}

// DayPlan is the aggregate for one day: the ordered event sequence plus
// totals, preferences, and metadata.
//
// TotalCost and TotalDurationMin are recomputed in full whenever the
// event sequence changes; they are never incrementally maintained.
type DayPlan struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	// Date is the plan's day in YYYY-MM-DD form.
	Date string `json:"date"`

	Events []Event `json:"events"`

	TotalCost        float64 `json:"totalCost"`
	TotalDurationMin int     `json:"totalDurationMin"`

	Preferences Preferences      `json:"preferences"`
	Weather     *WeatherSnapshot `json:"weather,omitempty"`

	// RevealProgress is the surprise-mode disclosure percentage (0-100).
	// Carried for the UI; reconciliation never touches it.
	RevealProgress int `json:"revealProgress,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Activities extracts the ordered activity list from the event sequence,
// discarding travel segments (which are positional, not semantic).
func (p *DayPlan) Activities() []*Activity {
	acts := make([]*Activity, 0, (len(p.Events)+1)/2)
	for _, e := range p.Events {
		if e.Kind == EventActivity && e.Activity != nil {
			acts = append(acts, e.Activity)
		}
	}
	return acts
}

// Clone returns a deep copy of the plan. Reconciliation operates on
// copies so a failed mutation leaves the caller's plan untouched.
func (p *DayPlan) Clone() *DayPlan {
	cp := *p
	cp.Events = make([]Event, len(p.Events))
	for i, e := range p.Events {
		cp.Events[i] = e.Clone()
	}
	if p.Preferences.TravelModes != nil {
		cp.Preferences.TravelModes = append([]TransportMode(nil), p.Preferences.TravelModes...)
	}
	if p.Weather != nil {
		w := *p.Weather
		cp.Weather = &w
	}
	return &cp
}

// RecomputeTotals replaces both totals with full sums over the current
// event sequence.
func (p *DayPlan) RecomputeTotals() {
	var cost float64
	var dur int
	for _, e := range p.Events {
		cost += e.Cost()
		dur += e.DurationMin()
	}
	p.TotalCost = cost
	p.TotalDurationMin = dur
}
