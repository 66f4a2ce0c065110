package genai

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dayweave/planner/internal/domain"
)

// Mapper converts loose generator documents into the typed domain model.
//
// All time normalization happens here, at the boundary: an activity
// whose start time cannot be normalized rejects the whole payload
// (substituting a silent default would corrupt chronological sorting
// and totals downstream). End times are normalized when possible and
// otherwise carried raw; travel synthesis fails loudly at the point it
// actually needs them.
type Mapper struct{}

// NewMapper creates a new mapper instance.
func NewMapper() *Mapper {
	return &Mapper{}
}

// MapPlan converts a PlanDocument into a domain.DayPlan.
func (m *Mapper) MapPlan(doc PlanDocument) (*domain.DayPlan, error) {
	prefs, err := mapPreferences(doc.Preferences)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	plan := &domain.DayPlan{
		ID:             uuid.NewString(),
		Title:          doc.Title,
		Date:           doc.Date,
		Preferences:    prefs,
		RevealProgress: int(doc.RevealProgress),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if doc.Weather != nil {
		plan.Weather = &domain.WeatherSnapshot{
			Summary:      doc.Weather.Summary,
			TemperatureC: doc.Weather.TemperatureC,
			Icon:         doc.Weather.Icon,
		}
	}

	plan.Events = make([]domain.Event, 0, len(doc.Events))
	for i, ev := range doc.Events {
		switch ev.Type {
		case "", string(domain.EventActivity):
			a, err := mapActivity(i, ev)
			if err != nil {
				return nil, err
			}
			plan.Events = append(plan.Events, domain.NewActivityEvent(a))
		case string(domain.EventTravel):
			t, err := mapTravel(i, ev)
			if err != nil {
				return nil, err
			}
			plan.Events = append(plan.Events, domain.NewTravelEvent(t))
		default:
			return nil, fmt.Errorf("event %d: unknown type %q", i, ev.Type)
		}
	}

	return plan, nil
}

func mapActivity(i int, ev EventDoc) (*domain.Activity, error) {
	start, ok := clockFromRaw(ev.StartTime)
	if !ok {
		return nil, fmt.Errorf("event %d (%q): %w: start time %s",
			i, ev.Name, domain.ErrInvalidClock, string(ev.StartTime))
	}

	a := &domain.Activity{
		ID:          ev.ID,
		Name:        ev.Name,
		Description: ev.Description,
		Location:    ev.Location,
		StartTime:   start.String(),
		EndTime:     lenientClock(ev.EndTime),
		DurationMin: int(ev.DurationMin),
		Cost:        ev.Cost,
		Categories:  ev.Categories,
		Address:     ev.Address,
		Rating:      ev.Rating,
		ImageURL:    ev.ImageURL,
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return a, nil
}

func mapTravel(i int, ev EventDoc) (*domain.Travel, error) {
	mode, ok := domain.KnownMode(ev.Mode)
	if !ok {
		return nil, fmt.Errorf("event %d: unknown transport mode %q", i, ev.Mode)
	}

	t := &domain.Travel{
		ID:              ev.ID,
		FromLocation:    ev.FromLocation,
		ToLocation:      ev.ToLocation,
		StartTime:       lenientClock(ev.StartTime),
		EndTime:         lenientClock(ev.EndTime),
		DurationMin:     int(ev.DurationMin),
		Mode:            mode,
		Cost:            ev.Cost,
		DistanceMiles:   ev.DistanceMiles,
		BookingRequired: ev.BookingRequired,
		BookingURL:      ev.BookingURL,
		BookingAdvice:   ev.BookingAdvice,
		EndOfDay:        ev.EndOfDay,
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return t, nil
}

func mapPreferences(doc PreferencesDoc) (domain.Preferences, error) {
	prefs := domain.Preferences{
		StartLocation: doc.StartLocation,
		EndLocation:   doc.EndLocation,
	}
	for _, raw := range doc.TravelModes {
		mode, ok := domain.KnownMode(raw)
		if !ok {
			return domain.Preferences{}, fmt.Errorf("unknown preferred transport mode %q", raw)
		}
		prefs.TravelModes = append(prefs.TravelModes, mode)
	}
	return prefs, nil
}

// clockFromRaw decodes a raw JSON time value and normalizes it.
func clockFromRaw(raw json.RawMessage) (domain.Clock, bool) {
	if len(raw) == 0 {
		return domain.Clock{}, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return domain.Clock{}, false
	}
	return domain.ParseClock(v)
}

// lenientClock returns the canonical form when the value normalizes,
// and otherwise the raw string rendition so the UI can still display
// something. Downstream synthesis re-checks and fails loudly.
func lenientClock(raw json.RawMessage) string {
	if c, ok := clockFromRaw(raw); ok {
		return c.String()
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
