package genai

import (
	"encoding/json"
	"fmt"
)

// PlanDocument mirrors the JSON the upstream generator returns.
//
// The generator is a prompted LLM behind an HTTP API: field types are
// deliberately loose, and time values arrive as numbers (1735), strings
// ("17:35", "17,35"), or [hour, minute] pairs, sometimes mixed within
// one payload. Nothing here crosses into the domain model without going
// through the Mapper.
type PlanDocument struct {
	Title          string         `json:"title"`
	Date           string         `json:"date"`
	Preferences    PreferencesDoc `json:"preferences"`
	Weather        *WeatherDoc    `json:"weather,omitempty"`
	RevealProgress float64        `json:"revealProgress,omitempty"`
	Events         []EventDoc     `json:"events"`
}

// PreferencesDoc carries the user inputs the generator echoes back.
type PreferencesDoc struct {
	StartLocation string   `json:"startLocation"`
	EndLocation   string   `json:"endLocation,omitempty"`
	TravelModes   []string `json:"travelModes,omitempty"`
}

// WeatherDoc is the generator's weather snapshot.
type WeatherDoc struct {
	Summary      string  `json:"summary"`
	TemperatureC float64 `json:"temperatureC"`
	Icon         string  `json:"icon,omitempty"`
}

// EventDoc is one entry of the generator's flat event list. Type
// discriminates ("activity" or "travel"; empty means activity); the
// remaining fields are a union of both shapes.
type EventDoc struct {
	Type string `json:"type,omitempty"`
	ID   string `json:"id,omitempty"`

	// Activity fields.
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location,omitempty"`
	DurationMin float64  `json:"durationMin,omitempty"`
	Cost        float64  `json:"cost,omitempty"`
	Categories  []string `json:"categories,omitempty"`
	Address     string   `json:"address,omitempty"`
	Rating      float64  `json:"rating,omitempty"`
	ImageURL    string   `json:"imageUrl,omitempty"`

	// Travel fields.
	FromLocation    string  `json:"fromLocation,omitempty"`
	ToLocation      string  `json:"toLocation,omitempty"`
	Mode            string  `json:"mode,omitempty"`
	DistanceMiles   float64 `json:"distanceMiles,omitempty"`
	BookingRequired bool    `json:"bookingRequired,omitempty"`
	BookingURL      string  `json:"bookingUrl,omitempty"`
	BookingAdvice   string  `json:"bookingAdvice,omitempty"`
	EndOfDay        bool    `json:"endOfDay,omitempty"`

	// Times are kept raw; the mapper normalizes them.
	StartTime json.RawMessage `json:"startTime,omitempty"`
	EndTime   json.RawMessage `json:"endTime,omitempty"`
}

// ParseDocument decodes a raw generator payload.
func ParseDocument(data []byte) (PlanDocument, error) {
	var doc PlanDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return PlanDocument{}, fmt.Errorf("failed to parse generator payload: %w", err)
	}
	return doc, nil
}
