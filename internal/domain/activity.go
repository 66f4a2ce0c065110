package domain

// Activity represents a scheduled engagement at a single location.
//
// Activities are created by the itinerary generator or selected by the
// user from place-search suggestions. Times are canonical HH:MM strings
// once an activity has passed boundary normalization; an activity whose
// start time cannot be normalized is malformed and any reconciliation
// that depends on it fails loudly.
type Activity struct {
	// ID is unique within a plan.
	ID string `json:"id"`

	// Name is the display name, ex: "Borough Market".
	Name string `json:"name"`

	// Description is free text from the generator or place search.
	Description string `json:"description,omitempty"`

	// Location is the place name or address the activity happens at.
	Location string `json:"location"`

	// StartTime and EndTime are canonical HH:MM strings.
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	// DurationMin is carried as an independent field. It usually equals
	// EndTime-StartTime but is never recomputed from the time window.
	DurationMin int `json:"durationMin"`

	// Cost is a non-negative, currency-agnostic amount.
	Cost float64 `json:"cost"`

	// Categories holds zero or more tags, ex: ["food", "market"].
	Categories []string `json:"categories,omitempty"`

	// Address is the optional street address.
	Address string `json:"address,omitempty"`

	// Rating is an optional 0-5 score from place search.
	Rating float64 `json:"rating,omitempty"`

	// ImageURL is an optional image reference.
	ImageURL string `json:"imageUrl,omitempty"`
}

// Clone returns a deep copy of the activity.
func (a *Activity) Clone() *Activity {
	cp := *a
	if a.Categories != nil {
		cp.Categories = append([]string(nil), a.Categories...)
	}
	return &cp
}
