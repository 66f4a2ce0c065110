package domain

// TransportMode identifies how a travel segment is covered.
type TransportMode string

const (
	ModeWalking TransportMode = "walking"
	ModeCycling TransportMode = "cycling"
	ModeDriving TransportMode = "driving"
	ModeBus     TransportMode = "bus"
	ModeTrain   TransportMode = "train"
)

// KnownMode reports whether s names a supported transport mode.
func KnownMode(s string) (TransportMode, bool) {
	switch TransportMode(s) {
	case ModeWalking, ModeCycling, ModeDriving, ModeBus, ModeTrain:
		return TransportMode(s), true
	default:
		return "", false
	}
}

// Travel is a transit segment connecting two consecutive activities,
// or the final activity and the day's end location.
//
// Travel segments are always synthesized, never user-authored, and have
// no identity across reconciliation passes: every mutation of the
// activity list discards and regenerates them.
type Travel struct {
	// ID is derived from the segment's start and end times.
	ID string `json:"id"`

	FromLocation string `json:"fromLocation"`
	ToLocation   string `json:"toLocation"`

	// StartTime equals the preceding activity's canonical end time.
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`

	DurationMin int           `json:"durationMin"`
	Mode        TransportMode `json:"mode"`
	Cost        float64       `json:"cost"`

	// DistanceMiles is rounded to one decimal place.
	DistanceMiles float64 `json:"distanceMiles"`

	BookingRequired bool   `json:"bookingRequired,omitempty"`
	BookingURL      string `json:"bookingUrl,omitempty"`
	BookingAdvice   string `json:"bookingAdvice,omitempty"`

	// EndOfDay marks the trailing return/onward leg.
	EndOfDay bool `json:"endOfDay,omitempty"`
}

// Clone returns a copy of the travel segment.
func (t *Travel) Clone() *Travel {
	cp := *t
	return &cp
}
