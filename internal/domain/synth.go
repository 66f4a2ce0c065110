package domain

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

const (
	// MinTravelMiles / MaxTravelMiles bound synthesized distances.
	MinTravelMiles = 0.1
	MaxTravelMiles = 15.0
)

var (
	// ErrInvalidClock signals a time value that does not normalize to HH:MM.
	ErrInvalidClock = errors.New("time does not normalize to HH:MM")

	// ErrMissingLocation signals an empty start or end location.
	ErrMissingLocation = errors.New("travel segment requires both locations")
)

// DefaultTravelModes is assumed when the user expressed no preference.
var DefaultTravelModes = []TransportMode{ModeWalking, ModeDriving}

// ModeProfile holds the assumptions for one transport mode.
type ModeProfile struct {
	SpeedMPH    float64
	CostPerMile float64
}

// Profile bundles the per-mode assumptions and the distance thresholds
// driving mode selection and booking rules. The zero value is not
// usable; start from DefaultProfile.
type Profile struct {
	Modes map[TransportMode]ModeProfile

	// CyclingUpgradeMiles / DrivingUpgradeMiles are the distances above
	// which walking is upgraded when the mode is preferred. Driving
	// takes priority over cycling when both apply.
	CyclingUpgradeMiles float64
	DrivingUpgradeMiles float64

	// BusBookingMiles is the distance above which a bus leg requires
	// advance booking. Train legs always do.
	BusBookingMiles float64
}

// DefaultProfile returns the built-in assumptions: walking 3 mph,
// cycling 12 mph, driving 25 mph at 0.50 per mile, cycling upgrade over
// 1 mile, driving upgrade over 2 miles, bus booking over 10 miles.
func DefaultProfile() Profile {
	return Profile{
		Modes: map[TransportMode]ModeProfile{
			ModeWalking: {SpeedMPH: 3},
			ModeCycling: {SpeedMPH: 12},
			ModeDriving: {SpeedMPH: 25, CostPerMile: 0.5},
			ModeBus:     {SpeedMPH: 15},
			ModeTrain:   {SpeedMPH: 40},
		},
		CyclingUpgradeMiles: 1,
		DrivingUpgradeMiles: 2,
		BusBookingMiles:     10,
	}
}

// BookingRequired reports whether a segment of the given mode and
// distance needs advance booking.
func (p Profile) BookingRequired(mode TransportMode, miles float64) bool {
	if mode == ModeTrain {
		return true
	}
	return mode == ModeBus && miles > p.BusBookingMiles
}

func (p Profile) speed(mode TransportMode) float64 {
	if mp, ok := p.Modes[mode]; ok && mp.SpeedMPH > 0 {
		return mp.SpeedMPH
	}
	return p.Modes[ModeWalking].SpeedMPH
}

func (p Profile) costPerMile(mode TransportMode) float64 {
	return p.Modes[mode].CostPerMile
}

// DistanceSource yields distances in miles for synthesized segments.
// Injectable so tests can fix the distance and assert the rest of the
// pipeline deterministically.
type DistanceSource interface {
	Miles() float64
}

// FixedDistance is a DistanceSource returning a constant value.
type FixedDistance float64

// Miles implements DistanceSource.
func (f FixedDistance) Miles() float64 { return float64(f) }

type randomDistance struct {
	rng *rand.Rand
}

// NewRandomDistance returns a seedable DistanceSource drawing uniformly
// from [MinTravelMiles, MaxTravelMiles] at one decimal place.
func NewRandomDistance(seed uint64) DistanceSource {
	return &randomDistance{rng: rand.New(rand.NewSource(int64(seed)))}
}

func (r *randomDistance) Miles() float64 {
	raw := MinTravelMiles + r.rng.Float64()*(MaxTravelMiles-MinTravelMiles)
	return roundMiles(raw)
}

// Synthesizer fabricates plausible travel segments between two named
// locations. Distance is stochastic (via the DistanceSource); everything
// derived from it is deterministic.
type Synthesizer struct {
	profile Profile
	dist    DistanceSource
}

// NewSynthesizer builds a synthesizer over the given profile and
// distance source.
func NewSynthesizer(profile Profile, dist DistanceSource) *Synthesizer {
	return &Synthesizer{profile: profile, dist: dist}
}

// Segment synthesizes a travel segment from one location to another,
// departing at startTime, honoring the preferred modes.
//
// The returned segment's start and end times are always valid canonical
// strings. When that cannot be guaranteed (empty location, start time
// that does not normalize) Segment fails fast instead of emitting a
// sentinel value.
func (s *Synthesizer) Segment(from, to, startTime string, modes []TransportMode) (*Travel, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: from=%q to=%q", ErrMissingLocation, from, to)
	}
	start, ok := ParseClock(startTime)
	if !ok {
		return nil, fmt.Errorf("%w: start time %q", ErrInvalidClock, startTime)
	}

	miles := roundMiles(s.dist.Miles())
	mode := s.selectMode(miles, modes)

	durationMin := int(math.Ceil(miles / s.profile.speed(mode) * 60))
	if durationMin < 1 {
		durationMin = 1
	}
	end := start.Add(durationMin)

	var cost float64
	if perMile := s.profile.costPerMile(mode); perMile > 0 {
		cost = math.Round(miles*perMile*100) / 100
	}

	t := &Travel{
		ID:            fmt.Sprintf("travel-%s-%s", start.Compact(), end.Compact()),
		FromLocation:  from,
		ToLocation:    to,
		StartTime:     start.String(),
		EndTime:       end.String(),
		DurationMin:   durationMin,
		Mode:          mode,
		Cost:          cost,
		DistanceMiles: miles,
	}

	if s.profile.BookingRequired(mode, miles) {
		t.BookingRequired = true
		t.BookingURL = bookingURL(mode)
		t.BookingAdvice = "Book in advance to guarantee a seat."
	}

	return t, nil
}

// selectMode starts from walking and upgrades by distance threshold.
// Driving wins over cycling when both thresholds are met and both modes
// are preferred.
func (s *Synthesizer) selectMode(miles float64, preferred []TransportMode) TransportMode {
	if len(preferred) == 0 {
		preferred = DefaultTravelModes
	}
	mode := ModeWalking
	if miles > s.profile.DrivingUpgradeMiles && prefers(preferred, ModeDriving) {
		mode = ModeDriving
	} else if miles > s.profile.CyclingUpgradeMiles && prefers(preferred, ModeCycling) {
		mode = ModeCycling
	}
	return mode
}

func prefers(modes []TransportMode, want TransportMode) bool {
	for _, m := range modes {
		if m == want {
			return true
		}
	}
	return false
}

func bookingURL(mode TransportMode) string {
	switch mode {
	case ModeTrain:
		return "https://www.thetrainline.com"
	case ModeBus:
		return "https://www.nationalexpress.com"
	default:
		return ""
	}
}

func roundMiles(miles float64) float64 {
	return math.Round(miles*10) / 10
}
