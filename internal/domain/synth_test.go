package domain

import (
	"errors"
	"testing"
)

func newTestSynth(miles float64) *Synthesizer {
	return NewSynthesizer(DefaultProfile(), FixedDistance(miles))
}

func TestSegmentModeSelection(t *testing.T) {
	tests := []struct {
		name     string
		miles    float64
		modes    []TransportMode
		wantMode TransportMode
	}{
		{name: "short walk", miles: 0.5, modes: []TransportMode{ModeWalking, ModeDriving}, wantMode: ModeWalking},
		{name: "driving over two miles", miles: 3.0, modes: []TransportMode{ModeWalking, ModeDriving}, wantMode: ModeDriving},
		{name: "cycling over one mile", miles: 1.5, modes: []TransportMode{ModeWalking, ModeCycling}, wantMode: ModeCycling},
		{name: "driving beats cycling when both apply", miles: 5.0, modes: []TransportMode{ModeCycling, ModeDriving}, wantMode: ModeDriving},
		{name: "no driving preference stays walking", miles: 5.0, modes: []TransportMode{ModeWalking}, wantMode: ModeWalking},
		{name: "cycling when driving not preferred", miles: 5.0, modes: []TransportMode{ModeCycling}, wantMode: ModeCycling},
		{name: "empty modes use defaults", miles: 3.0, modes: nil, wantMode: ModeDriving},
		{name: "at driving threshold stays below upgrade", miles: 2.0, modes: []TransportMode{ModeDriving}, wantMode: ModeWalking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := newTestSynth(tt.miles).Segment("Borough Market", "Tate Modern", "10:00", tt.modes)
			if err != nil {
				t.Fatalf("Segment() error = %v", err)
			}
			if seg.Mode != tt.wantMode {
				t.Errorf("mode = %q, want %q", seg.Mode, tt.wantMode)
			}
		})
	}
}

func TestSegmentDurationAndTimes(t *testing.T) {
	// 3.0 miles driving at 25 mph = 7.2 min, ceiled to 8.
	seg, err := newTestSynth(3.0).Segment("A", "B", "09:00", []TransportMode{ModeDriving})
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if seg.DurationMin != 8 {
		t.Errorf("duration = %d, want 8", seg.DurationMin)
	}
	if seg.StartTime != "09:00" {
		t.Errorf("start = %q, want 09:00", seg.StartTime)
	}
	if seg.EndTime != "09:08" {
		t.Errorf("end = %q, want 09:08", seg.EndTime)
	}
	if seg.ID != "travel-0900-0908" {
		t.Errorf("id = %q, want travel-0900-0908", seg.ID)
	}
}

func TestSegmentNormalizesStartTime(t *testing.T) {
	// A non-canonical but parseable start must come back canonical.
	seg, err := newTestSynth(0.5).Segment("A", "B", "9:5", nil)
	if err != nil {
		t.Fatalf("Segment() error = %v", err)
	}
	if seg.StartTime != "09:05" {
		t.Errorf("start = %q, want 09:05", seg.StartTime)
	}
}

func TestSegmentCost(t *testing.T) {
	tests := []struct {
		name     string
		miles    float64
		modes    []TransportMode
		wantCost float64
	}{
		{name: "walking is free", miles: 0.5, modes: []TransportMode{ModeWalking}, wantCost: 0},
		{name: "cycling is free", miles: 1.5, modes: []TransportMode{ModeCycling}, wantCost: 0},
		{name: "driving per mile", miles: 3.0, modes: []TransportMode{ModeDriving}, wantCost: 1.5},
		{name: "driving rounds to cents", miles: 3.3, modes: []TransportMode{ModeDriving}, wantCost: 1.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := newTestSynth(tt.miles).Segment("A", "B", "10:00", tt.modes)
			if err != nil {
				t.Fatalf("Segment() error = %v", err)
			}
			if seg.Cost != tt.wantCost {
				t.Errorf("cost = %v, want %v", seg.Cost, tt.wantCost)
			}
		})
	}
}

func TestSegmentBounds(t *testing.T) {
	// Synthesis over the random source must stay within documented
	// bounds and never produce bus or train legs.
	synth := NewSynthesizer(DefaultProfile(), NewRandomDistance(42))
	for i := 0; i < 500; i++ {
		seg, err := synth.Segment("A", "B", "08:00", []TransportMode{ModeWalking, ModeCycling, ModeDriving})
		if err != nil {
			t.Fatalf("Segment() error = %v", err)
		}
		if seg.DistanceMiles < MinTravelMiles || seg.DistanceMiles > MaxTravelMiles {
			t.Fatalf("distance %v out of [%v, %v]", seg.DistanceMiles, MinTravelMiles, MaxTravelMiles)
		}
		if seg.DurationMin < 1 {
			t.Fatalf("duration %d < 1", seg.DurationMin)
		}
		if seg.Cost < 0 {
			t.Fatalf("cost %v < 0", seg.Cost)
		}
		switch seg.Mode {
		case ModeWalking, ModeCycling, ModeDriving:
		default:
			t.Fatalf("synthesized mode %q", seg.Mode)
		}
		if seg.BookingRequired {
			t.Fatalf("synthesized segment requires booking")
		}
	}
}

func TestRandomDistanceSeeded(t *testing.T) {
	a, b := NewRandomDistance(7), NewRandomDistance(7)
	for i := 0; i < 50; i++ {
		if a.Miles() != b.Miles() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestSegmentFailsFast(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		start   string
		wantErr error
	}{
		{name: "empty from", from: "", to: "B", start: "10:00", wantErr: ErrMissingLocation},
		{name: "empty to", from: "A", to: "", start: "10:00", wantErr: ErrMissingLocation},
		{name: "empty start time", from: "A", to: "B", start: "", wantErr: ErrInvalidClock},
		{name: "unparseable start time", from: "A", to: "B", start: "around noon", wantErr: ErrInvalidClock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestSynth(1.0).Segment(tt.from, tt.to, tt.start, nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Segment() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBookingRequired(t *testing.T) {
	p := DefaultProfile()

	tests := []struct {
		name  string
		mode  TransportMode
		miles float64
		want  bool
	}{
		{name: "train always", mode: ModeTrain, miles: 0.5, want: true},
		{name: "long bus leg", mode: ModeBus, miles: 12, want: true},
		{name: "short bus leg", mode: ModeBus, miles: 5, want: false},
		{name: "driving never", mode: ModeDriving, miles: 14, want: false},
		{name: "walking never", mode: ModeWalking, miles: 14, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.BookingRequired(tt.mode, tt.miles); got != tt.want {
				t.Errorf("BookingRequired(%q, %v) = %v, want %v", tt.mode, tt.miles, got, tt.want)
			}
		})
	}
}
