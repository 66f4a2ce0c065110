package domain

import (
	"fmt"
	"testing"
)

func TestParseClockEncodings(t *testing.T) {
	tests := []struct {
		name   string
		raw    any
		want   string
		wantOK bool
	}{
		{name: "canonical string", raw: "17:35", want: "17:35", wantOK: true},
		{name: "missing leading zeros", raw: "9:5", want: "09:05", wantOK: true},
		{name: "numeric without separator", raw: 1735, want: "17:35", wantOK: true},
		{name: "short numeric", raw: 935, want: "09:35", wantOK: true},
		{name: "minutes only numeric", raw: 45, want: "00:45", wantOK: true},
		{name: "float from json", raw: float64(1735), want: "17:35", wantOK: true},
		{name: "numeric string", raw: "1735", want: "17:35", wantOK: true},
		{name: "comma separated", raw: "17,35", want: "17:35", wantOK: true},
		{name: "trailing comma", raw: "17:35,", want: "17:35", wantOK: true},
		{name: "embedded whitespace", raw: " 17 : 35 ", want: "17:35", wantOK: true},
		{name: "pair of numbers", raw: []any{float64(9), float64(5)}, want: "09:05", wantOK: true},
		{name: "pair of strings", raw: []string{"17", "35"}, want: "17:35", wantOK: true},
		{name: "midnight", raw: "00:00", want: "00:00", wantOK: true},
		{name: "end of day wraps is invalid", raw: "24:00", wantOK: false},
		{name: "negative hour", raw: "-1:30", wantOK: false},
		{name: "negative number", raw: -935, wantOK: false},
		{name: "minute overflow", raw: "12:75", wantOK: false},
		{name: "hour overflow numeric", raw: 2500, wantOK: false},
		{name: "fractional number", raw: 17.5, wantOK: false},
		{name: "empty string", raw: "", wantOK: false},
		{name: "garbage string", raw: "noonish", wantOK: false},
		{name: "too many parts", raw: "12:30:15", wantOK: false},
		{name: "one element pair", raw: []any{float64(9)}, wantOK: false},
		{name: "nil", raw: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ParseClock(tt.raw)
			if ok != tt.wantOK {
				t.Fatalf("ParseClock(%v) ok = %v, want %v", tt.raw, ok, tt.wantOK)
			}
			if ok && c.String() != tt.want {
				t.Errorf("ParseClock(%v) = %q, want %q", tt.raw, c.String(), tt.want)
			}
		})
	}
}

// Normalizing an already-canonical string must return it unchanged.
func TestParseClockIdempotent(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "12:30", "23:59"} {
		c, ok := ParseClock(s)
		if !ok {
			t.Fatalf("ParseClock(%q) failed", s)
		}
		if c.String() != s {
			t.Errorf("ParseClock(%q) = %q, want unchanged", s, c.String())
		}
	}
}

// Every valid h*100+m encoding must normalize.
func TestParseClockNumericTotality(t *testing.T) {
	for h := 0; h < 24; h++ {
		for m := 0; m < 60; m++ {
			c, ok := ParseClock(h*100 + m)
			if !ok {
				t.Fatalf("ParseClock(%d) failed", h*100+m)
			}
			want := fmt.Sprintf("%02d:%02d", h, m)
			if c.String() != want {
				t.Fatalf("ParseClock(%d) = %q, want %q", h*100+m, c.String(), want)
			}
		}
	}
}

func TestClockAdd(t *testing.T) {
	tests := []struct {
		start   string
		minutes int
		want    string
	}{
		{start: "09:00", minutes: 23, want: "09:23"},
		{start: "09:45", minutes: 30, want: "10:15"},
		{start: "23:50", minutes: 20, want: "00:10"},
		{start: "12:00", minutes: 0, want: "12:00"},
	}

	for _, tt := range tests {
		c, ok := ParseClock(tt.start)
		if !ok {
			t.Fatalf("ParseClock(%q) failed", tt.start)
		}
		if got := c.Add(tt.minutes).String(); got != tt.want {
			t.Errorf("%s + %dmin = %q, want %q", tt.start, tt.minutes, got, tt.want)
		}
	}
}

func TestClockMinutes(t *testing.T) {
	c, ok := ParseClock("14:30")
	if !ok {
		t.Fatal("ParseClock failed")
	}
	if c.Minutes() != 14*60+30 {
		t.Errorf("Minutes() = %d, want %d", c.Minutes(), 14*60+30)
	}
}
