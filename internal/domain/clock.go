package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a canonical 24-hour clock-of-day value.
// Its string form always matches HH:MM with zero padding.
type Clock struct {
	hour   int
	minute int
}

// NewClock builds a Clock from hour/minute components.
// Returns false when either component is out of range.
func NewClock(hour, minute int) (Clock, bool) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, false
	}
	return Clock{hour: hour, minute: minute}, true
}

// ParseClock converts an arbitrary time-ish value into a Clock.
//
// Accepted encodings (the upstream generator emits all of them):
//   - numbers encoding hours and minutes without a separator: 1735 -> 17:35
//   - strings in H:MM or HH:MM form, commas and whitespace stripped first
//   - numeric strings without a separator: "935" -> 09:35
//   - two-element slices interpreted as [hour, minute]
//
// ParseClock never panics on malformed input; it reports failure via ok.
// "24:00", negative components, and minutes >= 60 all fail.
func ParseClock(raw any) (Clock, bool) {
	switch v := raw.(type) {
	case Clock:
		return v, true
	case string:
		return parseClockString(v)
	case int:
		return clockFromNumber(v)
	case int64:
		return clockFromNumber(int(v))
	case float64:
		if v != float64(int(v)) {
			return Clock{}, false
		}
		return clockFromNumber(int(v))
	case []any:
		return clockFromPair(v)
	case []string:
		pair := make([]any, len(v))
		for i, s := range v {
			pair[i] = s
		}
		return clockFromPair(pair)
	default:
		return Clock{}, false
	}
}

// String renders the canonical zero-padded form, ex: "09:05".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// Minutes returns the clock value as minutes since midnight.
// Used as the chronological sort key for activities.
func (c Clock) Minutes() int {
	return c.hour*60 + c.minute
}

// Add advances the clock by the given number of minutes using calendar
// arithmetic, wrapping past midnight.
func (c Clock) Add(minutes int) Clock {
	t := time.Date(2000, time.January, 1, c.hour, c.minute, 0, 0, time.UTC)
	t = t.Add(time.Duration(minutes) * time.Minute)
	return Clock{hour: t.Hour(), minute: t.Minute()}
}

// Compact returns the clock without the separator, ex: "0905".
// Used for derived travel identifiers.
func (c Clock) Compact() string {
	return fmt.Sprintf("%02d%02d", c.hour, c.minute)
}

func parseClockString(s string) (Clock, bool) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return Clock{}, false
	}

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		if len(parts) != 2 {
			return Clock{}, false
		}
		hour, err := strconv.Atoi(parts[0])
		if err != nil {
			return Clock{}, false
		}
		minute, err := strconv.Atoi(parts[1])
		if err != nil {
			return Clock{}, false
		}
		return NewClock(hour, minute)
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return Clock{}, false
	}
	return clockFromNumber(n)
}

func clockFromNumber(n int) (Clock, bool) {
	if n < 0 {
		return Clock{}, false
	}
	return NewClock(n/100, n%100)
}

func clockFromPair(pair []any) (Clock, bool) {
	if len(pair) != 2 {
		return Clock{}, false
	}
	hour, ok := numericToken(pair[0])
	if !ok {
		return Clock{}, false
	}
	minute, ok := numericToken(pair[1])
	if !ok {
		return Clock{}, false
	}
	return NewClock(hour, minute)
}

func numericToken(v any) (int, bool) {
	switch t := v.(type) {
	case int:
		return t, true
	case int64:
		return int(t), true
	case float64:
		if t != float64(int(t)) {
			return 0, false
		}
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
