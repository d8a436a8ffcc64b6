package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the size of the minute-of-day scale (00:00 inclusive to 24:00 exclusive).
const MinutesPerDay = 24 * 60

// ParseClockTime converts a clock string into a minute-of-day value on the 0-1439 scale.
// Two formats are accepted: 12-hour with meridiem ("9:30 AM", "12:05 pm") and
// 24-hour ("09:30", "18:00"). Meridiem matching is case-insensitive and surrounding
// whitespace is ignored. The second return value is false when the input cannot be
// parsed; callers must treat that as "cannot schedule" rather than a failure.
func ParseClockTime(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}

	// Split off a trailing meridiem if present.
	meridiem := ""
	upper := strings.ToUpper(text)
	switch {
	case strings.HasSuffix(upper, "AM"):
		meridiem = "AM"
		text = strings.TrimSpace(text[:len(text)-2])
	case strings.HasSuffix(upper, "PM"):
		meridiem = "PM"
		text = strings.TrimSpace(text[:len(text)-2])
	}

	hourStr, minuteStr, found := strings.Cut(text, ":")
	if !found {
		return 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(minuteStr))
	if err != nil {
		return 0, false
	}
	if minute < 0 || minute > 59 {
		return 0, false
	}

	switch meridiem {
	case "AM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if hour != 12 {
			hour += 12
		}
	default:
		// 24-hour form.
		if hour < 0 || hour > 23 {
			return 0, false
		}
	}

	return hour*60 + minute, true
}

// TimeSlot is a half-open [Start, End) interval in minutes of day.
type TimeSlot struct {
	Start int
	End   int
}

// ParseTimeSlot parses a "HH:MM - HH:MM" range string (either clock format on
// each side) into a TimeSlot. Returns false for malformed input or when the
// interval is empty or inverted.
func ParseTimeSlot(text string) (TimeSlot, bool) {
	startStr, endStr, found := strings.Cut(text, "-")
	if !found {
		return TimeSlot{}, false
	}

	start, ok := ParseClockTime(startStr)
	if !ok {
		return TimeSlot{}, false
	}
	end, ok := ParseClockTime(endStr)
	if !ok {
		return TimeSlot{}, false
	}
	if start >= end {
		return TimeSlot{}, false
	}

	return TimeSlot{Start: start, End: end}, true
}

// Overlaps reports whether two half-open intervals share any minute.
// Touching intervals (one ends exactly when the other starts) do not overlap.
func (t TimeSlot) Overlaps(other TimeSlot) bool {
	return t.Start < other.End && other.Start < t.End
}

// FormatMinute renders a minute-of-day value as zero-padded 24-hour "HH:MM".
func FormatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// String renders the slot in the catalog's "HH:MM - HH:MM" form.
func (t TimeSlot) String() string {
	return FormatMinute(t.Start) + " - " + FormatMinute(t.End)
}
