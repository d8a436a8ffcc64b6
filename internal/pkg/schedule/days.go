package schedule

import "strings"

// Weekday is a short day-of-week name as used in section day-slot tokens.
type Weekday string

// Canonical week order, Sunday first. DaysForSlot returns days in this order
// regardless of the order letters appear in the token.
const (
	Sunday    Weekday = "Sun"
	Monday    Weekday = "Mon"
	Tuesday   Weekday = "Tue"
	Wednesday Weekday = "Wed"
	Thursday  Weekday = "Thu"
	Friday    Weekday = "Fri"
	Saturday  Weekday = "Sat"
)

var weekOrder = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// dayPairs maps the fixed two-letter section tokens to their meeting days.
var dayPairs = map[string][]Weekday{
	"ST": {Sunday, Tuesday},
	"SR": {Sunday, Thursday},
	"SM": {Sunday, Monday},
	"MT": {Monday, Tuesday},
	"MW": {Monday, Wednesday},
	"MR": {Monday, Thursday},
	"TW": {Tuesday, Wednesday},
	"TR": {Tuesday, Thursday},
	"WR": {Wednesday, Thursday},
}

// dayLetters is the single-letter fallback decomposition.
var dayLetters = map[byte]Weekday{
	'S': Sunday,
	'M': Monday,
	'T': Tuesday,
	'W': Wednesday,
	'R': Thursday,
	'F': Friday,
}

// DaysForSlot resolves a day-slot token to the set of weekdays a section meets.
// Known two-letter tokens use the fixed pair table; any other token decomposes
// letter by letter (S=Sun, M=Mon, T=Tue, W=Wed, R=Thu, F=Fri). Letters outside
// that alphabet are ignored. The result is deduplicated and ordered Sun..Sat.
func DaysForSlot(token string) []Weekday {
	token = strings.ToUpper(strings.TrimSpace(token))
	if days, ok := dayPairs[token]; ok {
		out := make([]Weekday, len(days))
		copy(out, days)
		return out
	}

	present := make(map[Weekday]bool, len(token))
	for i := 0; i < len(token); i++ {
		if day, ok := dayLetters[token[i]]; ok {
			present[day] = true
		}
	}

	days := make([]Weekday, 0, len(present))
	for _, day := range weekOrder {
		if present[day] {
			days = append(days, day)
		}
	}
	return days
}

// ShareDay reports whether two day-slot tokens have at least one weekday in common.
func ShareDay(tokenA, tokenB string) bool {
	daysA := DaysForSlot(tokenA)
	daysB := DaysForSlot(tokenB)
	for _, a := range daysA {
		for _, b := range daysB {
			if a == b {
				return true
			}
		}
	}
	return false
}

// Clash reports whether two (day-slot, time-slot) pairs collide: they meet on a
// shared weekday and their time intervals overlap. Back-to-back sections whose
// intervals merely touch do not clash. Returns false when either time-slot
// string cannot be parsed.
func Clash(daySlotA, timeSlotA, daySlotB, timeSlotB string) bool {
	if !ShareDay(daySlotA, daySlotB) {
		return false
	}
	slotA, ok := ParseTimeSlot(timeSlotA)
	if !ok {
		return false
	}
	slotB, ok := ParseTimeSlot(timeSlotB)
	if !ok {
		return false
	}
	return slotA.Overlaps(slotB)
}
