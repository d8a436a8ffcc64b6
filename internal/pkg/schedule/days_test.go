package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDaysForSlot(t *testing.T) {
	tests := []struct {
		token string
		days  []Weekday
	}{
		{"MW", []Weekday{Monday, Wednesday}},
		{"ST", []Weekday{Sunday, Tuesday}},
		{"SR", []Weekday{Sunday, Thursday}},
		{"TR", []Weekday{Tuesday, Thursday}},
		{"mw", []Weekday{Monday, Wednesday}}, // case-insensitive
		// Tokens outside the pair table decompose letter by letter,
		// canonical Sun..Sat order regardless of letter order.
		{"MRF", []Weekday{Monday, Thursday, Friday}},
		{"FM", []Weekday{Monday, Friday}},
		{"MMW", []Weekday{Monday, Wednesday}}, // duplicates collapse
		{"MXW", []Weekday{Monday, Wednesday}}, // unknown letters ignored
		{"XZ", []Weekday{}},
		{"", []Weekday{}},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.days, DaysForSlot(tt.token))
		})
	}
}

func TestShareDay(t *testing.T) {
	assert.True(t, ShareDay("MW", "WR"))
	assert.True(t, ShareDay("MW", "MW"))
	assert.False(t, ShareDay("MW", "TR"))
	assert.False(t, ShareDay("ST", "F"))
	assert.True(t, ShareDay("MRF", "TR"), "fallback token shares Thursday")
}

func TestClash(t *testing.T) {
	// Shared days, overlapping times.
	assert.True(t, Clash("MW", "09:00 - 10:30", "MW", "10:00 - 11:00"))
	// Shared days, touching boundary.
	assert.False(t, Clash("MW", "09:00 - 10:30", "MW", "10:30 - 12:00"))
	// Overlapping times, disjoint days.
	assert.False(t, Clash("MW", "09:00 - 10:30", "TR", "09:00 - 10:30"))
	// Single shared day is enough.
	assert.True(t, Clash("MW", "09:00 - 10:30", "WR", "10:00 - 11:00"))
	// Malformed time-slot cannot be clash-checked.
	assert.False(t, Clash("MW", "whenever", "MW", "09:00 - 10:30"))
}
