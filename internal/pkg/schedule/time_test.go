package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		minute int
		ok     bool
	}{
		{"midnight 12-hour", "12:00 AM", 0, true},
		{"noon 12-hour", "12:00 PM", 720, true},
		{"afternoon 12-hour", "1:05 PM", 785, true},
		{"morning 12-hour", "9:30 AM", 570, true},
		{"lowercase meridiem", "9:30 pm", 1290, true},
		{"padded meridiem", "  11:45 AM  ", 705, true},
		{"24-hour morning", "08:30", 510, true},
		{"24-hour evening", "18:00", 1080, true},
		{"24-hour midnight", "00:00", 0, true},
		{"missing colon", "930 AM", 0, false},
		{"hour out of range", "25:00", 0, false},
		{"minute out of range", "10:75", 0, false},
		{"meridiem hour zero", "0:30 AM", 0, false},
		{"empty", "", 0, false},
		{"garbage", "noon", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minute, ok := ParseClockTime(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.minute, minute)
			}
		})
	}
}

func TestParseTimeSlot(t *testing.T) {
	slot, ok := ParseTimeSlot("09:00 - 10:30")
	require.True(t, ok)
	assert.Equal(t, TimeSlot{Start: 540, End: 630}, slot)

	slot, ok = ParseTimeSlot("8:30 AM - 10:00 AM")
	require.True(t, ok)
	assert.Equal(t, TimeSlot{Start: 510, End: 600}, slot)

	_, ok = ParseTimeSlot("10:30 - 09:00")
	assert.False(t, ok, "inverted interval must not parse")

	_, ok = ParseTimeSlot("09:00")
	assert.False(t, ok, "range separator is required")

	_, ok = ParseTimeSlot("09:00 - banana")
	assert.False(t, ok)
}

func TestTimeSlotOverlaps(t *testing.T) {
	a := TimeSlot{Start: 540, End: 630} // 09:00 - 10:30
	b := TimeSlot{Start: 600, End: 660} // 10:00 - 11:00
	c := TimeSlot{Start: 630, End: 720} // 10:30 - 12:00
	d := TimeSlot{Start: 720, End: 780} // 12:00 - 13:00

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(c), "touching boundary is not an overlap")
	assert.False(t, c.Overlaps(a))
	assert.False(t, a.Overlaps(d))
}

func TestTimeSlotString(t *testing.T) {
	assert.Equal(t, "08:30 - 10:00", TimeSlot{Start: 510, End: 600}.String())
	assert.Equal(t, "00:05 - 23:59", TimeSlot{Start: 5, End: 1439}.String())
}
