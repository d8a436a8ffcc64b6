package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassTimeSlots(t *testing.T) {
	slots := ClassTimeSlots()
	require.NotEmpty(t, slots)

	assert.Equal(t, "08:30 - 10:00", slots[0])

	for _, slot := range slots {
		parsed, ok := ParseTimeSlot(slot)
		require.True(t, ok, "generated slot %q must parse", slot)
		assert.Less(t, parsed.Start, lastSlotBound, "lecture start must fall before 18:00")
		assert.Equal(t, lectureLength, parsed.End-parsed.Start)
	}

	// Deterministic across calls.
	assert.Equal(t, slots, ClassTimeSlots())
}

func TestLabTimeSlots(t *testing.T) {
	for _, credits := range []float64{1, 1.5, 2} {
		length := 120
		if credits == 1.5 {
			length = 180
		}

		slots := LabTimeSlots(credits)
		require.NotEmpty(t, slots)
		assert.Equal(t, "08:30 - "+FormatMinute(510+length), slots[0])

		for _, slot := range slots {
			parsed, ok := ParseTimeSlot(slot)
			require.True(t, ok)
			assert.Equal(t, length, parsed.End-parsed.Start)
			// Labs bound the end, strictly: no window may reach 18:00.
			assert.Less(t, parsed.End, lastSlotBound)
		}
	}
}

func TestRoomNumbers(t *testing.T) {
	rooms := RoomNumbers()
	require.Len(t, rooms, 80)

	seen := make(map[string]bool, len(rooms))
	for _, room := range rooms {
		assert.False(t, seen[room], "room %q duplicated", room)
		seen[room] = true
	}

	assert.Equal(t, "A-101", rooms[0])
	assert.Contains(t, rooms, "B-203")
	assert.Equal(t, "D-405", rooms[len(rooms)-1])
}

func TestDaySlotTokens(t *testing.T) {
	tokens := DaySlotTokens()
	assert.Equal(t, []string{"ST", "SR", "SM", "MT", "MW", "MR", "TW", "TR", "WR"}, tokens)
	for _, token := range tokens {
		assert.Len(t, DaysForSlot(token), 2)
	}
}
