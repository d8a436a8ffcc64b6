package schedule

import "fmt"

// Catalog boundaries for generated teaching windows.
const (
	firstSlotStart = 8*60 + 30 // 08:30
	lastSlotBound  = 18 * 60   // 18:00
	slotGap        = 10        // minutes between consecutive windows
	lectureLength  = 90        // minutes per lecture window
)

// DaySlotTokens lists the day-pair tokens offered when scheduling a section.
func DaySlotTokens() []string {
	tokens := make([]string, 0, len(dayPairs))
	// Stable order for form rendering.
	for _, token := range []string{"ST", "SR", "SM", "MT", "MW", "MR", "TW", "TR", "WR"} {
		if _, ok := dayPairs[token]; ok {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// ClassTimeSlots enumerates the lecture windows available to a new section:
// 90-minute windows from 08:30 with a 10-minute gap between them. A window is
// emitted as long as its start falls before 18:00, even if it runs past it.
func ClassTimeSlots() []string {
	var slots []string
	for start := firstSlotStart; start < lastSlotBound; start += lectureLength + slotGap {
		slot := TimeSlot{Start: start, End: start + lectureLength}
		slots = append(slots, slot.String())
	}
	return slots
}

// LabTimeSlots enumerates lab windows using the same cadence as lectures but
// with a credit-dependent session length: 180 minutes for 1.5-credit labs,
// 120 minutes otherwise. Unlike lectures, a lab window is only offered when it
// ends strictly before 18:00.
func LabTimeSlots(credits float64) []string {
	length := 120
	if credits == 1.5 {
		length = 180
	}

	var slots []string
	for start := firstSlotStart; start+length < lastSlotBound; start += length + slotGap {
		slot := TimeSlot{Start: start, End: start + length}
		slots = append(slots, slot.String())
	}
	return slots
}

// RoomNumbers enumerates every teaching room label: buildings A-D, floors 1-4,
// five rooms per floor, formatted like "A-101" ("{building}-{floor}0{room}").
func RoomNumbers() []string {
	rooms := make([]string, 0, 4*4*5)
	for building := 'A'; building <= 'D'; building++ {
		for floor := 1; floor <= 4; floor++ {
			for room := 1; room <= 5; room++ {
				rooms = append(rooms, fmt.Sprintf("%c-%d0%d", building, floor, room))
			}
		}
	}
	return rooms
}
