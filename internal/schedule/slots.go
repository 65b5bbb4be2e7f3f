package schedule

import "timetablegen/internal/domain"

// TimeSlot identifies one lesson period: a day and the position among that
// day's lesson entries (0-based). Availability checks interpret the position
// as Ordinal+1, since availability lists are 1-based.
type TimeSlot struct {
	Day     domain.Day
	Ordinal int
}

// SlotIndex holds the lesson slots derived from the school's daily hour
// structure. Recess entries are dropped; the remaining order follows the
// source list exactly and is never re-sorted by start time.
type SlotIndex struct {
	All   []TimeSlot
	ByDay map[domain.Day][]TimeSlot
}

func BuildSlotIndex(common domain.CommonConfig) SlotIndex {
	index := SlotIndex{ByDay: make(map[domain.Day][]TimeSlot)}

	for _, row := range common.Hours {
		if row.Kind != domain.HourLesson {
			continue
		}
		slot := TimeSlot{Day: row.Day, Ordinal: len(index.ByDay[row.Day])}
		index.ByDay[row.Day] = append(index.ByDay[row.Day], slot)
		index.All = append(index.All, slot)
	}

	return index
}

// Resolve maps a 1-based lesson index onto the day's TimeSlot. ok is false
// when the day has fewer lesson slots than the index requires.
func (index SlotIndex) Resolve(day domain.Day, hour int) (TimeSlot, bool) {
	slots := index.ByDay[day]
	if hour < 1 || hour > len(slots) {
		return TimeSlot{}, false
	}
	return slots[hour-1], true
}
