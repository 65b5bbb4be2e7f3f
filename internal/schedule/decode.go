package schedule

import (
	"timetablegen/internal/domain"
	"timetablegen/internal/solve"
)

// Sentinel field values for fixed-hour records and the subject-only variant.
const (
	FixedActivityTeacher = "Fixed Activity"
	AllClassesLabel      = "All Classes"
)

// ScheduleRecord is one scheduled lesson of the output document. LessonIndex
// is 0-based. Records have no guaranteed relative order; callers re-sort for
// presentation.
type ScheduleRecord struct {
	Subject     string     `json:"subject"`
	Teacher     string     `json:"teacher"`
	Class       string     `json:"class"`
	Day         domain.Day `json:"day"`
	LessonIndex int        `json:"lesson_index"`
	Classroom   int        `json:"classroom"`
}

// decode emits one record per assignment variable valued true, then appends
// the fixed-hour reservations. Fixed hours are always present regardless of
// solver status since they are reservations, not solved variables.
func decode(result solve.Result, s *space, dataset domain.Dataset, slots SlotIndex, subjectOnly bool) []ScheduleRecord {
	records := make([]ScheduleRecord, 0)

	if result.Status.Solved() {
		for index, variable := range s.vars {
			if !result.Value(variable) {
				continue
			}

			class, subject, teacher, slot, room := s.attributes(index)
			className := AllClassesLabel
			if !subjectOnly {
				className = dataset.Classes[class].Name
			}

			records = append(records, ScheduleRecord{
				Subject:     dataset.Subjects[subject].Name,
				Teacher:     dataset.Teachers[teacher].Name,
				Class:       className,
				Day:         slots.All[slot].Day,
				LessonIndex: slots.All[slot].Ordinal,
				Classroom:   dataset.Classrooms[room].Number,
			})
		}
	}

	return append(records, fixedHourRecords(dataset, slots)...)
}

// fixedHourRecords builds one synthetic record per resolvable reservation,
// carrying the fixed hour's own label, day, index and room under sentinel
// teacher and class names.
func fixedHourRecords(dataset domain.Dataset, slots SlotIndex) []ScheduleRecord {
	records := make([]ScheduleRecord, 0, len(dataset.FixedHours))

	for _, fixedHour := range dataset.FixedHours {
		timeSlot, ok := slots.Resolve(fixedHour.Day, fixedHour.Hour)
		if !ok {
			continue
		}

		records = append(records, ScheduleRecord{
			Subject:     fixedHour.Name,
			Teacher:     FixedActivityTeacher,
			Class:       AllClassesLabel,
			Day:         timeSlot.Day,
			LessonIndex: timeSlot.Ordinal,
			Classroom:   fixedHour.ClassroomID,
		})
	}

	return records
}
