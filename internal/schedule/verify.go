package schedule

import (
	"slices"

	"github.com/samber/lo"

	"timetablegen/internal/domain"
)

// Verify checks a decoded schedule against every hard constraint: exact
// required-hours counts, teacher/room/class exclusivity, qualification,
// availability and fixed-hour reservations. It is independent of the
// constraint model on purpose, so a builder defect cannot hide behind a
// matching decoder.
func Verify(records []ScheduleRecord, dataset domain.Dataset, config Config) bool {
	slots := BuildSlotIndex(dataset.Common)

	teachersByName := lo.SliceToMap(dataset.Teachers, func(teacher domain.Teacher) (string, domain.Teacher) {
		return teacher.Name, teacher
	})
	subjectsByName := lo.SliceToMap(dataset.Subjects, func(subject domain.Subject) (string, domain.Subject) {
		return subject.Name, subject
	})
	roomsByNumber := lo.SliceToMap(dataset.Classrooms, func(classroom domain.Classroom) (int, domain.Classroom) {
		return classroom.Number, classroom
	})

	type occupation struct {
		day   domain.Day
		index int
	}
	teacherAssistance := make(map[string]map[occupation]bool)
	roomAssistance := make(map[int]map[occupation]bool)
	classAssistance := make(map[string]map[occupation]bool)
	scheduledHours := make(map[[2]string]int) // (class, subject abbreviation) -> count

	reserved := make(map[occupation]map[int]bool) // slot -> reserved room numbers
	sentinels := make(map[occupation]map[int]bool)
	for _, fixedHour := range dataset.FixedHours {
		timeSlot, ok := slots.Resolve(fixedHour.Day, fixedHour.Hour)
		if !ok {
			continue
		}
		at := occupation{day: timeSlot.Day, index: timeSlot.Ordinal}
		if reserved[at] == nil {
			reserved[at] = make(map[int]bool)
		}
		reserved[at][fixedHour.ClassroomID] = true
	}

	for _, record := range records {
		at := occupation{day: record.Day, index: record.LessonIndex}

		if record.Teacher == FixedActivityTeacher {
			if sentinels[at] == nil {
				sentinels[at] = make(map[int]bool)
			}
			sentinels[at][record.Classroom] = true
			continue
		}

		teacher, teacherOk := teachersByName[record.Teacher]
		subject, subjectOk := subjectsByName[record.Subject]
		room, roomOk := roomsByNumber[record.Classroom]
		if !teacherOk || !subjectOk || !roomOk {
			return false
		}

		// Check that:
		// - the teacher is qualified for the subject
		// - the teacher is available at the slot (1-based index)
		// - no teacher, room or class hosts two lessons in one slot
		// - no regular lesson sits on a fixed-hour reservation
		// - when configured, the room covers the subject's required tags
		if !slices.Contains(teacher.Subjects, subject.Abbreviation) {
			return false
		}
		if !slices.Contains(teacher.Availability[record.Day], record.LessonIndex+1) {
			return false
		}
		if teacherAssistance[record.Teacher][at] || roomAssistance[record.Classroom][at] {
			return false
		}
		if !config.SubjectOnly && classAssistance[record.Class][at] {
			return false
		}
		if reserved[at][record.Classroom] {
			return false
		}
		if config.FixedHourScope == BlockWholeSlot && len(reserved[at]) > 0 {
			return false
		}
		if config.MatchSpecialties && !covers(room.Specialties, subject.RequiredSpecialties) {
			return false
		}

		if teacherAssistance[record.Teacher] == nil {
			teacherAssistance[record.Teacher] = make(map[occupation]bool)
		}
		teacherAssistance[record.Teacher][at] = true
		if roomAssistance[record.Classroom] == nil {
			roomAssistance[record.Classroom] = make(map[occupation]bool)
		}
		roomAssistance[record.Classroom][at] = true
		if classAssistance[record.Class] == nil {
			classAssistance[record.Class] = make(map[occupation]bool)
		}
		classAssistance[record.Class][at] = true

		scheduledHours[[2]string{record.Class, subject.Abbreviation}]++
	}

	// Every resolvable fixed hour must appear verbatim as a sentinel record.
	for at, rooms := range reserved {
		for room := range rooms {
			if !sentinels[at][room] {
				return false
			}
		}
	}

	// Scheduled hours must equal the required hours exactly.
	if config.SubjectOnly {
		return !lo.SomeBy(dataset.Subjects, func(subject domain.Subject) bool {
			return scheduledHours[[2]string{AllClassesLabel, subject.Abbreviation}] != subject.RequiredHours
		})
	}

	return !lo.SomeBy(dataset.Classes, func(class domain.SchoolClass) bool {
		return lo.SomeBy(class.CoreSubjects, func(abbreviation string) bool {
			subject, _ := dataset.SubjectByAbbreviation(abbreviation)
			return scheduledHours[[2]string{class.Name, abbreviation}] != subject.RequiredHours
		})
	})
}
