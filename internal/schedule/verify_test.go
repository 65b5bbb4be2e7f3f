package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timetablegen/internal/domain"
)

func validRecords() []ScheduleRecord {
	return []ScheduleRecord{
		{Subject: "Mathematics", Teacher: "Teacher_0", Class: "Class_A", Day: domain.Monday, LessonIndex: 0, Classroom: 1},
		{Subject: "Mathematics", Teacher: "Teacher_0", Class: "Class_A", Day: domain.Monday, LessonIndex: 1, Classroom: 1},
	}
}

func TestVerifyAcceptsConsistentSchedule(t *testing.T) {
	assert.True(t, Verify(validRecords(), tinyDataset(), Config{}))
}

func TestVerifyRejections(t *testing.T) {
	t.Run("wrong hour count", func(t *testing.T) {
		records := validRecords()[:1]
		assert.False(t, Verify(records, tinyDataset(), Config{}))
	})

	t.Run("double-booked teacher", func(t *testing.T) {
		records := validRecords()
		records[1].LessonIndex = 0
		records[1].Classroom = 2

		dataset := tinyDataset()
		dataset.Classrooms = append(dataset.Classrooms, domain.Classroom{Number: 2, Capacity: 30})
		assert.False(t, Verify(records, dataset, Config{}))
	})

	t.Run("double-booked room", func(t *testing.T) {
		dataset := tinyDataset()
		dataset.Teachers = append(dataset.Teachers, domain.Teacher{
			Name:         "Teacher_1",
			Abbreviation: "T2",
			Availability: map[domain.Day][]int{domain.Monday: {1, 2}},
			Subjects:     []string{"MAT"},
		})
		dataset.Classes = append(dataset.Classes, domain.SchoolClass{
			Name: "Class_B", CoreSubjects: []string{"MAT"},
		})

		records := validRecords()
		records[1] = ScheduleRecord{
			Subject: "Mathematics", Teacher: "Teacher_1", Class: "Class_B",
			Day: domain.Monday, LessonIndex: 0, Classroom: 1,
		}
		assert.False(t, Verify(records, dataset, Config{}))
	})

	t.Run("unqualified teacher", func(t *testing.T) {
		dataset := tinyDataset()
		dataset.Teachers[0].Subjects = nil
		assert.False(t, Verify(validRecords(), dataset, Config{}))
	})

	t.Run("teacher unavailable at the slot", func(t *testing.T) {
		dataset := tinyDataset()
		dataset.Teachers[0].Availability = map[domain.Day][]int{domain.Monday: {1}}
		assert.False(t, Verify(validRecords(), dataset, Config{}))
	})

	t.Run("teacher with no entry for the day", func(t *testing.T) {
		dataset := tinyDataset()
		dataset.Teachers[0].Availability = map[domain.Day][]int{domain.Tuesday: {1, 2}}
		assert.False(t, Verify(validRecords(), dataset, Config{}))
	})

	t.Run("lesson sitting on a reservation", func(t *testing.T) {
		dataset := tinyDataset()
		dataset.FixedHours = []domain.FixedHour{{Day: domain.Monday, Hour: 1, ClassroomID: 1, Name: "Assembly"}}

		records := append(validRecords(), ScheduleRecord{
			Subject: "Assembly", Teacher: FixedActivityTeacher, Class: AllClassesLabel,
			Day: domain.Monday, LessonIndex: 0, Classroom: 1,
		})
		assert.False(t, Verify(records, dataset, Config{}))
	})

	t.Run("missing fixed-hour sentinel", func(t *testing.T) {
		dataset := tinyDataset()
		dataset.Common.Hours = append(dataset.Common.Hours, lessonRow(domain.Monday, 11))
		dataset.Teachers[0].Availability = map[domain.Day][]int{domain.Monday: {1, 2}}
		dataset.FixedHours = []domain.FixedHour{{Day: domain.Monday, Hour: 3, ClassroomID: 1, Name: "Assembly"}}

		// The schedule itself avoids the reservation but never reports it
		assert.False(t, Verify(validRecords(), dataset, Config{}))
	})

	t.Run("unknown teacher name", func(t *testing.T) {
		records := validRecords()
		records[0].Teacher = "Nobody"
		assert.False(t, Verify(records, tinyDataset(), Config{}))
	})

	t.Run("room without required specialty", func(t *testing.T) {
		dataset := tinyDataset()
		dataset.Subjects[0].RequiredSpecialties = []domain.Specialty{domain.Science}

		assert.True(t, Verify(validRecords(), dataset, Config{}))
		assert.False(t, Verify(validRecords(), dataset, Config{MatchSpecialties: true}))
	})
}
