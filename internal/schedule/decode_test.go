package schedule

import (
	"testing"

	. "github.com/onsi/gomega"

	"timetablegen/internal/domain"
	"timetablegen/internal/solve"
)

func TestDecode(t *testing.T) {
	g := NewWithT(t)

	// Arrange: a solved valuation with exactly one true assignment
	dataset := tinyDataset()
	dataset.FixedHours = []domain.FixedHour{{Day: domain.Monday, Hour: 1, ClassroomID: 1, Name: "Assembly"}}
	slots := BuildSlotIndex(dataset.Common)

	model := solve.NewModel()
	s := newSpace(model, dataset, slots, false)

	values := make([]bool, model.NumVars())
	values[s.index(0, 0, 0, 1, 0)] = true // Class_A, Mathematics, Teacher_0, Monday slot 1, room 1
	result := solve.Result{Status: solve.Optimal, Values: values}

	// Act
	records := decode(result, s, dataset, slots, false)

	// Assert
	g.Expect(records).To(HaveLen(2))
	g.Expect(records).To(ContainElement(ScheduleRecord{
		Subject:     "Mathematics",
		Teacher:     "Teacher_0",
		Class:       "Class_A",
		Day:         domain.Monday,
		LessonIndex: 1,
		Classroom:   1,
	}))
	g.Expect(records).To(ContainElement(ScheduleRecord{
		Subject:     "Assembly",
		Teacher:     FixedActivityTeacher,
		Class:       AllClassesLabel,
		Day:         domain.Monday,
		LessonIndex: 0,
		Classroom:   1,
	}))
}

func TestDecodeWithoutSolution(t *testing.T) {
	g := NewWithT(t)

	// Arrange: INFEASIBLE carries no valuations, fixed hours still decode
	dataset := tinyDataset()
	dataset.FixedHours = []domain.FixedHour{
		{Day: domain.Monday, Hour: 2, ClassroomID: 1, Name: "Assembly"},
		{Day: domain.Friday, Hour: 1, ClassroomID: 1, Name: "Unresolvable"}, // no friday slots
	}
	slots := BuildSlotIndex(dataset.Common)

	model := solve.NewModel()
	s := newSpace(model, dataset, slots, false)

	// Act
	records := decode(solve.Result{Status: solve.Infeasible}, s, dataset, slots, false)

	// Assert: only the resolvable reservation shows up
	g.Expect(records).To(HaveLen(1))
	g.Expect(records[0].Subject).To(Equal("Assembly"))
	g.Expect(records[0].Teacher).To(Equal(FixedActivityTeacher))
	g.Expect(records[0].LessonIndex).To(Equal(1))
}

func TestDecodeSubjectOnly(t *testing.T) {
	g := NewWithT(t)

	dataset := tinyDataset()
	slots := BuildSlotIndex(dataset.Common)

	model := solve.NewModel()
	s := newSpace(model, dataset, slots, true)

	values := make([]bool, model.NumVars())
	values[s.index(0, 0, 0, 0, 0)] = true
	records := decode(solve.Result{Status: solve.Feasible, Values: values}, s, dataset, slots, true)

	g.Expect(records).To(HaveLen(1))
	g.Expect(records[0].Class).To(Equal(AllClassesLabel))
}
