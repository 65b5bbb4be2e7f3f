package schedule

import (
	"fmt"

	"timetablegen/internal/domain"
	"timetablegen/internal/solve"
)

// tupleIndexer gives a unique flat position to each combination of
// assignment attributes and vice versa.
type tupleIndexer struct {
	classes  int
	subjects int
	teachers int
	slots    int
	rooms    int
}

func newTupleIndexer(classes, subjects, teachers, slots, rooms int) tupleIndexer {
	return tupleIndexer{
		classes:  classes,
		subjects: subjects,
		teachers: teachers,
		slots:    slots,
		rooms:    rooms,
	}
}

func (i tupleIndexer) size() int {
	return i.classes * i.subjects * i.teachers * i.slots * i.rooms
}

func (i tupleIndexer) index(class, subject, teacher, slot, room int) int {
	return class + i.classes*(subject) + i.classes*i.subjects*(teacher) + i.classes*i.subjects*i.teachers*(slot) + i.classes*i.subjects*i.teachers*i.slots*(room)
}

func (i tupleIndexer) attributes(index int) (class, subject, teacher, slot, room int) {
	class = index % i.classes
	index = index / i.classes

	subject = index % i.subjects
	index = index / i.subjects

	teacher = index % i.teachers
	index = index / i.teachers

	slot = index % i.slots
	index = index / i.slots

	room = index % i.rooms

	return class, subject, teacher, slot, room
}

// space allocates one boolean decision variable per assignment tuple. In the
// subject-only variant the class dimension collapses to a single sentinel
// position.
type space struct {
	tupleIndexer
	vars []solve.Var
}

func newSpace(model *solve.Model, dataset domain.Dataset, slots SlotIndex, subjectOnly bool) *space {
	classes := len(dataset.Classes)
	if subjectOnly {
		classes = 1
	}

	s := &space{
		tupleIndexer: newTupleIndexer(classes, len(dataset.Subjects), len(dataset.Teachers), len(slots.All), len(dataset.Classrooms)),
	}

	s.vars = make([]solve.Var, s.size())
	for index := range s.vars {
		class, subject, teacher, slot, room := s.attributes(index)
		s.vars[index] = model.NewBool(fmt.Sprintf("x_%v_%v_%v_%v_%v_%v",
			class,
			dataset.Subjects[subject].Abbreviation,
			dataset.Teachers[teacher].Abbreviation,
			slots.All[slot].Day,
			slots.All[slot].Ordinal,
			dataset.Classrooms[room].Number,
		))
	}

	return s
}

func (s *space) at(class, subject, teacher, slot, room int) solve.Var {
	return s.vars[s.index(class, subject, teacher, slot, room)]
}
