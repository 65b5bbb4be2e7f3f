package schedule

import (
	"slices"

	"github.com/samber/lo"

	"timetablegen/internal/domain"
	"timetablegen/internal/solve"
)

// builder assembles the hard-constraint model over the variable space.
// Construction is single-threaded and deterministic; iteration order only
// affects bookkeeping, never the satisfiable set.
type builder struct {
	model   *solve.Model
	space   *space
	dataset domain.Dataset
	slots   SlotIndex
	config  Config

	qualifications []map[string]bool // per teacher, canonical subject abbreviations
	core           []map[string]bool // per class
	slotPosition   map[TimeSlot]int  // TimeSlot -> position in slots.All
	roomPosition   map[int]int       // classroom number -> room dimension index
}

func newBuilder(model *solve.Model, dataset domain.Dataset, slots SlotIndex, config Config) *builder {
	b := &builder{
		model:   model,
		space:   newSpace(model, dataset, slots, config.SubjectOnly),
		dataset: dataset,
		slots:   slots,
		config:  config,
	}

	b.qualifications = lo.Map(dataset.Teachers, func(teacher domain.Teacher, _ int) map[string]bool {
		return lo.SliceToMap(teacher.Subjects, func(subject string) (string, bool) { return subject, true })
	})
	b.core = lo.Map(dataset.Classes, func(class domain.SchoolClass, _ int) map[string]bool {
		return lo.SliceToMap(class.CoreSubjects, func(subject string) (string, bool) { return subject, true })
	})
	b.slotPosition = make(map[TimeSlot]int, len(slots.All))
	for position, slot := range slots.All {
		b.slotPosition[slot] = position
	}
	b.roomPosition = make(map[int]int, len(dataset.Classrooms))
	for position, classroom := range dataset.Classrooms {
		b.roomPosition[classroom.Number] = position
	}

	return b
}

func (b *builder) addHardConstraints() {
	b.addQualificationConstraints()
	b.addRequiredHoursConstraints()
	if !b.config.SubjectOnly {
		b.addCoreSubjectConstraints()
		b.addClassExclusivityConstraints()
	}
	b.addTeacherExclusivityConstraints()
	b.addRoomExclusivityConstraints()
	b.addAvailabilityConstraints()
	b.addFixedHourConstraints()
	if b.config.MatchSpecialties {
		b.addSpecialtyConstraints()
	}
}

// Teachers may only be assigned subjects they are qualified for.
func (b *builder) addQualificationConstraints() {
	for teacher := range b.space.teachers {
		for subject := range b.space.subjects {
			if b.qualifications[teacher][b.dataset.Subjects[subject].Abbreviation] {
				continue
			}
			for class := range b.space.classes {
				b.model.AddEquality(b.sumOverSlotsAndRooms(class, subject, teacher), 0)
			}
		}
	}
}

// Every (class, core-subject) pair receives exactly the subject's required
// weekly hours. In the subject-only variant the equality binds per subject.
func (b *builder) addRequiredHoursConstraints() {
	if b.config.SubjectOnly {
		for subject := range b.space.subjects {
			b.model.AddEquality(b.sumOverTeachersSlotsAndRooms(0, subject), int64(b.dataset.Subjects[subject].RequiredHours))
		}
		return
	}

	for class := range b.space.classes {
		for _, abbreviation := range b.dataset.Classes[class].CoreSubjects {
			subject := slices.IndexFunc(b.dataset.Subjects, func(s domain.Subject) bool {
				return s.Abbreviation == abbreviation
			})
			b.model.AddEquality(b.sumOverTeachersSlotsAndRooms(class, subject), int64(b.dataset.Subjects[subject].RequiredHours))
		}
	}
}

// Classes only receive subjects from their core-subject set.
func (b *builder) addCoreSubjectConstraints() {
	for class := range b.space.classes {
		for subject := range b.space.subjects {
			if b.core[class][b.dataset.Subjects[subject].Abbreviation] {
				continue
			}
			for teacher := range b.space.teachers {
				b.model.AddEquality(b.sumOverSlotsAndRooms(class, subject, teacher), 0)
			}
		}
	}
}

// A teacher hosts at most one lesson per time slot.
func (b *builder) addTeacherExclusivityConstraints() {
	for teacher := range b.space.teachers {
		for slot := range b.space.slots {
			var sum solve.LinearExpr
			for class := range b.space.classes {
				for subject := range b.space.subjects {
					for room := range b.space.rooms {
						sum.Add(b.space.at(class, subject, teacher, slot, room))
					}
				}
			}
			b.model.AddAtMost(sum, 1)
		}
	}
}

// A room hosts at most one lesson per time slot.
func (b *builder) addRoomExclusivityConstraints() {
	for room := range b.space.rooms {
		for slot := range b.space.slots {
			var sum solve.LinearExpr
			for class := range b.space.classes {
				for subject := range b.space.subjects {
					for teacher := range b.space.teachers {
						sum.Add(b.space.at(class, subject, teacher, slot, room))
					}
				}
			}
			b.model.AddAtMost(sum, 1)
		}
	}
}

// A class attends at most one lesson per time slot.
func (b *builder) addClassExclusivityConstraints() {
	for class := range b.space.classes {
		for slot := range b.space.slots {
			var sum solve.LinearExpr
			for subject := range b.space.subjects {
				for teacher := range b.space.teachers {
					for room := range b.space.rooms {
						sum.Add(b.space.at(class, subject, teacher, slot, room))
					}
				}
			}
			b.model.AddAtMost(sum, 1)
		}
	}
}

// A teacher may only be assigned slots present in the availability map.
// A day without an entry blocks every slot of that day; otherwise the slot's
// 1-based lesson index must be among the day's permitted indices.
func (b *builder) addAvailabilityConstraints() {
	for teacher := range b.space.teachers {
		availability := b.dataset.Teachers[teacher].Availability
		for slot, timeSlot := range b.slots.All {
			permitted, present := availability[timeSlot.Day]
			if present && slices.Contains(permitted, timeSlot.Ordinal+1) {
				continue
			}
			var sum solve.LinearExpr
			for class := range b.space.classes {
				for subject := range b.space.subjects {
					for room := range b.space.rooms {
						sum.Add(b.space.at(class, subject, teacher, slot, room))
					}
				}
			}
			b.model.AddEquality(sum, 0)
		}
	}
}

// Fixed hours reserve a room at a slot ahead of the search. An unresolvable
// reservation (lesson index beyond the day's slots) blocks nothing. The
// blocking scope is an explicit configuration choice: only the named room, or
// the whole slot school-wide.
func (b *builder) addFixedHourConstraints() {
	for _, fixedHour := range b.dataset.FixedHours {
		timeSlot, ok := b.slots.Resolve(fixedHour.Day, fixedHour.Hour)
		if !ok {
			continue
		}
		slot := b.slotPosition[timeSlot]

		rooms := []int{b.roomPosition[fixedHour.ClassroomID]}
		if b.config.FixedHourScope == BlockWholeSlot {
			rooms = lo.Range(b.space.rooms)
		}

		for _, room := range rooms {
			var sum solve.LinearExpr
			for class := range b.space.classes {
				for subject := range b.space.subjects {
					for teacher := range b.space.teachers {
						sum.Add(b.space.at(class, subject, teacher, slot, room))
					}
				}
			}
			b.model.AddEquality(sum, 0)
		}
	}
}

// A subject requiring classroom capabilities may only be scheduled into
// rooms whose specialty set covers them.
func (b *builder) addSpecialtyConstraints() {
	for subject := range b.space.subjects {
		required := b.dataset.Subjects[subject].RequiredSpecialties
		if len(required) == 0 {
			continue
		}
		for room := range b.space.rooms {
			if covers(b.dataset.Classrooms[room].Specialties, required) {
				continue
			}
			var sum solve.LinearExpr
			for class := range b.space.classes {
				for teacher := range b.space.teachers {
					for slot := range b.space.slots {
						sum.Add(b.space.at(class, subject, teacher, slot, room))
					}
				}
			}
			b.model.AddEquality(sum, 0)
		}
	}
}

func covers(specialties []domain.Specialty, required []domain.Specialty) bool {
	return lo.Every(specialties, required)
}

func (b *builder) sumOverSlotsAndRooms(class, subject, teacher int) solve.LinearExpr {
	var sum solve.LinearExpr
	for slot := range b.space.slots {
		for room := range b.space.rooms {
			sum.Add(b.space.at(class, subject, teacher, slot, room))
		}
	}
	return sum
}

func (b *builder) sumOverTeachersSlotsAndRooms(class, subject int) solve.LinearExpr {
	var sum solve.LinearExpr
	for teacher := range b.space.teachers {
		for slot := range b.space.slots {
			for room := range b.space.rooms {
				sum.Add(b.space.at(class, subject, teacher, slot, room))
			}
		}
	}
	return sum
}
