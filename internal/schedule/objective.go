package schedule

import (
	"fmt"

	"timetablegen/internal/domain"
	"timetablegen/internal/solve"
)

// addGapObjective installs the "minimize odd hours for students" objective:
// a penalty for every slot triple (i, i+1, i+2) of a day where a class is
// scheduled at i and i+2 but free at i+1. This is a heuristic proxy for
// isolated free periods; it does not count wider gaps nor gaps at the edges
// of the day.
func (b *builder) addGapObjective() {
	var penalties []solve.Var

	for class := range b.space.classes {
		for _, day := range domain.Days {
			daySlots := b.slots.ByDay[day]
			if len(daySlots) <= 2 {
				continue
			}

			// occupied[i] == 1 exactly when the class has any lesson in the
			// day's i-th slot. Two inequalities instead of an equality: the
			// class-agnostic variant allows more than one lesson per slot.
			limit := int64(b.space.subjects * b.space.teachers * b.space.rooms)
			occupied := make([]solve.Var, len(daySlots))
			for i, timeSlot := range daySlots {
				occupied[i] = b.model.NewBool(fmt.Sprintf("occupied_%v_%v_%v", class, day, i))

				atLeast := b.classSlotSum(class, b.slotPosition[timeSlot])
				atLeast.AddTerm(occupied[i], -1)
				b.model.AddLinear(atLeast, 0, solve.NoUpperBound)

				atMost := b.classSlotSum(class, b.slotPosition[timeSlot])
				atMost.AddTerm(occupied[i], -limit)
				b.model.AddLinear(atMost, solve.NoLowerBound, 0)
			}

			for i := 0; i+2 < len(daySlots); i++ {
				penalty := b.model.NewBool(fmt.Sprintf("gap_%v_%v_%v", class, day, i))
				b.model.AndEquality(penalty,
					solve.Pos(occupied[i]),
					solve.Not(occupied[i+1]),
					solve.Pos(occupied[i+2]),
				)
				penalties = append(penalties, penalty)
			}
		}
	}

	if len(penalties) > 0 {
		b.model.Minimize(solve.Sum(penalties...))
	}
}

// classSlotSum is the sum over subject, teacher and room of the assignment
// variables at one (class, slot).
func (b *builder) classSlotSum(class, slot int) solve.LinearExpr {
	var sum solve.LinearExpr
	for subject := range b.space.subjects {
		for teacher := range b.space.teachers {
			for room := range b.space.rooms {
				sum.Add(b.space.at(class, subject, teacher, slot, room))
			}
		}
	}
	return sum
}
