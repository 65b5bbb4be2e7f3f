package schedule

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"timetablegen/internal/solve"
)

func TestIndexAndAttributesRoundTrip(t *testing.T) {
	for range 10 {
		// Arrange
		classes := rand.Intn(8) + 1
		subjects := rand.Intn(10) + 1
		teachers := rand.Intn(10) + 1
		slots := rand.Intn(20) + 1
		rooms := rand.Intn(8) + 1

		// Act
		indexer := newTupleIndexer(classes, subjects, teachers, slots, rooms)

		indices := make([]int, 0, indexer.size())
		for class := range classes {
			for subject := range subjects {
				for teacher := range teachers {
					for slot := range slots {
						for room := range rooms {
							indices = append(indices, indexer.index(class, subject, teacher, slot, room))
						}
					}
				}
			}
		}

		// Assert
		for _, index := range indices {
			class, subject, teacher, slot, room := indexer.attributes(index)
			assert.Equal(t, index, indexer.index(class, subject, teacher, slot, room))
		}
	}
}

func TestIndexIsContiguous(t *testing.T) {
	// Arrange
	scenarios := [][5]int{
		{4, 8, 6, 20, 5},
		{1, 3, 2, 5, 1},
		{2, 2, 2, 2, 2},
		{1, 1, 1, 1, 1},
		{3, 10, 7, 35, 4},
	}

	for _, scenario := range scenarios {
		indexer := newTupleIndexer(scenario[0], scenario[1], scenario[2], scenario[3], scenario[4])

		// Act
		indices := make([]int, 0, indexer.size())
		for class := range scenario[0] {
			for subject := range scenario[1] {
				for teacher := range scenario[2] {
					for slot := range scenario[3] {
						for room := range scenario[4] {
							indices = append(indices, indexer.index(class, subject, teacher, slot, room))
						}
					}
				}
			}
		}

		slices.Sort(indices)

		// Assert: every flat position is used exactly once
		assert.Len(t, indices, indexer.size())
		for i, index := range indices {
			assert.Equal(t, i, index)
		}
	}
}

func TestSpaceAllocation(t *testing.T) {
	// Arrange
	dataset := tinyDataset()
	slots := BuildSlotIndex(dataset.Common)

	t.Run("class-aware", func(t *testing.T) {
		model := solve.NewModel()
		s := newSpace(model, dataset, slots, false)

		assert.Equal(t, len(dataset.Classes)*len(dataset.Subjects)*len(dataset.Teachers)*len(slots.All)*len(dataset.Classrooms), model.NumVars())
		assert.Equal(t, model.NumVars(), len(s.vars))
	})

	t.Run("subject-only collapses the class dimension", func(t *testing.T) {
		model := solve.NewModel()
		s := newSpace(model, dataset, slots, true)

		assert.Equal(t, 1, s.classes)
		assert.Equal(t, len(dataset.Subjects)*len(dataset.Teachers)*len(slots.All)*len(dataset.Classrooms), model.NumVars())
	})
}
