package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"timetablegen/internal/domain"
)

func TestBuildSlotIndex(t *testing.T) {
	t.Run("drops recess entries and keeps source order", func(t *testing.T) {
		// Arrange: tuesday's entries are deliberately listed out of clock
		// order; the source order must win
		common := domain.CommonConfig{Hours: []domain.HourRow{
			lessonRow(domain.Monday, 8),
			recessRow(domain.Monday, 9),
			lessonRow(domain.Monday, 10),
			lessonRow(domain.Tuesday, 12),
			lessonRow(domain.Tuesday, 8),
		}}

		// Act
		index := BuildSlotIndex(common)

		// Assert
		assert.Equal(t, []TimeSlot{
			{Day: domain.Monday, Ordinal: 0},
			{Day: domain.Monday, Ordinal: 1},
			{Day: domain.Tuesday, Ordinal: 0},
			{Day: domain.Tuesday, Ordinal: 1},
		}, index.All)

		assert.Len(t, index.ByDay[domain.Monday], 2)
		assert.Len(t, index.ByDay[domain.Tuesday], 2)
		assert.Empty(t, index.ByDay[domain.Wednesday])
	})

	t.Run("ordinals are contiguous per day from zero", func(t *testing.T) {
		common := domain.CommonConfig{Hours: []domain.HourRow{
			lessonRow(domain.Monday, 8),
			lessonRow(domain.Tuesday, 8),
			lessonRow(domain.Monday, 9),
			lessonRow(domain.Tuesday, 9),
			lessonRow(domain.Monday, 10),
		}}

		index := BuildSlotIndex(common)

		for _, day := range []domain.Day{domain.Monday, domain.Tuesday} {
			for i, slot := range index.ByDay[day] {
				assert.Equal(t, i, slot.Ordinal)
				assert.Equal(t, day, slot.Day)
			}
		}
	})
}

func TestSlotIndexResolve(t *testing.T) {
	common := domain.CommonConfig{Hours: []domain.HourRow{
		lessonRow(domain.Monday, 8),
		lessonRow(domain.Monday, 9),
	}}
	index := BuildSlotIndex(common)

	slot, ok := index.Resolve(domain.Monday, 2)
	assert.True(t, ok)
	assert.Equal(t, TimeSlot{Day: domain.Monday, Ordinal: 1}, slot)

	_, ok = index.Resolve(domain.Monday, 3)
	assert.False(t, ok)

	_, ok = index.Resolve(domain.Monday, 0)
	assert.False(t, ok)

	_, ok = index.Resolve(domain.Friday, 1)
	assert.False(t, ok)
}
