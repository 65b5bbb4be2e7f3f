package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	t.Run("accepts any casing", func(t *testing.T) {
		for _, value := range []string{"monday", "Monday", "MONDAY"} {
			day, err := ParseDay(value)
			assert.Nil(t, err)
			assert.Equal(t, Monday, day)
		}
	})

	t.Run("rejects unknown tags", func(t *testing.T) {
		_, err := ParseDay("moonday")

		var unknown UnknownTagError
		assert.True(t, errors.As(err, &unknown))
		assert.Equal(t, "day", unknown.Kind)
		assert.Equal(t, "moonday", unknown.Value)
	})
}

func TestParseHourKind(t *testing.T) {
	kind, err := ParseHourKind("LESSON")
	assert.Nil(t, err)
	assert.Equal(t, HourLesson, kind)

	kind, err = ParseHourKind("recess")
	assert.Nil(t, err)
	assert.Equal(t, HourRecess, kind)

	_, err = ParseHourKind("break")
	assert.NotNil(t, err)
}

func TestParseGenerationMode(t *testing.T) {
	modes := []string{
		"early_start_early_end",
		"late_start_late_end",
		"balanced",
		"least_odd_hours_students",
		"least_odd_hours_teachers",
	}

	for _, value := range modes {
		mode, err := ParseGenerationMode(value)
		assert.Nil(t, err)
		assert.Equal(t, GenerationMode(value), mode)
	}

	_, err := ParseGenerationMode("fastest")
	assert.NotNil(t, err)
}

func TestParseSpecialty(t *testing.T) {
	specialty, err := ParseSpecialty("Science")
	assert.Nil(t, err)
	assert.Equal(t, Science, specialty)

	_, err = ParseSpecialty("alchemy")
	var unknown UnknownTagError
	assert.True(t, errors.As(err, &unknown))
}
