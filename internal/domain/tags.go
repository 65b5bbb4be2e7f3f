package domain

import (
	"fmt"
	"strings"
)

// UnknownTagError reports a string that does not belong to a tag vocabulary.
// Tag parsing happens once, at the domain boundary; nothing further down
// the pipeline sees raw strings.
type UnknownTagError struct {
	Kind  string
	Value string
}

func (err UnknownTagError) Error() string {
	return fmt.Sprintf("unknown %v tag: %q", err.Kind, err.Value)
}

type Day string

const (
	Monday    Day = "monday"
	Tuesday   Day = "tuesday"
	Wednesday Day = "wednesday"
	Thursday  Day = "thursday"
	Friday    Day = "friday"
	Saturday  Day = "saturday"
	Sunday    Day = "sunday"
)

// Days lists every day tag in week order. Slot ordering within a day is
// dictated by the common-config hour list, not by this slice.
var Days = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func ParseDay(value string) (Day, error) {
	day := Day(strings.ToLower(value))
	for _, known := range Days {
		if day == known {
			return day, nil
		}
	}
	return "", UnknownTagError{Kind: "day", Value: value}
}

type HourKind string

const (
	HourLesson HourKind = "lesson"
	HourRecess HourKind = "recess"
)

func ParseHourKind(value string) (HourKind, error) {
	switch kind := HourKind(strings.ToLower(value)); kind {
	case HourLesson, HourRecess:
		return kind, nil
	}
	return "", UnknownTagError{Kind: "hour-kind", Value: value}
}

type GenerationMode string

const (
	EarlyStartEarlyEnd   GenerationMode = "early_start_early_end"
	LateStartLateEnd     GenerationMode = "late_start_late_end"
	Balanced             GenerationMode = "balanced"
	LeastOddHoursStudent GenerationMode = "least_odd_hours_students"
	LeastOddHoursTeacher GenerationMode = "least_odd_hours_teachers"
)

func ParseGenerationMode(value string) (GenerationMode, error) {
	switch mode := GenerationMode(strings.ToLower(value)); mode {
	case EarlyStartEarlyEnd, LateStartLateEnd, Balanced, LeastOddHoursStudent, LeastOddHoursTeacher:
		return mode, nil
	}
	return "", UnknownTagError{Kind: "generation-mode", Value: value}
}

// Specialty is a classroom capability tag from a fixed vocabulary.
type Specialty string

const (
	Computers  Specialty = "computers"
	Science    Specialty = "science"
	Art        Specialty = "art"
	Music      Specialty = "music"
	Sports     Specialty = "sports"
	StudyPlaza Specialty = "studyplaza"
	Gym        Specialty = "gym"
	Library    Specialty = "library"
	Cafeteria  Specialty = "cafeteria"
	Auditorium Specialty = "auditorium"
)

var specialties = map[Specialty]bool{
	Computers: true, Science: true, Art: true, Music: true, Sports: true,
	StudyPlaza: true, Gym: true, Library: true, Cafeteria: true, Auditorium: true,
}

func ParseSpecialty(value string) (Specialty, error) {
	specialty := Specialty(strings.ToLower(value))
	if !specialties[specialty] {
		return "", UnknownTagError{Kind: "specialty", Value: value}
	}
	return specialty, nil
}
