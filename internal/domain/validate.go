package domain

import (
	"fmt"

	"github.com/samber/lo"
)

// ValidationError reports a malformed entity at the domain boundary. It is
// always fatal to the run; nothing is defaulted past it.
type ValidationError struct {
	Entity  string
	Message string
}

func (err ValidationError) Error() string {
	return fmt.Sprintf("invalid %v: %v", err.Entity, err.Message)
}

func invalid(entity string, format string, args ...any) error {
	return ValidationError{Entity: entity, Message: fmt.Sprintf(format, args...)}
}

func (raw rawDataset) validate() (Dataset, error) {
	var dataset Dataset
	var err error

	if dataset.Subjects, err = validateSubjects(raw.Subjects); err != nil {
		return Dataset{}, err
	}

	// Subject references elsewhere resolve against one identifier space: the
	// subject abbreviation. A reference spelled as a full name is accepted
	// only when the name identifies exactly one subject, and is rewritten to
	// the abbreviation; anything else is rejected instead of silently
	// producing an unsatisfiable or vacuous constraint later.
	resolve := subjectResolver(dataset.Subjects)

	if dataset.Classrooms, err = validateClassrooms(raw.Classrooms); err != nil {
		return Dataset{}, err
	}
	if dataset.Teachers, err = validateTeachers(raw.Teachers, resolve); err != nil {
		return Dataset{}, err
	}
	if dataset.Classes, err = validateClasses(raw.Classes, resolve); err != nil {
		return Dataset{}, err
	}
	if dataset.FixedHours, err = validateFixedHours(raw.FixedHours, dataset.Classrooms); err != nil {
		return Dataset{}, err
	}
	if dataset.Common, err = validateCommon(raw.Common); err != nil {
		return Dataset{}, err
	}

	return dataset, nil
}

func subjectResolver(subjects []Subject) func(reference string) (string, bool) {
	byAbbreviation := make(map[string]bool, len(subjects))
	byName := make(map[string][]string)
	for _, subject := range subjects {
		byAbbreviation[subject.Abbreviation] = true
		byName[subject.Name] = append(byName[subject.Name], subject.Abbreviation)
	}

	return func(reference string) (string, bool) {
		if byAbbreviation[reference] {
			return reference, true
		}
		if abbreviations := byName[reference]; len(abbreviations) == 1 {
			return abbreviations[0], true
		}
		return "", false
	}
}

func validateSubjects(raws []rawSubject) ([]Subject, error) {
	subjects := make([]Subject, 0, len(raws))
	seen := make(map[string]bool)

	for _, raw := range raws {
		entity := fmt.Sprintf("subject %q", raw.Name)

		if raw.Name == "" || raw.Abbreviation == "" {
			return nil, invalid(entity, "name and abbreviation are required")
		}
		if seen[raw.Abbreviation] {
			return nil, invalid(entity, "duplicate abbreviation %q", raw.Abbreviation)
		}
		seen[raw.Abbreviation] = true
		if raw.RequiredHours < 1 {
			return nil, invalid(entity, "requiredHours must be at least 1, got %v", raw.RequiredHours)
		}

		required := make([]Specialty, 0, len(raw.RequiredClassroomParameters))
		for _, tag := range raw.RequiredClassroomParameters {
			specialty, err := ParseSpecialty(tag)
			if err != nil {
				return nil, invalid(entity, "%v", err)
			}
			required = append(required, specialty)
		}

		subjects = append(subjects, Subject{
			Name:                raw.Name,
			Abbreviation:        raw.Abbreviation,
			RequiredHours:       raw.RequiredHours,
			CoreSubject:         raw.CoreSubject,
			RequiredSpecialties: required,
		})
	}

	return subjects, nil
}

func validateClassrooms(raws []rawClassroom) ([]Classroom, error) {
	classrooms := make([]Classroom, 0, len(raws))
	seen := make(map[int]bool)

	for _, raw := range raws {
		entity := fmt.Sprintf("classroom %v", raw.Number)

		if seen[raw.Number] {
			return nil, invalid(entity, "duplicate classroom number")
		}
		seen[raw.Number] = true
		if raw.Capacity < 0 {
			return nil, invalid(entity, "capacity must not be negative, got %v", raw.Capacity)
		}

		tags := make([]Specialty, 0, len(raw.Specialties))
		for _, tag := range raw.Specialties {
			specialty, err := ParseSpecialty(tag)
			if err != nil {
				return nil, invalid(entity, "%v", err)
			}
			tags = append(tags, specialty)
		}

		classrooms = append(classrooms, Classroom{
			Number:      raw.Number,
			Capacity:    raw.Capacity,
			Specialties: tags,
		})
	}

	return classrooms, nil
}

func validateTeachers(raws []rawTeacher, resolve func(string) (string, bool)) ([]Teacher, error) {
	teachers := make([]Teacher, 0, len(raws))
	seen := make(map[string]bool)

	for _, raw := range raws {
		entity := fmt.Sprintf("teacher %q", raw.Name)

		if raw.Name == "" {
			return nil, invalid("teacher", "name is required")
		}
		if seen[raw.Name] {
			return nil, invalid(entity, "duplicate teacher name")
		}
		seen[raw.Name] = true

		availability := make(map[Day][]int, len(raw.Availability))
		for dayName, value := range raw.Availability {
			day, err := ParseDay(dayName)
			if err != nil {
				return nil, invalid(entity, "%v", err)
			}
			indices, err := intValues(value)
			if err != nil {
				return nil, invalid(entity, "availability for %v: %v", day, err)
			}
			for _, index := range indices {
				if index < 1 {
					return nil, invalid(entity, "availability for %v: lesson indices are 1-based, got %v", day, index)
				}
			}
			availability[day] = indices
		}

		qualifications := make([]string, 0, len(raw.Subjects))
		for _, reference := range raw.Subjects {
			abbreviation, ok := resolve(reference)
			if !ok {
				return nil, invalid(entity, "unknown subject %q in qualification list", reference)
			}
			qualifications = append(qualifications, abbreviation)
		}

		teachers = append(teachers, Teacher{
			Name:         raw.Name,
			Abbreviation: raw.Abbreviation,
			Availability: availability,
			Subjects:     lo.Uniq(qualifications),
		})
	}

	return teachers, nil
}

func validateClasses(raws []rawClass, resolve func(string) (string, bool)) ([]SchoolClass, error) {
	classes := make([]SchoolClass, 0, len(raws))
	seen := make(map[string]bool)

	for _, raw := range raws {
		entity := fmt.Sprintf("class %q", raw.Name)

		if raw.Name == "" {
			return nil, invalid("class", "name is required")
		}
		if seen[raw.Name] {
			return nil, invalid(entity, "duplicate class name")
		}
		seen[raw.Name] = true

		year, err := parseYear(raw.Year)
		if err != nil {
			return nil, invalid(entity, "%v", err)
		}

		core := make([]string, 0, len(raw.CoreSubjects))
		for _, reference := range raw.CoreSubjects {
			abbreviation, ok := resolve(reference)
			if !ok {
				return nil, invalid(entity, "unknown subject %q in core-subject list", reference)
			}
			core = append(core, abbreviation)
		}

		classes = append(classes, SchoolClass{
			Name:         raw.Name,
			Year:         year,
			Tutor:        raw.Tutor,
			CoreSubjects: lo.Uniq(core),
		})
	}

	return classes, nil
}

func parseYear(value []any) (ClassYear, error) {
	if len(value) != 3 {
		return ClassYear{}, fmt.Errorf("year must be a [level, grade, section] triple, got %v", value)
	}

	level, ok := value[0].(string)
	if !ok || level == "" {
		return ClassYear{}, fmt.Errorf("year level must be a non-empty tag, got %v", value[0])
	}
	grade, err := intValues(value[1])
	if err != nil {
		return ClassYear{}, fmt.Errorf("year grade: %v", err)
	}
	section, err := intValues(value[2])
	if err != nil {
		return ClassYear{}, fmt.Errorf("year section: %v", err)
	}

	return ClassYear{Level: level, Grade: grade[0], Section: section[0]}, nil
}

func validateFixedHours(raws []rawFixedHour, classrooms []Classroom) ([]FixedHour, error) {
	fixedHours := make([]FixedHour, 0, len(raws))

	for _, raw := range raws {
		entity := fmt.Sprintf("fixed hour %q", raw.Name)

		day, err := ParseDay(raw.Day)
		if err != nil {
			return nil, invalid(entity, "%v", err)
		}
		if raw.Hour < 1 {
			return nil, invalid(entity, "hour is 1-based, got %v", raw.Hour)
		}

		values, err := intValues(raw.ClassroomID)
		if err != nil {
			return nil, invalid(entity, "classroomID: %v", err)
		}
		classroomID := values[0]
		if !lo.SomeBy(classrooms, func(classroom Classroom) bool { return classroom.Number == classroomID }) {
			return nil, invalid(entity, "unknown classroom %v", classroomID)
		}

		fixedHours = append(fixedHours, FixedHour{
			Day:         day,
			Hour:        raw.Hour,
			ClassroomID: classroomID,
			Name:        raw.Name,
		})
	}

	return fixedHours, nil
}

func validateCommon(raw rawCommon) (CommonConfig, error) {
	common := CommonConfig{Hours: make([]HourRow, 0, len(raw.Hours))}

	for i, row := range raw.Hours {
		entity := fmt.Sprintf("common hour row %v", i)

		if len(row) != 4 {
			return CommonConfig{}, invalid(entity, "expected [kind, day, start, end], got %v", row)
		}
		kindTag, kindOk := row[0].(string)
		dayTag, dayOk := row[1].(string)
		startValue, startOk := row[2].(string)
		endValue, endOk := row[3].(string)
		if !kindOk || !dayOk || !startOk || !endOk {
			return CommonConfig{}, invalid(entity, "expected [kind, day, start, end] strings, got %v", row)
		}

		kind, err := ParseHourKind(kindTag)
		if err != nil {
			return CommonConfig{}, invalid(entity, "%v", err)
		}
		day, err := ParseDay(dayTag)
		if err != nil {
			return CommonConfig{}, invalid(entity, "%v", err)
		}
		start, err := parseClock(startValue)
		if err != nil {
			return CommonConfig{}, invalid(entity, "%v", err)
		}
		end, err := parseClock(endValue)
		if err != nil {
			return CommonConfig{}, invalid(entity, "%v", err)
		}
		if !start.Before(end) {
			return CommonConfig{}, invalid(entity, "start %v:%02v must precede end %v:%02v", start.Hour, start.Minute, end.Hour, end.Minute)
		}

		common.Hours = append(common.Hours, HourRow{Kind: kind, Day: day, Start: start, End: end})
	}

	mode, err := ParseGenerationMode(raw.GenerationType)
	if err != nil {
		return CommonConfig{}, invalid("common", "%v", err)
	}
	common.GenerationType = mode
	common.PreferredOddHoursEnabled = raw.PreferredOddHoursEnabled

	return common, nil
}
