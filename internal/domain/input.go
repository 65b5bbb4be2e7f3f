package domain

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// One document per entity collection, matching the persisted data layout.
const (
	TeachersFile   = "teachers.json"
	ClassesFile    = "classes.json"
	SubjectsFile   = "subjects.json"
	ClassroomsFile = "classrooms.json"
	FixedHoursFile = "fixed_hours.json"
	CommonFile     = "common.json"
)

type rawTeacher struct {
	Name         string
	Abbreviation string
	Availability map[string]any // 1-based lesson index or list of indices per day
	Subjects     []string
}

type rawClass struct {
	Name         string
	Year         []any // [level-tag, grade, section]
	Tutor        string
	CoreSubjects []string `mapstructure:"coreSubjects"`
}

type rawSubject struct {
	Name                        string
	Abbreviation                string
	RequiredHours               int      `mapstructure:"requiredHours"`
	CoreSubject                 bool     `mapstructure:"coreSubject"`
	RequiredClassroomParameters []string `mapstructure:"requiredClassroomParameters"`
}

type rawClassroom struct {
	Number      int
	Capacity    int
	Specialties []string
}

type rawFixedHour struct {
	Day         string
	Name        string
	ClassroomID any `mapstructure:"classroomID"`
	Hour        int
}

type rawCommon struct {
	Hours                    [][]any // [kind-tag, day-name, start, end]
	PreferredOddHoursEnabled bool    `mapstructure:"preferredOddHoursEnabled"`
	GenerationType           string  `mapstructure:"generationType"`
}

type rawDataset struct {
	Teachers   []rawTeacher
	Classes    []rawClass
	Subjects   []rawSubject
	Classrooms []rawClassroom
	FixedHours []rawFixedHour
	Common     rawCommon
}

// LoadDataset reads the six entity documents from directory and validates
// them into an immutable Dataset. A missing fixed-hours document is treated
// as an empty reservation list; every other document is required.
func LoadDataset(directory string) (Dataset, error) {
	var raw rawDataset

	if err := decodeFile(path.Join(directory, TeachersFile), &raw.Teachers); err != nil {
		return Dataset{}, err
	}
	if err := decodeFile(path.Join(directory, ClassesFile), &raw.Classes); err != nil {
		return Dataset{}, err
	}
	if err := decodeFile(path.Join(directory, SubjectsFile), &raw.Subjects); err != nil {
		return Dataset{}, err
	}
	if err := decodeFile(path.Join(directory, ClassroomsFile), &raw.Classrooms); err != nil {
		return Dataset{}, err
	}
	if err := decodeFile(path.Join(directory, CommonFile), &raw.Common); err != nil {
		return Dataset{}, err
	}
	if err := decodeFile(path.Join(directory, FixedHoursFile), &raw.FixedHours); err != nil {
		if !os.IsNotExist(err) {
			return Dataset{}, err
		}
		raw.FixedHours = nil
	}

	return raw.validate()
}

func decodeFile(file string, target any) error {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	var document any
	if err := json.Unmarshal(bytes, &document); err != nil {
		return fmt.Errorf("cannot parse %v: %w", path.Base(file), err)
	}
	if err := mapstructure.Decode(document, target); err != nil {
		return fmt.Errorf("cannot decode %v: %w", path.Base(file), err)
	}
	return nil
}

// intValues normalises the int-or-list-of-ints shapes the external contract
// allows (teacher availability entries, fixed-hour classroom ids).
func intValues(value any) ([]int, error) {
	switch typed := value.(type) {
	case float64:
		return []int{int(typed)}, nil
	case int:
		return []int{typed}, nil
	case string:
		parsed, err := strconv.Atoi(typed)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", typed)
		}
		return []int{parsed}, nil
	case []any:
		values := make([]int, 0, len(typed))
		for _, item := range typed {
			parsed, err := intValues(item)
			if err != nil {
				return nil, err
			}
			values = append(values, parsed...)
		}
		return values, nil
	}
	return nil, fmt.Errorf("not an integer nor a list of integers: %v", value)
}

// parseClock parses "HH:MM" or "HH:MM:SS".
func parseClock(value string) (ClockTime, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return ClockTime{}, fmt.Errorf("invalid clock time: %q", value)
	}

	fields := make([]int, 3)
	for i, part := range parts {
		parsed, err := strconv.Atoi(part)
		if err != nil || parsed < 0 {
			return ClockTime{}, fmt.Errorf("invalid clock time: %q", value)
		}
		fields[i] = parsed
	}
	if fields[0] > 23 || fields[1] > 59 || fields[2] > 59 {
		return ClockTime{}, fmt.Errorf("invalid clock time: %q", value)
	}

	return ClockTime{Hour: fields[0], Minute: fields[1], Second: fields[2]}, nil
}
