package domain

// Entities are built once by the loader, validated at the boundary and
// treated as read-only afterwards. Subject references inside Teacher and
// SchoolClass are always canonical subject abbreviations (see validate.go).

type Teacher struct {
	Name         string
	Abbreviation string
	Availability map[Day][]int // 1-based lesson indices; a missing day means unavailable all day
	Subjects     []string
}

type ClassYear struct {
	Level   string
	Grade   int
	Section int
}

type SchoolClass struct {
	Name         string
	Year         ClassYear
	Tutor        string
	CoreSubjects []string
}

type Subject struct {
	Name          string
	Abbreviation  string
	RequiredHours int
	CoreSubject   bool
	// RequiredSpecialties is enforced only when the engine is configured to
	// match room capabilities; it is carried regardless.
	RequiredSpecialties []Specialty
}

type Classroom struct {
	Number      int
	Capacity    int
	Specialties []Specialty
}

// FixedHour is a pre-existing reservation of one room at one lesson slot.
// It is never a decision variable.
type FixedHour struct {
	Day         Day
	Hour        int // 1-based lesson index within the day
	ClassroomID int
	Name        string
}

// ClockTime is a wall-clock time of day.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

func (t ClockTime) Before(other ClockTime) bool {
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	if t.Minute != other.Minute {
		return t.Minute < other.Minute
	}
	return t.Second < other.Second
}

// HourRow is one entry of the school's daily structure. The order of rows in
// CommonConfig.Hours is authoritative: lesson indices derive from it.
type HourRow struct {
	Kind  HourKind
	Day   Day
	Start ClockTime
	End   ClockTime
}

type CommonConfig struct {
	Hours                    []HourRow
	PreferredOddHoursEnabled bool
	GenerationType           GenerationMode
}

// Dataset aggregates every validated entity collection for one engine run.
type Dataset struct {
	Teachers   []Teacher
	Classes    []SchoolClass
	Subjects   []Subject
	Classrooms []Classroom
	FixedHours []FixedHour
	Common     CommonConfig
}

// SubjectByAbbreviation returns the subject carrying the canonical
// identifier, or false when no such subject exists.
func (dataset Dataset) SubjectByAbbreviation(abbreviation string) (Subject, bool) {
	for _, subject := range dataset.Subjects {
		if subject.Abbreviation == abbreviation {
			return subject, true
		}
	}
	return Subject{}, false
}
