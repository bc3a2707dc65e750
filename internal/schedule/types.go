package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidWeekday     = errors.New("weekday must be between 1 and 7")
	ErrInvalidCycle       = errors.New("invalid week cycle")
	ErrInvalidGender      = errors.New("invalid gender restriction")
	ErrInvalidRestriction = errors.New("invalid restriction mode")
	ErrInvalidClock       = errors.New("invalid time of day")
	ErrEmptyRange         = errors.New("open time equals close time")
	ErrInvertedRange      = errors.New("open time must be before close time")
	ErrInvalidBounds      = errors.New("restriction bounds are invalid")
)

// Weekday день недели: 1 = понедельник … 7 = воскресенье
type Weekday int

const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayOf возвращает день недели даты (воскресенье = 7)
func WeekdayOf(t time.Time) Weekday {
	wd := t.Weekday()
	if wd == time.Sunday {
		return Sunday
	}
	return Weekday(wd)
}

// ParseWeekday проверяет число из внешней записи
func ParseWeekday(n int) (Weekday, error) {
	wd := Weekday(n)
	if !wd.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidWeekday, n)
	}
	return wd, nil
}

func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

func (w Weekday) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// WeekCycle шаблон повторения окна по неделям
type WeekCycle string

const (
	CycleAll  WeekCycle = "ALL"
	CycleOdd  WeekCycle = "ODD"
	CycleEven WeekCycle = "EVEN"
)

// ParseWeekCycle принимает только ALL, ODD или EVEN (регистр не важен)
func ParseWeekCycle(s string) (WeekCycle, error) {
	switch c := WeekCycle(strings.ToUpper(strings.TrimSpace(s))); c {
	case CycleAll, CycleOdd, CycleEven:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCycle, s)
}

// Valid true только для ALL, ODD и EVEN в точном написании
func (c WeekCycle) Valid() bool {
	return c == CycleAll || c == CycleOdd || c == CycleEven
}

// AppliesInWeek сообщает, действует ли цикл в неделе с данным ISO-номером
func (c WeekCycle) AppliesInWeek(week int) bool {
	switch c {
	case CycleAll:
		return true
	case CycleOdd:
		return week%2 == 1
	case CycleEven:
		return week%2 == 0
	}
	return false
}

// ExcludedBy true, если два окна никогда не действуют в одну и ту же неделю.
// Только пара ODD/EVEN взаимоисключающая; ALL конфликтует с любым циклом.
func (c WeekCycle) ExcludedBy(other WeekCycle) bool {
	return (c == CycleOdd && other == CycleEven) || (c == CycleEven && other == CycleOdd)
}

func (c WeekCycle) String() string { return string(c) }

// Gender ограничение окна по полу посетителя
type Gender string

const (
	GenderAll   Gender = "ALL"
	GenderBoys  Gender = "BOYS"
	GenderGirls Gender = "GIRLS"
	GenderOther Gender = "OTHER"
)

// ParseGender пустая строка означает ALL
func ParseGender(s string) (Gender, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return GenderAll, nil
	}
	switch g := Gender(s); g {
	case GenderAll, GenderBoys, GenderGirls, GenderOther:
		return g, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGender, s)
}

// Valid true для констант Gender* в точном написании
func (g Gender) Valid() bool {
	switch g {
	case GenderAll, GenderBoys, GenderGirls, GenderOther:
		return true
	}
	return false
}

func (g Gender) String() string { return string(g) }

// RestrictionMode что именно ограничивают MinValue/MaxValue
type RestrictionMode string

const (
	RestrictionNone  RestrictionMode = "NONE"
	RestrictionAge   RestrictionMode = "AGE"
	RestrictionGrade RestrictionMode = "GRADE"
)

// ParseRestrictionMode пустая строка означает NONE
func ParseRestrictionMode(s string) (RestrictionMode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return RestrictionNone, nil
	}
	switch m := RestrictionMode(s); m {
	case RestrictionNone, RestrictionAge, RestrictionGrade:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRestriction, s)
}

// Valid true для констант Restriction* в точном написании
func (m RestrictionMode) Valid() bool {
	return m == RestrictionNone || m == RestrictionAge || m == RestrictionGrade
}

func (m RestrictionMode) String() string { return string(m) }
