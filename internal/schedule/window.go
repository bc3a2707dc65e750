package schedule

import "fmt"

// Restriction ограничение по возрасту или классу; nil граница = без ограничения
type Restriction struct {
	Mode RestrictionMode
	Min  *int
	Max  *int
}

// Window повторяющееся еженедельное окно работы клуба.
// Окна не переходят через полночь: Open всегда строго меньше Close.
type Window struct {
	Weekday     Weekday
	Cycle       WeekCycle
	Open        Clock
	Close       Clock
	Title       string
	Gender      Gender
	Restriction Restriction
}

// Validate проверяет инварианты одного окна. Значения перечислений сравниваются
// с константами точно, без приведения регистра.
func (w Window) Validate() error {
	if !w.Weekday.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidWeekday, int(w.Weekday))
	}
	if !w.Cycle.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCycle, w.Cycle)
	}
	if !w.Open.Valid() || !w.Close.Valid() {
		return ErrInvalidClock
	}
	if w.Open == w.Close {
		return fmt.Errorf("%w: %s", ErrEmptyRange, w.Open)
	}
	if w.Open > w.Close {
		return fmt.Errorf("%w: %s-%s", ErrInvertedRange, w.Open, w.Close)
	}
	if w.Gender != "" && !w.Gender.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidGender, w.Gender)
	}
	return w.Restriction.validate()
}

func (r Restriction) validate() error {
	if r.Mode == "" || r.Mode == RestrictionNone {
		return nil
	}
	if !r.Mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRestriction, r.Mode)
	}
	if r.Min != nil && *r.Min < 0 {
		return fmt.Errorf("%w: min %d", ErrInvalidBounds, *r.Min)
	}
	if r.Max != nil && *r.Max < 0 {
		return fmt.Errorf("%w: max %d", ErrInvalidBounds, *r.Max)
	}
	if r.Min != nil && r.Max != nil && *r.Min > *r.Max {
		return fmt.Errorf("%w: %d > %d", ErrInvalidBounds, *r.Min, *r.Max)
	}
	return nil
}

// AppliesOn сообщает, действует ли окно в день с данным днём недели и номером ISO-недели
func (w Window) AppliesOn(day Weekday, week int) bool {
	return w.Weekday == day && w.Cycle.AppliesInWeek(week)
}

// Contains проверяет момент с включёнными обеими границами: open <= t <= close.
// Ровно в момент закрытия окно ещё считается открытым.
func (w Window) Contains(t Clock) bool {
	return w.Open <= t && t <= w.Close
}

// Overlaps полуоткрытое пересечение [open, close) по минутам, без учёта цикла
func (w Window) Overlaps(other Window) bool {
	return w.Open < other.Close && w.Close > other.Open
}

// Range "09:00-12:00"
func (w Window) Range() string {
	return w.Open.String() + "-" + w.Close.String()
}

// Visitor данные посетителя для проверки ограничений окна
type Visitor struct {
	Age    *int
	Grade  *int
	Gender Gender
}

// Admits проверяет, может ли посетитель прийти в это окно.
// Если окно ограничено по возрасту/классу, а значение посетителя неизвестно, доступа нет.
func (w Window) Admits(v Visitor) bool {
	switch w.Gender {
	case "", GenderAll:
	default:
		if v.Gender != w.Gender {
			return false
		}
	}

	var value *int
	switch w.Restriction.Mode {
	case RestrictionAge:
		value = v.Age
	case RestrictionGrade:
		value = v.Grade
	default:
		return true
	}

	if w.Restriction.Min == nil && w.Restriction.Max == nil {
		return true
	}
	if value == nil {
		return false
	}
	if w.Restriction.Min != nil && *value < *w.Restriction.Min {
		return false
	}
	if w.Restriction.Max != nil && *value > *w.Restriction.Max {
		return false
	}
	return true
}

// Admitted оставляет только окна, доступные посетителю, в исходном порядке
func Admitted(windows []Window, v Visitor) []Window {
	var out []Window
	for _, w := range windows {
		if w.Admits(v) {
			out = append(out, w)
		}
	}
	return out
}
