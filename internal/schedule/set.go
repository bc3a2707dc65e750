package schedule

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("window index out of range")

// WindowSet неизменяемый набор окон клуба, который редактируется целиком
// и сохраняется одной операцией replace-all. Каждая операция возвращает новый набор.
type WindowSet struct {
	windows []Window
}

// NewWindowSet оборачивает уже сохранённые окна без проверки
func NewWindowSet(windows ...Window) WindowSet {
	return WindowSet{windows: append([]Window(nil), windows...)}
}

// Add проверяет окно и пересечения; при ошибке исходный набор не меняется.
// Пересечение возвращается как *Conflict.
func (s WindowSet) Add(w Window) (WindowSet, error) {
	if w.Gender == "" {
		w.Gender = GenderAll
	}
	if w.Restriction.Mode == "" {
		w.Restriction.Mode = RestrictionNone
	}

	if err := w.Validate(); err != nil {
		return s, err
	}
	if conflict := CheckOverlap(s.windows, w); conflict != nil {
		return s, conflict
	}

	next := make([]Window, len(s.windows), len(s.windows)+1)
	copy(next, s.windows)
	return WindowSet{windows: append(next, w)}, nil
}

// Remove удаляет окно по индексу (с нуля)
func (s WindowSet) Remove(i int) (WindowSet, error) {
	if i < 0 || i >= len(s.windows) {
		return s, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	next := make([]Window, 0, len(s.windows)-1)
	next = append(next, s.windows[:i]...)
	next = append(next, s.windows[i+1:]...)
	return WindowSet{windows: next}, nil
}

// Windows возвращает копию окон в порядке добавления
func (s WindowSet) Windows() []Window {
	return append([]Window(nil), s.windows...)
}

func (s WindowSet) Len() int { return len(s.windows) }
