package schedule

import "fmt"

// Conflict найденное пересечение нового окна с уже существующим
type Conflict struct {
	Index    int // позиция существующего окна в списке
	Existing Window
}

func (c *Conflict) Error() string {
	return fmt.Sprintf("overlaps existing %s window %s (%s)",
		c.Existing.Weekday, c.Existing.Range(), c.Existing.Cycle)
}

// CheckOverlap проверяет кандидата против существующих окон того же дня.
// Окна с циклами ODD и EVEN никогда не пересекаются, даже при одинаковом времени;
// во всех остальных случаях сравниваются интервалы [open, close).
// Возвращает первый конфликт или nil.
func CheckOverlap(existing []Window, candidate Window) *Conflict {
	for i, w := range existing {
		if w.Weekday != candidate.Weekday {
			continue
		}
		if w.Cycle.ExcludedBy(candidate.Cycle) {
			continue
		}
		if candidate.Overlaps(w) {
			return &Conflict{Index: i, Existing: w}
		}
	}
	return nil
}

// ValidateAll повторно проверяет весь список так, как если бы окна добавлялись по одному.
// Используется перед сохранением.
func ValidateAll(windows []Window) error {
	for i, w := range windows {
		if err := w.Validate(); err != nil {
			return fmt.Errorf("window %d: %w", i+1, err)
		}
		if conflict := CheckOverlap(windows[:i], w); conflict != nil {
			return fmt.Errorf("window %d: %w", i+1, conflict)
		}
	}
	return nil
}
