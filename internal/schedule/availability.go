package schedule

import "time"

// SearchHorizonDays сколько календарных дней вперёд ищется следующее открытие
const SearchHorizonDays = 7

// Status состояние клуба в момент now
type Status struct {
	IsOpen bool
	Today  []Window // окна, действующие сегодня, в исходном порядке
}

// Opening ближайшее открытие клуба
type Opening struct {
	DayOffset int // 0 = сегодня, 1 = завтра, ...
	Date      time.Time
	Weekday   Weekday
	At        Clock
	Window    Window
}

// Label "today", "tomorrow" или английское название дня недели
func (o Opening) Label() string {
	switch o.DayOffset {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	}
	return o.Weekday.String()
}

// WindowsOn окна, действующие в календарный день date (день недели + чётность недели)
func WindowsOn(date time.Time, windows []Window) []Window {
	day := WeekdayOf(date)
	week := WeekNumber(date)

	var out []Window
	for _, w := range windows {
		if w.AppliesOn(day, week) {
			out = append(out, w)
		}
	}
	return out
}

// Evaluate считает, открыт ли клуб в момент now. Время сравнивается по минутам,
// обе границы окна включены.
func Evaluate(now time.Time, windows []Window) Status {
	today := WindowsOn(now, windows)
	t := ClockOf(now)

	status := Status{Today: today}
	for _, w := range today {
		if w.Contains(t) {
			status.IsOpen = true
			break
		}
	}
	return status
}

// NextOpening ищет ближайшее открытие: сначала позже сегодня (только если сейчас закрыто),
// затем по дням на SearchHorizonDays вперёд. false означает "следующее открытие неизвестно".
// При одинаковом времени открытия побеждает окно, стоящее раньше в списке.
func NextOpening(now time.Time, windows []Window) (Opening, bool) {
	if len(windows) == 0 {
		return Opening{}, false
	}

	status := Evaluate(now, windows)
	if !status.IsOpen {
		t := ClockOf(now)
		var later []Window
		for _, w := range status.Today {
			if w.Open > t {
				later = append(later, w)
			}
		}
		if w, ok := earliest(later); ok {
			return Opening{
				DayOffset: 0,
				Date:      dateOf(now),
				Weekday:   WeekdayOf(now),
				At:        w.Open,
				Window:    w,
			}, true
		}
	}

	for offset := 1; offset <= SearchHorizonDays; offset++ {
		date := dateOf(now).AddDate(0, 0, offset)
		if w, ok := earliest(WindowsOn(date, windows)); ok {
			return Opening{
				DayOffset: offset,
				Date:      date,
				Weekday:   WeekdayOf(date),
				At:        w.Open,
				Window:    w,
			}, true
		}
	}

	return Opening{}, false
}

func earliest(windows []Window) (Window, bool) {
	if len(windows) == 0 {
		return Window{}, false
	}
	best := windows[0]
	for _, w := range windows[1:] {
		if w.Open < best.Open {
			best = w
		}
	}
	return best, true
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
