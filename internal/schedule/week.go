package schedule

import "time"

// WeekNumber возвращает номер недели по ISO-8601 (1..53).
// Дата берётся как календарный день в UTC, затем сдвигается на четверг той же
// ISO-недели: год этого четверга и есть ISO-год, поэтому конец декабря может
// попасть в неделю 1 следующего года, а начало января в 52/53 неделю прошлого.
func WeekNumber(date time.Time) int {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	dayNumber := int(day.Weekday())
	if dayNumber == 0 {
		dayNumber = 7
	}

	thursday := day.AddDate(0, 0, 4-dayNumber)
	jan1 := time.Date(thursday.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)

	days := int(thursday.Sub(jan1).Hours() / 24)
	return days/7 + 1
}

// IsOddWeek true для нечётной ISO-недели
func IsOddWeek(date time.Time) bool {
	return WeekNumber(date)%2 == 1
}
