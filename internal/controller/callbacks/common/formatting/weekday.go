package formatting

import "github.com/jswmusik/youthclub/internal/schedule"

var weekdayNames = [...]string{"", "Понедельник", "Вторник", "Среда", "Четверг", "Пятница", "Суббота", "Воскресенье"}

var weekdayShort = [...]string{"", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// "в понедельник", "во вторник", ...
var weekdayAccusative = [...]string{"", "в понедельник", "во вторник", "в среду", "в четверг", "в пятницу", "в субботу", "в воскресенье"}

// GetWeekdayName возвращает название дня недели на русском
func GetWeekdayName(weekday schedule.Weekday) string {
	if !weekday.Valid() {
		return "Неизвестно"
	}
	return weekdayNames[weekday]
}

// GetWeekdayShort возвращает короткое название дня недели
func GetWeekdayShort(weekday schedule.Weekday) string {
	if !weekday.Valid() {
		return "?"
	}
	return weekdayShort[weekday]
}

func weekdayOn(weekday schedule.Weekday) string {
	if !weekday.Valid() {
		return ""
	}
	return weekdayAccusative[weekday]
}
