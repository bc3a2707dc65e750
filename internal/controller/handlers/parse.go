package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jswmusik/youthclub/internal/controller/callbacks/common"
	"github.com/jswmusik/youthclub/internal/schedule"
)

var dayAliases = map[string]schedule.Weekday{
	"1": schedule.Monday, "пн": schedule.Monday, "понедельник": schedule.Monday, "mon": schedule.Monday, "monday": schedule.Monday,
	"2": schedule.Tuesday, "вт": schedule.Tuesday, "вторник": schedule.Tuesday, "tue": schedule.Tuesday, "tuesday": schedule.Tuesday,
	"3": schedule.Wednesday, "ср": schedule.Wednesday, "среда": schedule.Wednesday, "wed": schedule.Wednesday, "wednesday": schedule.Wednesday,
	"4": schedule.Thursday, "чт": schedule.Thursday, "четверг": schedule.Thursday, "thu": schedule.Thursday, "thursday": schedule.Thursday,
	"5": schedule.Friday, "пт": schedule.Friday, "пятница": schedule.Friday, "fri": schedule.Friday, "friday": schedule.Friday,
	"6": schedule.Saturday, "сб": schedule.Saturday, "суббота": schedule.Saturday, "sat": schedule.Saturday, "saturday": schedule.Saturday,
	"7": schedule.Sunday, "вс": schedule.Sunday, "воскресенье": schedule.Sunday, "sun": schedule.Sunday, "sunday": schedule.Sunday,
}

var cycleAliases = map[string]schedule.WeekCycle{
	"every": schedule.CycleAll, "all": schedule.CycleAll, "каждую": schedule.CycleAll,
	"odd": schedule.CycleOdd, "нечет": schedule.CycleOdd, "нечётные": schedule.CycleOdd, "нечетные": schedule.CycleOdd,
	"even": schedule.CycleEven, "чет": schedule.CycleEven, "чётные": schedule.CycleEven, "четные": schedule.CycleEven,
}

var genderAliases = map[string]schedule.Gender{
	"girls": schedule.GenderGirls, "девочки": schedule.GenderGirls,
	"boys": schedule.GenderBoys, "мальчики": schedule.GenderBoys,
	"other": schedule.GenderOther, "другое": schedule.GenderOther,
}

// parseWindowLine разбирает строку редактора:
//
//	<day> [every|odd|even] HH:MM-HH:MM [girls|boys|other] [age:min-max|grade:min-max] [title]
//
// Окно только разбирается; проверку диапазона и пересечений делает WindowSet.Add.
func parseWindowLine(line string) (schedule.Window, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return schedule.Window{}, common.ErrWindowFormat
	}

	w := schedule.Window{
		Cycle:       schedule.CycleAll,
		Gender:      schedule.GenderAll,
		Restriction: schedule.Restriction{Mode: schedule.RestrictionNone},
	}

	day, ok := dayAliases[strings.ToLower(fields[0])]
	if !ok {
		return schedule.Window{}, fmt.Errorf("%w: %q", schedule.ErrInvalidWeekday, fields[0])
	}
	w.Weekday = day
	rest := fields[1:]

	if cycle, ok := cycleAliases[strings.ToLower(rest[0])]; ok {
		w.Cycle = cycle
		rest = rest[1:]
	}

	if len(rest) == 0 {
		return schedule.Window{}, common.ErrWindowFormat
	}
	open, closeAt, err := parseTimeRange(rest[0])
	if err != nil {
		return schedule.Window{}, err
	}
	w.Open, w.Close = open, closeAt
	rest = rest[1:]

	if len(rest) > 0 {
		if gender, ok := genderAliases[strings.ToLower(rest[0])]; ok {
			w.Gender = gender
			rest = rest[1:]
		}
	}

	if len(rest) > 0 {
		restriction, ok, err := parseRestriction(rest[0])
		if err != nil {
			return schedule.Window{}, err
		}
		if ok {
			w.Restriction = restriction
			rest = rest[1:]
		}
	}

	w.Title = strings.Join(rest, " ")
	return w, nil
}

func parseTimeRange(s string) (schedule.Clock, schedule.Clock, error) {
	openStr, closeStr, ok := strings.Cut(s, "-")
	if !ok {
		return 0, 0, common.ErrWindowFormat
	}

	open, err := schedule.ParseClock(padHour(openStr))
	if err != nil {
		return 0, 0, err
	}
	closeAt, err := schedule.ParseClock(padHour(closeStr))
	if err != nil {
		return 0, 0, err
	}
	return open, closeAt, nil
}

// padHour "9:00" -> "09:00"
func padHour(s string) string {
	if len(s) == 4 && s[1] == ':' {
		return "0" + s
	}
	return s
}

// parseRestriction "age:13-17", "grade:7-", "age:-12"; ok=false если токен не ограничение
func parseRestriction(token string) (schedule.Restriction, bool, error) {
	kind, bounds, found := strings.Cut(strings.ToLower(token), ":")
	if !found {
		return schedule.Restriction{}, false, nil
	}

	var mode schedule.RestrictionMode
	switch kind {
	case "age", "возраст":
		mode = schedule.RestrictionAge
	case "grade", "класс":
		mode = schedule.RestrictionGrade
	default:
		return schedule.Restriction{}, false, nil
	}

	minStr, maxStr, found := strings.Cut(bounds, "-")
	if !found {
		return schedule.Restriction{}, false, fmt.Errorf("%w: %q", schedule.ErrInvalidBounds, token)
	}

	r := schedule.Restriction{Mode: mode}
	var err error
	if r.Min, err = parseBound(minStr); err != nil {
		return schedule.Restriction{}, false, fmt.Errorf("%w: %q", schedule.ErrInvalidBounds, token)
	}
	if r.Max, err = parseBound(maxStr); err != nil {
		return schedule.Restriction{}, false, fmt.Errorf("%w: %q", schedule.ErrInvalidBounds, token)
	}
	return r, true, nil
}

func parseBound(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// parseRemoval "-3" -> индекс 2
func parseRemoval(line string) (int, bool) {
	raw, ok := strings.CutPrefix(strings.TrimSpace(line), "-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n - 1, true
}
