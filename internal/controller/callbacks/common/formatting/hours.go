package formatting

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"github.com/jswmusik/youthclub/internal/schedule"
	"github.com/jswmusik/youthclub/internal/service"
)

// CycleLabel подпись шаблона повторения
func CycleLabel(cycle schedule.WeekCycle) string {
	switch cycle {
	case schedule.CycleOdd:
		return "нечётные недели"
	case schedule.CycleEven:
		return "чётные недели"
	default:
		return "каждую неделю"
	}
}

// GenderLabel подпись ограничения по полу; для ALL пустая строка
func GenderLabel(gender schedule.Gender) string {
	switch gender {
	case schedule.GenderBoys:
		return "👦 мальчики"
	case schedule.GenderGirls:
		return "👧 девочки"
	case schedule.GenderOther:
		return "🧑 другое"
	default:
		return ""
	}
}

// RestrictionLabel подпись ограничения по возрасту или классу; для NONE пустая строка
func RestrictionLabel(r schedule.Restriction) string {
	var name string
	switch r.Mode {
	case schedule.RestrictionAge:
		name = "возраст"
	case schedule.RestrictionGrade:
		name = "класс"
	default:
		return ""
	}

	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%s %d-%d", name, *r.Min, *r.Max)
	case r.Min != nil:
		return fmt.Sprintf("%s от %d", name, *r.Min)
	case r.Max != nil:
		return fmt.Sprintf("%s до %d", name, *r.Max)
	}
	return name
}

// FormatWindow одна строка окна: время, повторение, название, ограничения
func FormatWindow(w schedule.Window) string {
	parts := []string{w.Range()}
	if w.Cycle != schedule.CycleAll {
		parts = append(parts, CycleLabel(w.Cycle))
	}
	if w.Title != "" {
		parts = append(parts, html.EscapeString(w.Title))
	}
	if g := GenderLabel(w.Gender); g != "" {
		parts = append(parts, g)
	}
	if r := RestrictionLabel(w.Restriction); r != "" {
		parts = append(parts, r)
	}
	return strings.Join(parts, " · ")
}

// FormatWeek расписание по дням недели с понедельника; сегодняшний день выделен.
// Дни без окон пропускаются.
func FormatWeek(windows []schedule.Window, today schedule.Weekday) string {
	if len(windows) == 0 {
		return "📭 Расписание пока не заполнено"
	}

	byDay := make(map[schedule.Weekday][]schedule.Window)
	for _, w := range windows {
		byDay[w.Weekday] = append(byDay[w.Weekday], w)
	}

	var sb strings.Builder
	for day := schedule.Monday; day <= schedule.Sunday; day++ {
		dayWindows := byDay[day]
		if len(dayWindows) == 0 {
			continue
		}
		sort.SliceStable(dayWindows, func(i, j int) bool { return dayWindows[i].Open < dayWindows[j].Open })

		if day == today {
			fmt.Fprintf(&sb, "👉 <b>%s (сегодня)</b>\n", GetWeekdayName(day))
		} else {
			fmt.Fprintf(&sb, "<b>%s</b>\n", GetWeekdayName(day))
		}
		for _, w := range dayWindows {
			fmt.Fprintf(&sb, "   %s\n", FormatWindow(w))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// OpeningLabel "сегодня", "завтра" или "в среду"
func OpeningLabel(o schedule.Opening) string {
	switch o.DayOffset {
	case 0:
		return "сегодня"
	case 1:
		return "завтра"
	}
	return weekdayOn(o.Weekday)
}

// FormatStatus строка статуса клуба и, если он закрыт, когда откроется
func FormatStatus(report *service.Report) string {
	if report.Status.IsOpen {
		return "🟢 Сейчас открыто"
	}
	if report.Next == nil {
		return "🔴 Сейчас закрыто\nВ ближайшую неделю открытий нет"
	}
	return fmt.Sprintf("🔴 Сейчас закрыто\n⏰ Откроется %s в %s",
		OpeningLabel(*report.Next), report.Next.At)
}

// FormatClubProfile карточка клуба: статус и недельное расписание
func FormatClubProfile(report *service.Report, now time.Time) string {
	return fmt.Sprintf("🏠 <b>%s</b>\n\n%s\n\n🗓 <b>Часы работы</b>\n%s",
		html.EscapeString(report.Club.Name),
		FormatStatus(report),
		FormatWeek(report.Windows, schedule.WeekdayOf(now)),
	)
}

// FormatVisitorFilter подпись под заголовком карточки, когда расписание отфильтровано
func FormatVisitorFilter(gender schedule.Gender) string {
	return "🔎 Показаны окна, куда могут прийти: " + GenderLabel(gender)
}

// FormatOverview список клубов с текущим статусом
func FormatOverview(clubs []service.ClubStatus) string {
	if len(clubs) == 0 {
		return "Клубов пока нет."
	}

	open := 0
	for _, c := range clubs {
		if c.IsOpen {
			open++
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🏠 <b>%d %s</b>, сейчас открыто: %d\n\n",
		len(clubs), PluralizeClubs(len(clubs)), open)
	for _, c := range clubs {
		fmt.Fprintf(&sb, "%s %s\n", StatusEmoji(c.IsOpen), html.EscapeString(c.Club.Name))
	}
	sb.WriteString("\nВыберите клуб, чтобы увидеть расписание:")
	return sb.String()
}

// StatusEmoji 🟢 открыт, 🔴 закрыт
func StatusEmoji(isOpen bool) string {
	if isOpen {
		return "🟢"
	}
	return "🔴"
}

// FormatDraft пронумерованный черновик в порядке добавления
func FormatDraft(clubName string, draft schedule.WindowSet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📝 <b>Черновик расписания: %s</b>\n", html.EscapeString(clubName))

	windows := draft.Windows()
	if len(windows) == 0 {
		sb.WriteString("\nПока пусто.")
		return sb.String()
	}

	fmt.Fprintf(&sb, "%d %s\n\n", len(windows), PluralizeWindows(len(windows)))
	for i, w := range windows {
		fmt.Fprintf(&sb, "%d. %s %s\n", i+1, GetWeekdayShort(w.Weekday), FormatWindow(w))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatConflict объяснение, с каким окном пересекается новое
func FormatConflict(c *schedule.Conflict) string {
	return fmt.Sprintf("⚠️ Пересекается с окном #%d: %s %s",
		c.Index+1, GetWeekdayShort(c.Existing.Weekday), FormatWindow(c.Existing))
}
