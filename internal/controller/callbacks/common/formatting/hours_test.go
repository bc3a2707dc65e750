package formatting

import (
	"testing"
	"time"

	"github.com/jswmusik/youthclub/internal/model"
	"github.com/jswmusik/youthclub/internal/schedule"
	"github.com/jswmusik/youthclub/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, day schedule.Weekday, cycle schedule.WeekCycle, open, close string) schedule.Window {
	t.Helper()
	o, err := schedule.ParseClock(open)
	require.NoError(t, err)
	c, err := schedule.ParseClock(close)
	require.NoError(t, err)
	return schedule.Window{
		Weekday:     day,
		Cycle:       cycle,
		Open:        o,
		Close:       c,
		Gender:      schedule.GenderAll,
		Restriction: schedule.Restriction{Mode: schedule.RestrictionNone},
	}
}

func intPtr(v int) *int { return &v }

func TestFormatWindow(t *testing.T) {
	w := window(t, schedule.Friday, schedule.CycleOdd, "18:00", "22:00")
	w.Title = "Teen <Night>"
	w.Gender = schedule.GenderGirls
	w.Restriction = schedule.Restriction{Mode: schedule.RestrictionAge, Min: intPtr(13), Max: intPtr(17)}

	assert.Equal(t, "18:00-22:00 · нечётные недели · Teen &lt;Night&gt; · 👧 девочки · возраст 13-17", FormatWindow(w))

	plain := window(t, schedule.Monday, schedule.CycleAll, "09:00", "12:00")
	assert.Equal(t, "09:00-12:00", FormatWindow(plain))
}

func TestRestrictionLabel(t *testing.T) {
	assert.Equal(t, "", RestrictionLabel(schedule.Restriction{Mode: schedule.RestrictionNone}))
	assert.Equal(t, "класс от 7", RestrictionLabel(schedule.Restriction{Mode: schedule.RestrictionGrade, Min: intPtr(7)}))
	assert.Equal(t, "возраст до 12", RestrictionLabel(schedule.Restriction{Mode: schedule.RestrictionAge, Max: intPtr(12)}))
}

func TestFormatWeek_GroupsByWeekdayAndMarksToday(t *testing.T) {
	windows := []schedule.Window{
		window(t, schedule.Wednesday, schedule.CycleAll, "15:00", "18:00"),
		window(t, schedule.Monday, schedule.CycleAll, "13:00", "14:00"),
		window(t, schedule.Monday, schedule.CycleEven, "09:00", "12:00"),
	}

	got := FormatWeek(windows, schedule.Wednesday)
	want := "<b>Понедельник</b>\n" +
		"   09:00-12:00 · чётные недели\n" +
		"   13:00-14:00\n" +
		"👉 <b>Среда (сегодня)</b>\n" +
		"   15:00-18:00"
	assert.Equal(t, want, got)

	assert.Equal(t, "📭 Расписание пока не заполнено", FormatWeek(nil, schedule.Monday))
}

func TestOpeningLabel(t *testing.T) {
	assert.Equal(t, "сегодня", OpeningLabel(schedule.Opening{DayOffset: 0, Weekday: schedule.Monday}))
	assert.Equal(t, "завтра", OpeningLabel(schedule.Opening{DayOffset: 1, Weekday: schedule.Tuesday}))
	assert.Equal(t, "во вторник", OpeningLabel(schedule.Opening{DayOffset: 6, Weekday: schedule.Tuesday}))
	assert.Equal(t, "в среду", OpeningLabel(schedule.Opening{DayOffset: 2, Weekday: schedule.Wednesday}))
}

func TestFormatStatus(t *testing.T) {
	open := &service.Report{Status: schedule.Status{IsOpen: true}}
	assert.Equal(t, "🟢 Сейчас открыто", FormatStatus(open))

	closedForever := &service.Report{}
	assert.Contains(t, FormatStatus(closedForever), "открытий нет")

	at, err := schedule.ParseClock("15:30")
	require.NoError(t, err)
	closed := &service.Report{Next: &schedule.Opening{DayOffset: 3, Weekday: schedule.Friday, At: at}}
	assert.Equal(t, "🔴 Сейчас закрыто\n⏰ Откроется в пятницу в 15:30", FormatStatus(closed))
}

func TestFormatClubProfile(t *testing.T) {
	now := time.Date(2024, time.January, 8, 10, 0, 0, 0, time.UTC) // понедельник
	report := &service.Report{
		Club:    &model.Club{Name: "Fritidsgården"},
		Windows: []schedule.Window{window(t, schedule.Monday, schedule.CycleAll, "09:00", "12:00")},
		Status:  schedule.Status{IsOpen: true},
	}

	got := FormatClubProfile(report, now)
	assert.Contains(t, got, "<b>Fritidsgården</b>")
	assert.Contains(t, got, "🟢 Сейчас открыто")
	assert.Contains(t, got, "👉 <b>Понедельник (сегодня)</b>")
}

func TestFormatVisitorFilter(t *testing.T) {
	assert.Equal(t, "🔎 Показаны окна, куда могут прийти: 👧 девочки", FormatVisitorFilter(schedule.GenderGirls))
}

func TestFormatOverview(t *testing.T) {
	got := FormatOverview([]service.ClubStatus{
		{Club: &model.Club{Name: "A"}, IsOpen: true},
		{Club: &model.Club{Name: "B"}},
	})
	assert.Contains(t, got, "2 клуба")
	assert.Contains(t, got, "сейчас открыто: 1")
	assert.Contains(t, got, "🟢 A\n🔴 B")

	assert.Equal(t, "Клубов пока нет.", FormatOverview(nil))
}

func TestFormatDraftAndConflict(t *testing.T) {
	draft, err := schedule.NewWindowSet().Add(window(t, schedule.Monday, schedule.CycleAll, "09:00", "12:00"))
	require.NoError(t, err)

	got := FormatDraft("Klubben", draft)
	assert.Contains(t, got, "1 окно")
	assert.Contains(t, got, "1. Пн 09:00-12:00")

	assert.Contains(t, FormatDraft("Klubben", schedule.NewWindowSet()), "Пока пусто.")

	_, err = draft.Add(window(t, schedule.Monday, schedule.CycleOdd, "11:00", "13:00"))
	var conflict *schedule.Conflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "⚠️ Пересекается с окном #1: Пн 09:00-12:00", FormatConflict(conflict))
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "окно", PluralizeWindows(21))
	assert.Equal(t, "окна", PluralizeWindows(3))
	assert.Equal(t, "окон", PluralizeWindows(11))
	assert.Equal(t, "клубов", PluralizeClubs(0))
}
