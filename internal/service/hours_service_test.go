package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jswmusik/youthclub/internal/model"
	"github.com/jswmusik/youthclub/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newServices(t *testing.T) (*memStore, *ClubService, *HoursService, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)
	store := newMemStore()
	return store, NewClubService(store, logger), NewHoursService(store, store, logger), logs
}

func mustWindow(t *testing.T, day schedule.Weekday, cycle schedule.WeekCycle, open, close string) schedule.Window {
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

func draftOf(t *testing.T, windows ...schedule.Window) schedule.WindowSet {
	t.Helper()
	set := schedule.NewWindowSet()
	for _, w := range windows {
		var err error
		set, err = set.Add(w)
		require.NoError(t, err)
	}
	return set
}

// понедельник 2024-01-08, ISO-неделя 2
func monday(hour, minute int) time.Time {
	return time.Date(2024, time.January, 8, hour, minute, 0, 0, time.UTC)
}

func TestHoursService_SaveAndReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, clubs, hours, _ := newServices(t)

	club, err := clubs.CreateClub(ctx, "  Fritidsgården  ")
	require.NoError(t, err)
	assert.Equal(t, "Fritidsgården", club.Name)

	teen := mustWindow(t, schedule.Friday, schedule.CycleAll, "18:00", "22:00")
	teen.Title = "Teen Night"
	draft := draftOf(t,
		mustWindow(t, schedule.Monday, schedule.CycleOdd, "09:00", "12:00"),
		mustWindow(t, schedule.Monday, schedule.CycleEven, "09:00", "12:00"),
		teen,
	)

	revision, err := hours.SaveSchedule(ctx, club.ID, draft)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, revision)

	got, err := hours.Schedule(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.Windows(), got)

	stored, err := clubs.GetClub(ctx, club.ID)
	require.NoError(t, err)
	assert.True(t, stored.ScheduleRevision.Valid)
	assert.Equal(t, revision, stored.ScheduleRevision.UUID)
	assert.Equal(t, 1, store.saves)
}

func TestHoursService_SaveRevalidatesWholeSet(t *testing.T) {
	ctx := context.Background()
	store, clubs, hours, logs := newServices(t)

	club, err := clubs.CreateClub(ctx, "Ungdomens hus")
	require.NoError(t, err)

	// набор в обход Add, например собранный из устаревшего снимка
	draft := schedule.NewWindowSet(
		mustWindow(t, schedule.Monday, schedule.CycleAll, "09:00", "12:00"),
		mustWindow(t, schedule.Monday, schedule.CycleOdd, "11:00", "13:00"),
	)

	_, err = hours.SaveSchedule(ctx, club.ID, draft)
	require.ErrorIs(t, err, ErrInvalidSchedule)
	var conflict *schedule.Conflict
	assert.True(t, errors.As(err, &conflict))
	assert.Equal(t, 0, store.saves)
	assert.Equal(t, 1, logs.FilterMessage("Rejected schedule save").Len())
}

func TestHoursService_SaveUnknownClub(t *testing.T) {
	_, _, hours, _ := newServices(t)

	_, err := hours.SaveSchedule(context.Background(), uuid.New(), schedule.NewWindowSet())
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestHoursService_EmptyScheduleIsClosedWithoutNextOpening(t *testing.T) {
	ctx := context.Background()
	_, clubs, hours, _ := newServices(t)

	club, err := clubs.CreateClub(ctx, "Tomt")
	require.NoError(t, err)

	report, err := hours.Status(ctx, club.ID, monday(10, 0))
	require.NoError(t, err)
	assert.False(t, report.Status.IsOpen)
	assert.Nil(t, report.Next)
	assert.Empty(t, report.Windows)
}

func TestHoursService_Status(t *testing.T) {
	ctx := context.Background()
	_, clubs, hours, _ := newServices(t)

	club, err := clubs.CreateClub(ctx, "Klubben")
	require.NoError(t, err)
	_, err = hours.SaveSchedule(ctx, club.ID, draftOf(t,
		mustWindow(t, schedule.Monday, schedule.CycleAll, "09:00", "12:00"),
		mustWindow(t, schedule.Tuesday, schedule.CycleAll, "09:00", "10:00"),
	))
	require.NoError(t, err)

	open, err := hours.Status(ctx, club.ID, monday(12, 0))
	require.NoError(t, err)
	assert.True(t, open.Status.IsOpen)
	assert.Nil(t, open.Next, "next opening is only computed while closed")

	closed, err := hours.Status(ctx, club.ID, monday(13, 0))
	require.NoError(t, err)
	assert.False(t, closed.Status.IsOpen)
	require.NotNil(t, closed.Next)
	assert.Equal(t, "tomorrow", closed.Next.Label())
	assert.Equal(t, "09:00", closed.Next.At.String())

	_, err = hours.Status(ctx, uuid.New(), monday(13, 0))
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestHoursService_StatusForVisitor(t *testing.T) {
	ctx := context.Background()
	_, clubs, hours, _ := newServices(t)

	club, err := clubs.CreateClub(ctx, "Klubben")
	require.NoError(t, err)

	girls := mustWindow(t, schedule.Monday, schedule.CycleAll, "15:00", "17:00")
	girls.Gender = schedule.GenderGirls
	_, err = hours.SaveSchedule(ctx, club.ID, draftOf(t,
		girls,
		mustWindow(t, schedule.Monday, schedule.CycleAll, "18:00", "20:00"),
	))
	require.NoError(t, err)

	report, err := hours.StatusFor(ctx, club.ID, monday(16, 0), schedule.Visitor{Gender: schedule.GenderBoys})
	require.NoError(t, err)
	assert.False(t, report.Status.IsOpen)
	require.NotNil(t, report.Next)
	assert.Equal(t, "18:00", report.Next.At.String())
}

func TestHoursService_MalformedRowIsSkipped(t *testing.T) {
	ctx := context.Background()
	store, clubs, hours, logs := newServices(t)

	club, err := clubs.CreateClub(ctx, "Klubben")
	require.NoError(t, err)

	store.putRaw(club.ID, model.OpeningWindow{Weekday: 1, WeekCycle: "ALL", OpenTime: "garbage", CloseTime: "12:00:00"})
	store.putRaw(club.ID, model.OpeningWindow{Weekday: 1, WeekCycle: "ALL", OpenTime: "09:00:00", CloseTime: "12:00:00"})

	report, err := hours.Status(ctx, club.ID, monday(10, 0))
	require.NoError(t, err)
	assert.True(t, report.Status.IsOpen)
	assert.Len(t, report.Windows, 1)
	assert.Equal(t, 1, logs.FilterMessage("Skipping malformed opening window").Len())
}

func TestHoursService_OpenDraftKeepsStoredOrder(t *testing.T) {
	ctx := context.Background()
	_, clubs, hours, _ := newServices(t)

	club, err := clubs.CreateClub(ctx, "Klubben")
	require.NoError(t, err)
	saved := draftOf(t,
		mustWindow(t, schedule.Wednesday, schedule.CycleAll, "15:00", "18:00"),
		mustWindow(t, schedule.Monday, schedule.CycleAll, "09:00", "12:00"),
	)
	_, err = hours.SaveSchedule(ctx, club.ID, saved)
	require.NoError(t, err)

	draft, err := hours.OpenDraft(ctx, club.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Windows(), draft.Windows())

	_, err = draft.Add(mustWindow(t, schedule.Monday, schedule.CycleOdd, "10:00", "11:00"))
	var conflict *schedule.Conflict
	assert.ErrorAs(t, err, &conflict)

	_, err = hours.OpenDraft(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrClubNotFound)
}

func TestHoursService_Overview(t *testing.T) {
	ctx := context.Background()
	_, clubs, hours, _ := newServices(t)

	a, err := clubs.CreateClub(ctx, "A-klubben")
	require.NoError(t, err)
	_, err = clubs.CreateClub(ctx, "B-klubben")
	require.NoError(t, err)
	_, err = hours.SaveSchedule(ctx, a.ID, draftOf(t,
		mustWindow(t, schedule.Monday, schedule.CycleAll, "09:00", "12:00"),
	))
	require.NoError(t, err)

	overview, err := hours.Overview(ctx, monday(10, 0))
	require.NoError(t, err)
	require.Len(t, overview, 2)
	assert.Equal(t, "A-klubben", overview[0].Club.Name)
	assert.True(t, overview[0].IsOpen)
	assert.False(t, overview[1].IsOpen)
}

func TestHoursService_AuditSchedules(t *testing.T) {
	ctx := context.Background()
	store, clubs, hours, logs := newServices(t)

	good, err := clubs.CreateClub(ctx, "Good")
	require.NoError(t, err)
	_, err = hours.SaveSchedule(ctx, good.ID, draftOf(t,
		mustWindow(t, schedule.Monday, schedule.CycleOdd, "09:00", "12:00"),
		mustWindow(t, schedule.Monday, schedule.CycleEven, "09:00", "12:00"),
	))
	require.NoError(t, err)

	bad, err := clubs.CreateClub(ctx, "Bad")
	require.NoError(t, err)
	store.putRaw(bad.ID, model.OpeningWindow{Weekday: 2, WeekCycle: "ALL", OpenTime: "09:00:00", CloseTime: "12:00:00"})
	store.putRaw(bad.ID, model.OpeningWindow{Weekday: 2, WeekCycle: "EVEN", OpenTime: "11:00:00", CloseTime: "13:00:00"})

	invalid, err := hours.AuditSchedules(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, invalid)

	entries := logs.FilterMessage("Stored schedule violates overlap invariant").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Bad", entries[0].ContextMap()["club_name"])

	store.failList = errors.New("connection refused")
	_, err = hours.AuditSchedules(ctx)
	assert.Error(t, err)
}
