package schedule

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, s string) Clock {
	t.Helper()
	c, err := ParseClock(s)
	require.NoError(t, err)
	return c
}

func window(t *testing.T, day Weekday, cycle WeekCycle, open, close string) Window {
	t.Helper()
	return Window{
		Weekday:     day,
		Cycle:       cycle,
		Open:        clock(t, open),
		Close:       clock(t, close),
		Gender:      GenderAll,
		Restriction: Restriction{Mode: RestrictionNone},
	}
}

func TestCheckOverlap(t *testing.T) {
	tests := []struct {
		name      string
		existing  []Window
		candidate Window
		conflict  bool
	}{
		{
			name:      "all vs all partial overlap",
			existing:  []Window{window(t, Monday, CycleAll, "09:00", "12:00")},
			candidate: window(t, Monday, CycleAll, "11:00", "13:00"),
			conflict:  true,
		},
		{
			name:      "all conflicts with odd at the same time",
			existing:  []Window{window(t, Monday, CycleAll, "09:00", "12:00")},
			candidate: window(t, Monday, CycleOdd, "09:00", "12:00"),
			conflict:  true,
		},
		{
			name:      "odd conflicts with all",
			existing:  []Window{window(t, Monday, CycleOdd, "09:00", "12:00")},
			candidate: window(t, Monday, CycleAll, "10:00", "11:00"),
			conflict:  true,
		},
		{
			name:      "odd and even never overlap",
			existing:  []Window{window(t, Monday, CycleOdd, "09:00", "12:00")},
			candidate: window(t, Monday, CycleEven, "09:00", "12:00"),
			conflict:  false,
		},
		{
			name:      "odd vs odd overlap",
			existing:  []Window{window(t, Monday, CycleOdd, "09:00", "12:00")},
			candidate: window(t, Monday, CycleOdd, "11:59", "13:00"),
			conflict:  true,
		},
		{
			name:      "identical all windows",
			existing:  []Window{window(t, Monday, CycleAll, "09:00", "12:00")},
			candidate: window(t, Monday, CycleAll, "09:00", "12:00"),
			conflict:  true,
		},
		{
			name:      "back to back is not an overlap",
			existing:  []Window{window(t, Monday, CycleAll, "09:00", "12:00")},
			candidate: window(t, Monday, CycleAll, "12:00", "14:00"),
			conflict:  false,
		},
		{
			name:      "other weekday",
			existing:  []Window{window(t, Monday, CycleAll, "09:00", "12:00")},
			candidate: window(t, Tuesday, CycleAll, "09:00", "12:00"),
			conflict:  false,
		},
		{
			name:      "empty set",
			candidate: window(t, Sunday, CycleAll, "09:00", "12:00"),
			conflict:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckOverlap(tt.existing, tt.candidate)
			if !tt.conflict {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.existing[got.Index], got.Existing)
		})
	}
}

func TestCheckOverlap_ReturnsFirstConflict(t *testing.T) {
	existing := []Window{
		window(t, Monday, CycleAll, "08:00", "09:00"),
		window(t, Monday, CycleEven, "10:00", "11:00"),
		window(t, Monday, CycleAll, "12:00", "13:00"),
	}

	got := CheckOverlap(existing, window(t, Monday, CycleEven, "08:30", "12:30"))

	require.NotNil(t, got)
	assert.Equal(t, 0, got.Index)
	assert.Contains(t, got.Error(), "08:00-09:00")
	assert.Contains(t, got.Error(), "ALL")
}

func TestWindowSet_Add(t *testing.T) {
	set := NewWindowSet()

	set, err := set.Add(window(t, Monday, CycleOdd, "09:00", "12:00"))
	require.NoError(t, err)
	set, err = set.Add(window(t, Monday, CycleEven, "09:00", "12:00"))
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())

	rejected, err := set.Add(window(t, Monday, CycleAll, "11:00", "13:00"))
	var conflict *Conflict
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, CycleOdd, conflict.Existing.Cycle)
	assert.Equal(t, 2, rejected.Len(), "rejected add must leave the set unchanged")
	assert.Equal(t, set.Windows(), rejected.Windows())
}

func TestWindowSet_AddFillsDefaults(t *testing.T) {
	w := window(t, Friday, CycleAll, "18:00", "21:00")
	w.Gender = ""
	w.Restriction = Restriction{}

	set, err := NewWindowSet().Add(w)
	require.NoError(t, err)

	got := set.Windows()[0]
	assert.Equal(t, GenderAll, got.Gender)
	assert.Equal(t, RestrictionNone, got.Restriction.Mode)
}

func TestWindowSet_RejectsZeroLengthWindow(t *testing.T) {
	set := NewWindowSet(window(t, Monday, CycleAll, "09:00", "12:00"))

	_, err := set.Add(window(t, Tuesday, CycleAll, "10:00", "10:00"))
	assert.ErrorIs(t, err, ErrEmptyRange)

	_, err = set.Add(window(t, Tuesday, CycleAll, "11:00", "10:00"))
	assert.ErrorIs(t, err, ErrInvertedRange)
}

func TestWindowSet_RejectsValuesOutsideClosedSets(t *testing.T) {
	lowerCycle := window(t, Monday, CycleAll, "09:00", "12:00")
	lowerCycle.Cycle = "odd"
	lowerGender := window(t, Monday, CycleAll, "09:00", "12:00")
	lowerGender.Gender = "girls"
	lowerMode := window(t, Monday, CycleAll, "09:00", "12:00")
	lowerMode.Restriction = Restriction{Mode: "age", Min: intPtr(13)}

	tests := []struct {
		name   string
		window Window
		want   error
	}{
		{"lower case cycle", lowerCycle, ErrInvalidCycle},
		{"lower case gender", lowerGender, ErrInvalidGender},
		{"lower case restriction", lowerMode, ErrInvalidRestriction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := NewWindowSet().Add(tt.window)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, 0, set.Len())

			assert.ErrorIs(t, ValidateAll([]Window{tt.window}), tt.want)
		})
	}

	// с отклонённым "odd" в наборе окно EVEN на то же время по-прежнему допустимо
	set, err := NewWindowSet().Add(window(t, Monday, CycleOdd, "09:00", "12:00"))
	require.NoError(t, err)
	_, err = set.Add(window(t, Monday, CycleEven, "09:00", "12:00"))
	assert.NoError(t, err)
}

func TestWindowSet_RemoveDoesNotMutateOriginal(t *testing.T) {
	set := NewWindowSet(
		window(t, Monday, CycleAll, "09:00", "12:00"),
		window(t, Tuesday, CycleAll, "09:00", "12:00"),
	)

	next, err := set.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, 1, next.Len())
	assert.Equal(t, Tuesday, next.Windows()[0].Weekday)
	assert.Equal(t, 2, set.Len())

	_, err = set.Remove(5)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestWindowSet_WindowsReturnsCopy(t *testing.T) {
	set := NewWindowSet(window(t, Monday, CycleAll, "09:00", "12:00"))

	ws := set.Windows()
	ws[0].Title = "changed"

	assert.Empty(t, set.Windows()[0].Title)
}

func TestValidateAll(t *testing.T) {
	ok := []Window{
		window(t, Monday, CycleOdd, "09:00", "12:00"),
		window(t, Monday, CycleEven, "09:00", "12:00"),
		window(t, Monday, CycleAll, "12:00", "14:00"),
	}
	assert.NoError(t, ValidateAll(ok))
	assert.NoError(t, ValidateAll(nil))

	bad := append(ok, window(t, Monday, CycleAll, "13:00", "15:00"))
	err := ValidateAll(bad)
	var conflict *Conflict
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, 2, conflict.Index)
	assert.Contains(t, err.Error(), "window 4")

	broken := []Window{window(t, Monday, CycleAll, "09:00", "09:00")}
	assert.ErrorIs(t, ValidateAll(broken), ErrEmptyRange)
}
