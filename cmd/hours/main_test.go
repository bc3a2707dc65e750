package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jswmusik/youthclub/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `[
  {"weekday": 1, "week_cycle": "ALL", "open_time": "09:00:00", "close_time": "12:00:00", "title": "Morning"},
  {"weekday": 2, "week_cycle": "EVEN", "open_time": "15:00", "close_time": "18:00"},
  {"weekday": 2, "week_cycle": "SOMETIMES", "open_time": "15:00", "close_time": "18:00"}
]`

func TestReadRecordsAndReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "windows.json")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	records, err := readRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	windows, skipped := schedule.DecodeRecords(records)
	require.Len(t, windows, 2)
	require.Len(t, skipped, 1)
	assert.Equal(t, 2, skipped[0].Index)

	// понедельник 2024-01-08, неделя 2
	var out bytes.Buffer
	report(&out, time.Date(2024, time.January, 8, 10, 0, 0, 0, time.UTC), windows)
	assert.Equal(t, "Monday 2024-01-08T10:00, ISO week 2 (even)\n  09:00-12:00  Morning\nOpen now\n", out.String())

	out.Reset()
	report(&out, time.Date(2024, time.January, 8, 13, 0, 0, 0, time.UTC), windows)
	assert.Contains(t, out.String(), "Closed, opens tomorrow at 15:00")
}

func TestReport_NoWindows(t *testing.T) {
	var out bytes.Buffer
	report(&out, time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC), nil)
	assert.Equal(t, "Monday 2024-01-01T10:00, ISO week 1 (odd)\nNo windows today\nClosed, no opening within the next week\n", out.String())
}

func TestReadRecords_BadFile(t *testing.T) {
	_, err := readRecords(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o600))
	_, err = readRecords(path)
	assert.Error(t, err)
}
