package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/jswmusik/youthclub/internal/app"
	"github.com/jswmusik/youthclub/internal/schedule"
	"go.uber.org/zap"
)

const atLayout = "2006-01-02T15:04"

func main() {
	at := flag.String("at", "", "local wall-clock moment to evaluate, "+atLayout+" (default now)")
	env := flag.String("env", "development", "logger environment")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: hours [-at %s] windows.json\n", atLayout)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	logger := app.NewLogger(*env)
	defer logger.Sync()

	now := time.Now()
	if *at != "" {
		parsed, err := time.Parse(atLayout, *at)
		if err != nil {
			log.Fatalf("invalid -at: %v", err)
		}
		now = parsed
	}

	records, err := readRecords(flag.Arg(0))
	if err != nil {
		logger.Fatal("Failed to read windows", zap.String("path", flag.Arg(0)), zap.Error(err))
	}

	windows, skipped := schedule.DecodeRecords(records)
	for _, sk := range skipped {
		logger.Warn("Skipping malformed opening window",
			zap.Int("index", sk.Index),
			zap.Error(sk.Err))
	}

	report(os.Stdout, now, windows)
}

func readRecords(path string) ([]schedule.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var records []schedule.Record
	if err := json.NewDecoder(f).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	return records, nil
}

func report(w io.Writer, now time.Time, windows []schedule.Window) {
	week := schedule.WeekNumber(now)
	fmt.Fprintf(w, "%s %s, ISO week %d (%s)\n",
		schedule.WeekdayOf(now), now.Format(atLayout), week, parity(week))

	status := schedule.Evaluate(now, windows)
	if len(status.Today) == 0 {
		fmt.Fprintln(w, "No windows today")
	}
	for _, win := range status.Today {
		line := "  " + win.Range()
		if win.Title != "" {
			line += "  " + win.Title
		}
		fmt.Fprintln(w, line)
	}

	if status.IsOpen {
		fmt.Fprintln(w, "Open now")
		return
	}

	next, ok := schedule.NextOpening(now, windows)
	if !ok {
		fmt.Fprintln(w, "Closed, no opening within the next week")
		return
	}
	fmt.Fprintf(w, "Closed, opens %s at %s\n", next.Label(), next.At)
}

func parity(week int) string {
	if week%2 == 1 {
		return "odd"
	}
	return "even"
}
