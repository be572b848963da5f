package schedule

import (
	"strings"
	"time"

	"mythic-notifier/internal/raiderio"
)

// The weekly reset anchor: Tuesday 13:00 UTC. Runs only count for the
// current period when completed after the most recent reset, regardless of
// the user's chosen notification time.
const (
	resetWeekday = time.Tuesday
	resetHour    = 13
)

// LastReset returns the most recent weekly reset boundary at or before now.
// On the reset day itself, before the reset hour, the boundary rolls back a
// full week: the current week has not started yet.
func LastReset(now time.Time) time.Time {
	now = now.UTC()
	days := (int(now.Weekday()) - int(resetWeekday) + 7) % 7
	anchor := now.AddDate(0, 0, -days)
	boundary := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), resetHour, 0, 0, 0, time.UTC)
	if boundary.After(now) {
		boundary = boundary.AddDate(0, 0, -7)
	}
	return boundary
}

// RunsAfter returns the runs completed strictly after the boundary,
// preserving input order. Runs timestamped exactly at the boundary belong
// to the previous period. Runs with unparsable timestamps are dropped.
func RunsAfter(runs []raiderio.Run, boundary time.Time) []raiderio.Run {
	var after []raiderio.Run
	for _, run := range runs {
		completed, err := parseCompletedAt(run.CompletedAt)
		if err != nil {
			continue
		}
		if completed.After(boundary) {
			after = append(after, run)
		}
	}
	return after
}

// parseCompletedAt strips the trailing zone indicator and parses the rest
// as a naive timestamp. raider.io timestamps are already UTC.
func parseCompletedAt(raw string) (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05", strings.TrimSuffix(raw, "Z"))
}
