package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Cadence values as stored in the registrations snapshot. These tokens are
// shared with existing personagens.json files and must not change.
const (
	CadenceDaily  = "diária"
	CadenceWeekly = "semanal"
)

// weekdays maps the stored weekday names to cron day-of-week tokens.
var weekdays = map[string]string{
	"segunda": "mon",
	"terça":   "tue",
	"quarta":  "wed",
	"quinta":  "thu",
	"sexta":   "fri",
	"sábado":  "sat",
	"domingo": "sun",
}

// FormatError reports a stored notification time that cannot be translated
// into a trigger.
type FormatError struct {
	Raw string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid notification time %q", e.Raw)
}

// Trigger is a recurring schedule: a time of day, plus a day of week for
// weekly cadences.
type Trigger struct {
	Weekday string // cron token, empty for daily triggers
	Hour    int
	Minute  int
}

// CronSpec renders the trigger as a five-field cron expression.
func (t Trigger) CronSpec() string {
	if t.Weekday == "" {
		return fmt.Sprintf("%d %d * * *", t.Minute, t.Hour)
	}
	return fmt.Sprintf("%d %d * * %s", t.Minute, t.Hour, t.Weekday)
}

// Translate converts a stored cadence and notification time into a Trigger.
// Daily specs look like "14:30 UTC"; weekly specs like "Terça 14:30 UTC"
// with the weekday name matched case-insensitively. The " UTC" marker is
// stripped, not applied: triggers run on the scheduler's clock, which this
// system keeps in UTC.
func Translate(cadence, timeSpec string) (Trigger, error) {
	if cadence == CadenceDaily {
		hour, minute, err := parseTime(timeSpec)
		if err != nil {
			return Trigger{}, &FormatError{Raw: timeSpec}
		}
		return Trigger{Hour: hour, Minute: minute}, nil
	}

	day, rest, found := strings.Cut(timeSpec, " ")
	if !found {
		return Trigger{}, &FormatError{Raw: timeSpec}
	}
	token, ok := weekdays[strings.ToLower(day)]
	if !ok {
		return Trigger{}, &FormatError{Raw: timeSpec}
	}
	hour, minute, err := parseTime(rest)
	if err != nil {
		return Trigger{}, &FormatError{Raw: timeSpec}
	}
	return Trigger{Weekday: token, Hour: hour, Minute: minute}, nil
}

// parseTime extracts hour and minute from "HH:MM[:SS][ UTC]". Fields past
// the minute are ignored.
func parseTime(spec string) (int, int, error) {
	fields := strings.Split(strings.ReplaceAll(spec, " UTC", ""), ":")
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("expected HH:MM, got %q", spec)
	}
	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	minute, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return hour, minute, nil
}
