// Package dialog models the multi-step registration conversation as an
// explicit state machine: a step enum plus a pure transition function. The
// Discord mechanics (modals, select menus) live in the handlers package;
// flow state travels between interactions inside the component custom ID.
package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"mythic-notifier/internal/formatting"
	"mythic-notifier/internal/schedule"
)

// Step identifies where in the registration dialog a flow is.
type Step int

const (
	StepCadence Step = iota // awaiting daily/weekly choice
	StepDay                 // awaiting weekday choice (weekly only)
	StepTime                // awaiting time-of-day choice
	StepDone                // registration data complete
)

// Flow is the state of one in-progress registration dialog.
type Flow struct {
	Step    Step
	Key     string // "Name-Server" as entered in the modal
	Edit    bool   // replace an existing registration on completion
	Cadence string
	Day     string
	Time    string
}

// Prompt is the next question to put to the user: a message plus a set of
// mutually exclusive choices.
type Prompt struct {
	Message string
	Options []string
}

// CadenceOptions are the choices offered at StepCadence. The lowercased
// value is the cadence token stored in the snapshot.
var CadenceOptions = []string{"Diária", "Semanal"}

// WeekdayOptions are the choices offered at StepDay, stored as chosen.
var WeekdayOptions = []string{
	"Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado", "Domingo",
}

// HourOptions lists every full hour of the day, rendered the way the time
// is stored ("HH:00 UTC").
func HourOptions() []string {
	options := make([]string, 24)
	for hour := range options {
		options[hour] = fmt.Sprintf("%02d:00 UTC", hour)
	}
	return options
}

// Start begins a flow for a character key. Edit flows replace the existing
// registration for the key when they complete.
func Start(key string, edit bool) (Flow, Prompt) {
	flow := Flow{Step: StepCadence, Key: key, Edit: edit}
	return flow, Prompt{Message: formatting.MsgChooseCadence, Options: CadenceOptions}
}

// Advance feeds one user choice into the flow and returns the next state
// plus the prompt to show. When the returned flow reaches StepDone the
// prompt is empty and Cadence/TimeSpec carry the values to persist.
func Advance(f Flow, choice string) (Flow, Prompt) {
	switch f.Step {
	case StepCadence:
		f.Cadence = strings.ToLower(choice)
		if f.Cadence == schedule.CadenceDaily {
			f.Step = StepTime
			return f, Prompt{Message: formatting.MsgChooseDailyTime(), Options: HourOptions()}
		}
		f.Step = StepDay
		return f, Prompt{Message: formatting.MsgChooseWeekday(), Options: WeekdayOptions}
	case StepDay:
		f.Day = choice
		f.Step = StepTime
		return f, Prompt{Message: formatting.MsgChooseWeeklyTime(choice), Options: HourOptions()}
	case StepTime:
		f.Time = choice
		f.Step = StepDone
	}
	return f, Prompt{}
}

// TimeSpec is the notification time string to persist: "HH:MM UTC" for
// daily flows, "<dia> HH:MM UTC" for weekly ones.
func (f Flow) TimeSpec() string {
	if f.Day == "" {
		return f.Time
	}
	return f.Day + " " + f.Time
}

// SplitKey separates "Name-Server" at the first hyphen.
func (f Flow) SplitKey() (name, server string) {
	name, server, _ = strings.Cut(f.Key, "-")
	return name, server
}

// Prefix marks component custom IDs that belong to the registration dialog.
const Prefix = "chardialog"

// Encode packs the flow into a component custom ID. The key goes last so a
// hyphenated or otherwise odd character name cannot break the framing.
func (f Flow) Encode() string {
	edit := "0"
	if f.Edit {
		edit = "1"
	}
	return strings.Join([]string{Prefix, strconv.Itoa(int(f.Step)), edit, f.Cadence, f.Day, f.Key}, "|")
}

// Decode unpacks a flow from a custom ID produced by Encode.
func Decode(customID string) (Flow, bool) {
	parts := strings.SplitN(customID, "|", 6)
	if len(parts) != 6 || parts[0] != Prefix {
		return Flow{}, false
	}
	step, err := strconv.Atoi(parts[1])
	if err != nil {
		return Flow{}, false
	}
	return Flow{
		Step:    Step(step),
		Edit:    parts[2] == "1",
		Cadence: parts[3],
		Day:     parts[4],
		Key:     parts[5],
	}, true
}
