package timetable

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Weekdays lists the teaching days in display order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// ErrDuplicateDay is returned when a week lists the same day more than once.
var ErrDuplicateDay = errors.New("duplicate day in schedule")

// TimeSlot is one cell of a day's raw schedule.
// Value may span several lines; an empty Value is a free slot.
type TimeSlot struct {
	Start string `json:"start"` // "08:00"
	End   string `json:"end"`   // "09:00"
	Value string `json:"value"` // "CE 3A 141 (P) SMITH (GF1)"
}

// DaySchedule holds the ordered slots of a single weekday
type DaySchedule struct {
	Day  string     `json:"day"`
	Data []TimeSlot `json:"data"`
}

// WeekSchedule is the set of day schedules returned by the timetable API
type WeekSchedule []DaySchedule

// Day returns the schedule for the named day.
func (w WeekSchedule) Day(name string) (DaySchedule, bool) {
	name = NormalizeDay(name)
	for _, d := range w {
		if d.Day == name {
			return d, true
		}
	}
	return DaySchedule{}, false
}

// Normalize title-cases every day name so lookups don't depend on how the
// upstream spelled them ("MONDAY", "monday ").
func (w WeekSchedule) Normalize() WeekSchedule {
	out := make(WeekSchedule, len(w))
	for i, d := range w {
		out[i] = DaySchedule{Day: NormalizeDay(d.Day), Data: d.Data}
	}
	return out
}

// Validate enforces that each day appears at most once.
func (w WeekSchedule) Validate() error {
	seen := make(map[string]bool)
	for _, d := range w {
		name := NormalizeDay(d.Day)
		if seen[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateDay, name)
		}
		seen[name] = true
	}
	return nil
}

// NormalizeDay title-cases a day name, e.g. "wednesday" -> "Wednesday".
func NormalizeDay(name string) string {
	return cases.Title(language.English).String(strings.ToLower(strings.TrimSpace(name)))
}

// Request is the body of a get_time_table call
type Request struct {
	Filename     string `json:"filename" validate:"required"`
	ClassPattern string `json:"class_pattern" validate:"required"`
	IsExam       bool   `json:"is_exam,omitempty"`
}

// WeekResponse is the API response for a class timetable
type WeekResponse struct {
	Data    WeekSchedule `json:"data"`
	Version string       `json:"version"`
}

// ExamData is one sitting in an exam timetable
type ExamData struct {
	Start       string `json:"start"`
	End         string `json:"end"`
	Value       string `json:"value"`
	Class       string `json:"class"`
	Location    string `json:"location"`
	Invigilator string `json:"invigilator"`
}

// ExamDay groups the sittings of one calendar date, e.g. "Monday, 12th January 2025"
type ExamDay struct {
	Day  string     `json:"day"`
	Data []ExamData `json:"data"`
}

// ExamResponse is the API response for an exam timetable
type ExamResponse struct {
	Data    []ExamDay `json:"data"`
	Version string    `json:"version"`
}
