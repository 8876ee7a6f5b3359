package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Window maps clock times onto a 0-100 percentage axis
type Window struct {
	Start float64 // first hour shown
	Span  float64 // hours covered
	Step  float64 // hours between grid ticks
}

var (
	// DayWindow covers 07:00 to 20:00 on hourly rows
	DayWindow = Window{Start: 7, Span: 13, Step: 1}
	// WeekWindow covers 27 half-hour columns from 07:00
	WeekWindow = Window{Start: 7, Span: 13.5, Step: 0.5}
)

// The now indicator is only drawn between these hours
const (
	nowVisibleFrom  = 7.0
	nowVisibleUntil = 20.0
)

// TimeToHours converts "HH:MM" to fractional hours, "08:30" -> 8.5.
// Malformed input yields NaN, which propagates through every position
// computed from it.
func TimeToHours(s string) float64 {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return math.NaN()
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return math.NaN()
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return math.NaN()
	}
	return float64(h) + float64(m)/60
}

// Position returns where t sits on the axis. Times outside the window give
// values outside 0-100; callers decide whether to clip.
func (w Window) Position(t string) float64 {
	return w.position(TimeToHours(t))
}

// Duration returns the length of start..end as a percentage of the axis
func (w Window) Duration(start, end string) float64 {
	return (TimeToHours(end) - TimeToHours(start)) / w.Span * 100
}

func (w Window) position(hours float64) float64 {
	return (hours - w.Start) / w.Span * 100
}

// Columns is the number of grid cells along the axis
func (w Window) Columns() int {
	return int(math.Round(w.Span / w.Step))
}

// Tick is a labelled grid line
type Tick struct {
	Label    string  `json:"label"`
	Position float64 `json:"position"`
}

// Ticks returns one labelled line per grid step, including the closing one.
// Hour steps are labelled "7 AM", half-hour steps "07:30".
func (w Window) Ticks() []Tick {
	n := w.Columns()
	ticks := make([]Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		h := w.Start + float64(i)*w.Step
		ticks = append(ticks, Tick{Label: w.label(h), Position: w.position(h)})
	}
	return ticks
}

func (w Window) label(h float64) string {
	hour := int(h)
	minute := int(math.Round((h - float64(hour)) * 60))
	if w.Step < 1 {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d %s", display, suffix)
}

// NowPosition places the current time on w. It reports false outside
// 07:00-20:00, when the indicator should be hidden.
func NowPosition(now time.Time, w Window) (float64, bool) {
	h := float64(now.Hour()) + float64(now.Minute())/60
	if h < nowVisibleFrom || h > nowVisibleUntil {
		return 0, false
	}
	return w.position(h), true
}
