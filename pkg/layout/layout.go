// Package layout turns raw day schedules into positioned, coloured blocks
// for a week or day grid. Everything here is pure: the same schedule, view,
// theme and clock always produce the same layout.
package layout

import (
	"sort"
	"time"

	"github.com/EaseCHAOS/easechaos/pkg/palette"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// ProcessedEvent is one label line of a merged session, positioned on the
// view's time axis
type ProcessedEvent struct {
	Start             string  `json:"start"`
	End               string  `json:"end"`
	Value             string  `json:"value"`
	StartPosition     float64 `json:"startPosition"`
	Duration          float64 `json:"duration"`
	SplitIndex        int     `json:"splitIndex"`
	TotalSplits       int     `json:"totalSplits"`
	IsOverlapping     bool    `json:"isOverlapping"`
	HorizontalSpan    int     `json:"horizontalSpan"`
	ContinuationGroup string  `json:"continuationGroup,omitempty"`
	LineIndex         int     `json:"lineIndex"`
	LineCount         int     `json:"lineCount"`
}

// Block is an event with its box and colours
type Block struct {
	Event    ProcessedEvent `json:"event"`
	Geometry Geometry       `json:"geometry"`
	Colors   palette.Swatch `json:"colors"`
}

// DayLayout holds one day's blocks. Empty is set when the schedule has no
// entry for the day or nothing to show on it.
type DayLayout struct {
	Day    string  `json:"day"`
	Blocks []Block `json:"blocks"`
	Empty  bool    `json:"empty"`
}

// NowIndicator is the current-time marker
type NowIndicator struct {
	Position float64 `json:"position"`
	Visible  bool    `json:"visible"`
}

// Layout is a fully positioned view
type Layout struct {
	View  View         `json:"view"`
	Days  []DayLayout  `json:"days"`
	Ticks []Tick       `json:"ticks"`
	Now   NowIndicator `json:"now"`
}

// Options controls a Build
type Options struct {
	View  View
	Theme palette.ThemeContext
	// Day picks the day shown in the day view; empty means Monday
	Day string
	// Now places the indicator; the zero time hides it
	Now time.Time
}

// Engine builds layouts with a fixed palette
type Engine struct {
	colors *palette.Resolver
}

// NewEngine returns an engine colouring blocks with colors; nil uses the
// built-in palette.
func NewEngine(colors *palette.Resolver) *Engine {
	if colors == nil {
		colors = palette.Default()
	}
	return &Engine{colors: colors}
}

// Colors returns the palette the engine colours blocks with
func (e *Engine) Colors() *palette.Resolver {
	return e.colors
}

// Build lays out week for opts.View. The week view always has the five
// teaching days in order; the day view has just opts.Day.
func (e *Engine) Build(week timetable.WeekSchedule, opts Options) Layout {
	view := opts.View
	if view == "" {
		view = ViewWeek
	}

	days := timetable.Weekdays
	if view == ViewDay {
		day := opts.Day
		if day == "" {
			day = timetable.Weekdays[0]
		}
		days = []string{timetable.NormalizeDay(day)}
	}

	l := Layout{
		View:  view,
		Ticks: view.Window().Ticks(),
	}
	for _, name := range days {
		l.Days = append(l.Days, e.buildDay(week, name, view, opts.Theme))
	}
	l.RecomputeNow(opts.Now)
	return l
}

func (e *Engine) buildDay(week timetable.WeekSchedule, name string, view View, theme palette.ThemeContext) DayLayout {
	day, ok := week.Day(name)
	if !ok {
		return DayLayout{Day: name, Empty: true}
	}

	events := ProcessDay(day, view)
	blocks := make([]Block, 0, len(events))
	for _, ev := range events {
		blocks = append(blocks, Block{
			Event:    ev,
			Geometry: Place(ev, view),
			Colors:   e.colors.Resolve(ev.Value, theme),
		})
	}
	return DayLayout{Day: name, Blocks: blocks, Empty: len(blocks) == 0}
}

// RecomputeNow moves the now indicator without touching the blocks. Hosts
// call it on a one-minute tick.
func (l *Layout) RecomputeNow(now time.Time) {
	if now.IsZero() {
		l.Now = NowIndicator{}
		return
	}
	pos, ok := NowPosition(now, l.View.Window())
	l.Now = NowIndicator{Position: pos, Visible: ok}
}

// ProcessDay runs merge, normalize, partition and positioning for one day.
// Events come back ordered by start position, then split index.
func ProcessDay(day timetable.DaySchedule, view View) []ProcessedEvent {
	w := view.Window()

	var events []ProcessedEvent
	for _, slot := range Merge(day.Data) {
		for _, ev := range Normalize(slot, view == ViewWeek) {
			ev.StartPosition = w.Position(ev.Start)
			ev.Duration = w.Duration(ev.Start, ev.End)
			events = append(events, ev)
		}
	}

	events = Partition(events)
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].StartPosition != events[j].StartPosition {
			return events[i].StartPosition < events[j].StartPosition
		}
		return events[i].SplitIndex < events[j].SplitIndex
	})
	return events
}
