package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// Format names an export target
type Format string

const (
	FormatICS   Format = "ics"
	FormatSVG   Format = "svg"
	FormatChart Format = "chart"
)

// DefaultWeeks is how many teaching weeks an ICS export covers by default
const DefaultWeeks = 14

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatICS, FormatSVG, FormatChart:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want ics, svg or chart)", s)
}

// Ext returns the file extension for f
func (f Format) Ext() string {
	if f == FormatChart {
		return ".html"
	}
	return "." + string(f)
}

// TermRange returns the Monday of now's week and the Sunday weeks later
func TermRange(now time.Time, weeks int) (time.Time, time.Time) {
	if weeks < 1 {
		weeks = 1
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	monday := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	return monday, monday.AddDate(0, 0, 7*weeks-1)
}

// Job is one export of a week's timetable
type Job struct {
	Format Format
	Week   timetable.WeekSchedule
	Title  string

	// From and To bound an ICS export
	From, To time.Time

	// Engine and Layout drive an SVG export; Engine also colours the chart
	Engine *layout.Engine
	Layout layout.Options
}

// Run writes the export to w. The count is calendar events for ICS, blocks
// drawn for SVG and courses charted for the chart.
func (j Job) Run(w io.Writer) (int, error) {
	engine := j.Engine
	if engine == nil {
		engine = layout.NewEngine(nil)
	}

	switch j.Format {
	case FormatICS:
		return GenerateICS(j.Week, j.From, j.To, w)
	case FormatSVG:
		l := engine.Build(j.Week, j.Layout)
		l.RecomputeNow(time.Time{})
		err := WriteSVG(l, w, SVGOptions{Dark: j.Layout.Theme.Dark(), Title: j.Title})
		return countBlocks(l), err
	case FormatChart:
		return len(Workload(j.Week)), WriteWorkloadChart(j.Week, engine.Colors(), j.Title, w)
	}
	return 0, fmt.Errorf("unknown export format %q", j.Format)
}

func countBlocks(l layout.Layout) int {
	n := 0
	for _, d := range l.Days {
		n += len(d.Blocks)
	}
	return n
}
