package exporter

import (
	"io"
	"math"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/palette"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

const otherCourse = "Other"

// Workload sums contact hours per course code for each teaching day.
// Lines without a course code count towards "Other".
func Workload(week timetable.WeekSchedule) map[string][]float64 {
	hours := make(map[string][]float64)
	for i, name := range timetable.Weekdays {
		day, ok := week.Day(name)
		if !ok {
			continue
		}
		for _, slot := range layout.Merge(day.Data) {
			length := layout.TimeToHours(slot.End) - layout.TimeToHours(slot.Start)
			if math.IsNaN(length) || length <= 0 {
				continue
			}
			for _, ev := range layout.Normalize(slot, false) {
				code := palette.CourseCode(ev.Value)
				if code == "" {
					code = otherCourse
				}
				if hours[code] == nil {
					hours[code] = make([]float64, len(timetable.Weekdays))
				}
				hours[code][i] += length
			}
		}
	}
	return hours
}

// WriteWorkloadChart renders a stacked bar chart of daily hours per course
// as a standalone HTML page, using each course's palette colour.
func WriteWorkloadChart(week timetable.WeekSchedule, colors *palette.Resolver, title string, w io.Writer) error {
	if colors == nil {
		colors = palette.Default()
	}
	if title == "" {
		title = "Weekly workload"
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "1000px",
			Height:    "560px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Contact hours per course",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
	)
	bar.SetXAxis(timetable.Weekdays)

	hours := Workload(week)
	codes := make([]string, 0, len(hours))
	for code := range hours {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		data := make([]opts.BarData, len(hours[code]))
		for i, h := range hours[code] {
			data[i] = opts.BarData{Value: h}
		}
		bar.AddSeries(code, data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "hours"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colors.Scheme(code).Border}),
		)
	}

	return bar.Render(w)
}
