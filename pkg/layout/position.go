package layout

import (
	"fmt"
	"strings"
)

// View selects the grid orientation
type View string

const (
	// ViewWeek lays days out as rows with time running left to right
	ViewWeek View = "week"
	// ViewDay lays one day out as a column with time running downwards
	ViewDay View = "day"
)

// ParseView validates a view name; "" means week.
func ParseView(s string) (View, error) {
	switch v := View(strings.ToLower(strings.TrimSpace(s))); v {
	case ViewWeek, ViewDay:
		return v, nil
	case "":
		return ViewWeek, nil
	}
	return "", fmt.Errorf("unknown view %q (want week or day)", s)
}

// Window returns the time axis the view uses
func (v View) Window() Window {
	if v == ViewDay {
		return DayWindow
	}
	return WeekWindow
}

const (
	// splitFill is the share of the cross axis overlapping events fill
	splitFill = 95.0
	// dayFill is the width of a lone event in the day view
	dayFill = 95.0
	// dayMinHeightPx keeps short day-view blocks readable
	dayMinHeightPx = 40
)

// Geometry is a block's box in percentages of the day's area
type Geometry struct {
	Left        float64 `json:"left"`
	Top         float64 `json:"top"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	MinHeightPx int     `json:"minHeightPx,omitempty"`
}

// Place converts an event into its box. The week view runs time along the
// horizontal axis and splits overlaps vertically; the day view runs time
// downwards and splits overlaps horizontally.
func Place(e ProcessedEvent, v View) Geometry {
	if v == ViewDay {
		left, width := splitAxis(e, dayFill)
		return Geometry{
			Top:         e.StartPosition,
			Height:      e.Duration,
			Left:        left,
			Width:       width,
			MinHeightPx: dayMinHeightPx,
		}
	}

	span := e.HorizontalSpan
	if span < 1 {
		span = 1
	}
	top, height := splitAxis(e, 100)
	return Geometry{
		Left:   e.StartPosition,
		Width:  e.Duration * float64(span),
		Top:    top,
		Height: height,
	}
}

// splitAxis returns the offset and size on the axis overlaps share
func splitAxis(e ProcessedEvent, single float64) (offset, size float64) {
	if e.TotalSplits <= 1 {
		return 0, single
	}
	n := float64(e.TotalSplits)
	return float64(e.SplitIndex) * 100 / n, splitFill / n
}
