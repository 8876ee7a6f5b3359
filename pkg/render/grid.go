// Package render draws layouts, agendas and exam lists for the terminal.
package render

import (
	"fmt"
	"math"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
)

// EmptyDayMessage is shown in place of a day with nothing scheduled
const EmptyDayMessage = "No schedule available"

const (
	gridColor = "240"
	nowColor  = "196"

	weekGutter = 11 // "Wednesday" plus padding
	dayGutter  = 7  // "12 PM" plus padding

	// dayMinRows is the terminal counterpart of the 40px block floor
	dayMinRows = 2
)

// Options sizes the drawing
type Options struct {
	// Width is the number of columns for the time grid, excluding labels
	Width int
	// Height is the number of rows for the day view's time axis
	Height int
}

func (o Options) withDefaults(v layout.View) Options {
	if o.Width <= 0 {
		if v == layout.ViewDay {
			o.Width = 72
		} else {
			o.Width = 108 // four columns per half hour
		}
	}
	if o.Height <= 0 {
		o.Height = 26 // two rows per hour
	}
	return o
}

// Layout draws l as a terminal grid
func Layout(l layout.Layout, opts Options) string {
	opts = opts.withDefaults(l.View)
	if l.View == layout.ViewDay {
		return dayGrid(l, opts)
	}
	return weekGrid(l, opts)
}

func scale(pct float64, size int) int {
	if math.IsNaN(pct) {
		return 0
	}
	return int(math.Round(pct / 100 * float64(size)))
}

func weekGrid(l layout.Layout, opts Options) string {
	gw := opts.Width

	// Rows per day: enough for the widest overlap, at least two
	rows := make([]int, len(l.Days))
	height := 1 // header
	for i, d := range l.Days {
		rows[i] = 2
		for _, b := range d.Blocks {
			if b.Event.TotalSplits > rows[i] {
				rows[i] = b.Event.TotalSplits
			}
		}
		height += rows[i] + 1 // separator
	}

	c := newCanvas(weekGutter+gw+6, height)

	// Hour labels on every other half-hour tick
	for i, t := range l.Ticks {
		if i%2 == 0 {
			c.text(weekGutter+scale(t.Position, gw), 0, 5, t.Label, "", gridColor)
		}
	}

	y := 1
	for i, d := range l.Days {
		c.text(0, y, weekGutter-1, d.Day, "", "")
		if d.Empty {
			c.text(weekGutter, y, gw, EmptyDayMessage, "", gridColor)
		}

		for _, b := range d.Blocks {
			g := b.Geometry
			x := weekGutter + scale(g.Left, gw)
			w := max(1, scale(g.Width, gw))
			top := y + scale(g.Top, rows[i])
			h := max(1, y+scale(g.Top+g.Height, rows[i])-top)
			if x < weekGutter {
				w -= weekGutter - x
				x = weekGutter
			}
			if w > gw+weekGutter-x {
				w = gw + weekGutter - x
			}
			if w <= 0 {
				continue
			}
			drawBlock(c, x, top, w, h, b)
		}

		y += rows[i]
		for x := weekGutter; x < weekGutter+gw; x++ {
			c.set(x, y, '─', "", gridColor)
		}
		y++
	}

	if l.Now.Visible {
		x := weekGutter + scale(l.Now.Position, gw)
		for yy := 1; yy < height; yy++ {
			if c.blank(x, yy) || c.cells[yy][x].r == '─' {
				c.set(x, yy, '│', "", nowColor)
			}
		}
	}

	return c.String()
}

func dayGrid(l layout.Layout, opts Options) string {
	gw, gh := opts.Width, opts.Height
	c := newCanvas(dayGutter+gw, gh+2)

	var d layout.DayLayout
	if len(l.Days) > 0 {
		d = l.Days[0]
	}
	c.text(0, 0, dayGutter+gw, d.Day, "", "")

	for _, t := range l.Ticks {
		yy := 1 + scale(t.Position, gh)
		c.text(0, yy, dayGutter-1, t.Label, "", gridColor)
		for x := dayGutter; x < dayGutter+gw; x++ {
			c.set(x, yy, '┈', "", gridColor)
		}
	}

	if d.Empty {
		c.text(dayGutter+2, 1+gh/2, gw-2, EmptyDayMessage, "", "")
	}

	for _, b := range d.Blocks {
		g := b.Geometry
		x := dayGutter + scale(g.Left, gw)
		w := max(1, scale(g.Width, gw))
		top := 1 + scale(g.Top, gh)
		h := max(dayMinRows, scale(g.Height, gh))
		drawBlock(c, x, top, w, h, b)
	}

	if l.Now.Visible {
		yy := 1 + scale(l.Now.Position, gh)
		c.text(0, yy, dayGutter-1, fmt.Sprintf("%-*s", dayGutter-1, "now"), "", nowColor)
		for x := dayGutter; x < dayGutter+gw; x++ {
			if c.blank(x, yy) || c.cells[yy][x].r == '┈' {
				c.set(x, yy, '─', "", nowColor)
			}
		}
	}

	return c.String()
}

// drawBlock paints a block with a border stripe, its label and, when there
// is room, its time range
func drawBlock(c *canvas, x, y, w, h int, b layout.Block) {
	col := b.Colors
	c.fill(x, y, w, h, col.Bg)
	for yy := y; yy < y+h; yy++ {
		c.set(x, yy, '▎', col.Bg, col.Border)
	}
	c.text(x+1, y, w-1, b.Event.Value, col.Bg, col.Text)
	if h >= 2 {
		c.text(x+1, y+1, w-1, b.Event.Start+"-"+b.Event.End, col.Bg, col.Text)
	}
}
