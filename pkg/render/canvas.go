package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cell struct {
	r      rune
	bg, fg string
}

// canvas is a fixed grid of styled runes
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	cells := make([][]cell, h)
	for y := range cells {
		cells[y] = make([]cell, w)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}
	return &canvas{w: w, h: h, cells: cells}
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

func (c *canvas) set(x, y int, r rune, bg, fg string) {
	if c.inside(x, y) {
		c.cells[y][x] = cell{r: r, bg: bg, fg: fg}
	}
}

// blank reports whether nothing has been painted at x,y
func (c *canvas) blank(x, y int) bool {
	return c.inside(x, y) && c.cells[y][x].r == ' ' && c.cells[y][x].bg == ""
}

func (c *canvas) fill(x, y, w, h int, bg string) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			c.set(xx, yy, ' ', bg, "")
		}
	}
}

// text writes s from x, cut to max runes with an ellipsis
func (c *canvas) text(x, y, max int, s, bg, fg string) {
	for i, r := range truncate(s, max) {
		c.set(x+i, y, r, bg, fg)
	}
}

func truncate(s string, max int) []rune {
	runes := []rune(s)
	if max <= 0 {
		return nil
	}
	if len(runes) <= max {
		return runes
	}
	if max == 1 {
		return []rune{'…'}
	}
	return append(runes[:max-1], '…')
}

// String renders each row, styling runs of cells that share colours
func (c *canvas) String() string {
	var b strings.Builder
	for y, row := range c.cells {
		start := 0
		for x := 1; x <= len(row); x++ {
			if x < len(row) && row[x].bg == row[start].bg && row[x].fg == row[start].fg {
				continue
			}
			b.WriteString(styled(row[start:x]))
			start = x
		}
		if y < len(c.cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func styled(run []cell) string {
	runes := make([]rune, len(run))
	for i, cl := range run {
		runes[i] = cl.r
	}
	s := string(runes)

	bg, fg := run[0].bg, run[0].fg
	if bg == "" && fg == "" {
		return s
	}
	style := lipgloss.NewStyle()
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	return style.Render(s)
}
