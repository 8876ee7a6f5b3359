package exporter

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
)

// SVGOptions controls the exported image
type SVGOptions struct {
	Width  int    // total width in pixels
	Height int    // total height in pixels
	Dark   bool   // dark background and grid
	Title  string // drawn above the grid when set
}

const (
	svgHeader     = 36
	svgTitle      = 28
	svgWeekGutter = 110
	svgDayGutter  = 64
	svgFontSize   = 11
)

func (o SVGOptions) withDefaults(v layout.View) SVGOptions {
	if o.Width <= 0 {
		o.Width = 1400
		if v == layout.ViewDay {
			o.Width = 720
		}
	}
	if o.Height <= 0 {
		o.Height = 640
		if v == layout.ViewDay {
			o.Height = 1000
		}
	}
	return o
}

// WriteSVG renders l as a standalone SVG document. The now indicator is
// never drawn: an export is a snapshot, not a live view.
func WriteSVG(l layout.Layout, w io.Writer, opts SVGOptions) error {
	opts = opts.withDefaults(l.View)
	_, err := io.WriteString(w, generateSVG(l, opts))
	return err
}

func generateSVG(l layout.Layout, opts SVGOptions) string {
	background, grid, text := "#ffffff", "#e5e7eb", "#111827"
	if opts.Dark {
		background, grid, text = "#111827", "#374151", "#f9fafb"
	}

	var svg strings.Builder
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
<rect width="100%%" height="100%%" fill="%s"/>
<defs>
<style>
.label { font-family: Inter, Arial, sans-serif; font-size: %dpx; fill: %s; }
.block-text { font-family: Inter, Arial, sans-serif; font-size: %dpx; font-weight: 600; }
.empty { font-family: Inter, Arial, sans-serif; font-size: %dpx; fill: %s; font-style: italic; }
</style>
</defs>
`, opts.Width, opts.Height, background, svgFontSize, text, svgFontSize, svgFontSize+1, grid))

	top := 0
	if opts.Title != "" {
		svg.WriteString(fmt.Sprintf(`<text x="12" y="20" class="label" font-size="16" font-weight="bold">%s</text>
`, escapeXML(opts.Title)))
		top = svgTitle
	}

	if l.View == layout.ViewDay {
		writeDaySVG(&svg, l, opts, top, grid)
	} else {
		writeWeekSVG(&svg, l, opts, top, grid)
	}

	svg.WriteString("</svg>\n")
	return svg.String()
}

func writeWeekSVG(svg *strings.Builder, l layout.Layout, opts SVGOptions, top int, grid string) {
	gridX := float64(svgWeekGutter)
	gridW := float64(opts.Width - svgWeekGutter - 10)
	gridY := float64(top + svgHeader)
	rowH := (float64(opts.Height) - gridY) / math.Max(1, float64(len(l.Days)))

	for i, t := range l.Ticks {
		x := gridX + t.Position/100*gridW
		svg.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%d" stroke="%s"/>
`, x, gridY, x, opts.Height, grid))
		if i%2 == 0 {
			svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="label" text-anchor="middle">%s</text>
`, x, gridY-10, escapeXML(t.Label)))
		}
	}

	for i, d := range l.Days {
		rowY := gridY + float64(i)*rowH
		svg.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="%s"/>
<text x="10" y="%.1f" class="label" font-weight="bold">%s</text>
`, rowY, opts.Width, rowY, grid, rowY+rowH/2+4, escapeXML(d.Day)))

		if d.Empty {
			svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="empty">No schedule available</text>
`, gridX+10, rowY+rowH/2+4))
			continue
		}

		for _, b := range d.Blocks {
			g := b.Geometry
			writeBlock(svg, b,
				gridX+g.Left/100*gridW,
				rowY+2+g.Top/100*(rowH-4),
				g.Width/100*gridW,
				g.Height/100*(rowH-4))
		}
	}
}

func writeDaySVG(svg *strings.Builder, l layout.Layout, opts SVGOptions, top int, grid string) {
	gridX := float64(svgDayGutter)
	gridW := float64(opts.Width - svgDayGutter - 10)
	gridY := float64(top + svgHeader)
	gridH := float64(opts.Height) - gridY - 10

	var d layout.DayLayout
	if len(l.Days) > 0 {
		d = l.Days[0]
	}
	svg.WriteString(fmt.Sprintf(`<text x="12" y="%.1f" class="label" font-size="14" font-weight="bold">%s</text>
`, gridY-14, escapeXML(d.Day)))

	for _, t := range l.Ticks {
		y := gridY + t.Position/100*gridH
		svg.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%d" y2="%.1f" stroke="%s"/>
<text x="8" y="%.1f" class="label">%s</text>
`, gridX, y, opts.Width, y, grid, y+4, escapeXML(t.Label)))
	}

	if d.Empty {
		svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="empty">No schedule available</text>
`, gridX+20, gridY+gridH/2))
		return
	}

	for _, b := range d.Blocks {
		g := b.Geometry
		h := math.Max(g.Height/100*gridH, float64(g.MinHeightPx))
		writeBlock(svg, b,
			gridX+g.Left/100*gridW,
			gridY+g.Top/100*gridH,
			g.Width/100*gridW,
			h)
	}
}

func writeBlock(svg *strings.Builder, b layout.Block, x, y, w, h float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsNaN(w) || math.IsNaN(h) || w <= 0 || h <= 0 {
		return
	}
	svg.WriteString(fmt.Sprintf(`<g class="block">
<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4" fill="%s" stroke="%s"/>
<text x="%.1f" y="%.1f" class="block-text" fill="%s">%s</text>
`, x, y, w, h, b.Colors.Bg, b.Colors.Border,
		x+5, y+svgFontSize+4, b.Colors.Text, escapeXML(fitText(b.Event.Value, w-10))))

	if h >= 2*svgFontSize+10 {
		svg.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="block-text" fill="%s" font-weight="normal">%s–%s</text>
`, x+5, y+2*svgFontSize+8, b.Colors.Text, escapeXML(b.Event.Start), escapeXML(b.Event.End)))
	}
	svg.WriteString("</g>\n")
}

// fitText cuts s to roughly fit width pixels
func fitText(s string, width float64) string {
	max := int(width / (svgFontSize * 0.6))
	if max <= 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// escapeXML escapes special XML characters
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
