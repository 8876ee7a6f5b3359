package server

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"net/http"
	"net/url"
	"regexp"

	"go.uber.org/zap"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/render"
)

//go:embed templates/page.html
var templateFS embed.FS

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

var pageTemplate = template.Must(template.New("page.html").Funcs(template.FuncMap{
	"pct": func(v float64) string {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return "0%"
		}
		return fmt.Sprintf("%.4f%%", v)
	},
	// css only lets palette hex colours through
	"css": func(c string) template.CSS {
		if !hexColor.MatchString(c) {
			return "inherit"
		}
		return template.CSS(c)
	},
	"even": func(i int) bool { return i%2 == 0 },
}).ParseFS(templateFS, "templates/page.html"))

type pageData struct {
	Title        string
	Dark         bool
	Stale        bool
	EmptyMessage string
	Layout       layout.Layout
	Prev, Next   string
	PrevDay      string
	NextDay      string
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	lq, err := s.parseLayoutQuery(r)
	if err != nil {
		code, message := statusFor(err)
		http.Error(w, message, code)
		return
	}

	res, err := s.source.FetchWeek(r.Context(), lq.req)
	if err != nil {
		code, message := statusFor(err)
		if code >= http.StatusInternalServerError {
			s.log.Error("page fetch failed", zap.Error(err))
		}
		http.Error(w, message, code)
		return
	}

	data := pageData{
		Title:        fmt.Sprintf("%s timetable", lq.req.ClassPattern),
		Dark:         lq.opts.Theme.Dark(),
		Stale:        res.Stale,
		EmptyMessage: render.EmptyDayMessage,
		Layout:       dropUnplaceable(s.engine.Build(res.Week, lq.opts)),
	}

	if lq.opts.View == layout.ViewDay {
		if prev := layout.PrevDay(lq.opts.Day); prev != lq.opts.Day {
			data.Prev, data.PrevDay = withDay(r.URL, prev), prev
		}
		if next := layout.NextDay(lq.opts.Day); next != lq.opts.Day {
			data.Next, data.NextDay = withDay(r.URL, next), next
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		s.log.Error("render page", zap.Error(err))
	}
}

// withDay returns the request URL pointing at another day
func withDay(u *url.URL, day string) string {
	q := u.Query()
	q.Set("day", day)
	return "?" + q.Encode()
}
