package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/palette"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// layoutQuery is the parsed query of a layout request
type layoutQuery struct {
	req  timetable.Request
	opts layout.Options
}

func (s *Server) classRequest(r *http.Request, draft string) (timetable.Request, error) {
	q := r.URL.Query()

	dept := q.Get("dept")
	if dept == "" {
		dept = s.cfg.Department
	}
	year := s.cfg.Year
	if v := q.Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return timetable.Request{}, badRequest{fmt.Errorf("invalid year %q", v)}
		}
		year = n
	}
	if dept == "" || year == 0 {
		return timetable.Request{}, badRequest{fmt.Errorf("dept and year are required")}
	}

	pattern, err := timetable.ClassPattern(dept, year)
	if err != nil {
		return timetable.Request{}, badRequest{err}
	}

	if v := q.Get("draft"); v != "" {
		draft = v
	}
	return timetable.Request{Filename: draft, ClassPattern: pattern}, nil
}

func (s *Server) parseLayoutQuery(r *http.Request) (layoutQuery, error) {
	req, err := s.classRequest(r, s.cfg.Draft)
	if err != nil {
		return layoutQuery{}, err
	}

	q := r.URL.Query()
	view, err := layout.ParseView(q.Get("view"))
	if err != nil {
		return layoutQuery{}, badRequest{err}
	}
	theme, err := palette.ParseTheme(q.Get("theme"))
	if err != nil {
		return layoutQuery{}, badRequest{err}
	}

	now := s.now().In(s.cfg.Location)
	day := q.Get("day")
	if day == "" {
		day = layout.Today(now)
	}
	day = timetable.NormalizeDay(day)
	if !isWeekday(day) {
		return layoutQuery{}, badRequest{fmt.Errorf("unknown day %q", q.Get("day"))}
	}

	return layoutQuery{
		req: req,
		opts: layout.Options{
			View: view,
			Theme: palette.ThemeContext{
				Theme:       theme,
				PrefersDark: q.Get("dark") == "1" || strings.EqualFold(q.Get("dark"), "true"),
			},
			Day: day,
			Now: now,
		},
	}, nil
}

func isWeekday(day string) bool {
	for _, d := range timetable.Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, "ok", nil, false)
}

func (s *Server) handleDepartments(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, "departments", map[string]interface{}{
		"departments": timetable.Departments,
		"years":       timetable.Years,
	}, false)
}

func (s *Server) handleTimetable(w http.ResponseWriter, r *http.Request) {
	lq, err := s.parseLayoutQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	res, err := s.source.FetchWeek(r.Context(), lq.req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	l := dropUnplaceable(s.engine.Build(res.Week, lq.opts))
	writeSuccess(w, "timetable for "+lq.req.ClassPattern, l, res.Stale)
}

func (s *Server) handleExams(w http.ResponseWriter, r *http.Request) {
	req, err := s.classRequest(r, s.cfg.ExamDraft)
	if err != nil {
		s.writeError(w, err)
		return
	}

	q := r.URL.Query()
	rng, err := timetable.ParseExamRange(q.Get("range"))
	if err != nil {
		s.writeError(w, badRequest{err})
		return
	}

	res, err := s.source.FetchExams(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	groups := timetable.GroupExams(res.Days, s.cfg.Location)
	groups = timetable.FilterByClass(groups, q.Get("class"))
	groups = timetable.InRange(groups, rng, s.now().In(s.cfg.Location))

	writeSuccess(w, "exams for "+req.ClassPattern, map[string]interface{}{
		"classes": timetable.Classes(res.Days),
		"groups":  groups,
	}, res.Stale)
}

// dropUnplaceable removes blocks whose times could not be parsed. Their
// NaN positions have no JSON encoding and no place on the grid.
func dropUnplaceable(l layout.Layout) layout.Layout {
	for i, d := range l.Days {
		blocks := d.Blocks[:0:0]
		for _, b := range d.Blocks {
			if math.IsNaN(b.Event.StartPosition) || math.IsNaN(b.Event.Duration) {
				continue
			}
			blocks = append(blocks, b)
		}
		l.Days[i].Blocks = blocks
	}
	return l
}
