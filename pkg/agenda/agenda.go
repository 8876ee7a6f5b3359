// Package agenda answers "what's on now and next" for a day's timetable.
package agenda

import (
	"math"
	"sort"
	"time"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/palette"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// DefaultPerCourse is how many upcoming meetings of a course are listed
const DefaultPerCourse = 2

// Session is one class meeting anchored to a calendar date
type Session struct {
	Course string
	Value  string
	Start  time.Time
	End    time.Time
}

// CourseSessions holds the next few meetings of one course
type CourseSessions struct {
	Course   string
	Sessions []Session
}

// Agenda is the state of a day at a point in time
type Agenda struct {
	Current  []Session
	Upcoming []CourseSessions
}

// Sessions expands a day's merged slots into one session per label line,
// dated on the calendar day of on.
func Sessions(day timetable.DaySchedule, on time.Time) []Session {
	var out []Session
	for _, slot := range layout.Merge(day.Data) {
		start, okStart := clock(on, slot.Start)
		end, okEnd := clock(on, slot.End)
		if !okStart || !okEnd {
			continue
		}
		for _, ev := range layout.Normalize(slot, false) {
			course := palette.CourseCode(ev.Value)
			if ev.ContinuationGroup != "" {
				course = ev.ContinuationGroup
			}
			if course == "" {
				course = ev.Value
			}
			out = append(out, Session{Course: course, Value: ev.Value, Start: start, End: end})
		}
	}
	return out
}

// Build splits the day at now into running sessions and upcoming ones. The
// upcoming ones are sorted by start and grouped per course, keeping at most
// maxPerCourse meetings of each so a long lab block doesn't crowd out the
// rest of the day.
func Build(day timetable.DaySchedule, now time.Time, maxPerCourse int) Agenda {
	var a Agenda
	var later []Session

	for _, s := range Sessions(day, now) {
		switch {
		case !now.Before(s.Start) && now.Before(s.End):
			a.Current = append(a.Current, s)
		case s.Start.After(now):
			later = append(later, s)
		}
	}

	sort.SliceStable(later, func(i, j int) bool {
		return later[i].Start.Before(later[j].Start)
	})

	byCourse := make(map[string]*CourseSessions)
	var order []string // first appearance, which is chronological now
	for _, s := range later {
		if _, exists := byCourse[s.Course]; !exists {
			byCourse[s.Course] = &CourseSessions{Course: s.Course}
			order = append(order, s.Course)
		}
		if len(byCourse[s.Course].Sessions) < maxPerCourse {
			byCourse[s.Course].Sessions = append(byCourse[s.Course].Sessions, s)
		}
	}

	for _, key := range order {
		a.Upcoming = append(a.Upcoming, *byCourse[key])
	}
	return a
}

func clock(on time.Time, hhmm string) (time.Time, bool) {
	h := layout.TimeToHours(hhmm)
	if math.IsNaN(h) {
		return time.Time{}, false
	}
	y, m, d := on.Date()
	minutes := int(math.Round(h * 60))
	return time.Date(y, m, d, 0, 0, 0, 0, on.Location()).Add(time.Duration(minutes) * time.Minute), true
}
