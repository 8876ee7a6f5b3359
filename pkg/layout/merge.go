package layout

import (
	"strings"

	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// The lunch break is not a real gap: a course on both sides of it is one
// session.
const (
	breakStart = "12:00"
	breakEnd   = "12:30"
)

// MergedSlot is a run of raw slots folded into one session
type MergedSlot struct {
	timetable.TimeSlot
	HorizontalSpan int
}

// Merge folds a day's slots, in input order, into sessions:
//
//   - empty slots are dropped
//   - a slot continuing the previous session's course back-to-back (or
//     across the 12:00-12:30 break) extends its end and resets its span to 1
//   - an exact duplicate of the previous session widens its span
//
// Every other slot starts a new session with span 1.
func Merge(slots []timetable.TimeSlot) []MergedSlot {
	var out []MergedSlot
	for _, cur := range slots {
		if strings.TrimSpace(cur.Value) == "" {
			continue
		}

		if n := len(out); n > 0 {
			prev := &out[n-1]
			if sameCourse(prev.Value, cur.Value) {
				if sequential(prev.End, cur.Start) {
					prev.End = cur.End
					prev.HorizontalSpan = 1
					continue
				}
				if prev.Start == cur.Start && prev.End == cur.End {
					prev.HorizontalSpan++
					continue
				}
			}
		}

		out = append(out, MergedSlot{TimeSlot: cur, HorizontalSpan: 1})
	}
	return out
}

func sameCourse(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

func sequential(prevEnd, curStart string) bool {
	return prevEnd == curStart || (prevEnd == breakStart && curStart == breakEnd)
}
