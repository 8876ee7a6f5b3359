package layout

import (
	"time"

	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// Today returns the weekday name for now, or Monday at the weekend.
func Today(now time.Time) string {
	switch wd := now.Weekday(); wd {
	case time.Saturday, time.Sunday:
		return timetable.Weekdays[0]
	default:
		return wd.String()
	}
}

// NextDay steps forward through the teaching week, stopping at Friday.
func NextDay(day string) string {
	return stepDay(day, 1)
}

// PrevDay steps back through the teaching week, stopping at Monday.
func PrevDay(day string) string {
	return stepDay(day, -1)
}

func stepDay(day string, delta int) string {
	day = timetable.NormalizeDay(day)
	for i, d := range timetable.Weekdays {
		if d != day {
			continue
		}
		j := i + delta
		if j < 0 {
			j = 0
		}
		if j >= len(timetable.Weekdays) {
			j = len(timetable.Weekdays) - 1
		}
		return timetable.Weekdays[j]
	}
	return timetable.Weekdays[0]
}
