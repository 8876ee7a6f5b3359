package exporter

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"
	_ "time/tzdata"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/EaseCHAOS/easechaos/pkg/layout"
	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

// Timezone is where the timetables are taught
const Timezone = "Africa/Accra"

// LoadLocation returns the campus timezone
func LoadLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(Timezone)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone: %w", err)
	}
	return loc, nil
}

// GenerateICS writes one event per merged session for every teaching day
// from `from` to `to` inclusive and returns how many events it wrote.
func GenerateICS(week timetable.WeekSchedule, from, to time.Time, w io.Writer) (int, error) {
	if to.Before(from) {
		return 0, fmt.Errorf("end date %s is before start date %s", to.Format("2006-01-02"), from.Format("2006-01-02"))
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//EaseCHAOS//Timetable//EN")

	now := time.Now()
	count := 0
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		day, ok := week.Day(date.Weekday().String())
		if !ok {
			continue
		}

		for _, slot := range layout.Merge(day.Data) {
			start, okStart := at(date, slot.Start)
			end, okEnd := at(date, slot.End)
			if !okStart || !okEnd {
				continue // Skip invalid times
			}

			lines := layout.SplitLines(slot.Value)
			summary := strings.Join(lines, " ")

			event := cal.AddEvent(eventID(date, slot.Start, summary))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(start)
			event.SetEndAt(end)
			event.SetSummary(summary)

			var groups []string
			for _, l := range lines {
				if g := layout.ContinuationGroup(l); g != "" {
					groups = append(groups, g)
				}
			}
			description := strings.Join(lines, "\n")
			if len(groups) > 0 {
				description += "\nClasses: " + strings.Join(groups, ", ")
			}
			event.SetDescription(description)
			count++
		}
	}

	return count, cal.SerializeTo(w)
}

// GenerateExamICS writes one event per exam sitting
func GenerateExamICS(groups []timetable.ExamGroup, w io.Writer) (int, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//EaseCHAOS//Exams//EN")

	now := time.Now()
	count := 0
	for _, g := range groups {
		if g.Date.IsZero() {
			continue
		}
		for _, s := range g.Subjects {
			for _, e := range s.Exams {
				start, okStart := at(g.Date, e.Start)
				end, okEnd := at(g.Date, e.End)
				if !okStart || !okEnd {
					continue
				}

				summary := s.Name
				if e.Class != "" {
					summary = fmt.Sprintf("%s (%s)", s.Name, e.Class)
				}

				event := cal.AddEvent(eventID(g.Date, e.Start, summary+e.Location))
				event.SetCreatedTime(now)
				event.SetDtStampTime(now)
				event.SetModifiedAt(now)
				event.SetStartAt(start)
				event.SetEndAt(end)
				event.SetSummary(summary)
				event.SetLocation(e.Location)
				if e.Invigilator != "" {
					event.SetDescription("Invigilator: " + e.Invigilator)
				}
				count++
			}
		}
	}

	return count, cal.SerializeTo(w)
}

// at places an "HH:MM" time on date's calendar day
func at(date time.Time, hhmm string) (time.Time, bool) {
	h := layout.TimeToHours(hhmm)
	if math.IsNaN(h) {
		return time.Time{}, false
	}
	y, m, d := date.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	return midnight.Add(time.Duration(math.Round(h*60)) * time.Minute), true
}

// eventID is stable across exports so calendar apps update rather than
// duplicate events on re-import
func eventID(date time.Time, start, label string) string {
	key := fmt.Sprintf("%s|%s|%s", date.Format("2006-01-02"), start, label)
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String() + "@easechaos"
}
