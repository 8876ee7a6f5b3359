package timetable

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// ExamRange selects a window of exam dates relative to now
type ExamRange string

const (
	RangeToday    ExamRange = "today"
	RangeThisWeek ExamRange = "week"
	RangeNextWeek ExamRange = "next"
	RangeLastWeek ExamRange = "last"
	RangeAll      ExamRange = "all"
)

// ParseExamRange validates a range name
func ParseExamRange(s string) (ExamRange, error) {
	switch r := ExamRange(s); r {
	case RangeToday, RangeThisWeek, RangeNextWeek, RangeLastWeek, RangeAll:
		return r, nil
	case "":
		return RangeAll, nil
	}
	return "", fmt.Errorf("unknown exam range %q (want today, week, next, last or all)", s)
}

// Subject collects the sittings of one paper on one day
type Subject struct {
	Name  string     `json:"name"`
	Exams []ExamData `json:"exams"`
}

// ExamGroup is one exam day with its subjects in listing order
type ExamGroup struct {
	Day      string    `json:"day"`
	Date     time.Time `json:"date"`
	Subjects []Subject `json:"subjects"`
}

// "Monday, 12th January 2025", "Tuesday, 1st April 2025"
var examDatePattern = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s+([A-Za-z]+),?\s+(\d{4})`)

// ParseExamDate parses an exam day heading into a date at midnight in loc.
func ParseExamDate(s string, loc *time.Location) (time.Time, error) {
	m := examDatePattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, fmt.Errorf("unrecognised exam date %q", s)
	}
	day, _ := strconv.Atoi(m[1])
	month, err := time.Parse("January", m[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("unrecognised month in %q", s)
	}
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, month.Month(), day, 0, 0, 0, 0, loc), nil
}

// GroupExams groups sittings by day and then by subject, keeping the order
// in which days and subjects first appear. Days whose heading cannot be
// parsed keep a zero Date.
func GroupExams(days []ExamDay, loc *time.Location) []ExamGroup {
	var groups []ExamGroup
	index := make(map[string]int)

	for _, d := range days {
		gi, ok := index[d.Day]
		if !ok {
			date, _ := ParseExamDate(d.Day, loc)
			groups = append(groups, ExamGroup{Day: d.Day, Date: date})
			gi = len(groups) - 1
			index[d.Day] = gi
		}

		g := &groups[gi]
		for _, exam := range d.Data {
			si := -1
			for i := range g.Subjects {
				if g.Subjects[i].Name == exam.Value {
					si = i
					break
				}
			}
			if si < 0 {
				g.Subjects = append(g.Subjects, Subject{Name: exam.Value})
				si = len(g.Subjects) - 1
			}
			g.Subjects[si].Exams = append(g.Subjects[si].Exams, exam)
		}
	}
	return groups
}

// Classes returns the sorted set of class names appearing in the timetable
func Classes(days []ExamDay) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range days {
		for _, e := range d.Data {
			if e.Class == "" || seen[e.Class] {
				continue
			}
			seen[e.Class] = true
			out = append(out, e.Class)
		}
	}
	sort.Strings(out)
	return out
}

// FilterByClass keeps only the sittings of class. "" and "all" keep
// everything. Subjects and days left empty are dropped.
func FilterByClass(groups []ExamGroup, class string) []ExamGroup {
	if class == "" || class == "all" {
		return groups
	}

	var out []ExamGroup
	for _, g := range groups {
		var subjects []Subject
		for _, s := range g.Subjects {
			var exams []ExamData
			for _, e := range s.Exams {
				if e.Class == class {
					exams = append(exams, e)
				}
			}
			if len(exams) > 0 {
				subjects = append(subjects, Subject{Name: s.Name, Exams: exams})
			}
		}
		if len(subjects) > 0 {
			out = append(out, ExamGroup{Day: g.Day, Date: g.Date, Subjects: subjects})
		}
	}
	return out
}

// InRange keeps the groups whose date falls in r relative to now.
//
//   - today: same calendar date as now
//   - week: the Monday-based week containing now, excluding today
//   - next: strictly between now+7d and now+14d
//   - last: strictly between now-7d and now
func InRange(groups []ExamGroup, r ExamRange, now time.Time) []ExamGroup {
	if r == RangeAll || r == "" {
		return groups
	}

	today := midnight(now)
	weekStart := today.AddDate(0, 0, -((int(today.Weekday()) + 6) % 7))
	weekEnd := weekStart.AddDate(0, 0, 7)

	var out []ExamGroup
	for _, g := range groups {
		if g.Date.IsZero() {
			continue
		}
		date := g.Date.In(now.Location())
		isToday := date.Equal(today)

		var keep bool
		switch r {
		case RangeToday:
			keep = isToday
		case RangeThisWeek:
			keep = !isToday && !date.Before(weekStart) && date.Before(weekEnd)
		case RangeNextWeek:
			start := now.AddDate(0, 0, 7)
			keep = date.After(start) && date.Before(start.AddDate(0, 0, 7))
		case RangeLastWeek:
			keep = date.After(now.AddDate(0, 0, -7)) && date.Before(now)
		}
		if keep {
			out = append(out, g)
		}
	}
	return out
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
