package timetable

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var examDays = []ExamDay{
	{Day: "Monday, 12th January 2026", Data: []ExamData{
		{Start: "9:00", End: "12:00", Value: "CE 371 COMPILERS", Class: "CE 3B", Location: "GF1"},
		{Start: "9:00", End: "12:00", Value: "CE 371 COMPILERS", Class: "CE 3A", Location: "GF2"},
	}},
	{Day: "Wednesday, 14th January 2026", Data: []ExamData{
		{Start: "13:00", End: "15:00", Value: "CE 375 NETWORKS", Class: "CE 3A", Location: "PB1"},
	}},
	{Day: "Thursday, 22nd January 2026", Data: []ExamData{
		{Start: "9:00", End: "11:00", Value: "MA 351 STATS", Class: "CE 3B", Location: "LH"},
	}},
	{Day: "Monday, 12th January 2026", Data: []ExamData{
		{Start: "15:00", End: "17:00", Value: "CE 379 GRAPHICS", Class: "CE 3A", Location: "GF1"},
	}},
}

func TestParseExamDate(t *testing.T) {
	cases := map[string]time.Time{
		"Monday, 12th January 2025":  time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC),
		"Tuesday, 1st April 2025":    time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC),
		"Friday, 23rd May 2025":      time.Date(2025, time.May, 23, 0, 0, 0, 0, time.UTC),
		"Saturday, 2nd August, 2025": time.Date(2025, time.August, 2, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseExamDate(in, time.UTC)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "%s: got %v", in, got)
	}

	_, err := ParseExamDate("sometime soon", time.UTC)
	assert.Error(t, err)
	_, err = ParseExamDate("Monday, 12th Smarch 2025", time.UTC)
	assert.Error(t, err)
}

func TestGroupExams(t *testing.T) {
	groups := GroupExams(examDays, time.UTC)
	require.Len(t, groups, 3)

	monday := groups[0]
	assert.Equal(t, "Monday, 12th January 2026", monday.Day)
	require.Len(t, monday.Subjects, 2)
	assert.Equal(t, "CE 371 COMPILERS", monday.Subjects[0].Name)
	assert.Len(t, monday.Subjects[0].Exams, 2)
	assert.Equal(t, "CE 379 GRAPHICS", monday.Subjects[1].Name)
	assert.Equal(t, 12, monday.Date.Day())
}

func TestClasses(t *testing.T) {
	assert.Equal(t, []string{"CE 3A", "CE 3B"}, Classes(examDays))
}

func TestFilterByClass(t *testing.T) {
	groups := GroupExams(examDays, time.UTC)

	assert.Len(t, FilterByClass(groups, "all"), 3)

	filtered := FilterByClass(groups, "CE 3A")
	require.Len(t, filtered, 2, "Thursday has no CE 3A sittings")
	require.Len(t, filtered[0].Subjects, 2)
	assert.Len(t, filtered[0].Subjects[0].Exams, 1)
	assert.Equal(t, "GF2", filtered[0].Subjects[0].Exams[0].Location)
}

func TestInRange(t *testing.T) {
	groups := GroupExams(examDays, time.UTC)
	// Monday 12 January 2026, 10:00
	now := time.Date(2026, time.January, 12, 10, 0, 0, 0, time.UTC)

	today := InRange(groups, RangeToday, now)
	require.Len(t, today, 1)
	assert.Equal(t, 12, today[0].Date.Day())

	week := InRange(groups, RangeThisWeek, now)
	require.Len(t, week, 1)
	assert.Equal(t, 14, week[0].Date.Day())

	// 22 January is after now+7d (19th 10:00) and before now+14d
	next := InRange(groups, RangeNextWeek, now)
	require.Len(t, next, 1)
	assert.Equal(t, 22, next[0].Date.Day())

	// From Friday the 16th, Monday the 12th and Wednesday the 14th were last week
	later := time.Date(2026, time.January, 16, 8, 0, 0, 0, time.UTC)
	last := InRange(groups, RangeLastWeek, later)
	assert.Len(t, last, 2)

	assert.Len(t, InRange(groups, RangeAll, now), 3)
}

func TestParseExamRange(t *testing.T) {
	r, err := ParseExamRange("")
	require.NoError(t, err)
	assert.Equal(t, RangeAll, r)

	_, err = ParseExamRange("fortnight")
	assert.Error(t, err)
}
