package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

var testWeek = timetable.WeekSchedule{
	{Day: "Monday", Data: []timetable.TimeSlot{
		{Start: "08:00", End: "09:00", Value: "CE 3A 141 (P) SMITH (GF1)"},
		{Start: "09:00", End: "10:00", Value: "CE 3A 141 (P) SMITH (GF1)"},
		{Start: "10:00", End: "11:00", Value: ""},
	}},
	{Day: "Wednesday", Data: []timetable.TimeSlot{
		{Start: "13:00", End: "14:00", Value: "CE 3A 375 NETWORKS\nCE 3B 361 LAB"},
	}},
}

func TestGenerateICS(t *testing.T) {
	loc, err := LoadLocation()
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	// Monday 2 March to Sunday 15 March 2026: two teaching weeks
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
	to := time.Date(2026, 3, 15, 0, 0, 0, 0, loc)

	var buf bytes.Buffer
	n, err := GenerateICS(testWeek, from, to, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 events (2 per week), got %d", n)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:CE 3A 141 (P) SMITH (GF1)") {
		t.Errorf("Expected ICS to contain course summary, got: \n%s", output)
	}
	if !strings.Contains(output, "SUMMARY:CE 3A 375 NETWORKS CE 3B 361 LAB") {
		t.Errorf("Expected multi-line value to be joined in the summary")
	}

	// Accra is UTC+0, and the two Monday slots merge into one session
	if !strings.Contains(output, "DTSTART:20260302T080000Z") || !strings.Contains(output, "DTEND:20260302T100000Z") {
		t.Errorf("Expected merged Monday session 08:00-10:00 UTC, got: \n%s", output)
	}
	if !strings.Contains(output, "DTSTART:20260311T130000Z") {
		t.Errorf("Expected second Wednesday session")
	}
}

func TestGenerateICSStableIDs(t *testing.T) {
	loc, _ := LoadLocation()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)

	var a, b bytes.Buffer
	if _, err := GenerateICS(testWeek, day, day, &a); err != nil {
		t.Fatal(err)
	}
	if _, err := GenerateICS(testWeek, day, day, &b); err != nil {
		t.Fatal(err)
	}

	uid := func(s string) string {
		for _, line := range strings.Split(s, "\n") {
			if strings.HasPrefix(line, "UID:") {
				return strings.TrimSpace(line)
			}
		}
		return ""
	}
	if uid(a.String()) == "" || uid(a.String()) != uid(b.String()) {
		t.Errorf("expected identical UIDs across exports, got %q and %q", uid(a.String()), uid(b.String()))
	}
}

func TestGenerateICSRejectsReversedRange(t *testing.T) {
	from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if _, err := GenerateICS(testWeek, from, from.AddDate(0, 0, -1), &bytes.Buffer{}); err == nil {
		t.Errorf("expected an error for a reversed range")
	}
}

func TestGenerateExamICS(t *testing.T) {
	loc, _ := LoadLocation()
	days := []timetable.ExamDay{{Day: "Monday, 12th January 2026", Data: []timetable.ExamData{
		{Start: "9:00", End: "12:00", Value: "CE 371 COMPILERS", Class: "CE 3A", Location: "GF1", Invigilator: "DOE"},
	}}}

	var buf bytes.Buffer
	n, err := GenerateExamICS(timetable.GroupExams(days, loc), &buf)
	if err != nil {
		t.Fatalf("GenerateExamICS failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 event, got %d", n)
	}

	output := buf.String()
	if !strings.Contains(output, "SUMMARY:CE 371 COMPILERS (CE 3A)") {
		t.Errorf("missing summary in: \n%s", output)
	}
	if !strings.Contains(output, "LOCATION:GF1") {
		t.Errorf("missing location")
	}
	if !strings.Contains(output, "DTSTART:20260112T090000Z") {
		t.Errorf("missing start time in: \n%s", output)
	}
}
