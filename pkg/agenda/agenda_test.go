package agenda

import (
	"testing"
	"time"

	"github.com/EaseCHAOS/easechaos/pkg/timetable"
)

func TestBuild(t *testing.T) {
	day := timetable.DaySchedule{Day: "Monday", Data: []timetable.TimeSlot{
		{Start: "08:00", End: "09:00", Value: "CE 3A 141 (P) SMITH"},
		{Start: "09:00", End: "10:00", Value: "CE 3A 141 (P) SMITH"},
		{Start: "10:00", End: "11:00", Value: "CE 3A 375 NETWORKS"},
		{Start: "11:00", End: "12:00", Value: ""},
		{Start: "13:00", End: "14:00", Value: "CE 3A 141 (P) SMITH\nCE 3B 143 LAB"},
		{Start: "15:00", End: "16:00", Value: "CE 3A 141 (P) SMITH"},
		{Start: "bad", End: "17:00", Value: "IGNORED"},
	}}

	// 2025-03-03 is a Monday
	now := time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC)
	a := Build(day, now, 1)

	if len(a.Current) != 1 {
		t.Fatalf("expected 1 running session, got %d", len(a.Current))
	}
	if a.Current[0].End.Hour() != 10 {
		t.Errorf("expected the merged 08:00-10:00 session, got end %v", a.Current[0].End)
	}

	if len(a.Upcoming) != 3 {
		t.Fatalf("expected 3 upcoming courses, got %d: %+v", len(a.Upcoming), a.Upcoming)
	}
	if a.Upcoming[0].Course != "CE 3A 375" {
		t.Errorf("expected networks next, got %s", a.Upcoming[0].Course)
	}
	if a.Upcoming[1].Course != "CE 3A 141 (P)" {
		t.Errorf("expected CE 3A 141 (P) second, got %s", a.Upcoming[1].Course)
	}
	if len(a.Upcoming[1].Sessions) != 1 {
		t.Errorf("expected upcoming meetings to be capped at 1, got %d", len(a.Upcoming[1].Sessions))
	}
	if a.Upcoming[1].Sessions[0].Start.Hour() != 13 {
		t.Errorf("expected the 13:00 meeting to be kept, got %v", a.Upcoming[1].Sessions[0].Start)
	}
}

func TestBuildAfterHours(t *testing.T) {
	day := timetable.DaySchedule{Day: "Monday", Data: []timetable.TimeSlot{
		{Start: "08:00", End: "09:00", Value: "CE 3A 141"},
	}}
	a := Build(day, time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC), 2)
	if len(a.Current) != 0 || len(a.Upcoming) != 0 {
		t.Errorf("expected an empty agenda, got %+v", a)
	}
}
