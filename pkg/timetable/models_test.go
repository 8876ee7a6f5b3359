package timetable

import (
	"errors"
	"testing"
)

func TestWeekScheduleValidate(t *testing.T) {
	week := WeekSchedule{{Day: "Monday"}, {Day: "Tuesday"}}
	if err := week.Validate(); err != nil {
		t.Fatalf("expected valid week, got %v", err)
	}

	week = append(week, DaySchedule{Day: " monday"})
	if err := week.Validate(); !errors.Is(err, ErrDuplicateDay) {
		t.Errorf("expected ErrDuplicateDay, got %v", err)
	}
}

func TestWeekScheduleDayLookup(t *testing.T) {
	week := WeekSchedule{{Day: "WEDNESDAY", Data: []TimeSlot{{Start: "08:00", End: "09:00", Value: "X"}}}}.Normalize()

	day, ok := week.Day("wednesday")
	if !ok {
		t.Fatalf("expected to find Wednesday")
	}
	if day.Day != "Wednesday" || len(day.Data) != 1 {
		t.Errorf("unexpected day %+v", day)
	}

	if _, ok := week.Day("Friday"); ok {
		t.Errorf("did not expect to find Friday")
	}
}

func TestClassPattern(t *testing.T) {
	got, err := ClassPattern("ce", 3)
	if err != nil {
		t.Fatalf("ClassPattern: %v", err)
	}
	if got != "CE 3" {
		t.Errorf("expected CE 3, got %s", got)
	}

	if _, err := ClassPattern("XX", 3); err == nil {
		t.Errorf("expected error for unknown department")
	}
	if _, err := ClassPattern("CE", 5); err == nil {
		t.Errorf("expected error for year 5")
	}
}
