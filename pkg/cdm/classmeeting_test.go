package cdm

import (
	"testing"
	"time"
)

func TestClassMeetingOccursOn(t *testing.T) {
	class := ClassMeeting{
		ClassID: "CS225",
		Days:    []string{"MON", "WED", "FRI"},
	}

	if !class.OccursOn(time.Wednesday) {
		t.Error("class should occur on Wednesday")
	}
	if class.OccursOn(time.Tuesday) {
		t.Error("class should not occur on Tuesday")
	}
}

func TestClassMeetingStartOn(t *testing.T) {
	class := ClassMeeting{
		ClassID:        "CS225",
		StartTimeLocal: "14:30",
	}

	date := time.Date(2024, 3, 6, 8, 12, 44, 0, time.UTC)

	start, err := class.StartOn(date)
	if err != nil {
		t.Fatal(err)
	}

	expected := time.Date(2024, 3, 6, 14, 30, 0, 0, time.UTC)
	if !start.Equal(expected) {
		t.Errorf("start time wrong: %v", start)
	}
}

func TestClassMeetingMalformedStart(t *testing.T) {
	class := ClassMeeting{
		ClassID:        "CS225",
		StartTimeLocal: "half past two",
	}

	if _, err := class.StartOn(time.Now()); err == nil {
		t.Error("expected error for malformed start time")
	}
}
