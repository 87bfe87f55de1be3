package interview

import (
	"testing"
	"time"
)

func TestComposeDateTime(t *testing.T) {
	composed, err := ComposeDateTime("2026-09-15", "14:30")
	if err != nil {
		t.Fatalf("ComposeDateTime returned error: %v", err)
	}

	if composed.Year() != 2026 || composed.Month() != time.September || composed.Day() != 15 {
		t.Errorf("date = %v", composed)
	}
	if composed.Hour() != 14 || composed.Minute() != 30 {
		t.Errorf("time = %v", composed)
	}
}

func TestComposeDateTimeRejectsGarbage(t *testing.T) {
	cases := [][2]string{
		{"15-09-2026", "14:30"},
		{"2026-09-15", "2pm"},
		{"", "14:30"},
		{"2026-09-15", ""},
	}
	for _, tc := range cases {
		if _, err := ComposeDateTime(tc[0], tc[1]); err == nil {
			t.Errorf("ComposeDateTime(%q, %q) should fail", tc[0], tc[1])
		}
	}
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"Office", "Virtual"} {
		if _, err := ParseType(s); err != nil {
			t.Errorf("ParseType(%q) returned error: %v", s, err)
		}
	}
	if _, err := ParseType("Phone"); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestReschedule(t *testing.T) {
	now := time.Now()
	iv := &Interview{
		Status:       StatusScheduled,
		ScheduledFor: now.Add(time.Hour),
	}

	if err := iv.Reschedule(now.Add(-time.Hour), now); err == nil {
		t.Error("expected error for past time")
	}

	newTime := now.Add(48 * time.Hour)
	if err := iv.Reschedule(newTime, now); err != nil {
		t.Fatalf("Reschedule returned error: %v", err)
	}
	if iv.Status != StatusRescheduled {
		t.Errorf("status = %q", iv.Status)
	}
	if !iv.ScheduledFor.Equal(newTime) {
		t.Errorf("scheduled for = %v", iv.ScheduledFor)
	}
}

func TestRescheduleAllowsExactlyNow(t *testing.T) {
	now := time.Now()
	iv := &Interview{
		Status:       StatusScheduled,
		ScheduledFor: now.Add(time.Hour),
	}

	// Only times strictly before now are past
	if err := iv.Reschedule(now, now); err != nil {
		t.Fatalf("Reschedule returned error: %v", err)
	}
	if !iv.ScheduledFor.Equal(now) {
		t.Errorf("scheduled for = %v", iv.ScheduledFor)
	}
}
