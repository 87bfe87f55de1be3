package interview

import (
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"slices"
)

// Type represents how the interview is held
type Type string

const (
	TypeOffice  Type = "Office"
	TypeVirtual Type = "Virtual"
)

// ParseType normalizes an interview type string.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if slices.Contains([]Type{TypeOffice, TypeVirtual}, t) {
		return t, nil
	}
	return "", ErrInvalidType().WithDetail("type", s)
}

// Status represents the scheduling state of an interview
type Status string

const (
	StatusScheduled   Status = "Scheduled"
	StatusRescheduled Status = "Rescheduled"
)

// ParseStatus normalizes an interview status string.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if slices.Contains([]Status{StatusScheduled, StatusRescheduled}, st) {
		return st, nil
	}
	return "", ErrInvalidStatus().WithDetail("status", s)
}

// Result represents the outcome of an interview
type Result string

const (
	ResultPending Result = "Pending"
)

type Interview struct {
	ID           kernel.InterviewID `db:"id" json:"id"`
	ApplicantID  kernel.ApplicantID `db:"applicant_id" json:"applicant_id"`
	Type         Type               `db:"type" json:"type"`
	ScheduledFor time.Time          `db:"scheduled_for" json:"scheduled_for"`
	Status       Status             `db:"status" json:"status"`
	Result       Result             `db:"result" json:"result"`
	CreatedAt    time.Time          `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `db:"updated_at" json:"updated_at"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsUpcoming reports whether the interview is still ahead of now
func (i *Interview) IsUpcoming(now time.Time) bool {
	return i.ScheduledFor.After(now)
}

// Reschedule moves the interview to a new time. Only times strictly before
// now are rejected.
func (i *Interview) Reschedule(newTime time.Time, now time.Time) error {
	if newTime.Before(now) {
		return ErrPastDateTime().WithDetail("scheduled_for", newTime.Format(time.RFC3339))
	}

	i.ScheduledFor = newTime
	i.Status = StatusRescheduled
	i.UpdatedAt = now
	return nil
}

// ComposeDateTime combines a date and a clock time into the scheduled
// moment. Date is YYYY-MM-DD and clock is HH:MM, interpreted in local time.
func ComposeDateTime(date, clock string) (time.Time, error) {
	composed, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime().
			WithDetail("date", date).
			WithDetail("time", clock)
	}
	return composed, nil
}
