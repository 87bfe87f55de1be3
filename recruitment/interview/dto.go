package interview

import (
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
)

// ScheduleRequest - Request to schedule interviews for a batch of applicants
type ScheduleRequest struct {
	ApplicantIDs []kernel.ApplicantID `json:"applicant_ids" validate:"required,min=1"`
	Date         string               `json:"date" validate:"required"` // YYYY-MM-DD
	Time         string               `json:"time" validate:"required"` // HH:MM
	Type         string               `json:"type" validate:"required"`
}

// RescheduleRequest - Request to move an interview to a new time
type RescheduleRequest struct {
	Date string `json:"date" validate:"required"` // YYYY-MM-DD
	Time string `json:"time" validate:"required"` // HH:MM
}

// ActiveListFilter - Optional filters for the interview schedule. Search
// matches the applicant's full name or ID, case-insensitively.
type ActiveListFilter struct {
	Status Status `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
}

// BulkScheduleResponse - Result of scheduling a batch of applicants
type BulkScheduleResponse struct {
	Successful []kernel.ApplicantID          `json:"successful"`
	Failed     map[kernel.ApplicantID]string `json:"failed"`
	Total      int                           `json:"total"`
}

// ActiveInterviewResponse - Interview joined with its applicant, shown in
// the interview schedule
type ActiveInterviewResponse struct {
	ID              kernel.InterviewID `json:"id"`
	ApplicantID     kernel.ApplicantID `json:"applicant_id"`
	ApplicantName   string             `json:"applicant_name"`
	Position        kernel.Position    `json:"position"`
	ApplicantStatus string             `json:"applicant_status"`
	Type            Type               `json:"type"`
	ScheduledFor    time.Time          `json:"scheduled_for"`
	Status          Status             `json:"status"`
	Result          Result             `json:"result"`
}

// UpcomingInterviewResponse - Row in the dashboard's upcoming list
type UpcomingInterviewResponse struct {
	ID            kernel.InterviewID `json:"id"`
	ApplicantID   kernel.ApplicantID `json:"applicant_id"`
	ApplicantName string             `json:"applicant_name"`
	Position      kernel.Position    `json:"position"`
	Type          Type               `json:"type"`
	ScheduledFor  time.Time          `json:"scheduled_for"`
}
