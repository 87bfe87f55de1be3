package workhistory

// AddRecordRequest - DTO for appending a work history record
type AddRecordRequest struct {
	Company          string `json:"company" validate:"required"`
	Position         string `json:"position" validate:"required"`
	StartDate        string `json:"start_date" validate:"required"` // YYYY-MM-DD
	EndDate          string `json:"end_date,omitempty"`             // YYYY-MM-DD, empty for current
	Responsibilities string `json:"responsibilities,omitempty"`
}
