package workhistory

import (
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
)

// Record is one prior employment of an applicant. Records are append only.
type Record struct {
	ID               kernel.WorkHistoryID `db:"id" json:"id"`
	ApplicantID      kernel.ApplicantID   `db:"applicant_id" json:"applicant_id"`
	Company          string               `db:"company" json:"company"`
	Position         string               `db:"position" json:"position"`
	StartDate        time.Time            `db:"start_date" json:"start_date"`
	EndDate          *time.Time           `db:"end_date" json:"end_date,omitempty"`
	Responsibilities string               `db:"responsibilities" json:"responsibilities"`
	CreatedAt        time.Time            `db:"created_at" json:"created_at"`
}

// IsCurrent reports whether the applicant still holds the position
func (r *Record) IsCurrent() bool {
	return r.EndDate == nil
}
