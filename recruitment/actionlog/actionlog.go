package actionlog

import (
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
)

// Entry is one recorded action taken on an applicant. Entries are append
// only; nothing updates or deletes them.
type Entry struct {
	ID          kernel.ActionLogID `db:"id" json:"id"`
	ApplicantID kernel.ApplicantID `db:"applicant_id" json:"applicant_id"`
	Action      string             `db:"action" json:"action"`
	PerformedBy string             `db:"performed_by" json:"performed_by"`
	PerformedAt time.Time          `db:"performed_at" json:"performed_at"`
}
