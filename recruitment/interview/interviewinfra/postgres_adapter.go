package interviewinfra

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/actionlog"
	"github.com/MieMoo/recruitment-module/recruitment/actionlog/actionloginfra"
	"github.com/MieMoo/recruitment-module/recruitment/applicant"
	"github.com/MieMoo/recruitment-module/recruitment/interview"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const interviewColumns = `
	id, applicant_id, type, scheduled_for, status, result, created_at, updated_at
`

type PostgresInterviewRepository struct {
	db *sqlx.DB
}

func NewPostgresInterviewRepository(db *sqlx.DB) interview.Repository {
	return &PostgresInterviewRepository{db: db}
}

// Schedule creates an interview, moves the applicant to the pending
// interview status and writes the action log entry in one transaction.
func (r *PostgresInterviewRepository) Schedule(ctx context.Context, iv *interview.Interview, logAction, actor string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO interviews (
			id, applicant_id, type, scheduled_for, status, result, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`
	_, err = tx.ExecContext(
		ctx,
		insertQuery,
		iv.ID,
		iv.ApplicantID,
		iv.Type,
		iv.ScheduledFor,
		iv.Status,
		iv.Result,
		iv.CreatedAt,
		iv.UpdatedAt,
	)
	if err != nil {
		return err
	}

	// Move the applicant into the interview stage. Terminal applicants never
	// reach this point, but the guard keeps the row untouched if one does.
	updateQuery := `
		UPDATE applicants
		SET status = $2, version = version + 1, updated_at = $3
		WHERE id = $1 AND status NOT IN ($4, $5, $6)
	`
	result, err := tx.ExecContext(
		ctx,
		updateQuery,
		iv.ApplicantID,
		applicant.StatusPendingInterview,
		iv.UpdatedAt,
		applicant.StatusOfferSent,
		applicant.StatusHired,
		applicant.StatusRejected,
	)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return applicant.ErrApplicantNotFound().WithDetail("id", iv.ApplicantID.String())
	}

	entry := &actionlog.Entry{
		ID:          kernel.NewActionLogID(uuid.New().String()),
		ApplicantID: iv.ApplicantID,
		Action:      logAction,
		PerformedBy: actor,
		PerformedAt: iv.CreatedAt,
	}
	if err := actionloginfra.Insert(ctx, tx, entry); err != nil {
		return err
	}

	return tx.Commit()
}

// Reschedule moves an interview to a new time and logs the action in the
// same transaction.
func (r *PostgresInterviewRepository) Reschedule(ctx context.Context, id kernel.InterviewID, newTime time.Time, logAction, actor string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()

	updateQuery := `
		UPDATE interviews
		SET scheduled_for = $2, status = $3, updated_at = $4
		WHERE id = $1
		RETURNING applicant_id
	`
	var applicantID kernel.ApplicantID
	err = tx.GetContext(ctx, &applicantID, updateQuery, id, newTime, interview.StatusRescheduled, now)
	if errors.Is(err, sql.ErrNoRows) {
		return interview.ErrInterviewNotFound().WithDetail("id", id.String())
	}
	if err != nil {
		return err
	}

	entry := &actionlog.Entry{
		ID:          kernel.NewActionLogID(uuid.New().String()),
		ApplicantID: applicantID,
		Action:      logAction,
		PerformedBy: actor,
		PerformedAt: now,
	}
	if err := actionloginfra.Insert(ctx, tx, entry); err != nil {
		return err
	}

	return tx.Commit()
}

// GetByID retrieves an interview by ID
func (r *PostgresInterviewRepository) GetByID(ctx context.Context, id kernel.InterviewID) (*interview.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`

	var iv interview.Interview
	err := r.db.GetContext(ctx, &iv, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, interview.ErrInterviewNotFound().WithDetail("id", id.String())
	}
	if err != nil {
		return nil, err
	}

	return &iv, nil
}

// ListAll retrieves every interview, soonest first
func (r *PostgresInterviewRepository) ListAll(ctx context.Context) ([]interview.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews ORDER BY scheduled_for ASC`

	interviews := make([]interview.Interview, 0)
	if err := r.db.SelectContext(ctx, &interviews, query); err != nil {
		return nil, err
	}

	return interviews, nil
}

// ListUpcoming retrieves the next interviews after the given time
func (r *PostgresInterviewRepository) ListUpcoming(ctx context.Context, after time.Time, limit int) ([]interview.Interview, error) {
	query := `
		SELECT ` + interviewColumns + `
		FROM interviews
		WHERE scheduled_for > $1
		ORDER BY scheduled_for ASC
		LIMIT $2
	`

	interviews := make([]interview.Interview, 0)
	if err := r.db.SelectContext(ctx, &interviews, query, after, limit); err != nil {
		return nil, err
	}

	return interviews, nil
}

// ExistsForApplicant checks if the applicant already has an interview
func (r *PostgresInterviewRepository) ExistsForApplicant(ctx context.Context, applicantID kernel.ApplicantID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM interviews WHERE applicant_id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, applicantID); err != nil {
		return false, err
	}
	return exists, nil
}
