package applicantinfra

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/actionlog"
	"github.com/MieMoo/recruitment-module/recruitment/actionlog/actionloginfra"
	"github.com/MieMoo/recruitment-module/recruitment/applicant"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const applicantColumns = `
	id, first_name, last_name, email, phone, sex, birth_date,
	address, position, education_level, institution, education_from,
	education_to, source, notes, resume_url,
	status, version, applied_at, updated_at
`

type PostgresApplicantRepository struct {
	db *sqlx.DB
}

func NewPostgresApplicantRepository(db *sqlx.DB) applicant.Repository {
	return &PostgresApplicantRepository{db: db}
}

// Create creates a new applicant and writes the intake action log entry in
// one transaction.
func (r *PostgresApplicantRepository) Create(ctx context.Context, a *applicant.Applicant, logAction, actor string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO applicants (
			id, first_name, last_name, email, phone, sex, birth_date,
			address, position, education_level, institution, education_from,
			education_to, source, notes, resume_url,
			status, version, applied_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20
		)
	`

	_, err = tx.ExecContext(
		ctx,
		query,
		a.ID,
		a.FirstName,
		a.LastName,
		a.Email,
		a.Phone,
		a.Sex,
		a.BirthDate,
		a.Address,
		a.Position,
		a.EducationLevel,
		a.Institution,
		a.EducationFrom,
		a.EducationTo,
		a.Source,
		a.Notes,
		a.ResumeURL,
		a.Status,
		a.Version,
		a.AppliedAt,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}

	entry := &actionlog.Entry{
		ID:          kernel.NewActionLogID(uuid.New().String()),
		ApplicantID: a.ID,
		Action:      logAction,
		PerformedBy: actor,
		PerformedAt: a.AppliedAt,
	}
	if err := actionloginfra.Insert(ctx, tx, entry); err != nil {
		return err
	}

	return tx.Commit()
}

// GetByID retrieves an applicant by ID
func (r *PostgresApplicantRepository) GetByID(ctx context.Context, id kernel.ApplicantID) (*applicant.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE id = $1`

	var a applicant.Applicant
	err := r.db.GetContext(ctx, &a, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, applicant.ErrApplicantNotFound().WithDetail("id", id.String())
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// List retrieves applicants matching the filter with pagination
func (r *PostgresApplicantRepository) List(ctx context.Context, filter applicant.ListFilter) (*kernel.Paginated[applicant.Applicant], error) {
	// Build WHERE clause dynamically
	whereClauses := []string{}
	args := []interface{}{}
	argCount := 1

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			placeholders = append(placeholders, fmt.Sprintf("$%d", argCount))
			args = append(args, status)
			argCount++
		}
		whereClauses = append(whereClauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ", ")))
	}

	if filter.Position != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("position = $%d", argCount))
		args = append(args, filter.Position)
		argCount++
	}

	if filter.Search != "" {
		whereClauses = append(whereClauses, fmt.Sprintf(
			"(first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d)",
			argCount, argCount, argCount,
		))
		args = append(args, "%"+filter.Search+"%")
		argCount++
	}

	if filter.AppliedAfter != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("applied_at >= $%d", argCount))
		args = append(args, *filter.AppliedAfter)
		argCount++
	}

	whereSQL := ""
	if len(whereClauses) > 0 {
		whereSQL = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	// Count total
	var total int
	countQuery := `SELECT COUNT(*) FROM applicants` + whereSQL
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT %s FROM applicants%s ORDER BY applied_at DESC LIMIT $%d OFFSET $%d`,
		applicantColumns, whereSQL, argCount, argCount+1,
	)
	args = append(args, filter.Pagination.PageSize, filter.Pagination.Offset())

	applicants := make([]applicant.Applicant, 0)
	if err := r.db.SelectContext(ctx, &applicants, query, args...); err != nil {
		return nil, err
	}

	return kernel.NewPaginated(applicants, filter.Pagination.Page, filter.Pagination.PageSize, total), nil
}

// ListByStatuses retrieves all applicants in any of the given statuses
func (r *PostgresApplicantRepository) ListByStatuses(ctx context.Context, statuses []applicant.Status) ([]applicant.Applicant, error) {
	if len(statuses) == 0 {
		return []applicant.Applicant{}, nil
	}

	query, args, err := sqlx.In(
		`SELECT `+applicantColumns+` FROM applicants WHERE status IN (?) ORDER BY applied_at DESC`,
		statuses,
	)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	applicants := make([]applicant.Applicant, 0)
	if err := r.db.SelectContext(ctx, &applicants, query, args...); err != nil {
		return nil, err
	}

	return applicants, nil
}

// FindMatches retrieves applicants sharing a full name, email or phone
func (r *PostgresApplicantRepository) FindMatches(ctx context.Context, firstName kernel.FirstName, lastName kernel.LastName, email kernel.Email, phone kernel.Phone) ([]applicant.Applicant, error) {
	query := `
		SELECT ` + applicantColumns + `
		FROM applicants
		WHERE (LOWER(first_name) = LOWER($1) AND LOWER(last_name) = LOWER($2))
		   OR LOWER(email) = LOWER($3)
		   OR phone = $4
	`

	applicants := make([]applicant.Applicant, 0)
	if err := r.db.SelectContext(ctx, &applicants, query, firstName, lastName, email, phone); err != nil {
		return nil, err
	}

	return applicants, nil
}

// AdvanceStatus moves an applicant to a new status, logs the action and
// clears scheduled interviews for terminal statuses, all in one transaction.
func (r *PostgresApplicantRepository) AdvanceStatus(ctx context.Context, id kernel.ApplicantID, newStatus applicant.Status, expectedVersion int64, logAction, actor string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()

	// Version-guarded status update
	updateQuery := `
		UPDATE applicants
		SET status = $2, version = version + 1, updated_at = $3
		WHERE id = $1 AND version = $4
	`
	result, err := tx.ExecContext(ctx, updateQuery, id, newStatus, now, expectedVersion)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		// Distinguish a stale version from a missing applicant
		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM applicants WHERE id = $1)`, id); err != nil {
			return err
		}
		if !exists {
			return applicant.ErrApplicantNotFound().WithDetail("id", id.String())
		}
		return applicant.ErrVersionConflict().
			WithDetail("id", id.String()).
			WithDetail("expected_version", expectedVersion)
	}

	entry := &actionlog.Entry{
		ID:          kernel.NewActionLogID(uuid.New().String()),
		ApplicantID: id,
		Action:      logAction,
		PerformedBy: actor,
		PerformedAt: now,
	}
	if err := actionloginfra.Insert(ctx, tx, entry); err != nil {
		return err
	}

	// Leaving the interview stage removes any scheduled interviews
	if newStatus.IsTerminal() {
		if _, err := tx.ExecContext(ctx, `DELETE FROM interviews WHERE applicant_id = $1`, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Exists checks if an applicant exists by ID
func (r *PostgresApplicantRepository) Exists(ctx context.Context, id kernel.ApplicantID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM applicants WHERE id = $1)`
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, err
	}
	return exists, nil
}

// StatusCounts counts applicants per status
func (r *PostgresApplicantRepository) StatusCounts(ctx context.Context) (map[applicant.Status]int64, error) {
	query := `SELECT status, COUNT(*) AS count FROM applicants GROUP BY status`

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[applicant.Status]int64)
	for rows.Next() {
		var status applicant.Status
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// CountHiredSince counts hired applicants whose record was created at or
// after the given time
func (r *PostgresApplicantRepository) CountHiredSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM applicants WHERE status = $1 AND applied_at >= $2`
	if err := r.db.GetContext(ctx, &count, query, applicant.StatusHired, since); err != nil {
		return 0, err
	}
	return count, nil
}

// ListRecent retrieves the most recently applied applicants
func (r *PostgresApplicantRepository) ListRecent(ctx context.Context, limit int) ([]applicant.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants ORDER BY applied_at DESC LIMIT $1`

	applicants := make([]applicant.Applicant, 0)
	if err := r.db.SelectContext(ctx, &applicants, query, limit); err != nil {
		return nil, err
	}

	return applicants, nil
}
