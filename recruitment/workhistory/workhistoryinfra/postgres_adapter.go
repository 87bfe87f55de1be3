package workhistoryinfra

import (
	"context"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/workhistory"
	"github.com/jmoiron/sqlx"
)

type PostgresWorkHistoryRepository struct {
	db *sqlx.DB
}

func NewPostgresWorkHistoryRepository(db *sqlx.DB) workhistory.Repository {
	return &PostgresWorkHistoryRepository{db: db}
}

// Create appends a new record
func (r *PostgresWorkHistoryRepository) Create(ctx context.Context, record *workhistory.Record) error {
	query := `
		INSERT INTO work_history (
			id, applicant_id, company, position, start_date, end_date,
			responsibilities, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.ApplicantID,
		record.Company,
		record.Position,
		record.StartDate,
		record.EndDate,
		record.Responsibilities,
		record.CreatedAt,
	)

	return err
}

// ListByApplicant retrieves an applicant's records, most recent job first
func (r *PostgresWorkHistoryRepository) ListByApplicant(ctx context.Context, applicantID kernel.ApplicantID) ([]workhistory.Record, error) {
	query := `
		SELECT id, applicant_id, company, position, start_date, end_date,
			responsibilities, created_at
		FROM work_history
		WHERE applicant_id = $1
		ORDER BY start_date DESC
	`

	records := make([]workhistory.Record, 0)
	if err := r.db.SelectContext(ctx, &records, query, applicantID); err != nil {
		return nil, err
	}

	return records, nil
}
