package actionloginfra

import (
	"context"

	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/actionlog"
	"github.com/jmoiron/sqlx"
)

type PostgresActionLogRepository struct {
	db *sqlx.DB
}

func NewPostgresActionLogRepository(db *sqlx.DB) actionlog.Repository {
	return &PostgresActionLogRepository{db: db}
}

// Insert appends an entry using the given executor, which may be a
// transaction. Status changes use this to write their log row inside the
// same transaction as the status update.
func Insert(ctx context.Context, ext sqlx.ExtContext, entry *actionlog.Entry) error {
	query := `
		INSERT INTO action_logs (
			id, applicant_id, action, performed_by, performed_at
		) VALUES (
			$1, $2, $3, $4, $5
		)
	`

	_, err := ext.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.ApplicantID,
		entry.Action,
		entry.PerformedBy,
		entry.PerformedAt,
	)

	return err
}

// Record appends a new entry
func (r *PostgresActionLogRepository) Record(ctx context.Context, entry *actionlog.Entry) error {
	return Insert(ctx, r.db, entry)
}

// ListByApplicant retrieves all entries for an applicant, newest first
func (r *PostgresActionLogRepository) ListByApplicant(ctx context.Context, applicantID kernel.ApplicantID) ([]actionlog.Entry, error) {
	query := `
		SELECT id, applicant_id, action, performed_by, performed_at
		FROM action_logs
		WHERE applicant_id = $1
		ORDER BY performed_at DESC
	`

	entries := make([]actionlog.Entry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, applicantID); err != nil {
		return nil, err
	}

	return entries, nil
}

// List retrieves entries across applicants with pagination, newest first
func (r *PostgresActionLogRepository) List(ctx context.Context, pagination kernel.PaginationOptions) (*kernel.Paginated[actionlog.Entry], error) {
	// Count total
	var total int
	countQuery := `SELECT COUNT(*) FROM action_logs`
	if err := r.db.GetContext(ctx, &total, countQuery); err != nil {
		return nil, err
	}

	query := `
		SELECT id, applicant_id, action, performed_by, performed_at
		FROM action_logs
		ORDER BY performed_at DESC
		LIMIT $1 OFFSET $2
	`

	entries := make([]actionlog.Entry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, pagination.PageSize, pagination.Offset()); err != nil {
		return nil, err
	}

	return kernel.NewPaginated(entries, pagination.Page, pagination.PageSize, total), nil
}
