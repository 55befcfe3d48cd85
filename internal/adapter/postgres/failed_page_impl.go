package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
)

// FailedPageRepoImpl provides a concrete implementation for the FailedPageRepository interface using PostgreSQL.
type FailedPageRepoImpl struct {
	db *pgxpool.Pool
}

// NewFailedPageRepo creates a new instance of FailedPageRepoImpl.
func NewFailedPageRepo(db *pgxpool.Pool) *FailedPageRepoImpl {
	return &FailedPageRepoImpl{db: db}
}

var _ repository.FailedPageRepository = (*FailedPageRepoImpl)(nil)

// SaveOrUpdate creates or updates a record for a failed page.
// It increments the attempt_count on conflict.
func (r *FailedPageRepoImpl) SaveOrUpdate(ctx context.Context, failed *entity.FailedPage) error {
	date, err := dayParam(failed.Day)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO failed_pages (day, page, failure_reason, http_status_code, last_attempt_timestamp, attempt_count)
		VALUES ($1, $2, $3, $4, $5, 1)
		ON CONFLICT (day, page) DO UPDATE SET
			failure_reason = EXCLUDED.failure_reason,
			http_status_code = EXCLUDED.http_status_code,
			last_attempt_timestamp = EXCLUDED.last_attempt_timestamp,
			attempt_count = failed_pages.attempt_count + 1;
	`
	_, err = r.db.Exec(ctx, query,
		date,
		failed.Page,
		failed.FailureReason,
		failed.HTTPStatusCode,
		failed.LastAttemptTimestamp,
	)
	return err
}

// FindByDay retrieves the failed pages of a day.
func (r *FailedPageRepoImpl) FindByDay(ctx context.Context, day string) ([]*entity.FailedPage, error) {
	date, err := dayParam(day)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, to_char(day, 'YYYY-MM-DD'), page, failure_reason, http_status_code, last_attempt_timestamp, attempt_count
		FROM failed_pages
		WHERE day = $1
		ORDER BY page ASC;
	`
	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var failedPages []*entity.FailedPage
	for rows.Next() {
		var fp entity.FailedPage
		if err := rows.Scan(
			&fp.ID,
			&fp.Day,
			&fp.Page,
			&fp.FailureReason,
			&fp.HTTPStatusCode,
			&fp.LastAttemptTimestamp,
			&fp.AttemptCount,
		); err != nil {
			return nil, err
		}
		failedPages = append(failedPages, &fp)
	}

	return failedPages, rows.Err()
}

// DeleteDay removes the failed page records of a day, typically after a complete crawl.
func (r *FailedPageRepoImpl) DeleteDay(ctx context.Context, day string) error {
	date, err := dayParam(day)
	if err != nil {
		return err
	}

	query := `DELETE FROM failed_pages WHERE day = $1;`
	_, err = r.db.Exec(ctx, query, date)
	return err
}
