package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
)

// PostRepoImpl provides a concrete implementation for the PostRepository interface using PostgreSQL.
type PostRepoImpl struct {
	db *pgxpool.Pool
}

// NewPostRepo creates a new instance of PostRepoImpl.
func NewPostRepo(db *pgxpool.Pool) *PostRepoImpl {
	return &PostRepoImpl{db: db}
}

var _ repository.PostRepository = (*PostRepoImpl)(nil)

// ReplaceDay deletes the stored posts of day and inserts posts within a
// single transaction, so readers see either the old day or the new one.
func (r *PostRepoImpl) ReplaceDay(ctx context.Context, day string, posts []entity.Post) error {
	date, err := dayParam(day)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM front_page_posts WHERE day = $1`, date); err != nil {
		return err
	}

	if len(posts) > 0 {
		batch := &pgx.Batch{}
		for i, p := range posts {
			batch.Queue(`INSERT INTO front_page_posts
				(day, position, item_id, rank, title_line, link, score, author, posted_at, comments)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				date, i, p.ID, p.Rank, p.TitleLine, p.Link, p.Score, p.User, p.Date, p.Comments)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// FindByDay returns the posts of day in their original order.
func (r *PostRepoImpl) FindByDay(ctx context.Context, day string) ([]entity.Post, error) {
	date, err := dayParam(day)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT item_id, rank, title_line, link, score, author, posted_at, comments
		FROM front_page_posts
		WHERE day = $1
		ORDER BY position ASC;
	`
	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []entity.Post{}
	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(
			&p.ID,
			&p.Rank,
			&p.TitleLine,
			&p.Link,
			&p.Score,
			&p.User,
			&p.Date,
			&p.Comments,
		); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	return posts, rows.Err()
}
