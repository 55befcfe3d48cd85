package postgres

import (
	"context"
	_ "embed"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/user/frontpage-archiver/pkg/utils"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the mirror tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, schemaSQL)
	return err
}

// dayParam turns a YYYY-MM-DD day into a value pgx encodes as DATE.
func dayParam(day string) (time.Time, error) {
	return utils.ParseDay(day)
}
