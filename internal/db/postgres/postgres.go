package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/cyrtranslit/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and makes sure the schema exists.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// PoolStats exposes pool counters for the metrics exporter.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

const conversionColumns = `id, standard, direction, input, output, created_at`

func (r *Repository) CreateConversion(ctx context.Context, arg db.CreateConversionParams) (db.Conversion, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO conversions (standard, direction, input, output)
		VALUES ($1, $2, $3, $4)
		RETURNING `+conversionColumns,
		arg.Standard, arg.Direction, arg.Input, arg.Output)
	return scanConversion(row)
}

func (r *Repository) GetConversion(ctx context.Context, id int64) (db.Conversion, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+conversionColumns+` FROM conversions WHERE id = $1`, id)
	return scanConversion(row)
}

func (r *Repository) ListConversions(ctx context.Context, arg db.ListConversionsParams) ([]db.Conversion, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+conversionColumns+`
		FROM conversions
		WHERE ($1 = '' OR standard = $1)
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, arg.Standard, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []db.Conversion
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repository) CountConversions(ctx context.Context, standard string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM conversions WHERE ($1 = '' OR standard = $1)
	`, standard).Scan(&count)
	return count, err
}

func (r *Repository) CountConversionsByStandard(ctx context.Context) ([]db.StandardCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT standard, COUNT(*)
		FROM conversions
		GROUP BY standard
		ORDER BY standard
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.StandardCount, error) {
		var c db.StandardCount
		err := row.Scan(&c.Standard, &c.Count)
		return c, err
	})
}

func (r *Repository) DeleteConversionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM conversions WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanConversion(row pgx.Row) (db.Conversion, error) {
	var c db.Conversion
	err := row.Scan(&c.ID, &c.Standard, &c.Direction, &c.Input, &c.Output, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Conversion{}, db.ErrNoRows
	}
	if err != nil {
		return db.Conversion{}, err
	}
	return c, nil
}
