package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jusunglee/cyrtranslit/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Fixed width so that created_at compares correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// Repository implements db.Repository using SQLite
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// New opens (and if needed creates) a SQLite history database.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNew = true
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// every connection to :memory: is a separate database
	if dbPath == ":memory:" {
		sqliteDB.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if isNew {
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return &Repository{db: sqliteDB, now: time.Now}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) CreateConversion(ctx context.Context, arg db.CreateConversionParams) (db.Conversion, error) {
	createdAt := r.now().UTC()
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO conversions (standard, direction, input, output, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, arg.Standard, arg.Direction, arg.Input, arg.Output, createdAt.Format(timeLayout))
	if err != nil {
		return db.Conversion{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Conversion{}, err
	}

	return r.GetConversion(ctx, id)
}

func (r *Repository) GetConversion(ctx context.Context, id int64) (db.Conversion, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, standard, direction, input, output, created_at
		FROM conversions
		WHERE id = ?
	`, id)

	return scanConversion(row)
}

func (r *Repository) ListConversions(ctx context.Context, arg db.ListConversionsParams) ([]db.Conversion, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, standard, direction, input, output, created_at
		FROM conversions
		WHERE (? = '' OR standard = ?)
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, arg.Standard, arg.Standard, arg.Limit, arg.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConversions(rows)
}

func (r *Repository) CountConversions(ctx context.Context, standard string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM conversions WHERE (? = '' OR standard = ?)
	`, standard, standard).Scan(&count)
	return count, err
}

func (r *Repository) CountConversionsByStandard(ctx context.Context) ([]db.StandardCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT standard, COUNT(*)
		FROM conversions
		GROUP BY standard
		ORDER BY standard
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []db.StandardCount
	for rows.Next() {
		var c db.StandardCount
		if err := rows.Scan(&c.Standard, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *Repository) DeleteConversionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM conversions WHERE created_at < ?
	`, cutoff.UTC().Format(timeLayout))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversion(row *sql.Row) (db.Conversion, error) {
	c, err := scanConversionFrom(row)
	if err == sql.ErrNoRows {
		return db.Conversion{}, db.ErrNoRows
	}
	return c, err
}

func scanConversions(rows *sql.Rows) ([]db.Conversion, error) {
	var out []db.Conversion
	for rows.Next() {
		c, err := scanConversionFrom(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanConversionFrom(s scanner) (db.Conversion, error) {
	var c db.Conversion
	var createdAtStr string
	if err := s.Scan(&c.ID, &c.Standard, &c.Direction, &c.Input, &c.Output, &createdAtStr); err != nil {
		return db.Conversion{}, err
	}
	c.CreatedAt, _ = time.Parse(timeLayout, createdAtStr)
	return c, nil
}
