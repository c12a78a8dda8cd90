package sequence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Registers the pgx stdlib driver used by Connect.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/reece/vr/internal/ctxlog"
)

// ConnectOptions configures the Postgres connection pool.
type ConnectOptions struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	PingTimeout     time.Duration
}

const defaultPingTimeout = 5 * time.Second

// Connect opens a pooled connection suitable for NewPostgresStore.
func Connect(ctx context.Context, opts ConnectOptions) (*sql.DB, error) {
	if opts.DSN == "" {
		return nil, errors.New("connect: DSN is required")
	}

	db, err := sql.Open("pgx", opts.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}

	pingTimeout := opts.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		closeErr := db.Close()
		return nil, errors.Join(fmt.Errorf("connect: ping: %w", err), closeErr)
	}

	return db, nil
}

// PostgresStore is a Source backed by a sequences table with columns
// seq_id and seq.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore returns a store over a pooled DB connection.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Sequence implements Source. The slice is taken server-side so large
// references never cross the wire whole.
func (s *PostgresStore) Sequence(ctx context.Context, id string, start, end int) (string, error) {
	const query = `
        SELECT substr(seq, $1, $2), length(seq)
          FROM sequences
         WHERE seq_id = $3
    `

	ctxlog.FromContext(ctx).Debug("fetch sequence slice",
		"seq_id", id, "start", start, "end", end)

	width := end - start
	if width < 0 {
		width = 0
	}

	var (
		slice  string
		length int
	)
	err := s.db.QueryRowContext(ctx, query, start+1, width, id).Scan(&slice, &length)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("sequence %s: %w", id, ErrNotFound)
		}
		return "", fmt.Errorf("fetch sequence %s: %w", id, err)
	}
	if err := checkRange(start, end, length); err != nil {
		return "", fmt.Errorf("sequence %s [%d, %d) of %d: %w", id, start, end, length, err)
	}

	return slice, nil
}

// Length implements Source.
func (s *PostgresStore) Length(ctx context.Context, id string) (int, error) {
	const query = `
        SELECT length(seq)
          FROM sequences
         WHERE seq_id = $1
    `

	var length int
	err := s.db.QueryRowContext(ctx, query, id).Scan(&length)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, fmt.Errorf("sequence %s: %w", id, ErrNotFound)
		}
		return 0, fmt.Errorf("fetch sequence length %s: %w", id, err)
	}

	return length, nil
}
