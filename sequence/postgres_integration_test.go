//go:build integration

package sequence_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reece/vr/sequence"
)

func setupStore(t *testing.T) *sequence.PostgresStore {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres integration tests")
	}

	ctx := context.Background()
	db, err := sequence.Connect(ctx, sequence.ConnectOptions{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS sequences (
            seq_id TEXT PRIMARY KEY,
            seq    TEXT NOT NULL
        )
    `)
	require.NoError(t, err)

	_, err = db.ExecContext(ctx, `
        INSERT INTO sequences (seq_id, seq)
        VALUES ('refseq:NC_test.1', 'CAGCAGCAG')
        ON CONFLICT (seq_id) DO UPDATE SET seq = EXCLUDED.seq
    `)
	require.NoError(t, err)

	return sequence.NewPostgresStore(db)
}

func TestPostgresStoreSequence(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	got, err := store.Sequence(ctx, "refseq:NC_test.1", 3, 6)
	require.NoError(t, err)
	require.Equal(t, "CAG", got)

	length, err := store.Length(ctx, "refseq:NC_test.1")
	require.NoError(t, err)
	require.Equal(t, 9, length)
}

func TestPostgresStoreSequenceErrors(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	_, err := store.Sequence(ctx, "refseq:absent", 0, 1)
	require.True(t, errors.Is(err, sequence.ErrNotFound), "error = %v", err)

	_, err = store.Sequence(ctx, "refseq:NC_test.1", 0, 100)
	require.True(t, errors.Is(err, sequence.ErrOutOfRange), "error = %v", err)
}
