// Package sequence provides access to reference sequences by
// identifier: an interface, an in-memory store with FASTA loading, and
// a Postgres-backed store.
package sequence

import (
	"context"
	"errors"
)

// Sentinel errors returned by sources.
var (
	// ErrNotFound indicates the sequence identifier is not known to the source.
	ErrNotFound = errors.New("sequence not found")
	// ErrOutOfRange indicates the requested interval falls outside the sequence.
	ErrOutOfRange = errors.New("interval out of sequence range")
)

// Source resolves reference sequence slices by identifier.
//
// Coordinates are interbase: Sequence returns the residues covering
// [start, end), and Length returns the full sequence length.
type Source interface {
	Sequence(ctx context.Context, id string, start, end int) (string, error)
	Length(ctx context.Context, id string) (int, error)
}

func checkRange(start, end, length int) error {
	if start < 0 || end < start || end > length {
		return ErrOutOfRange
	}
	return nil
}
