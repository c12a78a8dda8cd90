package normalize

import (
	"context"
	"fmt"

	"github.com/reece/vr/sequence"
)

const chunkSize = 1024

// window provides random access to one reference sequence, fetching
// fixed-size chunks from the source on demand so rolling over a long
// repeat never pulls the whole reference.
type window struct {
	ctx    context.Context
	src    sequence.Source
	id     string
	length int
	chunks map[int]string
}

func newWindow(ctx context.Context, src sequence.Source, id string) (*window, error) {
	length, err := src.Length(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reference %s: %w", id, err)
	}
	return &window{
		ctx:    ctx,
		src:    src,
		id:     id,
		length: length,
		chunks: make(map[int]string),
	}, nil
}

func (w *window) at(pos int) (byte, error) {
	if pos < 0 || pos >= w.length {
		return 0, fmt.Errorf("reference %s position %d: %w", w.id, pos, sequence.ErrOutOfRange)
	}

	ci := pos / chunkSize
	chunk, ok := w.chunks[ci]
	if !ok {
		start := ci * chunkSize
		end := min(start+chunkSize, w.length)
		fetched, err := w.src.Sequence(w.ctx, w.id, start, end)
		if err != nil {
			return 0, fmt.Errorf("reference %s chunk [%d, %d): %w", w.id, start, end, err)
		}
		w.chunks[ci] = fetched
		chunk = fetched
	}

	return chunk[pos-ci*chunkSize], nil
}

func (w *window) slice(start, end int) (string, error) {
	if start == end {
		return "", nil
	}
	s, err := w.src.Sequence(w.ctx, w.id, start, end)
	if err != nil {
		return "", fmt.Errorf("reference %s slice [%d, %d): %w", w.id, start, end, err)
	}
	return s, nil
}

// rollLeft reports how far the varying sequence can shift left of pos
// while still matching the reference. limit 0 is unbounded.
func (w *window) rollLeft(pos int, seq string, limit int) (int, error) {
	n := len(seq)
	d := 0
	for pos-d-1 >= 0 {
		if limit > 0 && d >= limit {
			break
		}
		b, err := w.at(pos - d - 1)
		if err != nil {
			return 0, err
		}
		if b != seq[n-1-(d%n)] {
			break
		}
		d++
	}
	return d, nil
}

// rollRight reports how far the varying sequence can shift right of pos
// while still matching the reference. limit 0 is unbounded.
func (w *window) rollRight(pos int, seq string, limit int) (int, error) {
	n := len(seq)
	d := 0
	for pos+d < w.length {
		if limit > 0 && d >= limit {
			break
		}
		b, err := w.at(pos + d)
		if err != nil {
			return 0, err
		}
		if b != seq[d%n] {
			break
		}
		d++
	}
	return d, nil
}
