package sequence

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MemoryStore is an in-memory Source, safe for concurrent use.
type MemoryStore struct {
	mu   sync.RWMutex
	seqs map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{seqs: make(map[string]string)}
}

// Put records a sequence under an identifier, replacing any previous value.
func (s *MemoryStore) Put(id, seq string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seqs[id] = seq
}

// Sequence implements Source.
func (s *MemoryStore) Sequence(_ context.Context, id string, start, end int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq, ok := s.seqs[id]
	if !ok {
		return "", fmt.Errorf("sequence %s: %w", id, ErrNotFound)
	}
	if err := checkRange(start, end, len(seq)); err != nil {
		return "", fmt.Errorf("sequence %s [%d, %d) of %d: %w", id, start, end, len(seq), err)
	}
	return seq[start:end], nil
}

// Length implements Source.
func (s *MemoryStore) Length(_ context.Context, id string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seq, ok := s.seqs[id]
	if !ok {
		return 0, fmt.Errorf("sequence %s: %w", id, ErrNotFound)
	}
	return len(seq), nil
}

// ReadFASTA loads FASTA records into a new memory store. Each record is
// keyed by the first word of its header line; residues are uppercased.
func ReadFASTA(r io.Reader) (*MemoryStore, error) {
	store := NewMemoryStore()

	var (
		id  string
		seq strings.Builder
	)
	flush := func() {
		if id != "" {
			store.Put(id, seq.String())
		}
		seq.Reset()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 8*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		switch {
		case text == "":
		case strings.HasPrefix(text, ">"):
			flush()
			fields := strings.Fields(text[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("read fasta: empty header at line %d", line)
			}
			id = fields[0]
		case strings.HasPrefix(text, ";"):
			// Comment line.
		default:
			if id == "" {
				return nil, fmt.Errorf("read fasta: residues before header at line %d", line)
			}
			seq.WriteString(strings.ToUpper(text))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read fasta: %w", err)
	}
	flush()

	return store, nil
}
