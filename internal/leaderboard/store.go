package leaderboard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/quizsys/internal/questionbank"
)

// readLimit bounds how many stored entries are read before ranking.
const readLimit = 100

// Store is a leaderboard persisted as a flat text file.
//
// Record performs a read-merge-rank-truncate-rewrite cycle. The rewrite goes
// through a temp file and a rename, so a crash leaves either the old or the
// new file in place. Concurrent writers are not supported.
type Store struct {
	path string
	now  func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used to date new entries.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore creates a Store backed by the file at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{path: path, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// List returns the stored entries. A store that does not exist yet is empty.
func (s *Store) List() ([]Entry, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open leaderboard: %w", err)
	}
	defer f.Close()

	return Parse(f, readLimit)
}

// Record adds a dated entry for the player, keeps the top MaxEntries and
// rewrites the store. It returns the new leaderboard and the entry's 1-based
// place on it, 0 when the score did not make it.
func (s *Store) Record(name string, score int, d questionbank.Difficulty) ([]Entry, int, error) {
	existing, err := s.List()
	if err != nil {
		return nil, 0, err
	}

	ranked, rank := RecordAndRank(existing, Entry{
		Name:       SanitizeName(name),
		Date:       FormatDate(s.now()),
		Score:      score,
		Difficulty: d,
	})

	if err := s.save(ranked); err != nil {
		return nil, 0, err
	}
	return ranked, rank, nil
}

// save rewrites the store with entries.
func (s *Store) save(entries []Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create leaderboard dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp leaderboard: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := Write(tmp, entries); err != nil {
		tmp.Close()
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp leaderboard: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	return nil
}
