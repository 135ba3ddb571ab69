package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Entry is one recorded ex-command line.
type Entry struct {
	ID        string
	Line      string
	Timestamp time.Time
}

// Store persists ex-command history in SQLite.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

// Open opens (creating if necessary) the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("history: opening %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// OpenInMemory opens a SQLite database that lives only for the process
// lifetime, for tests and ephemeral hosts.
func OpenInMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("history: opening in-memory database: %w", err)
	}
	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS excmd_history (
			id TEXT PRIMARY KEY,
			line TEXT NOT NULL,
			timestamp DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_excmd_history_timestamp ON excmd_history(timestamp DESC);
		CREATE INDEX IF NOT EXISTS idx_excmd_history_line ON excmd_history(line);
	`)
	return err
}

// ErrStoreClosed is returned by every operation once Close has run.
var ErrStoreClosed = fmt.Errorf("history: store closed")

// Append records one successfully parsed ex-command line.
func (s *Store) Append(ctx context.Context, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO excmd_history (id, line, timestamp) VALUES (?, ?, ?)`,
		uuid.New().String(), line, time.Now())
	if err != nil {
		return fmt.Errorf("history: appending: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, line, timestamp FROM excmd_history ORDER BY timestamp DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: listing: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// WithPrefix returns entries whose line starts with prefix, most recent
// first, for the demo host's command-line history navigation (analogous
// to the teacher's CommandMode.HistoryPrev/HistoryNext, but backed by
// this durable store instead of an in-memory slice).
func (s *Store) WithPrefix(ctx context.Context, prefix string, limit int) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, line, timestamp FROM excmd_history WHERE line LIKE ? ESCAPE '\' ORDER BY timestamp DESC LIMIT ?`,
		escapeLikePrefix(prefix)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("history: querying prefix: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// escapeLikePrefix escapes SQLite LIKE metacharacters in a user-supplied
// prefix so a command line containing '%' or '_' is matched literally.
func escapeLikePrefix(prefix string) string {
	out := make([]byte, 0, len(prefix))
	for i := 0; i < len(prefix); i++ {
		switch prefix[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, prefix[i])
	}
	return string(out)
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Line, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("history: scanning: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
