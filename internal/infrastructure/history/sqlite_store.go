package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/pkg/filesystem"
	"github.com/doeshing/coach-go/internal/ports"
)

// SQLiteStore persists history in a SQLite database. seq preserves insertion
// order independently of the millisecond ids.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	path = filesystem.ExpandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history db: %w", err)
	}
	return store, nil
}

func (s *SQLiteStore) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS entries (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id INTEGER NOT NULL,
		date TEXT,
		time TEXT,
		inputs TEXT,
		plan TEXT,
		goal TEXT
	);`)
	return err
}

// Load returns every entry, newest first.
func (s *SQLiteStore) Load(ctx context.Context) ([]domain.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, date, time, inputs, plan, goal FROM entries ORDER BY seq DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var inputs, goal sql.NullString
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Time, &inputs, &entry.Plan, &goal); err != nil {
			return nil, err
		}
		if inputs.Valid && inputs.String != "" {
			var req domain.GenerationRequest
			if err := json.Unmarshal([]byte(inputs.String), &req); err != nil {
				return nil, fmt.Errorf("decode inputs for entry %d: %w", entry.ID, err)
			}
			entry.Inputs = &req
		}
		entry.Goal = goal.String
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Append inserts a new entry.
func (s *SQLiteStore) Append(ctx context.Context, entry domain.HistoryEntry) error {
	var inputs sql.NullString
	if entry.Inputs != nil {
		data, err := json.Marshal(entry.Inputs)
		if err != nil {
			return err
		}
		inputs = sql.NullString{String: string(data), Valid: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `INSERT INTO entries (id, date, time, inputs, plan, goal) VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Date, entry.Time, inputs, entry.Plan, entry.Goal)
	return err
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, "DELETE FROM entries")
	return err
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
