package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/pkg/filesystem"
	"github.com/doeshing/coach-go/internal/ports"
)

// FileStore keeps history as a single JSON array, newest first. The layout
// matches what the web client keeps under localStorage "fitness_history",
// so exported files can be pasted back into a browser.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: filesystem.ExpandHome(path)}
}

// Load returns every entry; a missing file is an empty history.
func (f *FileStore) Load(ctx context.Context) ([]domain.HistoryEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// Append puts entry at the front and rewrites the file.
func (f *FileStore) Append(ctx context.Context, entry domain.HistoryEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.read()
	if err != nil {
		return err
	}
	entries = append([]domain.HistoryEntry{entry}, entries...)

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return filesystem.WriteFileAtomic(f.path, data, domain.SecureFilePermissions)
}

// Clear removes the history file.
func (f *FileStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

func (f *FileStore) read() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.path, err)
	}
	return entries, nil
}

var _ ports.HistoryRepository = (*FileStore)(nil)
