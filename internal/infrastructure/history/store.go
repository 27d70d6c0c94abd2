// Package history holds the client-local history stores.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/pkg/filesystem"
	"github.com/doeshing/coach-go/internal/ports"
)

// DefaultPath returns the store location used when history.path is unset.
func DefaultPath(backend string) string {
	if backend == domain.HistoryBackendSQLite {
		return filepath.Join(filesystem.AppDir(), "history.db")
	}
	return filepath.Join(filesystem.AppDir(), "history.json")
}

// ResolvePath returns cfg.History.Path, or the backend default when unset.
func ResolvePath(cfg domain.Config) string {
	if cfg.History.Path != "" {
		return cfg.History.Path
	}
	return DefaultPath(cfg.GetHistoryBackend())
}

// Open builds the repository selected by cfg.History.
func Open(cfg domain.Config) (ports.HistoryRepository, error) {
	backend := cfg.GetHistoryBackend()
	path := ResolvePath(cfg)

	switch backend {
	case domain.HistoryBackendFile:
		return NewFileStore(path), nil
	case domain.HistoryBackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown history backend %q", backend)
	}
}

// Unavailable returns a repository whose every operation fails with err.
// It stands in for a store that could not be opened so commands that do not
// touch history keep working and doctor can report the cause.
func Unavailable(path string, err error) ports.HistoryRepository {
	return unavailableStore{path: path, err: err}
}

type unavailableStore struct {
	path string
	err  error
}

func (s unavailableStore) Load(context.Context) ([]domain.HistoryEntry, error) {
	return nil, fmt.Errorf("history unavailable: %w", s.err)
}

func (s unavailableStore) Append(context.Context, domain.HistoryEntry) error {
	return fmt.Errorf("history unavailable: %w", s.err)
}

func (s unavailableStore) Clear(context.Context) error {
	return fmt.Errorf("history unavailable: %w", s.err)
}

func (s unavailableStore) Path() string {
	return s.path
}

// Export writes every entry as one indented JSON array.
func Export(ctx context.Context, repo ports.HistoryRepository, w io.Writer) (int, error) {
	entries, err := repo.Load(ctx)
	if err != nil {
		return 0, err
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return len(entries), enc.Encode(entries)
}
