// Package history manages the client-local list of past generations.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/ports"
)

// Service records successful generations and exposes them newest first.
type Service struct {
	Repository ports.HistoryRepository
	Logger     ports.Logger
	Now        func() time.Time
}

// Record stores a successful result. Failed results are never recorded.
func (s *Service) Record(ctx context.Context, req domain.GenerationRequest, result domain.GenerationResult) (domain.HistoryEntry, error) {
	if s.Repository == nil {
		return domain.HistoryEntry{}, errors.New("history.Service repository not configured")
	}
	if !result.OK() {
		return domain.HistoryEntry{}, fmt.Errorf("refusing to record failed generation: %s", result.Failure.Message)
	}

	entry := domain.NewHistoryEntry(s.now(), req, result.Output)
	if err := s.Repository.Append(ctx, entry); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("append history: %w", err)
	}
	if s.Logger != nil {
		s.Logger.Debug("history recorded", map[string]interface{}{"id": entry.ID, "path": s.Repository.Path()})
	}
	return entry, nil
}

// List returns every entry, newest first.
func (s *Service) List(ctx context.Context) ([]domain.HistoryEntry, error) {
	if s.Repository == nil {
		return nil, errors.New("history.Service repository not configured")
	}
	return s.Repository.Load(ctx)
}

// Latest returns the most recent entry.
func (s *Service) Latest(ctx context.Context) (domain.HistoryEntry, bool, error) {
	entries, err := s.List(ctx)
	if err != nil || len(entries) == 0 {
		return domain.HistoryEntry{}, false, err
	}
	return entries[0], true, nil
}

// Find looks an entry up by id.
func (s *Service) Find(ctx context.Context, id int64) (domain.HistoryEntry, bool, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return domain.HistoryEntry{}, false, err
	}
	for _, entry := range entries {
		if entry.ID == id {
			return entry, true, nil
		}
	}
	return domain.HistoryEntry{}, false, nil
}

// Search returns entries whose title or plan contains query, ignoring case.
func (s *Service) Search(ctx context.Context, query string) ([]domain.HistoryEntry, error) {
	entries, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(strings.TrimSpace(query))
	var matches []domain.HistoryEntry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Title()), needle) || strings.Contains(strings.ToLower(entry.Plan), needle) {
			matches = append(matches, entry)
		}
	}
	return matches, nil
}

// Clear removes every stored entry.
func (s *Service) Clear(ctx context.Context) error {
	if s.Repository == nil {
		return errors.New("history.Service repository not configured")
	}
	return s.Repository.Clear(ctx)
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
