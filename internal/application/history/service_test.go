package history

import (
	"context"
	"testing"
	"time"

	"github.com/doeshing/coach-go/internal/domain"
)

type memoryRepo struct {
	entries []domain.HistoryEntry
	cleared bool
}

func (m *memoryRepo) Load(context.Context) ([]domain.HistoryEntry, error) {
	return append([]domain.HistoryEntry(nil), m.entries...), nil
}

func (m *memoryRepo) Append(_ context.Context, entry domain.HistoryEntry) error {
	m.entries = append([]domain.HistoryEntry{entry}, m.entries...)
	return nil
}

func (m *memoryRepo) Clear(context.Context) error {
	m.entries = nil
	m.cleared = true
	return nil
}

func (m *memoryRepo) Path() string { return "memory" }

func TestRecordPrependsAndLatest(t *testing.T) {
	repo := &memoryRepo{}
	clock := time.Date(2026, 3, 7, 14, 5, 0, 0, time.UTC)
	svc := &Service{Repository: repo, Now: func() time.Time { return clock }}
	ctx := context.Background()

	first, err := svc.Record(ctx, domain.GenerationRequest{Type: "fitness", Goal: "first"}, domain.Succeeded("plan one"))
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}
	clock = clock.Add(time.Minute)
	second, err := svc.Record(ctx, domain.GenerationRequest{Type: "fitness", Goal: "second"}, domain.Succeeded("plan two"))
	if err != nil {
		t.Fatalf("Record() error = %v", err)
	}

	entries, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 || entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Fatalf("entries not newest first: %+v", entries)
	}

	latest, ok, err := svc.Latest(ctx)
	if err != nil || !ok {
		t.Fatalf("Latest() = %v, %v", ok, err)
	}
	if latest.Plan != "plan two" || latest.Title() != "second" {
		t.Errorf("latest = %+v", latest)
	}

	found, ok, _ := svc.Find(ctx, first.ID)
	if !ok || found.Plan != "plan one" {
		t.Errorf("Find(%d) = %+v, %v", first.ID, found, ok)
	}
}

func TestRecordSkipsFailures(t *testing.T) {
	repo := &memoryRepo{}
	svc := &Service{Repository: repo}

	if _, err := svc.Record(context.Background(), domain.GenerationRequest{Goal: "x"}, domain.Failed(nil)); err == nil {
		t.Fatal("expected error for failed result")
	}
	if len(repo.entries) != 0 {
		t.Errorf("failed result recorded: %+v", repo.entries)
	}
}

func TestClearEmptiesHistory(t *testing.T) {
	repo := &memoryRepo{entries: []domain.HistoryEntry{{ID: 1, Plan: "p"}}}
	svc := &Service{Repository: repo}

	if err := svc.Clear(context.Background()); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok, _ := svc.Latest(context.Background()); ok {
		t.Error("Latest() found an entry after Clear")
	}
	if !repo.cleared {
		t.Error("repository Clear not called")
	}
}

func TestSearchMatchesTitleAndPlan(t *testing.T) {
	repo := &memoryRepo{entries: []domain.HistoryEntry{
		{ID: 3, Inputs: &domain.GenerationRequest{IsFollowUp: true, Prompt: "Swap bench?"}, Plan: "Use push-ups"},
		{ID: 2, Inputs: &domain.GenerationRequest{Goal: "Lose 10lbs"}, Plan: "**Day 1**"},
		{ID: 1, Goal: "legacy squat goal", Plan: "old"},
	}}
	svc := &Service{Repository: repo}

	tests := map[string][]int64{
		"bench":    {3},
		"PUSH-UPS": {3},
		"lbs":      {2},
		"squat":    {1},
		"yoga":     nil,
	}
	for query, want := range tests {
		got, err := svc.Search(context.Background(), query)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", query, err)
		}
		var ids []int64
		for _, entry := range got {
			ids = append(ids, entry.ID)
		}
		if len(ids) != len(want) {
			t.Errorf("Search(%q) = %v, want %v", query, ids, want)
			continue
		}
		for i := range ids {
			if ids[i] != want[i] {
				t.Errorf("Search(%q) = %v, want %v", query, ids, want)
			}
		}
	}
}
