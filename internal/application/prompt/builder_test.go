package prompt

import (
	"strings"
	"testing"

	"github.com/doeshing/coach-go/internal/domain"
)

func TestEveryKindHasBuilder(t *testing.T) {
	for _, kind := range domain.RequestKinds() {
		if !Has(kind) {
			t.Errorf("no builder registered for %s", kind)
		}
	}
}

func TestBuildFitnessEmbedsProfile(t *testing.T) {
	req := domain.GenerationRequest{
		Type:       "fitness",
		Frequency:  "3-4",
		Goal:       "lose 10lbs",
		Experience: "Beginner",
		Equipment:  "Full Gym",
		Split:      "Upper/Lower",
	}

	got, err := Build(req)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	for _, want := range []string{
		"3-4", "lose 10lbs", "Beginner", "Full Gym", "Upper/Lower",
		"Use bold headers for days (e.g., **Day 1: Upper Body**).",
		"Use bullet points for exercises.",
		"(---)",
		"https://www.youtube.com/results?search_query=how+to+do+barbell+bench+press",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q\n%s", want, got)
		}
	}
}

func TestBuildFitnessDefaultsNone(t *testing.T) {
	got, err := Build(domain.GenerationRequest{Type: "fitness", Goal: "get strong"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.Contains(got, "- Injuries/Limitations: None\n") {
		t.Errorf("injuries default missing:\n%s", got)
	}
	if !strings.Contains(got, "- Additional Notes: None\n") {
		t.Errorf("notes default missing:\n%s", got)
	}
}

func TestBuildFitnessKeepsFreeTextVerbatim(t *testing.T) {
	req := domain.GenerationRequest{
		Type:     "fitness",
		Goal:     `run a <5k> & "feel good"`,
		Injuries: "Bad left knee",
		Notes:    "Prefer mornings",
	}
	got, err := Build(req)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for _, want := range []string{req.Goal, "Bad left knee", "Prefer mornings"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(got, "Injuries/Limitations: None") {
		t.Error("injuries default used despite value")
	}
}

func TestBuildFollowUpOrdersContextBeforeQuestion(t *testing.T) {
	plan := "**Day 1: Upper Body**\n- Bench Press 3x8"
	question := "Can I swap bench press for push-ups?"

	got, err := Build(domain.FollowUp(plan, question))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	planAt := strings.Index(got, plan)
	questionAt := strings.Index(got, question)
	if planAt < 0 || questionAt < 0 {
		t.Fatalf("prompt missing plan or question:\n%s", got)
	}
	if planAt > questionAt {
		t.Errorf("plan appears after question")
	}
	if !strings.Contains(got, "equipment constraints") || !strings.Contains(got, "concise") {
		t.Errorf("follow-up instructions missing:\n%s", got)
	}
	if strings.Contains(got, "USER PROFILE") {
		t.Error("follow-up must not use the fitness template")
	}
}

func TestBuildCookingPlaceholder(t *testing.T) {
	got, err := Build(domain.GenerationRequest{Type: "cooking"})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if !strings.HasPrefix(got, "You are a professional chef") {
		t.Errorf("unexpected cooking prompt: %q", got)
	}
}

func TestBuildUnknownTypeIsEmpty(t *testing.T) {
	for _, req := range []domain.GenerationRequest{{}, {Type: "yoga", Goal: "flexibility"}} {
		got, err := Build(req)
		if err != nil {
			t.Fatalf("Build(%+v) error = %v", req, err)
		}
		if got != "" {
			t.Errorf("Build(%+v) = %q, want empty", req, got)
		}
	}
}

func TestVideoSearchURL(t *testing.T) {
	tests := map[string]string{
		"Romanian Deadlift":         VideoSearchBase + "Romanian+Deadlift",
		"  goblet   squat ":         VideoSearchBase + "goblet+squat",
		"how to do pull-ups & dips": VideoSearchBase + "how+to+do+pull-ups+%26+dips",
	}
	for in, want := range tests {
		if got := VideoSearchURL(in); got != want {
			t.Errorf("VideoSearchURL(%q) = %q, want %q", in, got, want)
		}
	}
}
