package helpers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/doeshing/coach-go/internal/domain"
)

func TestPromptFitnessFormDefaults(t *testing.T) {
	in := strings.NewReader("lose 10lbs\n\n\n\n\n\n\n")
	var out bytes.Buffer

	form := PromptFitnessForm(&out, in, domain.NewFitnessForm())
	req := form.Resolve()

	if req.Goal != "lose 10lbs" || req.Frequency != "3-4" || req.Experience != "Beginner" ||
		req.Equipment != "Full Gym" || req.Split != "Upper/Lower" {
		t.Errorf("resolved = %+v", req)
	}
	if !strings.Contains(out.String(), "4) Other...") {
		t.Errorf("Other option not offered:\n%s", out.String())
	}
}

func TestPromptFitnessFormOtherAndNumbers(t *testing.T) {
	// goal, frequency #3, experience Other + text, equipment #3, split "other" + text, injuries, notes
	in := strings.NewReader("get strong\n3\n4\nex-rower\n3\nother\nBro split\nBad left knee\n\n")
	var out bytes.Buffer

	req := PromptFitnessForm(&out, in, domain.NewFitnessForm()).Resolve()

	want := domain.GenerationRequest{
		Type:       "fitness",
		Frequency:  "5+",
		Goal:       "get strong",
		Experience: "ex-rower",
		Equipment:  "Bodyweight Only",
		Injuries:   "Bad left knee",
		Split:      "Bro split",
	}
	if req != want {
		t.Errorf("resolved = %+v\nwant       %+v", req, want)
	}
}

func TestRenderResult(t *testing.T) {
	var out bytes.Buffer
	RenderResult(&out, TitlePlan, domain.Succeeded("**Day 1**\n"))
	if !strings.HasPrefix(out.String(), TitlePlan) || !strings.Contains(out.String(), "**Day 1**") {
		t.Errorf("success render = %q", out.String())
	}

	out.Reset()
	RenderResult(&out, TitlePlan, domain.RateLimited(3*time.Second, nil))
	if !strings.Contains(out.String(), "3 seconds") || strings.Contains(out.String(), TitlePlan) {
		t.Errorf("failure render = %q", out.String())
	}
}

func TestRenderHistory(t *testing.T) {
	var out bytes.Buffer
	RenderHistoryList(&out, nil, 0)
	if strings.TrimSpace(out.String()) != MsgNoHistoryRecorded {
		t.Errorf("empty list = %q", out.String())
	}

	entries := []domain.HistoryEntry{
		{ID: 2, Date: "3/7/2026", Time: "02:06 PM", Inputs: &domain.GenerationRequest{IsFollowUp: true, Prompt: "swap?"}, Plan: "yes"},
		{ID: 1, Date: "3/7/2026", Time: "02:05 PM", Goal: "legacy goal", Plan: "old"},
	}
	out.Reset()
	RenderHistoryList(&out, entries, 1)
	if got := out.String(); got != "2 | 3/7/2026 • 02:06 PM | swap? (follow-up)\n" {
		t.Errorf("list = %q", got)
	}

	out.Reset()
	RenderHistoryEntry(&out, domain.HistoryEntry{
		Date: "3/7/2026", Time: "02:05 PM", Plan: "PLAN",
		Inputs: &domain.GenerationRequest{Goal: "g", Frequency: "3-4", Experience: "Beginner", Equipment: "Full Gym", Split: "Full Body", Injuries: "knee"},
	})
	got := out.String()
	for _, want := range []string{"Plan Parameters", "Frequency: 3-4 days/week", "Injuries: knee", "PLAN"} {
		if !strings.Contains(got, want) {
			t.Errorf("entry render missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Notes:") {
		t.Errorf("empty notes rendered:\n%s", got)
	}
}

func TestNestedMapHelpers(t *testing.T) {
	root := map[string]interface{}{
		"preferences": map[string]interface{}{"default_model": "gemini-2.0-flash"},
		"history":     "not-a-map",
	}

	if got, ok := TraverseNestedMap(root, []string{"preferences", "default_model"}); !ok || got != "gemini-2.0-flash" {
		t.Errorf("TraverseNestedMap = %v, %v", got, ok)
	}
	if _, ok := TraverseNestedMap(root, []string{"history", "backend"}); ok {
		t.Error("traversed through a scalar")
	}

	if !SetNestedMapValue(root, []string{"history", "backend"}, "sqlite") {
		t.Fatal("SetNestedMapValue returned false")
	}
	if got, ok := TraverseNestedMap(root, []string{"history", "backend"}); !ok || got != "sqlite" {
		t.Errorf("after set = %v, %v", got, ok)
	}
	if SetNestedMapValue(root, nil, "x") {
		t.Error("empty key path accepted")
	}

	if got := ParseYAMLValue("30"); got != 30 {
		t.Errorf("ParseYAMLValue(30) = %#v", got)
	}
	if got := ParseYAMLValue("[a, b"); got != "[a, b" {
		t.Errorf("ParseYAMLValue(invalid) = %#v", got)
	}
}
