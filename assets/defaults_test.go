package assets

import (
	"strings"
	"testing"
)

// Smoke check only: the page script is not executed here. The same client
// behaviour (sentinel resolution, prepend on success, clear) runs in Go in
// the cli/commands and cli/helpers tests.
func TestIndexHTMLSmoke(t *testing.T) {
	page := string(IndexHTML)
	for _, want := range []string{
		`'fitness_history'`,
		`fetch('/api/generate'`,
		`'Network error. Please try again.'`,
		`'Designing Plan...'`,
		`<option value="other">Other...</option>`,
		`localStorage.removeItem(STORAGE_KEY)`,
		`item.goal`,
		`showNotice(STORAGE_ERROR)`,
	} {
		if !strings.Contains(page, want) {
			t.Errorf("index.html missing %s", want)
		}
	}
}

func TestDefaultConfigEmbedded(t *testing.T) {
	if !strings.Contains(string(DefaultConfigYAML), "default_model: gemini-2.0-flash") {
		t.Error("default config does not select gemini-2.0-flash")
	}
}
