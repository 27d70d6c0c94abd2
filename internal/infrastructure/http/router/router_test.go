package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/infrastructure/http/handler"
	"github.com/doeshing/coach-go/internal/infrastructure/http/middleware"
	"github.com/doeshing/coach-go/internal/pkg/logger"
)

type stubGenerator struct {
	result domain.GenerationResult
	got    []domain.GenerationRequest
	panics bool
}

func (g *stubGenerator) Generate(_ context.Context, req domain.GenerationRequest) domain.GenerationResult {
	if g.panics {
		panic("boom")
	}
	g.got = append(g.got, req)
	return g.result
}

func newEngine(gen *stubGenerator, opts Options) http.Handler {
	opts.Mode = "test"
	if opts.IndexPage == nil {
		opts.IndexPage = []byte("<!doctype html><title>coach</title>")
	}
	return New(opts, gen, logger.NewNop())
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerateSuccess(t *testing.T) {
	gen := &stubGenerator{result: domain.Succeeded("**Day 1: Upper Body**")}
	h := newEngine(gen, Options{})

	rec := post(t, h, `{"type":"fitness","frequency":"3-4","goal":"lose 10lbs","experience":"Beginner","equipment":"Full Gym","split":"Upper/Lower"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var body handler.OutputResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Output != "**Day 1: Upper Body**" {
		t.Errorf("output = %q", body.Output)
	}
	if strings.Contains(rec.Body.String(), `"error"`) {
		t.Errorf("success body carries error key: %s", rec.Body)
	}
	if len(gen.got) != 1 || gen.got[0].Goal != "lose 10lbs" || gen.got[0].Split != "Upper/Lower" {
		t.Errorf("generator received %+v", gen.got)
	}
	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("missing request id header")
	}
}

func TestGenerateFollowUpDecoding(t *testing.T) {
	gen := &stubGenerator{result: domain.Succeeded("answer")}
	h := newEngine(gen, Options{})

	rec := post(t, h, `{"isFollowUp":true,"context":"PLAN","prompt":"Can I swap?"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := gen.got[0]; !got.IsFollowUp || got.Context != "PLAN" || got.Prompt != "Can I swap?" {
		t.Errorf("decoded follow-up = %+v", got)
	}
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name       string
		result     domain.GenerationResult
		body       string
		wantStatus int
		wantError  string
		wantRetry  string
	}{
		{
			name:       "rate limited",
			result:     domain.RateLimited(42*time.Second, nil),
			body:       `{"type":"fitness","goal":"x"}`,
			wantStatus: http.StatusTooManyRequests,
			wantError:  domain.RateLimitedMessage(42 * time.Second),
			wantRetry:  "42",
		},
		{
			name:       "generic",
			result:     domain.Failed(nil),
			body:       `{"type":"fitness","goal":"x"}`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Something went wrong.",
		},
		{
			name:       "malformed body",
			result:     domain.Succeeded("unused"),
			body:       `{"type":`,
			wantStatus: http.StatusInternalServerError,
			wantError:  "Something went wrong.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newEngine(&stubGenerator{result: tt.result}, Options{})
			rec := post(t, h, tt.body)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			var body handler.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Error != tt.wantError {
				t.Errorf("error = %q, want %q", body.Error, tt.wantError)
			}
			if strings.Contains(rec.Body.String(), `"output"`) {
				t.Errorf("failure body carries output key: %s", rec.Body)
			}
			if got := rec.Header().Get("Retry-After"); got != tt.wantRetry {
				t.Errorf("Retry-After = %q, want %q", got, tt.wantRetry)
			}
		})
	}
}

func TestPanicRecovered(t *testing.T) {
	h := newEngine(&stubGenerator{panics: true}, Options{})
	rec := post(t, h, `{"type":"fitness"}`)
	if rec.Code != http.StatusInternalServerError || !strings.Contains(rec.Body.String(), "Something went wrong.") {
		t.Errorf("panic response = %d %s", rec.Code, rec.Body)
	}
}

func TestIndexHealthAndMetrics(t *testing.T) {
	h := newEngine(&stubGenerator{}, Options{Metrics: true, MetricsPath: "/metrics", Version: "1.2.3"})

	for _, tc := range []struct{ path, want string }{
		{"/", "<title>coach</title>"},
		{"/healthz", `"version":"1.2.3"`},
		{"/metrics", "coach_http_requests_total"},
	} {
		path, want := tc.path, tc.want
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d", path, rec.Code)
			continue
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("GET %s body missing %q", path, want)
		}
	}
}

func TestMetricsDisabled(t *testing.T) {
	h := newEngine(&stubGenerator{}, Options{})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newEngine(&stubGenerator{}, Options{CORSOrigins: []string{"https://coach.example"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/generate", nil)
	req.Header.Set("Origin", "https://coach.example")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://coach.example" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
