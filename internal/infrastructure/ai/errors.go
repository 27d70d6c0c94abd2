package ai

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/doeshing/coach-go/internal/domain"
)

func (p *httpProvider) classifyError(resp *http.Response, body []byte) *domain.ProviderError {
	status, msg := "", ""
	if p.adapter.parseError != nil {
		status, msg = p.adapter.parseError(body)
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	perr := &domain.ProviderError{
		Provider:   p.name,
		StatusCode: resp.StatusCode,
		Status:     status,
		Message:    msg,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
	}
	if perr.RetryAfter == 0 && p.name == "gemini" {
		perr.RetryAfter = geminiRetryDelay(body)
	}
	return perr
}

// parseRetryAfter accepts delta-seconds or an HTTP date.
func parseRetryAfter(header string, now time.Time) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return 0
	}
	if secs, err := strconv.Atoi(header); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if d := at.Sub(now); d > 0 {
			return d.Round(time.Second)
		}
	}
	return 0
}
