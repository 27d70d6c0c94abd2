package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

var (
	// ErrGoalRequired is returned by form validation when no goal was entered.
	ErrGoalRequired = errors.New("goal is required")
	// ErrQuestionRequired is returned when a follow-up has no question.
	ErrQuestionRequired = errors.New("follow-up question is required")
	// ErrNoPlan is returned when a follow-up has no plan to refer to.
	ErrNoPlan = errors.New("no plan available for follow-up")
)

// upstream status strings that mean the quota is exhausted
var rateLimitStatuses = []string{"RESOURCE_EXHAUSTED", "rate_limit_error", "rate_limit_exceeded"}

// ProviderError describes a failed call to a text-generation provider.
type ProviderError struct {
	Provider   string
	StatusCode int
	// Status is the provider's own error status, e.g. RESOURCE_EXHAUSTED.
	Status     string
	Message    string
	RetryAfter time.Duration
}

func (e *ProviderError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.RetryAfter > 0 {
		return fmt.Sprintf("%s: HTTP %d: %s (retry after %s)", e.Provider, e.StatusCode, msg, e.RetryAfter)
	}
	return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.StatusCode, msg)
}

// RateLimited reports whether the provider signalled a rate or quota limit.
func (e *ProviderError) RateLimited() bool {
	if e.StatusCode == http.StatusTooManyRequests {
		return true
	}
	for _, status := range rateLimitStatuses {
		if strings.EqualFold(e.Status, status) {
			return true
		}
	}
	return false
}

// AsRateLimit unwraps err and reports whether it is a provider rate limit,
// along with any retry hint the provider sent.
func AsRateLimit(err error) (time.Duration, bool) {
	var perr *ProviderError
	if !errors.As(err, &perr) || !perr.RateLimited() {
		return 0, false
	}
	return perr.RetryAfter, true
}
