package domain

import (
	"fmt"
	"time"
)

// Persona values carried in GenerationRequest.Type.
const (
	PersonaFitness = "fitness"
	PersonaCooking = "cooking"
)

// RequestKind tags which prompt template a request selects.
type RequestKind string

const (
	KindFollowUp RequestKind = "follow-up"
	KindFitness  RequestKind = "fitness"
	KindCooking  RequestKind = "cooking"
	KindUnknown  RequestKind = "unknown"
)

// RequestKinds lists every kind, in selection priority order.
func RequestKinds() []RequestKind {
	return []RequestKind{KindFollowUp, KindFitness, KindCooking, KindUnknown}
}

// GenerationRequest is the body accepted by the generate endpoint.
// Field names match what browser clients send and what history entries store.
type GenerationRequest struct {
	Type       string `json:"type,omitempty"`
	Frequency  string `json:"frequency,omitempty"`
	Goal       string `json:"goal,omitempty"`
	Experience string `json:"experience,omitempty"`
	Equipment  string `json:"equipment,omitempty"`
	Injuries   string `json:"injuries,omitempty"`
	Split      string `json:"split,omitempty"`
	Notes      string `json:"notes,omitempty"`

	IsFollowUp bool   `json:"isFollowUp,omitempty"`
	Context    string `json:"context,omitempty"`
	Prompt     string `json:"prompt,omitempty"`
}

// Kind resolves the template discriminator. The follow-up flag wins over Type.
func (r GenerationRequest) Kind() RequestKind {
	if r.IsFollowUp {
		return KindFollowUp
	}
	switch r.Type {
	case PersonaFitness:
		return KindFitness
	case PersonaCooking:
		return KindCooking
	default:
		return KindUnknown
	}
}

// Title is the short label clients show for a request.
func (r GenerationRequest) Title() string {
	if r.IsFollowUp {
		return r.Prompt
	}
	return r.Goal
}

// FollowUp builds a follow-up request against a previously generated plan.
func FollowUp(plan, question string) GenerationRequest {
	return GenerationRequest{
		Type:       PersonaFitness,
		IsFollowUp: true,
		Context:    plan,
		Prompt:     question,
	}
}

// FailureKind classifies a failed generation.
type FailureKind string

const (
	FailureRateLimited FailureKind = "rate_limited"
	FailureGeneric     FailureKind = "generic"
	FailureNetwork     FailureKind = "network" // client side only, endpoint unreachable
)

// User-facing failure messages.
const (
	GenericFailureMessage = "Something went wrong."
	NetworkErrorMessage   = "Network error. Please try again."
)

// GenerationFailure is the displayable side of a failed generation.
type GenerationFailure struct {
	Kind       FailureKind
	Message    string
	RetryAfter time.Duration
	Err        error
}

// StatusCode maps the failure onto the endpoint's HTTP status.
func (f GenerationFailure) StatusCode() int {
	if f.Kind == FailureRateLimited {
		return 429
	}
	return 500
}

// GenerationResult is either Output or a Failure, never both.
type GenerationResult struct {
	Output  string
	Failure *GenerationFailure
}

// OK reports whether the generation succeeded.
func (r GenerationResult) OK() bool {
	return r.Failure == nil
}

// Succeeded wraps provider output.
func Succeeded(output string) GenerationResult {
	return GenerationResult{Output: output}
}

// RateLimited builds the "temporarily unavailable" failure. The message always
// tells the user when to come back.
func RateLimited(retryAfter time.Duration, err error) GenerationResult {
	return GenerationResult{Failure: &GenerationFailure{
		Kind:       FailureRateLimited,
		Message:    RateLimitedMessage(retryAfter),
		RetryAfter: retryAfter,
		Err:        err,
	}}
}

// Failed builds the generic failure.
func Failed(err error) GenerationResult {
	return GenerationResult{Failure: &GenerationFailure{
		Kind:    FailureGeneric,
		Message: GenericFailureMessage,
		Err:     err,
	}}
}

// Unreachable is the client-side failure for a transport error.
func Unreachable(err error) GenerationResult {
	return GenerationResult{Failure: &GenerationFailure{
		Kind:    FailureNetwork,
		Message: NetworkErrorMessage,
		Err:     err,
	}}
}

// FailedWithMessage builds a failure carrying a message received from an
// endpoint rather than the local default.
func FailedWithMessage(kind FailureKind, message string) GenerationResult {
	if message == "" {
		message = GenericFailureMessage
	}
	return GenerationResult{Failure: &GenerationFailure{Kind: kind, Message: message}}
}

// RateLimitedMessage renders the retry-later text.
func RateLimitedMessage(retryAfter time.Duration) string {
	hint := "about a minute"
	if retryAfter > 0 {
		secs := int(retryAfter.Round(time.Second) / time.Second)
		if secs < 1 {
			secs = 1
		}
		if secs == 1 {
			hint = "1 second"
		} else {
			hint = fmt.Sprintf("%d seconds", secs)
		}
	}
	return fmt.Sprintf("The AI coach is temporarily unavailable because the usage limit was reached. Please try again in %s.", hint)
}
