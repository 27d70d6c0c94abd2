// Package handler holds the gin handlers behind `coach serve`.
package handler

// OutputResponse is the success body of POST /api/generate.
type OutputResponse struct {
	Output string `json:"output"`
}

// ErrorResponse is the failure body of POST /api/generate.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}
