package domain

import "time"

// Display formats used for HistoryEntry.Date and HistoryEntry.Time.
const (
	HistoryDateFormat = "1/2/2006"
	HistoryTimeFormat = "03:04 PM"
)

// HistoryEntry is one client-held request/response pair.
// The serialized shape is shared by every client store: {id,date,time,inputs,plan}.
type HistoryEntry struct {
	ID     int64              `json:"id"`
	Date   string             `json:"date"`
	Time   string             `json:"time"`
	Inputs *GenerationRequest `json:"inputs,omitempty"`
	Plan   string             `json:"plan"`

	// Goal is only present on entries written before inputs were stored.
	Goal string `json:"goal,omitempty"`
}

// NewHistoryEntry stamps a result with its creation time.
func NewHistoryEntry(now time.Time, inputs GenerationRequest, plan string) HistoryEntry {
	return HistoryEntry{
		ID:     now.UnixMilli(),
		Date:   now.Format(HistoryDateFormat),
		Time:   now.Format(HistoryTimeFormat),
		Inputs: &inputs,
		Plan:   plan,
	}
}

// Title prefers the stored inputs and falls back to the legacy goal field.
func (e HistoryEntry) Title() string {
	if e.Inputs != nil {
		return e.Inputs.Title()
	}
	return e.Goal
}

// CreatedAt recovers the creation instant from the id.
func (e HistoryEntry) CreatedAt() time.Time {
	return time.UnixMilli(e.ID)
}
