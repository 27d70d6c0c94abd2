package helpers

import (
	"fmt"
	"io"
	"strings"

	"github.com/doeshing/coach-go/internal/domain"
)

// RenderResult prints the plan, or the failure message in its place.
func RenderResult(out io.Writer, title string, result domain.GenerationResult) {
	if !result.OK() {
		fmt.Fprintf(out, "Error: %s\n", result.Failure.Message)
		return
	}
	fmt.Fprintf(out, "%s\n\n", title)
	fmt.Fprintln(out, strings.TrimRight(result.Output, "\n"))
}

// RenderHistoryList prints one line per entry, newest first.
func RenderHistoryList(out io.Writer, entries []domain.HistoryEntry, limit int) {
	if len(entries) == 0 {
		fmt.Fprintln(out, MsgNoHistoryRecorded)
		return
	}
	for i, entry := range entries {
		if limit > 0 && i >= limit {
			break
		}
		marker := ""
		if entry.Inputs != nil && entry.Inputs.IsFollowUp {
			marker = " (follow-up)"
		}
		fmt.Fprintf(out, "%d | %s • %s | %s%s\n", entry.ID, entry.Date, entry.Time, entry.Title(), marker)
	}
}

// RenderHistoryEntry prints the stored parameters followed by the plan.
func RenderHistoryEntry(out io.Writer, entry domain.HistoryEntry) {
	fmt.Fprintf(out, "%s • %s\n", entry.Date, entry.Time)
	fmt.Fprintf(out, "%s\n\n", entry.Title())

	if in := entry.Inputs; in != nil {
		if in.IsFollowUp {
			fmt.Fprintln(out, "Question")
			fmt.Fprintf(out, "  %s\n\n", in.Prompt)
		} else {
			fmt.Fprintln(out, "Plan Parameters")
			fmt.Fprintf(out, "  Frequency: %s days/week\n", in.Frequency)
			fmt.Fprintf(out, "  Experience: %s\n", in.Experience)
			fmt.Fprintf(out, "  Equipment: %s\n", in.Equipment)
			fmt.Fprintf(out, "  Split: %s\n", in.Split)
			if in.Injuries != "" {
				fmt.Fprintf(out, "  Injuries: %s\n", in.Injuries)
			}
			if in.Notes != "" {
				fmt.Fprintf(out, "  Notes: %s\n", in.Notes)
			}
			fmt.Fprintln(out)
		}
	}
	fmt.Fprintln(out, strings.TrimRight(entry.Plan, "\n"))
}

// RenderHealthReport prints doctor checks.
func RenderHealthReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s: %s\n", strings.ToUpper(string(check.Status)), check.Name, check.Details)
	}
}
