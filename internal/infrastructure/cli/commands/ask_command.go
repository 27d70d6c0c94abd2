package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/coach-go/internal/app"
	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/infrastructure/cli/helpers"
)

// NewAskCommand creates the ask command for follow-up questions about a plan
func NewAskCommand(container *app.Container) *cobra.Command {
	var (
		flags    generationFlags
		planFile string
		entryID  string
	)

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a follow-up question about a plan",
		Long: `Ask a follow-up question about a plan.

The plan is read from --plan-file, or the history entry named by --entry,
or else the most recent history entry.`,
		Example: `  coach ask "Can I swap bench press for push-ups?"
  coach ask --entry 1741356300000 "How long should I rest between sets?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.TrimSpace(strings.Join(args, " "))
			if question == "" {
				return domain.ErrQuestionRequired
			}
			plan, err := resolvePlan(cmd, container, planFile, entryID)
			if err != nil {
				return err
			}
			return runGeneration(cmd, container, flags, domain.FollowUp(plan, question), helpers.MsgThinking, helpers.TitleAnswer)
		},
	}

	cmd.Flags().StringVar(&planFile, "plan-file", "", "Read the plan from a file")
	cmd.Flags().StringVar(&entryID, "entry", "", "History entry id to ask about (or \"latest\")")
	flags.register(cmd)

	return cmd
}

// resolvePlan picks the plan text a follow-up refers to
func resolvePlan(cmd *cobra.Command, container *app.Container, planFile, entryID string) (string, error) {
	if planFile != "" {
		data, err := os.ReadFile(planFile)
		if err != nil {
			return "", fmt.Errorf("failed to read plan file: %w", err)
		}
		if strings.TrimSpace(string(data)) == "" {
			return "", domain.ErrNoPlan
		}
		return string(data), nil
	}

	if entryID == "" {
		entryID = LatestEntry
	}
	entry, err := findEntry(cmd, container, entryID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(entry.Plan) == "" {
		return "", domain.ErrNoPlan
	}
	return entry.Plan, nil
}
