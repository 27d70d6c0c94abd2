package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/doeshing/coach-go/internal/app"
	"github.com/doeshing/coach-go/internal/domain"
)

// NewPromptCommand creates the prompt command, which prints instructions without calling a provider
func NewPromptCommand(container *app.Container) *cobra.Command {
	promptCmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the prompt a request would send",
	}

	promptCmd.AddCommand(
		newPromptFitnessCommand(container),
		newPromptCookingCommand(container),
	)

	return promptCmd
}

// newPromptFitnessCommand creates the 'prompt fitness' subcommand
func newPromptFitnessCommand(container *app.Container) *cobra.Command {
	form := domain.NewFitnessForm()

	cmd := &cobra.Command{
		Use:   "fitness",
		Short: "Print the workout plan prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPrompt(cmd.OutOrStdout(), container, form.Resolve())
		},
	}

	bindFitnessFlags(cmd, &form)
	return cmd
}

// newPromptCookingCommand creates the 'prompt cooking' subcommand
func newPromptCookingCommand(container *app.Container) *cobra.Command {
	var request string

	cmd := &cobra.Command{
		Use:   "cooking [request]",
		Short: "Print the recipe prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPrompt(cmd.OutOrStdout(), container, cookingRequest(request, args))
		},
	}

	cmd.Flags().StringVar(&request, "request", "", "What you would like to cook")
	return cmd
}

func printPrompt(out io.Writer, container *app.Container, req domain.GenerationRequest) error {
	text, err := container.PromptBuilder.Build(req)
	if err != nil {
		return fmt.Errorf("failed to build prompt: %w", err)
	}
	fmt.Fprintln(out, text)
	return nil
}
