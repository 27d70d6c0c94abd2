package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/coach-go/internal/app"
	"github.com/doeshing/coach-go/internal/infrastructure/cli/commands"
)

// ErrSilent marks failures that were already printed.
var ErrSilent = commands.ErrSilent

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(container *app.Container) *cobra.Command {
	root := &cobra.Command{
		Use:           "coach",
		Short:         "AI fitness coach",
		Long:          "coach designs workout plans and answers follow-up questions with a text-generation model, from the terminal or a small web form.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		commands.NewGenerateCommand(container),
		commands.NewAskCommand(container),
		commands.NewPromptCommand(container),
		commands.NewHistoryCommand(container),
		commands.NewServeCommand(container),
		commands.NewDoctorCommand(container),
		commands.NewConfigCommand(container),
		commands.NewModelsCommand(container),
		commands.NewInitCommand(container),
		commands.NewVersionCommand(),
	)
	return root
}

// Execute builds the container, runs the command line and releases resources.
func Execute(ctx context.Context, opts Options, args []string) error {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return err
	}
	defer container.Close()

	root := NewRootCmd(container)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}
