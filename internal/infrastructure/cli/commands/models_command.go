package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/doeshing/coach-go/internal/app"
	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/infrastructure/ai"
	"github.com/doeshing/coach-go/internal/infrastructure/cli/helpers"
	"github.com/doeshing/coach-go/internal/ports"
)

const (
	modelTestTimeout = 30 * time.Second
	modelTestPrompt  = "Reply with the single word OK."
)

// NewModelsCommand creates the models command with all subcommands
func NewModelsCommand(container *app.Container) *cobra.Command {
	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "Manage AI model configurations",
	}

	modelsCmd.AddCommand(
		newModelsListCommand(container),
		newModelsTestCommand(container),
		newModelsUseCommand(container),
		newModelsAddCommand(container),
		newModelsRemoveCommand(container),
	)

	return modelsCmd
}

// newModelsListCommand creates the 'models list' subcommand
func newModelsListCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List configured models",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listModels(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}
}

// newModelsTestCommand creates the 'models test' subcommand
func newModelsTestCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "test <name>",
		Short: "Send a one-line prompt to a model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return testModel(cmd.Context(), cmd.OutOrStdout(), container, args[0])
		},
	}
}

// newModelsUseCommand creates the 'models use' subcommand
func newModelsUseCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Set default model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setDefaultModel(cmd.Context(), container, args[0])
		},
	}
}

// newModelsAddCommand creates the 'models add' subcommand
func newModelsAddCommand(container *app.Container) *cobra.Command {
	var model domain.ModelDefinition

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new model definition",
		RunE: func(cmd *cobra.Command, args []string) error {
			return addModel(cmd.Context(), container, model)
		},
	}

	cmd.Flags().StringVar(&model.Name, "name", "", "Model name (identifier)")
	cmd.Flags().StringVar(&model.Provider, "provider", "", "Wire format: gemini, openai, anthropic or ollama (inferred from endpoint when empty)")
	cmd.Flags().StringVar(&model.Endpoint, "endpoint", "", "Provider endpoint URL")
	cmd.Flags().StringVar(&model.ModelID, "model-id", "", "Model identifier at provider")
	cmd.Flags().StringVar(&model.AuthEnvVar, "auth-env", "", "Environment variable containing API key")
	cmd.Flags().StringVar(&model.OrgEnvVar, "org-env", "", "Environment variable containing org/project ID")
	cmd.Flags().IntVar(&model.MaxTokens, "max-tokens", 0, "Max tokens for responses (0 for provider default)")

	return cmd
}

// newModelsRemoveCommand creates the 'models remove' subcommand
func newModelsRemoveCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove model definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return removeModel(cmd.Context(), container, args[0])
		},
	}
}

// listModels lists all configured models
func listModels(ctx context.Context, out io.Writer, container *app.Container) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Fprintf(out, "NAME\tPROVIDER\tMODEL ID\tENDPOINT\tDEFAULT\n")

	for _, model := range cfg.Models {
		defaultMarker := ""
		if cfg.Preferences.DefaultModel == model.Name {
			defaultMarker = "*"
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\t%s\n",
			model.Name,
			ai.ProviderKindFor(model),
			model.ModelID,
			model.Endpoint,
			defaultMarker)
	}

	return nil
}

// testModel sends a tiny prompt straight to the provider
func testModel(ctx context.Context, out io.Writer, container *app.Container, modelName string) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	model, exists := cfg.FindModelByName(modelName)
	if !exists {
		return fmt.Errorf("model %s not found", modelName)
	}

	provider, err := container.ProviderFactory.ForModel(model)
	if err != nil {
		return fmt.Errorf("failed to create provider for model %s: %w", modelName, err)
	}

	testCtx, cancel := context.WithTimeout(ctx, modelTestTimeout)
	defer cancel()

	resp, err := provider.Generate(testCtx, ports.ProviderRequest{
		Prompt: modelTestPrompt,
		Model:  model,
	})
	if err != nil {
		return fmt.Errorf("model %s test failed: %w", modelName, err)
	}

	fmt.Fprintf(out, "Model %s responded: %s\n", modelName, strings.TrimSpace(resp.Text))
	return nil
}

// setDefaultModel sets the default model
func setDefaultModel(ctx context.Context, container *app.Container, modelName string) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.SetDefaultModel(modelName); err != nil {
		return err
	}

	return helpers.SaveConfigWithValidation(container, cfg)
}

// addModel appends a model definition
func addModel(ctx context.Context, container *app.Container, model domain.ModelDefinition) error {
	if model.Name == "" || model.Endpoint == "" {
		return fmt.Errorf("--name and --endpoint are required")
	}

	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.HasModel(model.Name) {
		return fmt.Errorf("model %s already exists", model.Name)
	}
	if model.ModelID == "" {
		model.ModelID = model.Name
	}
	cfg.Models = append(cfg.Models, model)

	return helpers.SaveConfigWithValidation(container, cfg)
}

// removeModel removes a model definition; the default model cannot be removed
func removeModel(ctx context.Context, container *app.Container, modelName string) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.Preferences.DefaultModel == modelName {
		return fmt.Errorf("model %s is the default; run `coach models use` with another model first", modelName)
	}

	kept := cfg.Models[:0]
	for _, model := range cfg.Models {
		if model.Name != modelName {
			kept = append(kept, model)
		}
	}
	if len(kept) == len(cfg.Models) {
		return fmt.Errorf("model %s not found", modelName)
	}
	cfg.Models = kept

	return helpers.SaveConfigWithValidation(container, cfg)
}
