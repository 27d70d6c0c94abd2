package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/coach-go/internal/app"
	configapp "github.com/doeshing/coach-go/internal/application/config"
	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/infrastructure/cli/helpers"
	configinfra "github.com/doeshing/coach-go/internal/infrastructure/config"
)

// NewInitCommand creates the init command, which writes a fresh config file
func NewInitCommand(container *app.Container) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize coach configuration",
		Long: `Initialize coach configuration with default settings.

This command writes ~/.coach/config.yaml (or $COACH_CONFIG) and asks for
the default model, history backend and provider timeout. Afterwards:
  1. Export the API key for your model (e.g. GEMINI_API_KEY)
  2. Run 'coach doctor' to verify your setup`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInitWizard(cmd, container, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing config without prompting")

	return cmd
}

// runInitWizard runs the configuration initialization wizard
func runInitWizard(cmd *cobra.Command, container *app.Container, force bool) error {
	loader, err := helpers.GetConfigLoader(container)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())
	configPath := loader.Path()

	if !shouldProceedWithInit(out, reader, configPath, force) {
		fmt.Fprintln(out, MsgInitCancelled)
		return nil
	}

	cfg := promptForUserPreferences(out, reader, configinfra.DefaultConfig())

	if err := configapp.Validate(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		backupPath, err := loader.Backup()
		if err != nil {
			return fmt.Errorf("failed to create configuration backup: %w", err)
		}
		fmt.Fprintf(out, "Existing config backed up to: %s\n", backupPath)
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	displayCompletionInstructions(out, configPath, cfg)
	return nil
}

func shouldProceedWithInit(out io.Writer, reader *bufio.Reader, configPath string, force bool) bool {
	if _, err := os.Stat(configPath); err != nil {
		return true
	}
	if force {
		return true
	}
	question := fmt.Sprintf("%s exists. Overwrite?", configPath)
	return helpers.PromptForYesNo(out, reader, question, false)
}

// promptForUserPreferences asks for the few settings most users change
func promptForUserPreferences(out io.Writer, reader *bufio.Reader, cfg domain.Config) domain.Config {
	fmt.Fprintln(out, "\nConfiguration preferences:")

	names := make([]string, 0, len(cfg.Models))
	for _, model := range cfg.Models {
		names = append(names, model.Name)
	}
	fmt.Fprintf(out, "Available models: %s\n", strings.Join(names, ", "))
	if choice := helpers.PromptForChoice(out, reader, "Default model", cfg.Preferences.DefaultModel); cfg.HasModel(choice) {
		cfg.Preferences.DefaultModel = choice
	} else {
		fmt.Fprintf(out, "Unknown model %q, keeping %s\n", choice, cfg.Preferences.DefaultModel)
	}

	backend := helpers.PromptForChoice(out, reader, "History backend (file/sqlite)", cfg.History.Backend)
	if backend != cfg.History.Backend {
		cfg.History.Backend = backend
		cfg.History.Path = ""
	}

	timeout := helpers.PromptForChoice(out, reader, "Provider timeout in seconds (0 for none)", strconv.Itoa(cfg.Preferences.TimeoutSeconds))
	if seconds, err := strconv.Atoi(timeout); err == nil && seconds >= 0 {
		cfg.Preferences.TimeoutSeconds = seconds
	}

	return cfg
}

func displayCompletionInstructions(out io.Writer, configPath string, cfg domain.Config) {
	fmt.Fprintf(out, "\n✓ Configuration initialized: %s\n\n", configPath)
	fmt.Fprintln(out, "Next steps:")
	if model, err := cfg.GetDefaultModel(); err == nil && model.AuthEnvVar != "" {
		fmt.Fprintln(out, "  1. Set your API key:")
		fmt.Fprintf(out, "     export %s=your-key-here\n\n", model.AuthEnvVar)
	} else {
		fmt.Fprintln(out, "  1. Make sure your model endpoint is reachable")
		fmt.Fprintln(out, "")
	}
	fmt.Fprintln(out, "  2. Verify your setup:")
	fmt.Fprintln(out, "     coach doctor")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "  3. Design a plan:")
	fmt.Fprintln(out, "     coach generate fitness -i")
}
