package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/coach-go/internal/app"
	"github.com/doeshing/coach-go/internal/infrastructure/cli/helpers"
)

// NewDoctorCommand creates the doctor command
func NewDoctorCommand(container *app.Container) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose configuration, API keys and history storage",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctorDiagnostics(cmd, container, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the report as JSON")
	return cmd
}

// runDoctorDiagnostics prints the report even when checks fail
func runDoctorDiagnostics(cmd *cobra.Command, container *app.Container, asJSON bool) error {
	if container.DoctorService == nil {
		return fmt.Errorf(ErrDoctorServiceUnavailable)
	}

	out := cmd.OutOrStdout()
	report, err := container.DoctorService.Run(cmd.Context())

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(report); encErr != nil {
			return encErr
		}
	} else {
		helpers.RenderHealthReport(out, report)
	}

	if err != nil {
		return fmt.Errorf("diagnostics completed with errors: %w", err)
	}
	if !report.Healthy() {
		return ErrSilent
	}
	return nil
}
