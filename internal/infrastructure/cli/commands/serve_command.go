package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/doeshing/coach-go/assets"
	"github.com/doeshing/coach-go/internal/app"
	"github.com/doeshing/coach-go/internal/infrastructure/http/router"
	"github.com/doeshing/coach-go/internal/version"
)

// NewServeCommand creates the serve command, which hosts the web form and generation endpoint
func NewServeCommand(container *app.Container) *cobra.Command {
	var (
		addr  string
		model string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web form and POST /api/generate",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), container, addr, model)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "Serve with this model instead of the configured default")

	return cmd
}

// runServer blocks until SIGINT or SIGTERM
func runServer(ctx context.Context, container *app.Container, addr, model string) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if model != "" && !cfg.HasModel(model) {
		return fmt.Errorf("model %s not found", model)
	}
	if addr == "" {
		addr = cfg.GetServerAddr()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := router.New(router.Options{
		Mode:        cfg.Server.Mode,
		CORSOrigins: cfg.Server.CORSOrigins,
		Metrics:     cfg.Server.Metrics,
		MetricsPath: cfg.GetMetricsPath(),
		Version:     version.Version,
		IndexPage:   assets.IndexHTML,
	}, container.Generator("", model), container.Logger)

	return router.NewServer(addr, engine, container.Logger).Run(ctx)
}
