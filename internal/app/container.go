package app

import (
	"context"
	"io"

	"github.com/doeshing/coach-go/internal/application/doctor"
	"github.com/doeshing/coach-go/internal/application/generate"
	historyapp "github.com/doeshing/coach-go/internal/application/history"
	"github.com/doeshing/coach-go/internal/application/prompt"
	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/infrastructure/ai"
	"github.com/doeshing/coach-go/internal/infrastructure/client"
	"github.com/doeshing/coach-go/internal/infrastructure/config"
	"github.com/doeshing/coach-go/internal/infrastructure/history"
	"github.com/doeshing/coach-go/internal/pkg/logger"
	"github.com/doeshing/coach-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config          domain.Config
	ConfigProvider  ports.ConfigProvider
	ConfigLoader    *config.FileLoader
	Logger          *logger.ZapLogger
	ProviderFactory *ai.Factory
	PromptBuilder   prompt.Builder
	GenerateService *generate.Service
	HistoryStore    ports.HistoryRepository
	HistoryService  *historyapp.Service
	DoctorService   *doctor.Service
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, verbose)
	if err != nil {
		return nil, err
	}

	historyStore, err := history.Open(cfg)
	if err != nil {
		log.Warn("history store unavailable", map[string]interface{}{
			"path":  history.ResolvePath(cfg),
			"error": err.Error(),
		})
		historyStore = history.Unavailable(history.ResolvePath(cfg), err)
	}

	factory := ai.NewFactory()
	builder := prompt.NewBuilder()

	generateService := &generate.Service{
		ConfigProvider:  cfgLoader,
		ProviderFactory: factory,
		Builder:         builder,
		Logger:          log,
	}

	historyService := &historyapp.Service{
		Repository: historyStore,
		Logger:     log,
	}

	doctorService := &doctor.Service{
		ConfigProvider:  cfgLoader,
		ProviderFactory: factory,
		History:         historyStore,
	}

	return &Container{
		Config:          cfg,
		ConfigProvider:  cfgLoader,
		ConfigLoader:    cfgLoader,
		Logger:          log,
		ProviderFactory: factory,
		PromptBuilder:   builder,
		GenerateService: generateService,
		HistoryStore:    historyStore,
		HistoryService:  historyService,
		DoctorService:   doctorService,
	}, nil
}

// Generator returns the remote client when serverURL is set, otherwise the
// in-process service bound to model (empty for the configured default).
func (c *Container) Generator(serverURL, model string) ports.Generator {
	if serverURL != "" {
		return client.NewRemoteGenerator(serverURL)
	}
	if model == "" {
		return c.GenerateService
	}
	svc := *c.GenerateService
	svc.ModelOverride = model
	return &svc
}

// Close flushes the logger and releases the history store.
func (c *Container) Close() error {
	if c.Logger != nil {
		c.Logger.Sync()
	}
	if closer, ok := c.HistoryStore.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
