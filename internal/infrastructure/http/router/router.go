// Package router wires middleware and handlers into a gin engine.
package router

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/doeshing/coach-go/internal/infrastructure/http/handler"
	"github.com/doeshing/coach-go/internal/infrastructure/http/middleware"
	"github.com/doeshing/coach-go/internal/ports"
)

// Options configures the engine.
type Options struct {
	// Mode is a gin mode: debug, release or test.
	Mode        string
	CORSOrigins []string
	Metrics     bool
	MetricsPath string
	Version     string
	IndexPage   []byte
}

// New builds the engine serving GET /, POST /api/generate, GET /healthz and,
// when enabled, the metrics endpoint.
func New(opts Options, generator ports.Generator, log ports.Logger) *gin.Engine {
	gin.SetMode(ginMode(opts.Mode))
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.AccessLog(log))
	if len(opts.CORSOrigins) > 0 {
		engine.Use(middleware.CORS(opts.CORSOrigins))
	}
	if opts.Metrics {
		engine.Use(middleware.Metrics())
	}

	index := handler.NewIndexHandler(opts.IndexPage)
	health := handler.NewHealthHandler(opts.Version)
	generate := handler.NewGenerateHandler(generator, log)

	engine.GET("/", index.Index)
	engine.GET("/healthz", health.Health)
	engine.POST("/api/generate", generate.Generate)

	if opts.Metrics {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		engine.GET(path, gin.WrapH(promhttp.Handler()))
	}

	return engine
}

func ginMode(mode string) string {
	switch strings.ToLower(mode) {
	case gin.DebugMode:
		return gin.DebugMode
	case gin.TestMode:
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
