package router

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/doeshing/coach-go/internal/ports"
)

const shutdownTimeout = 10 * time.Second

// Server runs an http.Server until its context is cancelled.
type Server struct {
	srv *http.Server
	log ports.Logger
}

// NewServer binds handler to addr.
func NewServer(addr string, handler http.Handler, log ports.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log: log,
	}
}

// Run serves until ctx is done, then shuts down gracefully. Provider calls
// are not bounded by the server, so in-flight generations get shutdownTimeout
// to finish.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("server listening", map[string]interface{}{"addr": s.srv.Addr})
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("server shutting down", nil)
		return s.srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
