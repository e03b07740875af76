// Package server wires the user API together: it opens the configured
// storage backend, builds the user service and HTTP router, and serves
// requests until the process is asked to stop.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/userform/internal/logging"
	"github.com/dmitrijs2005/userform/internal/server/api"
	"github.com/dmitrijs2005/userform/internal/server/config"
	"github.com/dmitrijs2005/userform/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/userform/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	manager repomanager.RepositoryManager
	server  *http.Server
}

// NewApp opens storage and builds the HTTP server. Logs go to out.
func NewApp(ctx context.Context, c *config.Config, out io.Writer) (*App, error) {
	logger, err := logging.New(c.LogBackend, out)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	m, err := repomanager.New(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	us := services.NewUserService(m)
	srv := api.NewServer(us, logger, c.CORSOrigins)

	return &App{
		config:  c,
		logger:  logger,
		manager: m,
		server: &http.Server{
			Addr:              c.EndpointAddr,
			Handler:           srv.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves until ctx is cancelled or a termination signal arrives, then
// drains in-flight requests and closes storage.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	ln, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		app.closeStorage()
		return fmt.Errorf("listen error: %w", err)
	}
	return app.serve(ctx, ln)
}

func (app *App) serve(ctx context.Context, ln net.Listener) error {
	app.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String(), "storage", app.config.Storage)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Serve(ln)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	app.logger.Info(ctx, "Stopping HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(ctx, "shutdown error", "error", err)
	}
	app.closeStorage()

	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return serveErr
	}
	return nil
}

func (app *App) closeStorage() {
	ctx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
	defer cancel()

	if err := app.manager.Close(ctx); err != nil {
		app.logger.Error(ctx, "storage close error", "error", err)
	}
}
