// Package server wires up and runs the ListShare server: config,
// logging, the document store, and the HTTP endpoint, with graceful
// shutdown on SIGINT/SIGTERM.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/smolenkov/listshare/internal/logging"
	"github.com/smolenkov/listshare/internal/server/config"
	"github.com/smolenkov/listshare/internal/server/httpserver"
	"github.com/smolenkov/listshare/internal/server/store"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *store.Store
}

func NewApp(c *config.Config) (*App, error) {

	handler := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(handler)

	st := store.New(c)
	if err := st.EnsureFile(); err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	return &App{config: c, logger: logger, store: st}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpserver.NewHTTPServer(app.config, app.logger, app.store)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "database", app.config.DatabaseFile)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
