// Package httpserver exposes the ListShare HTTP API. Routing,
// validation, and response shaping live here; all domain rules stay in
// the store.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/smolenkov/listshare/internal/logging"
	"github.com/smolenkov/listshare/internal/server/config"
	"github.com/smolenkov/listshare/internal/server/store"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	address string
	store   *store.Store
	logger  logging.Logger
	echo    *echo.Echo
}

func NewHTTPServer(cfg *config.Config, l logging.Logger, st *store.Store) *HTTPServer {
	s := &HTTPServer{
		address: cfg.EndpointAddr,
		store:   st,
		logger:  l.With("module", "http_server"),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newRequestValidator()

	e.Use(middleware.CORS())
	e.Use(s.requestLogger)
	if cfg.SlowMode {
		e.Use(slowMode(cfg.SlowModeMinDelay, cfg.SlowModeMaxDelay))
	}
	e.Use(s.resolveToken)

	e.GET("/", s.home)
	e.GET("/me", s.me, s.requireAuth)
	e.GET("/lists", s.lists, s.requireAuth)
	e.GET("/list/:listId", s.getList, s.requireAuth)
	e.POST("/action/signup", s.signup)
	e.POST("/action/login", s.login)
	e.POST("/action/create-list", s.createList, s.requireAuth)
	e.POST("/action/add-todo", s.addTodo, s.requireAuth)
	e.POST("/action/set-todo-done", s.setTodoDone, s.requireAuth)
	e.POST("/action/invite", s.invite, s.requireAuth)

	s.echo = e
	return s
}

// Run starts the server and blocks until ctx is cancelled or the
// listener fails. Shutdown is graceful with a short timeout.
func (s *HTTPServer) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
