// Package cli implements the interactive ListShare client: a small
// read-eval-print loop over the HTTP API for managing shared to-do
// lists from a terminal.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/smolenkov/listshare/internal/client/api"
	"github.com/smolenkov/listshare/internal/client/config"
)

// apiClient is the API surface the CLI commands need. *api.Client
// satisfies it; tests can provide a stub.
type apiClient interface {
	SetToken(token string)
	LoggedIn() bool
	Signup(ctx context.Context, name, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Me(ctx context.Context) (*api.User, error)
	Lists(ctx context.Context) ([]api.ListSummary, error)
	GetList(ctx context.Context, listID string) (*api.List, error)
	CreateList(ctx context.Context, name string) (string, error)
	AddTodo(ctx context.Context, listID, name string, done bool) (string, error)
	SetTodoDone(ctx context.Context, listID, todoID string, done bool) error
	Invite(ctx context.Context, listID, username string) error
}

// App holds the CLI session: the API client, the session user, and the
// input/output streams.
type App struct {
	api    apiClient
	reader *bufio.Reader
	out    io.Writer
	user   *api.User
}

func NewApp(cfg *config.Config) (*App, error) {
	return &App{
		api:    api.New(cfg.ServerAddr, cfg.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) status() string {
	if a.user == nil {
		return "logged out"
	}
	return a.user.Username
}

func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.status, a.reader, a.out)
}
