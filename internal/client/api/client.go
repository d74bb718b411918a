// Package api implements the HTTP client for the ListShare API. It is
// a thin, typed wrapper over net/http; all prompting and presentation
// live in the cli package.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// User mirrors the server's /me response.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Todo mirrors a server todo entry.
type Todo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// List mirrors a full server list.
type List struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Todos   []Todo   `json:"todos"`
	UserIDs []string `json:"userIds"`
}

// ListSummary mirrors an entry of the /lists response.
type ListSummary struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	UserIDs []string `json:"userIds"`
}

// Client talks to a ListShare server. The bearer token set via SetToken
// is attached to every request until cleared.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) SetToken(token string) { c.token = token }

func (c *Client) Token() string { return c.token }

func (c *Client) LoggedIn() bool { return c.token != "" }

// apiError is the JSON error body echo produces.
type apiError struct {
	Message any `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		var e apiError
		if json.Unmarshal(data, &e) == nil && e.Message != nil {
			return fmt.Errorf("server: %v", e.Message)
		}
		return fmt.Errorf("server: %s", resp.Status)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// Signup registers a new account and returns its bearer token.
func (c *Client) Signup(ctx context.Context, name, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/action/signup", map[string]string{
		"name": name, "username": username, "password": password,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Login exchanges credentials for the account's bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/action/login", map[string]string{
		"username": username, "password": password,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.Token, nil
}

// Me fetches the authenticated user's profile.
func (c *Client) Me(ctx context.Context) (*User, error) {
	out := &User{}
	if err := c.do(ctx, http.MethodGet, "/me", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Lists fetches summaries of the caller's lists.
func (c *Client) Lists(ctx context.Context) ([]ListSummary, error) {
	var out []ListSummary
	if err := c.do(ctx, http.MethodGet, "/lists", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetList fetches one list with its todos.
func (c *Client) GetList(ctx context.Context, listID string) (*List, error) {
	out := &List{}
	if err := c.do(ctx, http.MethodGet, "/list/"+listID, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateList creates a list and returns its ID.
func (c *Client) CreateList(ctx context.Context, name string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/action/create-list", map[string]string{"name": name}, &out)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

// AddTodo appends a todo to a list and returns the todo's ID.
func (c *Client) AddTodo(ctx context.Context, listID, name string, done bool) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/action/add-todo", map[string]any{
		"listId": listID, "name": name, "done": done,
	}, &out)
	if err != nil {
		return "", err
	}
	return out.ID, nil
}

// SetTodoDone sets a todo's done flag.
func (c *Client) SetTodoDone(ctx context.Context, listID, todoID string, done bool) error {
	return c.do(ctx, http.MethodPost, "/action/set-todo-done", map[string]any{
		"listId": listID, "todoId": todoID, "done": done,
	}, nil)
}

// Invite adds the named user to a list's membership.
func (c *Client) Invite(ctx context.Context, listID, username string) error {
	return c.do(ctx, http.MethodPost, "/action/invite", map[string]string{
		"listId": listID, "username": username,
	}, nil)
}
