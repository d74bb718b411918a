package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second)
}

func TestClient_Signup(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/action/signup", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["username"])

		json.NewEncoder(w).Encode(map[string]string{"token": "tok-1"})
	})

	token, err := c.Signup(context.Background(), "Alice", "alice", "pw123456")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestClient_BearerHeader(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(&User{ID: "u1", Username: "alice"})
	})
	c.SetToken("tok-1")

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestClient_ServerErrorMessage(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"message": "you don't have access to this list"})
	})
	c.SetToken("tok-1")

	_, err := c.GetList(context.Background(), "abc1234")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access to this list")
}

func TestClient_NonJSONError(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Lists(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_NoContent(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/action/invite", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	c.SetToken("tok-1")

	require.NoError(t, c.Invite(context.Background(), "abc1234", "bob"))
}
