package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                         { return s.loggedIn }
func (s *stubExec) Register(ctx context.Context) error       { return s.record("register") }
func (s *stubExec) Login(ctx context.Context) error          { return s.record("login") }
func (s *stubExec) Me(ctx context.Context) error             { return s.record("me") }
func (s *stubExec) Lists(ctx context.Context) error          { return s.record("lists") }
func (s *stubExec) Show(ctx context.Context) error           { return s.record("show") }
func (s *stubExec) CreateList(ctx context.Context) error     { return s.record("create") }
func (s *stubExec) AddTodo(ctx context.Context) error        { return s.record("add") }
func (s *stubExec) Invite(ctx context.Context) error         { return s.record("invite") }
func (s *stubExec) Logout(ctx context.Context) error         { return s.record("logout") }
func (s *stubExec) SetDone(ctx context.Context, done bool) error {
	if done {
		return s.record("done")
	}
	return s.record("undone")
}

func runScript(t *testing.T, a execIface, script string) string {
	t.Helper()
	var out bytes.Buffer
	runREPL(context.Background(), a, func() string { return "test" }, bufio.NewReader(strings.NewReader(script)), &out)
	return out.String()
}

func TestRunREPL_Dispatch(t *testing.T) {
	stub := &stubExec{loggedIn: true}

	runScript(t, stub, "register\nlogin\nlists\nl\ndone\nundone\ninvite\nlogout\nexit\n")

	assert.Equal(t, []string{"register", "login", "lists", "lists", "done", "undone", "invite", "logout"}, stub.calls)
}

func TestRunREPL_Help(t *testing.T) {
	out := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, out, "register, login")

	out = runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, out, "create, add, done")
}

func TestRunREPL_UnknownAndEOF(t *testing.T) {
	stub := &stubExec{}

	// no trailing exit: the loop must stop at EOF
	out := runScript(t, stub, "frobnicate\n")

	assert.Contains(t, out, "Unknown command")
	assert.Empty(t, stub.calls)
}
