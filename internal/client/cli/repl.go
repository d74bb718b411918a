package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs. The real App
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Me(ctx context.Context) error
	Lists(ctx context.Context) error
	Show(ctx context.Context) error
	CreateList(ctx context.Context) error
	AddTodo(ctx context.Context) error
	SetDone(ctx context.Context, done bool) error
	Invite(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: me, lists, show, create, add, done, undone, invite, logout, exit"
)

// runREPL reads a command per line and dispatches to a. Errors from
// command handlers are printed and the loop continues; the loop exits
// on EOF or on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "listshare> %s > ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var cmdErr error

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "me":
			cmdErr = a.Me(ctx)

		case "l", "lists":
			cmdErr = a.Lists(ctx)

		case "show":
			cmdErr = a.Show(ctx)

		case "create":
			cmdErr = a.CreateList(ctx)

		case "add":
			cmdErr = a.AddTodo(ctx)

		case "done":
			cmdErr = a.SetDone(ctx, true)

		case "undone":
			cmdErr = a.SetDone(ctx, false)

		case "invite":
			cmdErr = a.Invite(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "exit", "quit":
			return

		default:
			fmt.Fprintf(out, "Unknown command %q, type help\n", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, "Error:", cmdErr)
		}
	}
}
