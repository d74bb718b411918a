package cli

import (
	"context"
	"fmt"
)

// Login exchanges credentials for the account token and stores it for
// the session.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	a.api.SetToken(token)

	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	a.user = user

	fmt.Fprintf(a.out, "Logged in as %s\n", user.Username)
	return nil
}

// Logout drops the session token. The token itself stays valid server
// side; there is no revocation.
func (a *App) Logout(ctx context.Context) error {
	a.api.SetToken("")
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
