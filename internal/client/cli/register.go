package cli

import (
	"context"
	"fmt"
)

// Register prompts for profile details and creates a new account. On
// success the fresh token becomes the session credential.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	token, err := a.api.Signup(ctx, name, username, password)
	if err != nil {
		return err
	}

	a.api.SetToken(token)

	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	a.user = user

	fmt.Fprintf(a.out, "Registered as %s\n", user.Username)
	return nil
}
