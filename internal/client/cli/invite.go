package cli

import (
	"context"
	"fmt"
)

// Invite shares a list with another user by username.
func (a *App) Invite(ctx context.Context) error {
	listID, err := getSimpleText(a.reader, "Enter list id", a.out)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username to invite", a.out)
	if err != nil {
		return err
	}

	if err := a.api.Invite(ctx, listID, username); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Invited %s\n", username)
	return nil
}
