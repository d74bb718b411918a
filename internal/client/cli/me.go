package cli

import (
	"context"
	"fmt"
)

// Me prints the current profile, including the bearer token so it can
// be copied into other tools.
func (a *App) Me(ctx context.Context) error {
	user, err := a.api.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "id:       %s\n", user.ID)
	fmt.Fprintf(a.out, "name:     %s\n", user.Name)
	fmt.Fprintf(a.out, "username: %s\n", user.Username)
	fmt.Fprintf(a.out, "token:    %s\n", user.Token)
	return nil
}
