package cli

import (
	"context"
	"fmt"
)

// AddTodo appends a new todo to a list.
func (a *App) AddTodo(ctx context.Context) error {
	listID, err := getSimpleText(a.reader, "Enter list id", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter todo text", a.out)
	if err != nil {
		return err
	}

	id, err := a.api.AddTodo(ctx, listID, name, false)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Added todo %s\n", id)
	return nil
}

// SetDone marks a todo done or not done.
func (a *App) SetDone(ctx context.Context, done bool) error {
	listID, err := getSimpleText(a.reader, "Enter list id", a.out)
	if err != nil {
		return err
	}
	todoID, err := getSimpleText(a.reader, "Enter todo id", a.out)
	if err != nil {
		return err
	}

	if err := a.api.SetTodoDone(ctx, listID, todoID, done); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Updated")
	return nil
}
