package cli

import (
	"context"
	"fmt"
)

// Lists prints a summary line per list the user belongs to.
func (a *App) Lists(ctx context.Context) error {
	lists, err := a.api.Lists(ctx)
	if err != nil {
		return err
	}

	if len(lists) == 0 {
		fmt.Fprintln(a.out, "No lists yet, try: create")
		return nil
	}

	for _, list := range lists {
		fmt.Fprintf(a.out, "%s  %s  (%d members)\n", list.ID, list.Name, len(list.UserIDs))
	}
	return nil
}

// Show prints one list with its todos.
func (a *App) Show(ctx context.Context) error {
	listID, err := getSimpleText(a.reader, "Enter list id", a.out)
	if err != nil {
		return err
	}

	list, err := a.api.GetList(ctx, listID)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (%d members)\n", list.Name, len(list.UserIDs))
	if len(list.Todos) == 0 {
		fmt.Fprintln(a.out, "  no todos yet")
		return nil
	}
	for _, todo := range list.Todos {
		mark := " "
		if todo.Done {
			mark = "x"
		}
		fmt.Fprintf(a.out, "  [%s] %s  %s\n", mark, todo.ID, todo.Name)
	}
	return nil
}

// CreateList creates a new list owned by the session user.
func (a *App) CreateList(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter list name", a.out)
	if err != nil {
		return err
	}

	id, err := a.api.CreateList(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Created list %s\n", id)
	return nil
}
