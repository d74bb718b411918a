package store

import (
	"context"
	"slices"

	"github.com/smolenkov/listshare/internal/common"
)

// ListsForUser returns summaries of every list the user belongs to, in
// document storage order.
func (s *Store) ListsForUser(ctx context.Context, userID string) ([]ListSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	summaries := make([]ListSummary, 0)
	for i := range doc.Lists {
		list := &doc.Lists[i]
		if slices.Contains(list.UserIDs, userID) {
			summaries = append(summaries, ListSummary{
				ID:      list.ID,
				Name:    list.Name,
				UserIDs: list.UserIDs,
			})
		}
	}

	return summaries, nil
}

// GetList returns the full list if the user is a member, ErrForbidden
// otherwise (including when no such list exists).
func (s *Store) GetList(ctx context.Context, listID, userID string) (*List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	list := doc.CanAccess(listID, userID)
	if list == nil {
		return nil, common.ErrForbidden
	}

	return list, nil
}

// CreateList creates a list with the owner as its only member and no
// todos.
func (s *Store) CreateList(ctx context.Context, name, ownerID string) (*List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	id, err := newSlugWhere(func(id string) bool { return doc.findList(id) != nil })
	if err != nil {
		return nil, err
	}

	list := List{
		ID:      id,
		Name:    name,
		Todos:   []Todo{},
		UserIDs: []string{ownerID},
	}

	doc.Lists = append(doc.Lists, list)

	if err := s.save(doc); err != nil {
		return nil, err
	}

	return &list, nil
}

// AddTodo appends a todo to the list. The caller must be a member, else
// ErrForbidden. The todo ID only needs to be unique within the list.
func (s *Store) AddTodo(ctx context.Context, userID, listID, name string, done bool) (*Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	list := doc.CanAccess(listID, userID)
	if list == nil {
		return nil, common.ErrForbidden
	}

	id, err := newSlugWhere(func(id string) bool {
		for i := range list.Todos {
			if list.Todos[i].ID == id {
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	todo := Todo{ID: id, Name: name, Done: done}
	list.Todos = append(list.Todos, todo)

	if err := s.save(doc); err != nil {
		return nil, err
	}

	return &todo, nil
}

// SetTodoDone sets the done flag of a todo. The caller must be a
// member, else ErrForbidden; a missing todo yields ErrNotFound. When
// the flag already has the requested value the call is a no-op and the
// document is not rewritten.
func (s *Store) SetTodoDone(ctx context.Context, userID, listID, todoID string, done bool) (*Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	list := doc.CanAccess(listID, userID)
	if list == nil {
		return nil, common.ErrForbidden
	}

	var todo *Todo
	for i := range list.Todos {
		if list.Todos[i].ID == todoID {
			todo = &list.Todos[i]
			break
		}
	}
	if todo == nil {
		return nil, common.ErrNotFound
	}

	if todo.Done == done {
		return todo, nil
	}

	todo.Done = done

	if err := s.save(doc); err != nil {
		return nil, err
	}

	return todo, nil
}

// InviteUser adds the user with the given username to the list's
// membership. The invited username must exist (else ErrNotFound) and
// the requester must be a member (else ErrForbidden). Inviting an
// existing member succeeds without rewriting the document.
func (s *Store) InviteUser(ctx context.Context, requesterID, listID, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	invited := doc.findUserByUsername(username)
	if invited == nil {
		return common.ErrNotFound
	}

	list := doc.CanAccess(listID, requesterID)
	if list == nil {
		return common.ErrForbidden
	}

	if slices.Contains(list.UserIDs, invited.ID) {
		return nil
	}

	list.UserIDs = append(list.UserIDs, invited.ID)

	return s.save(doc)
}
