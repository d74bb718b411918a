package store

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smolenkov/listshare/internal/common"
)

func modTime(t *testing.T, s *Store) time.Time {
	t.Helper()
	info, err := os.Stat(s.path)
	require.NoError(t, err)
	return info.ModTime()
}

// seedListFixture creates two users and a list owned by the first.
func seedListFixture(t *testing.T, s *Store) (alice, bob *User, list *List) {
	t.Helper()
	ctx := context.Background()

	alice, err := s.CreateUser(ctx, "Alice", "alice", "pw123456")
	require.NoError(t, err)
	bob, err = s.CreateUser(ctx, "Bob", "bob", "pw123456")
	require.NoError(t, err)
	list, err = s.CreateList(ctx, "Groceries", alice.ID)
	require.NoError(t, err)
	return alice, bob, list
}

func TestCreateList(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice, _, list := seedListFixture(t, s)

	assert.Regexp(t, "^[a-z0-9]{7,10}$", list.ID)
	assert.Equal(t, "Groceries", list.Name)
	assert.Equal(t, []string{alice.ID}, list.UserIDs)
	assert.Empty(t, list.Todos)

	got, err := s.GetList(ctx, list.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, list, got)
}

func TestListsForUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice, bob, list := seedListFixture(t, s)

	second, err := s.CreateList(ctx, "Work", alice.ID)
	require.NoError(t, err)

	t.Run("storage order, summaries only", func(t *testing.T) {
		lists, err := s.ListsForUser(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, lists, 2)
		assert.Equal(t, list.ID, lists[0].ID)
		assert.Equal(t, second.ID, lists[1].ID)
	})

	t.Run("non-member sees nothing", func(t *testing.T) {
		lists, err := s.ListsForUser(ctx, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, lists)
	})
}

func TestAccessGate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice, bob, list := seedListFixture(t, s)

	t.Run("member passes", func(t *testing.T) {
		got, err := s.GetList(ctx, list.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, list.ID, got.ID)
	})

	t.Run("never-invited user denied", func(t *testing.T) {
		_, err := s.GetList(ctx, list.ID, bob.ID)
		require.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("missing list denied identically", func(t *testing.T) {
		_, errMissing := s.GetList(ctx, "zzzzzzz", alice.ID)
		_, errDenied := s.GetList(ctx, list.ID, bob.ID)
		require.ErrorIs(t, errMissing, common.ErrForbidden)
		assert.Equal(t, errDenied, errMissing)
	})

	t.Run("list-scoped mutations denied for non-member", func(t *testing.T) {
		_, err := s.AddTodo(ctx, bob.ID, list.ID, "Milk", false)
		require.ErrorIs(t, err, common.ErrForbidden)

		_, err = s.SetTodoDone(ctx, bob.ID, list.ID, "whatever", true)
		require.ErrorIs(t, err, common.ErrForbidden)

		err = s.InviteUser(ctx, bob.ID, list.ID, "alice")
		require.ErrorIs(t, err, common.ErrForbidden)
	})

	t.Run("invite opens the gate", func(t *testing.T) {
		require.NoError(t, s.InviteUser(ctx, alice.ID, list.ID, "bob"))

		got, err := s.GetList(ctx, list.ID, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, list.ID, got.ID)
	})
}

func TestAddTodo(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice, _, list := seedListFixture(t, s)

	todo, err := s.AddTodo(ctx, alice.ID, list.ID, "Milk", false)
	require.NoError(t, err)
	assert.Regexp(t, "^[a-z0-9]{7,10}$", todo.ID)
	assert.Equal(t, "Milk", todo.Name)
	assert.False(t, todo.Done)

	second, err := s.AddTodo(ctx, alice.ID, list.ID, "Bread", true)
	require.NoError(t, err)
	assert.True(t, second.Done)

	got, err := s.GetList(ctx, list.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, got.Todos, 2)
	assert.Equal(t, *todo, got.Todos[0])
	assert.Equal(t, *second, got.Todos[1])
}

func TestSetTodoDone(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice, _, list := seedListFixture(t, s)

	todo, err := s.AddTodo(ctx, alice.ID, list.ID, "Milk", false)
	require.NoError(t, err)

	t.Run("flips and persists", func(t *testing.T) {
		updated, err := s.SetTodoDone(ctx, alice.ID, list.ID, todo.ID, true)
		require.NoError(t, err)
		assert.True(t, updated.Done)

		got, err := s.GetList(ctx, list.ID, alice.ID)
		require.NoError(t, err)
		assert.True(t, got.Todos[0].Done)
	})

	t.Run("idempotent call does not rewrite the document", func(t *testing.T) {
		before := modTime(t, s)
		time.Sleep(20 * time.Millisecond)

		updated, err := s.SetTodoDone(ctx, alice.ID, list.ID, todo.ID, true)
		require.NoError(t, err)
		assert.True(t, updated.Done)
		assert.Equal(t, before, modTime(t, s))
	})

	t.Run("unknown todo", func(t *testing.T) {
		_, err := s.SetTodoDone(ctx, alice.ID, list.ID, "zzzzzzz", true)
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestInviteUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	alice, bob, list := seedListFixture(t, s)

	t.Run("unknown username", func(t *testing.T) {
		err := s.InviteUser(ctx, alice.ID, list.ID, "nobody")
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("adds member once", func(t *testing.T) {
		require.NoError(t, s.InviteUser(ctx, alice.ID, list.ID, "bob"))

		before := modTime(t, s)
		time.Sleep(20 * time.Millisecond)

		// Second invite of an existing member is a silent no-op.
		require.NoError(t, s.InviteUser(ctx, alice.ID, list.ID, "bob"))
		assert.Equal(t, before, modTime(t, s))

		got, err := s.GetList(ctx, list.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{alice.ID, bob.ID}, got.UserIDs)
	})
}
