package store

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/smolenkov/listshare/internal/common"
	"github.com/smolenkov/listshare/internal/randx"
)

// CreateUser registers a new account. The username must not be taken
// (exact, case-sensitive match); violation returns ErrDuplicateUsername
// and leaves the document untouched. The returned User carries the
// plaintext bearer token; this is the only time it is handed out.
func (s *Store) CreateUser(ctx context.Context, name, username, password string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	if doc.findUserByUsername(username) != nil {
		return nil, common.ErrDuplicateUsername
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	id, err := newSlugWhere(func(id string) bool {
		for i := range doc.Users {
			if doc.Users[i].ID == id {
				return true
			}
		}
		return false
	})
	if err != nil {
		return nil, err
	}

	// Tokens must stay unique across users; regenerate on the
	// astronomically unlikely collision.
	var token string
	for {
		token, err = randx.NewToken()
		if err != nil {
			return nil, err
		}
		if doc.findUserByToken(token) == nil {
			break
		}
	}

	user := User{
		ID:           id,
		Username:     username,
		Name:         name,
		PasswordHash: string(hash),
		Token:        token,
	}

	doc.Users = append(doc.Users, user)

	if err := s.save(doc); err != nil {
		return nil, err
	}

	return &user, nil
}

// Authenticate verifies a username/password pair. An unknown username
// and a wrong password both return ErrUnauthorized, so callers cannot
// enumerate accounts. The hash comparison is bcrypt's own, which is
// constant-time with respect to the stored hash.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	user := doc.findUserByUsername(username)
	if user == nil {
		// Burn a comparison against a fixed hash so the miss costs
		// about as much as a mismatch.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, common.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, common.ErrUnauthorized
	}

	return user, nil
}

// dummyHash is a bcrypt hash of an arbitrary string, used to equalize
// the cost of authenticating an unknown username.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("listshare-dummy"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// ResolveToken looks up the user owning the given bearer token. A nil
// user with a nil error means the token is unknown.
func (s *Store) ResolveToken(ctx context.Context, token string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	return doc.findUserByToken(token), nil
}
