// Package store implements the persistent document store at the heart
// of ListShare: a single JSON file holding all users and lists. Every
// operation follows the same shape: load the whole document, validate,
// mutate, persist the whole document. Mutating operations are
// serialized behind a writer lock so overlapping requests cannot lose
// updates; read-only operations share a read lock.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/smolenkov/listshare/internal/common"
	"github.com/smolenkov/listshare/internal/filex"
	"github.com/smolenkov/listshare/internal/randx"
	"github.com/smolenkov/listshare/internal/server/config"
)

// Store owns the on-disk JSON document. There is no in-memory cache:
// the document is read from disk at the start of every operation and
// fully rewritten at the end of every mutating operation.
type Store struct {
	path string
	cost int
	mu   sync.RWMutex
}

// New constructs a Store from server config. It does not touch the
// filesystem; call EnsureFile to seed a missing database file.
func New(cfg *config.Config) *Store {
	return &Store{
		path: cfg.DatabaseFile,
		cost: cfg.BcryptCost,
	}
}

// EnsureFile creates the database file with an empty document if it
// does not exist yet, creating parent directories as needed. An
// existing file is left untouched.
func (s *Store) EnsureFile() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	if _, err := filex.EnsureParentDir(s.path); err != nil {
		return err
	}

	return s.save(DefaultDocument())
}

// load deserializes the entire persisted document. Malformed bytes or a
// document missing its required top-level arrays yield ErrCorruptStore.
func (s *Store) load() (*Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrCorruptStore, err)
	}
	if doc.Users == nil || doc.Lists == nil {
		return nil, fmt.Errorf("%w: missing users or todos array", common.ErrCorruptStore)
	}

	return doc, nil
}

// save serializes the document and atomically replaces the persisted
// file, writing to a temp file in the same directory and renaming it
// over the target so a concurrent reader never observes a half-written
// document. The two-space indentation matches the historical files.
func (s *Store) save(doc *Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replacing %s: %w", s.path, err)
	}

	return nil
}

// newSlugWhere generates an entity ID that is not already taken
// according to the given predicate.
func newSlugWhere(taken func(id string) bool) (string, error) {
	for {
		id, err := randx.NewSlug()
		if err != nil {
			return "", err
		}
		if !taken(id) {
			return id, nil
		}
	}
}
