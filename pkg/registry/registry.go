// Package registry persists named wordlists for the service and CLI, backed
// by pebble. Values are the newline-joined words in index order, so a stored
// list rebuilds to the identical index.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cockroachdb/pebble"

	"github.com/hrseed/hrseed/pkg/wordlist"
)

// ErrNotFound is returned when a named wordlist does not exist.
var ErrNotFound = &Error{"wordlist not found"}

// Error represents a registry error
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Registry is a durable name -> wordlist store.
type Registry struct {
	db *pebble.DB
}

// Open opens (or creates) a registry in the given directory.
func Open(dir string) (*Registry, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	return &Registry{db: db}, nil
}

// Close releases the underlying database.
func (r *Registry) Close() error {
	return r.db.Close()
}

// Put validates and stores a wordlist under a name, replacing any previous
// list with that name. The stored order is the deduplicated index order.
func (r *Registry) Put(name string, words []string) error {
	if name == "" {
		return errors.New("wordlist name is required")
	}
	ix, err := wordlist.Build(words)
	if err != nil {
		return err
	}
	value := []byte(strings.Join(ix.Words(), "\n"))
	if err := r.db.Set([]byte(name), value, pebble.Sync); err != nil {
		return fmt.Errorf("store wordlist %q: %w", name, err)
	}
	return nil
}

// Get loads a named wordlist and rebuilds its index.
func (r *Registry) Get(name string) (*wordlist.Index, error) {
	value, closer, err := r.db.Get([]byte(name))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load wordlist %q: %w", name, err)
	}
	words := strings.Split(string(value), "\n")
	if err := closer.Close(); err != nil {
		return nil, fmt.Errorf("load wordlist %q: %w", name, err)
	}
	return wordlist.Build(words)
}

// List returns all stored names in key order.
func (r *Registry) List() ([]string, error) {
	iter, err := r.db.NewIter(nil)
	if err != nil {
		return nil, fmt.Errorf("list wordlists: %w", err)
	}
	var names []string
	for iter.First(); iter.Valid(); iter.Next() {
		names = append(names, string(iter.Key()))
	}
	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("list wordlists: %w", err)
	}
	return names, nil
}

// Delete removes a named wordlist. Deleting a missing name is not an error.
func (r *Registry) Delete(name string) error {
	if err := r.db.Delete([]byte(name), pebble.Sync); err != nil {
		return fmt.Errorf("delete wordlist %q: %w", name, err)
	}
	return nil
}
