// Package collection owns the planner's in-memory collections and keeps
// each one in lockstep with durable storage: every mutation replaces the
// snapshot, rewrites the whole collection through the gateway, and then
// notifies subscribers.
package collection

import (
	"encoding/json"
	"fmt"
	"os"

	"tableflip.dev/melon/pkg/store"
)

// options carries the per-type policy of a Store.
type options[T any] struct {
	// id extracts the record identifier used by Remove and update.
	id func(rec T) string
	// place inserts a freshly minted record into the sequence (prepend
	// for tasks and notes, sorted insert for events).
	place func(items []T, rec T) []T
	// restore re-validates data read back from storage, dropping records
	// that no longer satisfy the schema.
	restore func(items []T) []T
	// defaults populates the store when nothing usable was persisted.
	defaults func() []T
}

// Store is the generic half of a collection store. The typed wrappers in
// this package embed it and add draft validation and read-side filters.
//
// Mutations are only legal after Initialize; construction wires stores
// before any UI can dispatch, so that is not re-checked per call. All
// calls happen on a single goroutine (one user event at a time).
type Store[T any] struct {
	key  store.Key
	gw   store.Gateway
	opts options[T]

	items []T
	subs  map[int]func([]T)
	next  int
}

func newStore[T any](gw store.Gateway, key store.Key, opts options[T]) *Store[T] {
	return &Store[T]{
		key:  key,
		gw:   gw,
		opts: opts,
		subs: make(map[int]func([]T)),
	}
}

// Initialize loads the persisted collection, falling back to the type
// default when the key is absent, undecodable, or empty. The result is
// written back so a fresh planner starts with its seed on disk.
func (s *Store[T]) Initialize() {
	s.items = s.load()
	s.persist()
}

// Reload refreshes the snapshot from storage without writing it back.
// Used when another process changed the underlying key; echoing the
// payload here would be observed by the change watcher and turn one
// external edit into an endless reload/persist cycle.
func (s *Store[T]) Reload() {
	s.items = s.load()
	s.notify()
}

// load reads the persisted collection, falling back to the type default
// when the key is absent, undecodable, or empty.
func (s *Store[T]) load() []T {
	var items []T
	data, present, err := s.gw.Load(s.key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collection: load %s: %v\n", s.key, err)
		present = false
	}
	if present {
		if err := json.Unmarshal(data, &items); err != nil {
			fmt.Fprintf(os.Stderr, "collection: decode %s: %v\n", s.key, err)
			items = nil
		} else {
			items = s.opts.restore(items)
		}
	}
	if len(items) == 0 {
		items = s.opts.defaults()
	}
	if items == nil {
		items = make([]T, 0)
	}
	return items
}

// add inserts an already-validated record and persists the result.
func (s *Store[T]) add(rec T) {
	s.items = s.opts.place(s.items, rec)
	s.persist()
	s.notify()
}

// Remove filters the id out of the collection. An absent id degrades to a
// harmless re-persist of the unchanged sequence.
func (s *Store[T]) Remove(id string) {
	kept := make([]T, 0, len(s.items))
	for _, rec := range s.items {
		if s.opts.id(rec) != id {
			kept = append(kept, rec)
		}
	}
	s.items = kept
	s.persist()
	s.notify()
}

// update applies fn to the record with the given id. A no-op when absent.
func (s *Store[T]) update(id string, fn func(T) T) {
	for i, rec := range s.items {
		if s.opts.id(rec) == id {
			s.items[i] = fn(rec)
			s.persist()
			s.notify()
			return
		}
	}
}

// Snapshot returns a read-only copy of the current sequence.
func (s *Store[T]) Snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Len reports the current collection size.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Subscribe registers fn to run with a fresh snapshot after every
// successful mutation. The returned cancel removes the subscription.
func (s *Store[T]) Subscribe(fn func([]T)) (cancel func()) {
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		delete(s.subs, id)
	}
}

func (s *Store[T]) notify() {
	for _, fn := range s.subs {
		fn(s.Snapshot())
	}
}

// persist rewrites the whole collection. A write failure is logged and
// swallowed: the in-memory snapshot stays authoritative for the session.
func (s *Store[T]) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collection: encode %s: %v\n", s.key, err)
		return
	}
	if err := s.gw.Save(s.key, data); err != nil {
		fmt.Fprintf(os.Stderr, "collection: save %s: %v\n", s.key, err)
	}
}

func prepend[T any](items []T, rec T) []T {
	return append([]T{rec}, items...)
}
