package maplabel

import (
	"iter"
	"slices"
	"sync"
)

// Store is the owned label collection. All mutation goes through Insert,
// RemoveWhere and Replace, so a regeneration batch is one atomic replace and
// readers never observe an intermediate state. Labels keep insertion order.
//
// A Store is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	labels []Label
}

func NewStore() *Store {
	return &Store{}
}

// Insert appends labels to the collection.
func (s *Store) Insert(labels ...Label) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = append(s.labels, labels...)
}

// RemoveWhere deletes every label the predicate matches and reports how many
// were removed.
func (s *Store) RemoveWhere(pred func(Label) bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := len(s.labels)
	s.labels = slices.DeleteFunc(s.labels, pred)
	return n - len(s.labels)
}

// Replace atomically removes every label the predicate matches and inserts
// the given labels. This is the regeneration primitive: labels the predicate
// does not match come through untouched.
func (s *Store) Replace(pred func(Label) bool, labels []Label) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = slices.DeleteFunc(s.labels, pred)
	s.labels = append(s.labels, labels...)
}

// ListByRegion returns the labels owned by the region, in insertion order.
func (s *Store) ListByRegion(region int) []Label {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Label
	for _, l := range s.labels {
		if l.Region == region {
			out = append(out, l)
		}
	}
	return out
}

// All iterates over a snapshot of the collection taken when All is called,
// in insertion order.
func (s *Store) All() iter.Seq[Label] {
	s.mu.RLock()
	snapshot := slices.Clone(s.labels)
	s.mu.RUnlock()
	return func(yield func(Label) bool) {
		for _, l := range snapshot {
			if !yield(l) {
				return
			}
		}
	}
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.labels)
}
