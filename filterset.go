package perfview

import (
	"fmt"
	"sync"
)

// A FilterSet is a named collection of compiled expression trees, safe for
// concurrent use. A tracing session typically keeps one set of active
// filters, adding and removing them while events stream through.
type FilterSet struct {
	mu    sync.RWMutex
	trees map[string]*ExpressionTree
}

func NewFilterSet() *FilterSet {
	return &FilterSet{
		trees: map[string]*ExpressionTree{},
	}
}

// Add stores the tree under the key, replacing any tree already there.
func (s *FilterSet) Add(key string, t *ExpressionTree) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trees[key] = t
}

// Get returns the tree stored under the key, or nil.
func (s *FilterSet) Get(key string) *ExpressionTree {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trees[key]
}

// Remove deletes the tree stored under the key, if any.
func (s *FilterSet) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.trees, key)
}

// Replace swaps the tree stored under the key. Unlike Add, it fails if no
// tree is stored under the key.
func (s *FilterSet) Replace(key string, t *ExpressionTree) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trees[key]; !ok {
		return fmt.Errorf("filter with key '%s' not found", key)
	}
	s.trees[key] = t
	return nil
}

// Keys returns the keys of all stored trees, in no particular order.
func (s *FilterSet) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ks := make([]string, 0, len(s.trees))
	for k := range s.trees {
		ks = append(ks, k)
	}
	return ks
}

// Count is the number of trees in the set.
func (s *FilterSet) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.trees)
}

// MatchAny reports whether at least one filter in the set matches the event.
// An empty set matches nothing.
func (s *FilterSet) MatchAny(e *Event) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trees {
		ok, err := t.Match(e)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// MatchAll reports whether every filter in the set matches the event.
// An empty set matches everything.
func (s *FilterSet) MatchAll(e *Event) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trees {
		ok, err := t.Match(e)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
