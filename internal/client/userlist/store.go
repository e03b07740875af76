// Package userlist keeps the last fetched snapshot of user records.
//
// Responses are applied whole. Each fetch takes a sequence number from Begin
// and a response is applied only if no later fetch has been applied yet, so
// a slow response can never overwrite a fresher list.
package userlist

import (
	"slices"
	"sync"

	"github.com/dmitrijs2005/userform/internal/client/models"
)

type Store struct {
	mu      sync.Mutex
	users   []models.UserRecord
	issued  uint64
	applied uint64
}

func NewStore() *Store {
	return &Store{users: []models.UserRecord{}}
}

// Snapshot returns a copy of the current list in server order.
func (s *Store) Snapshot() []models.UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.users)
}

// Len returns the number of records in the snapshot.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// Find returns the record with the given id.
func (s *Store) Find(id string) (models.UserRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.UserRecord{}, false
}

// At returns the record at a zero-based position.
func (s *Store) At(i int) (models.UserRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.users) {
		return models.UserRecord{}, false
	}
	return s.users[i], true
}

// Replace swaps the whole snapshot unconditionally.
func (s *Store) Replace(users []models.UserRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.set(users)
	s.applied = s.issued
}

// Begin issues the sequence number of a new fetch.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// ReplaceIfLatest applies users fetched under seq unless a later fetch has
// already been applied. It reports whether the snapshot changed.
func (s *Store) ReplaceIfLatest(seq uint64, users []models.UserRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.applied {
		return false
	}
	s.set(users)
	s.applied = seq
	return true
}

func (s *Store) set(users []models.UserRecord) {
	if users == nil {
		s.users = []models.UserRecord{}
		return
	}
	s.users = slices.Clone(users)
}
