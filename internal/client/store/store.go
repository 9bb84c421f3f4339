// Package store holds the client-side record cache: the single source of
// truth for list rendering and id lookups between fetches.
package store

import (
	"sync"

	"github.com/psharma-dev/qprdesk/internal/client/models"
	"github.com/psharma-dev/qprdesk/internal/common"
)

// Store caches the most recently fetched record list in server order. It is
// mutated exclusively through ReplaceAll; everyone else reads. Readers must
// tolerate an empty store during the initial load.
//
// ReplaceAll is guarded by fetch generations so a slow, superseded fetch
// cannot overwrite the result of a later one: take a ticket with
// NextGeneration before fetching and present it when applying.
type Store struct {
	mu      sync.RWMutex
	issued  uint64
	applied uint64
	records []models.Record
}

func New() *Store {
	return &Store{}
}

// NextGeneration issues a monotonically increasing fetch ticket.
func (s *Store) NextGeneration() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// ReplaceAll atomically replaces the whole cache with records, with no merge
// against prior state. It reports whether the replacement was applied; a
// ticket at or below the last applied generation is stale and is discarded.
func (s *Store) ReplaceAll(gen uint64, records []models.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen <= s.applied {
		return false
	}
	s.applied = gen
	s.records = make([]models.Record, len(records))
	copy(s.records, records)
	return true
}

// FindByID returns the cached record with the given id, or
// common.ErrNotFound. A missing record is reported distinctly so the edit
// flow can abort instead of fabricating a blank form.
func (s *Store) FindByID(id int64) (models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.records {
		if r.ID == id {
			return r, nil
		}
	}
	return models.Record{}, common.ErrNotFound
}

// Snapshot returns a copy of the cached records in server order.
func (s *Store) Snapshot() []models.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of cached records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
