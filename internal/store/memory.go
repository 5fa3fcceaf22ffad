package store

import (
	"sync"

	"github.com/900mahdi/mohasib3/internal/models"
)

// MemoryStore is a thread-safe in-memory gateway, used by tests.
type MemoryStore struct {
	mu         sync.RWMutex
	record     models.FinancialRecord
	hasRecord  bool
	credential string
	hasCred    bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) LoadRecord() (models.FinancialRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record, s.hasRecord, nil
}

func (s *MemoryStore) SaveRecord(rec models.FinancialRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = rec
	s.hasRecord = true
	return nil
}

func (s *MemoryStore) LoadCredential() (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential, s.hasCred, nil
}

func (s *MemoryStore) SaveCredential(secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = secret
	s.hasCred = true
	return nil
}
