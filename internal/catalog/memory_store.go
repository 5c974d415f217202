package catalog

import (
	"context"
	"sync"

	"github.com/arsens-deals/storefront/internal/domain"
)

// MemoryStore implements Store with in-memory storage.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	order    []string
}

func NewMemoryStore(seed ...domain.Product) *MemoryStore {
	s := &MemoryStore{
		products: make(map[string]domain.Product),
	}
	for _, p := range seed {
		s.products[p.ID] = p
		s.order = append(s.order, p.ID)
	}
	return s
}

func (s *MemoryStore) List(_ context.Context) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.products[id])
	}
	return result, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, exists := s.products[id]
	if !exists {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *MemoryStore) Add(_ context.Context, p domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.products[p.ID] = p
	return nil
}

func (s *MemoryStore) Remove(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.products[id]; !exists {
		return ErrNotFound
	}
	delete(s.products, id)
	for i, pid := range s.order {
		if pid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
