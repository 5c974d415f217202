package cart

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arsens-deals/storefront/internal/domain"
)

var (
	ErrCartNotFound   = errors.New("cart not found")
	ErrLineOutOfRange = errors.New("cart line index out of range")
)

// Store keeps carts in memory. Carts are throwaway checkout state; the only
// durable record of a sale lives with the payment provider.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*domain.Cart)}
}

func (s *Store) Create() *domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := &domain.Cart{
		ID:        uuid.New().String(),
		Lines:     []domain.CartLine{},
		CreatedAt: time.Now().UTC(),
	}
	s.carts[cart.ID] = cart
	return snapshot(cart)
}

func (s *Store) Get(id string) (*domain.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, exists := s.carts[id]
	if !exists {
		return nil, ErrCartNotFound
	}
	return snapshot(cart), nil
}

// AddLine appends a product snapshot to the cart.
func (s *Store) AddLine(id string, line domain.CartLine) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[id]
	if !exists {
		return nil, ErrCartNotFound
	}
	cart.Lines = append(cart.Lines, line)
	return snapshot(cart), nil
}

// RemoveLine deletes the line at the given position.
func (s *Store) RemoveLine(id string, index int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[id]
	if !exists {
		return nil, ErrCartNotFound
	}
	if index < 0 || index >= len(cart.Lines) {
		return nil, ErrLineOutOfRange
	}
	cart.Lines = append(cart.Lines[:index], cart.Lines[index+1:]...)
	return snapshot(cart), nil
}

func (s *Store) Clear(id string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, exists := s.carts[id]
	if !exists {
		return nil, ErrCartNotFound
	}
	cart.Lines = []domain.CartLine{}
	return snapshot(cart), nil
}

func snapshot(cart *domain.Cart) *domain.Cart {
	c := *cart
	c.Lines = make([]domain.CartLine, len(cart.Lines))
	copy(c.Lines, cart.Lines)
	return &c
}
