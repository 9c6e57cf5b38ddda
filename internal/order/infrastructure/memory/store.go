// Package memory holds the process-scoped order store. Orders are never
// deleted and never expire; a pending order outlives any client session.
package memory

import (
	"context"
	"sync"

	"github.com/agentshop/marketplace-service/internal/order/domain"
)

type Store struct {
	mu     sync.Mutex
	orders map[string]domain.Order
}

func NewStore() *Store {
	return &Store{orders: make(map[string]domain.Order)}
}

func (s *Store) Insert(ctx context.Context, o domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; ok {
		return domain.ErrOrderExists
	}
	s.orders[o.ID] = o
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	return o, nil
}

// Update runs fn on the stored order while holding the store lock, so two
// concurrent confirmations of the same order serialize and the loser sees
// the state the winner left behind.
func (s *Store) Update(ctx context.Context, id string, fn func(*domain.Order) error) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, domain.ErrOrderNotFound
	}
	if err := fn(&o); err != nil {
		return domain.Order{}, err
	}
	s.orders[id] = o
	return o, nil
}

// Len reports the number of stored orders.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
