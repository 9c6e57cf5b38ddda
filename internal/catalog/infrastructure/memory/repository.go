// Package memory holds the process-scoped catalog. The catalog lives exactly
// as long as the process; seed order is preserved because listing order is
// part of the contract.
package memory

import (
	"context"
	"sync"

	"github.com/agentshop/marketplace-service/internal/catalog/domain"
)

type Repository struct {
	mu    sync.Mutex
	items []domain.Item
}

func NewRepository(items []domain.Item) *Repository {
	seeded := make([]domain.Item, len(items))
	copy(seeded, items)
	return &Repository{items: seeded}
}

func (r *Repository) List(ctx context.Context) ([]domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Item{}, domain.ErrItemNotFound
}

func (r *Repository) SetAvailable(ctx context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Available = available
			return nil
		}
	}
	return domain.ErrItemNotFound
}
