package application

import (
	"context"
	"strings"

	"github.com/agentshop/marketplace-service/internal/catalog/domain"
)

type Service struct {
	repo ItemRepository
}

func NewService(repo ItemRepository) *Service {
	return &Service{repo: repo}
}

// ListAvailable returns the items still for sale, in catalog order.
func (s *Service) ListAvailable(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	available := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}
	return available, nil
}

// Find resolves an identifier to an item: an exact ID match wins over a
// case-insensitive substring match on the name, and among substring matches
// the first in catalog order wins. Checking IDs across the whole catalog
// first keeps an item ID from being shadowed by another item's name.
func (s *Service) Find(ctx context.Context, identifier string) (domain.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return domain.Item{}, err
	}
	for _, item := range items {
		if item.ID == identifier {
			return item, nil
		}
	}
	needle := strings.ToLower(identifier)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			return item, nil
		}
	}
	return domain.Item{}, domain.ErrItemNotFound
}

// Get returns the item with the exact ID.
func (s *Service) Get(ctx context.Context, id string) (domain.Item, error) {
	return s.repo.Get(ctx, id)
}

// MarkUnavailable revokes an item from sale. Called once per item, when an
// order against it is confirmed.
func (s *Service) MarkUnavailable(ctx context.Context, id string) error {
	return s.repo.SetAvailable(ctx, id, false)
}
