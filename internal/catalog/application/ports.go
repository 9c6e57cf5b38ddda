package application

import (
	"context"

	"github.com/agentshop/marketplace-service/internal/catalog/domain"
)

type ItemRepository interface {
	List(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id string) (domain.Item, error)
	SetAvailable(ctx context.Context, id string, available bool) error
}
