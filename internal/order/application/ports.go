package application

import (
	"context"

	catalogdomain "github.com/agentshop/marketplace-service/internal/catalog/domain"
	"github.com/agentshop/marketplace-service/internal/order/domain"
	paymentdomain "github.com/agentshop/marketplace-service/internal/payment/domain"
)

type OrderRepository interface {
	Insert(ctx context.Context, o domain.Order) error
	Get(ctx context.Context, id string) (domain.Order, error)
	// Update applies fn to the stored order under the store's lock and
	// returns the updated copy. fn returning an error aborts the update.
	Update(ctx context.Context, id string, fn func(*domain.Order) error) (domain.Order, error)
}

type Catalog interface {
	Get(ctx context.Context, id string) (catalogdomain.Item, error)
	MarkUnavailable(ctx context.Context, id string) error
}

type Wallets interface {
	AddressFor(ctx context.Context, c paymentdomain.Crypto) (string, error)
}
