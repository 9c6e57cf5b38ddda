package application

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	catalogdomain "github.com/agentshop/marketplace-service/internal/catalog/domain"
	"github.com/agentshop/marketplace-service/internal/order/domain"
	paymentdomain "github.com/agentshop/marketplace-service/internal/payment/domain"
)

type Service struct {
	repo      OrderRepository
	catalog   Catalog
	wallets   Wallets
	adminCode []byte
}

func NewService(repo OrderRepository, catalog Catalog, wallets Wallets, adminCode string) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		wallets:   wallets,
		adminCode: []byte(adminCode),
	}
}

type CreateInput struct {
	ItemID   string
	Crypto   paymentdomain.Crypto
	UserName string
}

type CreateResult struct {
	Order         domain.Order
	WalletAddress string
}

// Create places a pending order for an available item. Nothing is reserved:
// several pending orders may reference the same item until one is confirmed.
func (s *Service) Create(ctx context.Context, in CreateInput) (CreateResult, error) {
	item, err := s.catalog.Get(ctx, in.ItemID)
	if err != nil {
		return CreateResult{}, err
	}
	if !item.Available {
		return CreateResult{}, catalogdomain.ErrItemUnavailable
	}

	address, err := s.wallets.AddressFor(ctx, in.Crypto)
	if err != nil {
		return CreateResult{}, err
	}

	now := time.Now().UTC()
	order := domain.NewOrder(newOrderID(now), item, in.Crypto, in.UserName, now)
	if err := s.repo.Insert(ctx, order); err != nil {
		return CreateResult{}, err
	}
	return CreateResult{Order: order, WalletAddress: address}, nil
}

type ConfirmInput struct {
	OrderID   string
	AdminCode string
}

// Confirm transitions a pending order to confirmed and revokes the item's
// availability. The admin-code check runs before the order lookup so an
// unauthorized caller learns nothing about which order IDs exist.
func (s *Service) Confirm(ctx context.Context, in ConfirmInput) (domain.Order, error) {
	if subtle.ConstantTimeCompare([]byte(in.AdminCode), s.adminCode) != 1 {
		return domain.Order{}, domain.ErrWrongAdminCode
	}

	order, err := s.repo.Update(ctx, in.OrderID, func(o *domain.Order) error {
		return o.Confirm(time.Now().UTC())
	})
	if err != nil {
		return domain.Order{}, err
	}

	if err := s.catalog.MarkUnavailable(ctx, order.ItemID); err != nil && !errors.Is(err, catalogdomain.ErrItemNotFound) {
		return domain.Order{}, err
	}
	return order, nil
}

// Status reports the stored order; callers decide how much of it to disclose.
func (s *Service) Status(ctx context.Context, orderID string) (domain.Order, error) {
	return s.repo.Get(ctx, orderID)
}
