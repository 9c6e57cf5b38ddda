package domain

import (
	"errors"
	"time"

	catalog "github.com/agentshop/marketplace-service/internal/catalog/domain"
	payment "github.com/agentshop/marketplace-service/internal/payment/domain"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrderExists      = errors.New("order already exists")
	ErrAlreadyConfirmed = errors.New("order already confirmed")
	ErrWrongAdminCode   = errors.New("wrong admin code")
)

// Order is one purchase attempt against a catalog item. Item name, price and
// pickup location are snapshots taken at creation; the catalog entry may
// change availability afterwards without affecting the order.
type Order struct {
	ID             string
	ItemID         string
	ItemName       string
	Crypto         payment.Crypto
	Amount         float64
	UserName       string
	Status         OrderStatus
	PickupLocation string
	CreatedAt      time.Time
	ConfirmedAt    time.Time
}

func NewOrder(id string, item catalog.Item, crypto payment.Crypto, userName string, now time.Time) Order {
	return Order{
		ID:             id,
		ItemID:         item.ID,
		ItemName:       item.Name,
		Crypto:         crypto,
		Amount:         item.PriceIn(crypto),
		UserName:       userName,
		Status:         StatusPending,
		PickupLocation: item.PickupLocation,
		CreatedAt:      now,
	}
}

// Confirm moves the order from pending to confirmed. Confirmed is terminal:
// confirming twice is an error, not a no-op.
func (o *Order) Confirm(now time.Time) error {
	if o.Status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	o.Status = StatusConfirmed
	o.ConfirmedAt = now
	return nil
}
