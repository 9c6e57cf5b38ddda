package domain

import (
	"errors"

	payment "github.com/agentshop/marketplace-service/internal/payment/domain"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrItemUnavailable = errors.New("item unavailable")
)

// Item is one sellable unit in the catalog. The catalog is seeded once at
// startup; only Available ever changes afterwards, and only from true to
// false when an order against the item is confirmed.
type Item struct {
	ID             string
	Name           string
	Description    string
	PriceBTC       float64
	PriceETH       float64
	PriceUSDT      float64
	Available      bool
	PickupLocation string
}

// PriceIn returns the item's price in the given currency.
func (i Item) PriceIn(c payment.Crypto) float64 {
	switch c {
	case payment.CryptoBTC:
		return i.PriceBTC
	case payment.CryptoETH:
		return i.PriceETH
	default:
		return i.PriceUSDT
	}
}
