package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/agentshop/marketplace-service/internal/catalog/domain"
	payment "github.com/agentshop/marketplace-service/internal/payment/domain"
)

func TestNewOrder_SnapshotsItemFields(t *testing.T) {
	t.Parallel()

	item := catalog.Item{
		ID: "4", Name: "PlayStation 5",
		PriceBTC: 0.015, PriceETH: 0.28, PriceUSDT: 480,
		Available:      true,
		PickupLocation: "Building B, Locker #28",
	}
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	o := NewOrder("ORD-1", item, payment.CryptoUSDT, "carol", now)

	assert.Equal(t, "4", o.ItemID)
	assert.Equal(t, "PlayStation 5", o.ItemName)
	assert.Equal(t, 480.0, o.Amount)
	assert.Equal(t, payment.CryptoUSDT, o.Crypto)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "Building B, Locker #28", o.PickupLocation)
	assert.Equal(t, now, o.CreatedAt)
	assert.True(t, o.ConfirmedAt.IsZero())
}

func TestConfirm_IsTerminal(t *testing.T) {
	t.Parallel()

	o := Order{ID: "ORD-1", Status: StatusPending}
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, o.Confirm(now))
	assert.Equal(t, StatusConfirmed, o.Status)
	assert.Equal(t, now, o.ConfirmedAt)

	err := o.Confirm(now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrAlreadyConfirmed)
	assert.Equal(t, now, o.ConfirmedAt, "timestamp untouched by rejected transition")
}
