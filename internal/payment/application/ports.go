package application

import (
	"context"

	"github.com/agentshop/marketplace-service/internal/payment/domain"
)

type WalletRepository interface {
	Address(ctx context.Context, c domain.Crypto) (string, error)
	All(ctx context.Context) (map[domain.Crypto]string, error)
}
