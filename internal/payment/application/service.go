package application

import (
	"context"

	"github.com/agentshop/marketplace-service/internal/payment/domain"
)

type Service struct {
	repo WalletRepository
}

func NewService(repo WalletRepository) *Service {
	return &Service{repo: repo}
}

// Info lists the accepted currencies and their receiving addresses.
type Info struct {
	Accepted []domain.Crypto
	Wallets  map[domain.Crypto]string
}

func (s *Service) Info(ctx context.Context) (Info, error) {
	wallets, err := s.repo.All(ctx)
	if err != nil {
		return Info{}, err
	}
	return Info{
		Accepted: domain.Supported(),
		Wallets:  wallets,
	}, nil
}

// AddressFor returns the receiving address buyers pay into for a currency.
func (s *Service) AddressFor(ctx context.Context, c domain.Crypto) (string, error) {
	return s.repo.Address(ctx, c)
}
