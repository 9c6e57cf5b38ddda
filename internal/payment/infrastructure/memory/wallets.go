// Package memory holds the static wallet directory, fixed at startup.
package memory

import (
	"context"
	"fmt"

	"github.com/agentshop/marketplace-service/internal/payment/domain"
)

type WalletDirectory struct {
	wallets map[domain.Crypto]string
}

// NewWalletDirectory copies the given mapping. It fails when an accepted
// currency has no receiving address, since create-order could then succeed
// without being payable.
func NewWalletDirectory(wallets map[domain.Crypto]string) (*WalletDirectory, error) {
	copied := make(map[domain.Crypto]string, len(wallets))
	for c, addr := range wallets {
		copied[c] = addr
	}
	for _, c := range domain.Supported() {
		if copied[c] == "" {
			return nil, fmt.Errorf("no wallet address for %s", c)
		}
	}
	return &WalletDirectory{wallets: copied}, nil
}

func (d *WalletDirectory) Address(ctx context.Context, c domain.Crypto) (string, error) {
	addr, ok := d.wallets[c]
	if !ok {
		return "", domain.ErrUnsupportedCrypto
	}
	return addr, nil
}

func (d *WalletDirectory) All(ctx context.Context) (map[domain.Crypto]string, error) {
	out := make(map[domain.Crypto]string, len(d.wallets))
	for c, addr := range d.wallets {
		out[c] = addr
	}
	return out, nil
}
