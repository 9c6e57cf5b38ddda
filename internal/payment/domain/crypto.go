package domain

import (
	"errors"
	"fmt"
)

// Crypto is a supported cryptocurrency code.
type Crypto string

const (
	CryptoBTC  Crypto = "BTC"
	CryptoETH  Crypto = "ETH"
	CryptoUSDT Crypto = "USDT"
)

var ErrUnsupportedCrypto = errors.New("unsupported cryptocurrency")

// Supported returns the accepted currencies in display order.
func Supported() []Crypto {
	return []Crypto{CryptoBTC, CryptoETH, CryptoUSDT}
}

func ParseCrypto(s string) (Crypto, error) {
	switch Crypto(s) {
	case CryptoBTC, CryptoETH, CryptoUSDT:
		return Crypto(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedCrypto, s)
}
