package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Len(t, cfg.Catalog, 5)
	assert.Len(t, cfg.Wallets, 3)
	for _, item := range cfg.Catalog {
		assert.NotEmpty(t, item.PickupLocation, "item %s needs a pickup location", item.ID)
		assert.True(t, item.Available)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("ADMIN_CODE", "sekrit")
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.HTTPAddr)
	assert.Equal(t, "sekrit", cfg.AdminCode)
	assert.Len(t, cfg.Catalog, 5, "defaults kept where env says nothing")
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marketplace.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
admin_code: file-code
catalog:
  - id: "10"
    name: Mechanical Keyboard
    description: Hot-swappable switches
    price_btc: 0.002
    price_eth: 0.04
    price_usdt: 90
    available: true
    pickup_location: Depot 4, Shelf 12
wallets:
  BTC: bc1-file
  ETH: 0x-file
  USDT: tn-file
`), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("ADMIN_CODE", "")
	t.Setenv("HTTP_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "file-code", cfg.AdminCode)
	require.Len(t, cfg.Catalog, 1)
	assert.Equal(t, "Mechanical Keyboard", cfg.Catalog[0].Name)
	assert.Equal(t, "bc1-file", cfg.Wallets["BTC"])
	assert.Equal(t, ":8080", cfg.HTTPAddr, "file did not set the address, default survives")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "duplicate item id",
			mutate:  func(c *Config) { c.Catalog[1].ID = c.Catalog[0].ID },
			wantErr: "duplicate catalog item id",
		},
		{
			name:    "missing item id",
			mutate:  func(c *Config) { c.Catalog[0].ID = "" },
			wantErr: "has no id",
		},
		{
			name:    "negative price",
			mutate:  func(c *Config) { c.Catalog[2].PriceETH = -1 },
			wantErr: "negative price",
		},
		{
			name:    "empty admin code",
			mutate:  func(c *Config) { c.AdminCode = "" },
			wantErr: "admin code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
