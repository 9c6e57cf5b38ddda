// Package config assembles the service configuration: built-in defaults,
// overridden by an optional YAML file, overridden by environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Item struct {
	ID             string  `yaml:"id"`
	Name           string  `yaml:"name"`
	Description    string  `yaml:"description"`
	PriceBTC       float64 `yaml:"price_btc"`
	PriceETH       float64 `yaml:"price_eth"`
	PriceUSDT      float64 `yaml:"price_usdt"`
	Available      bool    `yaml:"available"`
	PickupLocation string  `yaml:"pickup_location"`
}

type Config struct {
	HTTPAddr     string            `yaml:"http_addr"`
	AdminCode    string            `yaml:"admin_code"`
	OTLPEndpoint string            `yaml:"otlp_endpoint"`
	Catalog      []Item            `yaml:"catalog"`
	Wallets      map[string]string `yaml:"wallets"`
}

// Default returns the built-in configuration: the seed catalog with a
// pickup location per item, and the receiving wallet per currency.
func Default() Config {
	return Config{
		HTTPAddr:     ":8080",
		AdminCode:    "ADMIN2024",
		OTLPEndpoint: "localhost:4318",
		Catalog: []Item{
			{
				ID: "1", Name: "iPhone 14 Pro Max", Description: "Brand new, sealed in box",
				PriceBTC: 0.025, PriceETH: 0.45, PriceUSDT: 800, Available: true,
				PickupLocation: "123 Main Street, Building A, Locker #42 - Code: 7829",
			},
			{
				ID: "2", Name: "MacBook Air M2", Description: "2023 model, 256GB, Space Gray",
				PriceBTC: 0.035, PriceETH: 0.65, PriceUSDT: 1100, Available: true,
				PickupLocation: "123 Main Street, Building A, Locker #17 - Code: 3384",
			},
			{
				ID: "3", Name: "AirPods Pro 2", Description: "Latest generation with USB-C",
				PriceBTC: 0.007, PriceETH: 0.12, PriceUSDT: 220, Available: true,
				PickupLocation: "123 Main Street, Building B, Locker #03 - Code: 5521",
			},
			{
				ID: "4", Name: "PlayStation 5", Description: "Disc Edition, includes 2 controllers",
				PriceBTC: 0.015, PriceETH: 0.28, PriceUSDT: 480, Available: true,
				PickupLocation: "123 Main Street, Building B, Locker #28 - Code: 9106",
			},
			{
				ID: "5", Name: "Samsung Galaxy S24 Ultra", Description: "512GB, Titanium Black",
				PriceBTC: 0.03, PriceETH: 0.55, PriceUSDT: 950, Available: true,
				PickupLocation: "123 Main Street, Building A, Locker #55 - Code: 4417",
			},
		},
		Wallets: map[string]string{
			"BTC":  "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh",
			"ETH":  "0x742d35Cc6634C0532925a3b844Bc454e4438f44e",
			"USDT": "TN2A3x5pJjT5KxWMHJLsxCq2Rn8SKDJPVA",
		},
	}
}

// Load builds the effective configuration. A YAML file named by CONFIG_FILE
// replaces defaults wholesale for the fields it sets; HTTP_ADDR, ADMIN_CODE
// and OTLP_ENDPOINT override both.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.HTTPAddr = env("HTTP_ADDR", cfg.HTTPAddr)
	cfg.AdminCode = env("ADMIN_CODE", cfg.AdminCode)
	cfg.OTLPEndpoint = env("OTLP_ENDPOINT", cfg.OTLPEndpoint)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate enforces the catalog invariants that seeding relies on.
func (c Config) Validate() error {
	if c.AdminCode == "" {
		return fmt.Errorf("admin code must not be empty")
	}
	seen := make(map[string]bool, len(c.Catalog))
	for _, item := range c.Catalog {
		if item.ID == "" {
			return fmt.Errorf("catalog item %q has no id", item.Name)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate catalog item id %q", item.ID)
		}
		seen[item.ID] = true
		if item.PriceBTC < 0 || item.PriceETH < 0 || item.PriceUSDT < 0 {
			return fmt.Errorf("catalog item %q has a negative price", item.ID)
		}
	}
	return nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
