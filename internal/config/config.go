// Package config loads process configuration from the environment, after
// merging an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store drivers accepted by the shop client.
const (
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type ServerConfig struct {
	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`
	Port            int    `env:"PORT" envDefault:"3000"`
	GRPCAddr        string `env:"GRPC_ADDR" envDefault:":50051"`
	StaticDir       string `env:"STATIC_DIR" envDefault:"."`
	PhotosDir       string `env:"PHOTOS_DIR" envDefault:"assets/photos"`
	PaymentCurrency string `env:"PAYMENT_CURRENCY" envDefault:"usd"`
	TraceStdout     bool   `env:"TRACE_STDOUT" envDefault:"false"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
}

func (c ServerConfig) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DefaultOrigin is used for checkout return URLs when a request carries no
// Origin header.
func (c ServerConfig) DefaultOrigin() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}

type ClientConfig struct {
	CatalogURL          string        `env:"CATALOG_URL" envDefault:"products.json"`
	ProxyURL            string        `env:"PROXY_URL"`
	StoreDriver         string        `env:"STORE_DRIVER" envDefault:"sqlite"`
	StorePath           string        `env:"STORE_PATH" envDefault:"storefront.db"`
	RedisAddr           string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	MySQLDSN            string        `env:"MYSQL_DSN" envDefault:"root:root@tcp(localhost:3306)/storefront?parseTime=true"`
	CartKey             string        `env:"CART_KEY" envDefault:"cplink_cart_v1"`
	OrdersKey           string        `env:"ORDERS_KEY" envDefault:"cplink_orders_v1"`
	HTTPTimeout         time.Duration `env:"HTTP_TIMEOUT" envDefault:"10s"`
	CartInquiryPhone    string        `env:"CART_INQUIRY_PHONE" envDefault:"254710241295"`
	ProductInquiryPhone string        `env:"PRODUCT_INQUIRY_PHONE" envDefault:"254731927563"`
	Currency            string        `env:"CURRENCY" envDefault:"KES"`
	Locale              string        `env:"LOCALE" envDefault:"en-KE"`
	LogLevel            string        `env:"LOG_LEVEL" envDefault:"warn"`
}

// LoadServer reads the backend configuration. A missing .env file is not an
// error.
func LoadServer(dotenv ...string) (ServerConfig, error) {
	var cfg ServerConfig
	if err := loadDotEnv(dotenv...); err != nil {
		return cfg, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	cfg.PaymentCurrency = strings.ToLower(cfg.PaymentCurrency)
	return cfg, nil
}

// LoadClient reads the shop client configuration.
func LoadClient(dotenv ...string) (ClientConfig, error) {
	var cfg ClientConfig
	if err := loadDotEnv(dotenv...); err != nil {
		return cfg, err
	}
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	switch cfg.StoreDriver {
	case DriverSQLite, DriverRedis, DriverMySQL, DriverMemory:
	default:
		return cfg, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}
	if cfg.HTTPTimeout <= 0 {
		return cfg, fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", cfg.HTTPTimeout)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// loadDotEnv merges the given files (default ".env") into the process
// environment without overriding variables that are already set.
func loadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
