package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/cplinktech/storefront/internal/adapter/catalog"
	"github.com/cplinktech/storefront/internal/adapter/remote"
	"github.com/cplinktech/storefront/internal/adapter/storage"
	"github.com/cplinktech/storefront/internal/config"
	"github.com/cplinktech/storefront/internal/core/domain"
	"github.com/cplinktech/storefront/internal/core/service"
	"github.com/cplinktech/storefront/internal/logger"
	"github.com/cplinktech/storefront/internal/money"
	"github.com/cplinktech/storefront/internal/port"
)

// app holds everything one CLI invocation needs.
type app struct {
	log       *zap.Logger
	cart      *service.CartStore
	orders    *service.KVOrderLog
	checkout  *service.CheckoutService
	inquiries *service.InquiryBuilder
	formatter *money.Formatter
	products  port.ProductSource

	catalog *service.Catalog
	close   func() error
}

type appDeps struct {
	KV        port.KVStore
	Close     func() error
	Products  port.ProductSource
	Sessions  port.SessionClient
	CartKey   string
	OrdersKey string
	Formatter *money.Formatter
	CartPhone string
	ItemPhone string
	Logger    *zap.Logger
}

func newApp(d appDeps) *app {
	if d.Close == nil {
		d.Close = func() error { return nil }
	}
	if d.Formatter == nil {
		d.Formatter = money.Default()
	}

	cart := service.NewCartStore(d.KV, d.CartKey, d.Logger)
	orders := service.NewKVOrderLog(d.KV, d.OrdersKey, d.Logger)
	return &app{
		log:       d.Logger,
		cart:      cart,
		orders:    orders,
		checkout:  service.NewCheckoutService(d.Sessions, orders, cart, d.Logger),
		inquiries: service.NewInquiryBuilder(d.Formatter, d.CartPhone, d.ItemPhone),
		formatter: d.Formatter,
		products:  d.Products,
		close:     d.Close,
	}
}

// buildFromEnv wires the client from CLI environment configuration.
func buildFromEnv(ctx context.Context) (*app, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel, true)
	if err != nil {
		return nil, err
	}

	formatter, err := money.NewFormatter(cfg.Currency, cfg.Locale)
	if err != nil {
		return nil, err
	}

	kv, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	// A nil interface, not a typed nil, keeps the initiator on the simulated path.
	var sessions port.SessionClient
	if cfg.ProxyURL != "" {
		sessions = remote.NewSessionClient(cfg.ProxyURL, httpClient)
	}

	return newApp(appDeps{
		KV:        kv,
		Close:     closeStore,
		Products:  catalog.NewSource(cfg.CatalogURL, httpClient),
		Sessions:  sessions,
		CartKey:   cfg.CartKey,
		OrdersKey: cfg.OrdersKey,
		Formatter: formatter,
		CartPhone: cfg.CartInquiryPhone,
		ItemPhone: cfg.ProductInquiryPhone,
		Logger:    log,
	}), nil
}

func openStore(ctx context.Context, cfg config.ClientConfig) (port.KVStore, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return storage.NewMemoryAdapter(), func() error { return nil }, nil

	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(ctx).Err(); err != nil {
			rdb.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		return storage.NewRedisAdapter(rdb), rdb.Close, nil

	case config.DriverMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("ping mysql: %w", err)
		}
		adapter := storage.NewMySQLAdapter(db)
		if err := adapter.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return adapter, db.Close, nil

	default:
		store, err := storage.OpenSQLite(ctx, cfg.StorePath)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	}
}

// loadCatalog fetches the catalog once per invocation. A failed load is
// reported on the log and leaves an empty catalog, so product cards fall
// back to placeholders.
func (a *app) loadCatalog(ctx context.Context) *service.Catalog {
	if a.catalog != nil {
		return a.catalog
	}
	c, err := service.LoadCatalog(ctx, a.products, a.log)
	if err != nil {
		a.log.Warn("catalog unavailable, using placeholder prices", zap.Error(err))
	}
	a.catalog = c
	return c
}

func (a *app) printCart(w io.Writer, cart domain.Cart) {
	if cart.IsEmpty() {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}
	for _, line := range cart {
		fmt.Fprintf(w, "%-24s %-28s %3d x %s = %s\n",
			line.ID, line.Name, line.Qty,
			a.formatter.Format(line.PriceCents),
			a.formatter.Format(line.SubtotalCents()))
	}
	fmt.Fprintf(w, "Items: %d\nTotal: %s\n", cart.Count(), a.formatter.Format(cart.TotalCents()))
}
