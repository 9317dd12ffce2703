package bootstrap

import (
	"context"
	"fmt"

	"finbot-service/internal/application"
	"finbot-service/internal/config"
	"finbot-service/internal/infrastructure/httpx"
	"finbot-service/internal/infrastructure/logx"
	"finbot-service/internal/infrastructure/scrape"
	"finbot-service/internal/infrastructure/store"

	"github.com/redis/go-redis/v9"
)

// BuildStore constructs the portfolio store selected by STORAGE, returning
// the store, an optional readiness ping and a cleanup func.
func BuildStore(ctx context.Context, cfg config.Config) (application.PortfolioStore, func(context.Context) error, func(), error) {
	log := logx.L()
	switch cfg.Storage {
	case "file":
		return store.NewFileStore(cfg.DataFile), nil, func() {}, nil
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		cleanup := func() {
			log.Info("closing redis")
			_ = rdb.Close()
		}
		ping := func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		return store.NewRedisStore(rdb), ping, cleanup, nil
	case "pg":
		if cfg.DatabaseURL == "" {
			return nil, nil, func() {}, fmt.Errorf("DATABASE_URL is required for STORAGE=pg")
		}
		db, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, func() {}, err
		}
		if err := store.RunMigrations(ctx, db); err != nil {
			db.Close()
			return nil, nil, func() {}, err
		}
		cleanup := func() {
			log.Info("closing pg")
			db.Close()
		}
		return store.NewPGStore(db), db.Ping, cleanup, nil
	default:
		return nil, nil, func() {}, fmt.Errorf("unknown STORAGE %q", cfg.Storage)
	}
}

// BuildMarket wires the five page scrapers behind one shared fetch client.
func BuildMarket(cfg config.Config) *application.MarketService {
	client := httpx.New(cfg.FetchTimeout)
	return application.NewMarketService(
		&scrape.GoldSources{URL: cfg.GoldURL, Client: client},
		&scrape.GoldTypes{URL: cfg.GoldTypesURL, Client: client},
		&scrape.Currency{URL: cfg.CurrencyURL, Client: client},
		&scrape.Stocks{URL: cfg.StocksURL, Client: client},
		&scrape.Crypto{URL: cfg.CryptoURL, Client: client},
	)
}
