package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct{ Pool *pgxpool.Pool }

func Connect(ctx context.Context, url string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns, cfg.MinConns = 5, 1
	cfg.MaxConnIdleTime = 2 * time.Minute
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &DB{Pool: pool}, nil
}

func (d *DB) Close()                         { d.Pool.Close() }
func (d *DB) Ping(ctx context.Context) error { return d.Pool.Ping(ctx) }

// PGStore persists holdings in the portfolios table, one row per user,
// replaced wholesale on each save.
type PGStore struct{ db *DB }

var _ application.PortfolioStore = (*PGStore)(nil)

func NewPGStore(db *DB) *PGStore { return &PGStore{db: db} }

func (s *PGStore) Load(ctx context.Context, userID string) (domain.Holdings, error) {
	const q = `
        SELECT enpara_gr, ziraat_gr, ata, ceyrek, borsa, kripto, diger
        FROM portfolios WHERE user_id=$1`
	var h domain.Holdings
	err := s.db.Pool.QueryRow(ctx, q, userID).Scan(
		&h.EnparaGrams, &h.ZiraatGrams, &h.AtaCount, &h.CeyrekCount,
		&h.StocksTRY, &h.CryptoUSD, &h.OtherTRY,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Holdings{}, application.ErrNotFound
	}
	if err != nil {
		return domain.Holdings{}, fmt.Errorf("pg store: load: %w", err)
	}
	return h, nil
}

func (s *PGStore) Save(ctx context.Context, userID string, h domain.Holdings) error {
	const up = `
        INSERT INTO portfolios(user_id, enpara_gr, ziraat_gr, ata, ceyrek, borsa, kripto, diger, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
        ON CONFLICT (user_id) DO UPDATE
          SET enpara_gr=EXCLUDED.enpara_gr, ziraat_gr=EXCLUDED.ziraat_gr,
              ata=EXCLUDED.ata, ceyrek=EXCLUDED.ceyrek, borsa=EXCLUDED.borsa,
              kripto=EXCLUDED.kripto, diger=EXCLUDED.diger, updated_at=now()`
	_, err := s.db.Pool.Exec(ctx, up, userID,
		h.EnparaGrams, h.ZiraatGrams, h.AtaCount, h.CeyrekCount,
		h.StocksTRY, h.CryptoUSD, h.OtherTRY,
	)
	if err != nil {
		return fmt.Errorf("pg store: save: %w", err)
	}
	return nil
}
