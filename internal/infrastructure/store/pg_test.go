package store_test

import (
	"context"
	"testing"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"
	"finbot-service/internal/infrastructure/store"

	"github.com/stretchr/testify/require"
)

func TestPGStore_RoundTrip(t *testing.T) {
	db := withPostgres(t)
	s := store.NewPGStore(db)
	ctx := context.Background()

	h := domain.Holdings{
		EnparaGrams: 30,
		ZiraatGrams: 35,
		AtaCount:    2,
		CeyrekCount: 3,
		StocksTRY:   50000,
		CryptoUSD:   1000,
		OtherTRY:    25000,
	}
	require.NoError(t, s.Save(ctx, "12345", h))

	got, err := s.Load(ctx, "12345")
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestPGStore_NotFound(t *testing.T) {
	db := withPostgres(t)
	s := store.NewPGStore(db)

	_, err := s.Load(context.Background(), "nobody")
	require.ErrorIs(t, err, application.ErrNotFound)
}

func TestPGStore_Upsert(t *testing.T) {
	db := withPostgres(t)
	s := store.NewPGStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "u1", domain.Holdings{EnparaGrams: 30, StocksTRY: 1000}))
	require.NoError(t, s.Save(ctx, "u1", domain.Holdings{AtaCount: 5}))

	got, err := s.Load(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, domain.Holdings{AtaCount: 5}, got)
}
