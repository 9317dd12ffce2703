package application_test

import (
	"context"
	"errors"
	"testing"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"

	"github.com/stretchr/testify/require"
)

type stubSource struct {
	qs  *domain.QuoteSet
	err error
}

func (s *stubSource) Fetch(context.Context) (*domain.QuoteSet, error) { return s.qs, s.err }

type memStore struct {
	holdings map[string]domain.Holdings
	saveErr  error
	loadErr  error
}

func (m *memStore) Load(_ context.Context, userID string) (domain.Holdings, error) {
	if m.loadErr != nil {
		return domain.Holdings{}, m.loadErr
	}
	h, ok := m.holdings[userID]
	if !ok {
		return domain.Holdings{}, application.ErrNotFound
	}
	return h, nil
}

func (m *memStore) Save(_ context.Context, userID string, h domain.Holdings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	if m.holdings == nil {
		m.holdings = map[string]domain.Holdings{}
	}
	m.holdings[userID] = h
	return nil
}

func priceSet(t *testing.T, inst domain.Instrument, bid, ask float64) *domain.QuoteSet {
	t.Helper()
	qs := domain.NewQuoteSet()
	q, ok := domain.NewPriceQuote(inst, bid, ask)
	require.True(t, ok)
	qs.PutPrice(q)
	return qs
}

func TestPortfolioService_SaveAndGet(t *testing.T) {
	store := &memStore{}
	market := application.NewMarketService(&stubSource{}, &stubSource{}, &stubSource{}, &stubSource{}, &stubSource{})
	svc := application.NewPortfolioService(store, market)

	h := domain.Holdings{EnparaGrams: 30, StocksTRY: 50000}
	require.NoError(t, svc.Save(context.Background(), "7", h))

	got, err := svc.Get(context.Background(), "7")
	require.NoError(t, err)
	require.Equal(t, h, got)
}

func TestPortfolioService_SaveWrapsStoreError(t *testing.T) {
	boom := errors.New("disk full")
	store := &memStore{saveErr: boom}
	market := application.NewMarketService(&stubSource{}, &stubSource{}, &stubSource{}, &stubSource{}, &stubSource{})
	svc := application.NewPortfolioService(store, market)

	err := svc.Save(context.Background(), "7", domain.Holdings{})
	require.ErrorIs(t, err, boom)
}

func TestPortfolioService_ValuateNotFound(t *testing.T) {
	store := &memStore{}
	market := application.NewMarketService(&stubSource{}, &stubSource{}, &stubSource{}, &stubSource{}, &stubSource{})
	svc := application.NewPortfolioService(store, market)

	_, _, err := svc.Valuate(context.Background(), "nobody")
	require.ErrorIs(t, err, application.ErrNotFound)
}

func TestPortfolioService_Valuate(t *testing.T) {
	store := &memStore{holdings: map[string]domain.Holdings{
		"7": {EnparaGrams: 10, CryptoUSD: 100, OtherTRY: 1000},
	}}
	market := application.NewMarketService(
		priceSource(t, domain.SourceEnpara, 2900, 2910),
		priceSource(t, domain.GoldGramHas, 2850, 2870),
		priceSource(t, domain.CurrencyUSD, 34.2, 34.3),
		&stubSource{},
		&stubSource{},
	)
	svc := application.NewPortfolioService(store, market)

	h, v, err := svc.Valuate(context.Background(), "7")
	require.NoError(t, err)
	require.Equal(t, 10.0, h.EnparaGrams)

	wantTotal := 10*2900 + 100*34.2 + 1000
	require.InDelta(t, wantTotal, v.Total, 1e-9)
	require.InDelta(t, wantTotal/2850, v.GoldGrams, 1e-9)
}

// Valuate degrades to empty quote sets when an upstream page is down: the
// user still gets the cash portion valued.
func TestPortfolioService_ValuateUpstreamDown(t *testing.T) {
	store := &memStore{holdings: map[string]domain.Holdings{
		"7": {EnparaGrams: 10, OtherTRY: 1000},
	}}
	down := &stubSource{err: errors.New("connection refused")}
	market := application.NewMarketService(down, down, down, down, down)
	svc := application.NewPortfolioService(store, market)

	_, v, err := svc.Valuate(context.Background(), "7")
	require.NoError(t, err)
	require.InDelta(t, 1000.0, v.Total, 1e-9)
	require.Zero(t, v.GoldGrams)
	require.False(t, v.AboveNisab)
}

func priceSource(t *testing.T, inst domain.Instrument, bid, ask float64) *stubSource {
	t.Helper()
	return &stubSource{qs: priceSet(t, inst, bid, ask)}
}
