package application

import (
	"context"

	"finbot-service/internal/domain"
)

// Market names the scraped doviz.com pages as exposed over the HTTP API.
type Market string

const (
	MarketGoldSources Market = "gold-sources"
	MarketGoldTypes   Market = "gold-types"
	MarketCurrency    Market = "currency"
	MarketStocks      Market = "stocks"
	MarketCrypto      Market = "crypto"
)

// MarketService fans requests out to the per-page extractors. It holds no
// mutable state; every call allocates a fresh QuoteSet, so concurrent
// handlers may share one instance.
type MarketService struct {
	goldSources MarketSource
	goldTypes   MarketSource
	currency    MarketSource
	stocks      MarketSource
	crypto      MarketSource
}

func NewMarketService(goldSources, goldTypes, currency, stocks, crypto MarketSource) *MarketService {
	return &MarketService{
		goldSources: goldSources,
		goldTypes:   goldTypes,
		currency:    currency,
		stocks:      stocks,
		crypto:      crypto,
	}
}

func (s *MarketService) GoldSources(ctx context.Context) (*domain.QuoteSet, error) {
	return s.goldSources.Fetch(ctx)
}

func (s *MarketService) GoldTypes(ctx context.Context) (*domain.QuoteSet, error) {
	return s.goldTypes.Fetch(ctx)
}

func (s *MarketService) Currency(ctx context.Context) (*domain.QuoteSet, error) {
	return s.currency.Fetch(ctx)
}

func (s *MarketService) Stocks(ctx context.Context) (*domain.QuoteSet, error) {
	return s.stocks.Fetch(ctx)
}

func (s *MarketService) Crypto(ctx context.Context) (*domain.QuoteSet, error) {
	return s.crypto.Fetch(ctx)
}

// Source resolves a market by its API name.
func (s *MarketService) Source(m Market) (MarketSource, bool) {
	switch m {
	case MarketGoldSources:
		return s.goldSources, true
	case MarketGoldTypes:
		return s.goldTypes, true
	case MarketCurrency:
		return s.currency, true
	case MarketStocks:
		return s.stocks, true
	case MarketCrypto:
		return s.crypto, true
	default:
		return nil, false
	}
}
