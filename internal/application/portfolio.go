package application

import (
	"context"
	"fmt"

	"finbot-service/internal/domain"
)

// PortfolioService combines the persisted holdings record with fresh market
// prices. Store failures propagate (the user must see an explicit error),
// while upstream fetch failures degrade to empty quote sets so a valuation
// is always produced on a best-effort basis.
type PortfolioService struct {
	store  PortfolioStore
	market *MarketService
}

func NewPortfolioService(store PortfolioStore, market *MarketService) *PortfolioService {
	return &PortfolioService{store: store, market: market}
}

func (s *PortfolioService) Save(ctx context.Context, userID string, h domain.Holdings) error {
	if err := s.store.Save(ctx, userID, h); err != nil {
		return fmt.Errorf("save portfolio: %w", err)
	}
	return nil
}

func (s *PortfolioService) Get(ctx context.Context, userID string) (domain.Holdings, error) {
	return s.store.Load(ctx, userID)
}

// Valuate loads the user's holdings and prices them against the three quote
// sets the valuation needs, fetched sequentially.
func (s *PortfolioService) Valuate(ctx context.Context, userID string) (domain.Holdings, domain.Valuation, error) {
	h, err := s.store.Load(ctx, userID)
	if err != nil {
		return domain.Holdings{}, domain.Valuation{}, err
	}

	goldSources := fetchOrEmpty(ctx, s.market.goldSources)
	goldTypes := fetchOrEmpty(ctx, s.market.goldTypes)
	currency := fetchOrEmpty(ctx, s.market.currency)

	return h, domain.Valuate(h, goldSources, goldTypes, currency), nil
}

func fetchOrEmpty(ctx context.Context, src MarketSource) *domain.QuoteSet {
	qs, err := src.Fetch(ctx)
	if err != nil || qs == nil {
		return domain.NewQuoteSet()
	}
	return qs
}
