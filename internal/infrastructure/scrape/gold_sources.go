package scrape

import (
	"context"
	"fmt"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"
	"finbot-service/internal/infrastructure/httpx"
)

// GoldSources scrapes the gram-gold comparison table. Each source bank is
// matched by row-text containment; within a matching row the second cell is
// the bid and the third the ask.
type GoldSources struct {
	URL    string
	Client *httpx.Client
}

var _ application.MarketSource = (*GoldSources)(nil)

func (s *GoldSources) Fetch(ctx context.Context) (*domain.QuoteSet, error) {
	log := scraperLog("gold_sources")
	qs := domain.NewQuoteSet()

	page, err := fetchPage(ctx, s.Client, s.URL)
	if err != nil {
		return qs, fmt.Errorf("gold sources: %w", err)
	}

	for _, inst := range domain.GoldSourceInstruments {
		bidText, askText, ok := page.RowBidAsk(string(inst))
		if !ok {
			log.Warn("instrument not on page", instField(inst))
			continue
		}
		putPrice(qs, inst, bidText, askText, log)
	}
	return qs, nil
}
