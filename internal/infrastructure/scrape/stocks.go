package scrape

import (
	"context"
	"fmt"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"
	"finbot-service/internal/infrastructure/httpx"
)

// Stocks scrapes the BIST index daily changes. Only the raw change text is
// captured; it keeps its sign and percent marker as published.
type Stocks struct {
	URL    string
	Client *httpx.Client
}

var _ application.MarketSource = (*Stocks)(nil)

func (s *Stocks) Fetch(ctx context.Context) (*domain.QuoteSet, error) {
	log := scraperLog("stocks")
	qs := domain.NewQuoteSet()

	page, err := fetchPage(ctx, s.Client, s.URL)
	if err != nil {
		return qs, fmt.Errorf("stocks: %w", err)
	}

	for _, inst := range domain.IndexInstruments {
		change, ok := page.ContainerChange(string(inst))
		if !ok {
			log.Warn("instrument not on page", instField(inst))
			continue
		}
		qs.PutChange(domain.ChangeQuote{Instrument: inst, ChangeText: change})
	}
	return qs, nil
}
