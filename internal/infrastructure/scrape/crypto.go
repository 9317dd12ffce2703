package scrape

import (
	"context"
	"fmt"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"
	"finbot-service/internal/infrastructure/httpx"
)

// Crypto scrapes BTC and ETH rows. The USD price is symbol-bearing text
// (e.g. "$87.342") and is kept raw alongside the change text.
type Crypto struct {
	URL    string
	Client *httpx.Client
}

var _ application.MarketSource = (*Crypto)(nil)

func (s *Crypto) Fetch(ctx context.Context) (*domain.QuoteSet, error) {
	log := scraperLog("crypto")
	qs := domain.NewQuoteSet()

	page, err := fetchPage(ctx, s.Client, s.URL)
	if err != nil {
		return qs, fmt.Errorf("crypto: %w", err)
	}

	for _, inst := range domain.CryptoInstruments {
		price, change, ok := page.CryptoRow(string(inst))
		if !ok {
			log.Warn("instrument not on page", instField(inst))
			continue
		}
		qs.PutChange(domain.ChangeQuote{Instrument: inst, PriceText: price, ChangeText: change})
	}
	return qs, nil
}
