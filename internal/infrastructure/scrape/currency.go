package scrape

import (
	"context"
	"fmt"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"
	"finbot-service/internal/infrastructure/httpx"
)

// Currency scrapes USD and EUR against TRY. The currency code doubles as
// the data-socket-key on this page.
type Currency struct {
	URL    string
	Client *httpx.Client
}

var _ application.MarketSource = (*Currency)(nil)

func (s *Currency) Fetch(ctx context.Context) (*domain.QuoteSet, error) {
	log := scraperLog("currency")
	qs := domain.NewQuoteSet()

	page, err := fetchPage(ctx, s.Client, s.URL)
	if err != nil {
		return qs, fmt.Errorf("currency: %w", err)
	}

	for _, inst := range domain.CurrencyInstruments {
		bidText, askText, ok := page.AttrBidAsk(string(inst))
		if !ok {
			log.Warn("instrument not on page", instField(inst))
			continue
		}
		putPrice(qs, inst, bidText, askText, log)
	}
	return qs, nil
}
