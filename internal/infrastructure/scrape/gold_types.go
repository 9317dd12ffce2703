package scrape

import (
	"context"
	"fmt"

	"finbot-service/internal/application"
	"finbot-service/internal/domain"
	"finbot-service/internal/infrastructure/httpx"
)

// goldTypeKeys maps gold type instruments to their data-socket-key values.
var goldTypeKeys = map[domain.Instrument]string{
	domain.GoldGramHas: "gram-has-altin",
	domain.GoldCeyrek:  "ceyrek-altin",
	domain.GoldYarim:   "yarim-altin",
	domain.GoldAta:     "ata-altin",
}

// GoldTypes scrapes gold coin and bullion prices. Cells are located by the
// (data-socket-key, data-socket-attr) attribute pair; an instrument is
// included only when both bid and ask cells are present and parse.
type GoldTypes struct {
	URL    string
	Client *httpx.Client
}

var _ application.MarketSource = (*GoldTypes)(nil)

func (s *GoldTypes) Fetch(ctx context.Context) (*domain.QuoteSet, error) {
	log := scraperLog("gold_types")
	qs := domain.NewQuoteSet()

	page, err := fetchPage(ctx, s.Client, s.URL)
	if err != nil {
		return qs, fmt.Errorf("gold types: %w", err)
	}

	for _, inst := range domain.GoldTypeInstruments {
		bidText, askText, ok := page.AttrBidAsk(goldTypeKeys[inst])
		if !ok {
			log.Warn("instrument not on page", instField(inst))
			continue
		}
		putPrice(qs, inst, bidText, askText, log)
	}
	return qs, nil
}
