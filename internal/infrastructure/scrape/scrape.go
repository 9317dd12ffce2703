// Package scrape extracts quote sets from doviz.com pages. Each scraper
// composes the page fetcher, the markup locator and the numeric parser into
// a single Fetch call. Per-instrument failures are logged and skipped; a
// failed page fetch yields an empty set plus an error.
package scrape

import (
	"context"
	"fmt"

	"finbot-service/internal/domain"
	"finbot-service/internal/infrastructure/htmlx"
	"finbot-service/internal/infrastructure/httpx"
	"finbot-service/internal/infrastructure/logx"

	"go.uber.org/zap"
)

func fetchPage(ctx context.Context, client *httpx.Client, url string) (*htmlx.Page, error) {
	body, err := client.GetPage(ctx, url)
	if err != nil {
		return nil, err
	}
	page, err := htmlx.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	return page, nil
}

// putPrice parses both sides of a quote and inserts it, or skips the
// instrument when either side is malformed or the bid is not positive.
func putPrice(qs *domain.QuoteSet, inst domain.Instrument, bidText, askText string, log *zap.Logger) {
	bid, err := htmlx.ParsePrice(bidText)
	if err != nil {
		log.Warn("skip instrument: bad bid", zap.String("instrument", string(inst)), zap.String("text", bidText))
		return
	}
	ask, err := htmlx.ParsePrice(askText)
	if err != nil {
		log.Warn("skip instrument: bad ask", zap.String("instrument", string(inst)), zap.String("text", askText))
		return
	}
	q, ok := domain.NewPriceQuote(inst, bid, ask)
	if !ok {
		log.Warn("skip instrument: non-positive bid", zap.String("instrument", string(inst)), zap.Float64("bid", bid))
		return
	}
	qs.PutPrice(q)
}

func scraperLog(name string) *zap.Logger {
	return logx.L().With(zap.String("scraper", name))
}

func instField(inst domain.Instrument) zap.Field {
	return zap.String("instrument", string(inst))
}
