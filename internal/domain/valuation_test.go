package domain_test

import (
	"testing"

	"finbot-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func priceSet(quotes map[domain.Instrument]float64, order []domain.Instrument) *domain.QuoteSet {
	qs := domain.NewQuoteSet()
	for _, inst := range order {
		bid, ok := quotes[inst]
		if !ok {
			continue
		}
		q, ok := domain.NewPriceQuote(inst, bid, bid*1.01)
		if !ok {
			continue
		}
		qs.PutPrice(q)
	}
	return qs
}

func TestValuate(t *testing.T) {
	h := domain.Holdings{
		EnparaGrams: 30,
		ZiraatGrams: 35,
		AtaCount:    2,
		CeyrekCount: 3,
		StocksTRY:   50000,
		CryptoUSD:   1000,
		OtherTRY:    25000,
	}
	goldSources := priceSet(map[domain.Instrument]float64{
		domain.SourceEnpara: 2900,
		domain.SourceZiraat: 2895,
	}, domain.GoldSourceInstruments)
	goldTypes := priceSet(map[domain.Instrument]float64{
		domain.GoldGramHas: 2850,
		domain.GoldCeyrek:  11000,
		domain.GoldAta:     19500,
	}, domain.GoldTypeInstruments)
	currency := priceSet(map[domain.Instrument]float64{
		domain.CurrencyUSD: 34.2,
	}, domain.CurrencyInstruments)

	v := domain.Valuate(h, goldSources, goldTypes, currency)

	require.InDelta(t, 30*2900.0, v.Enpara, 1e-9)
	require.InDelta(t, 35*2895.0, v.Ziraat, 1e-9)
	require.InDelta(t, 2*19500.0, v.Ata, 1e-9)
	require.InDelta(t, 3*11000.0, v.Ceyrek, 1e-9)
	require.InDelta(t, 50000.0, v.Stocks, 1e-9)
	require.InDelta(t, 1000*34.2, v.Crypto, 1e-9)
	require.InDelta(t, 25000.0, v.Other, 1e-9)

	total := 30*2900.0 + 35*2895.0 + 2*19500.0 + 3*11000.0 + 50000.0 + 1000*34.2 + 25000.0
	require.InDelta(t, total, v.Total, 1e-6)
	require.InDelta(t, total/2850.0, v.GoldGrams, 1e-6)
	require.True(t, v.AboveNisab)
}

func TestValuate_MissingGramHas(t *testing.T) {
	h := domain.Holdings{EnparaGrams: 10, OtherTRY: 1000}
	goldSources := priceSet(map[domain.Instrument]float64{domain.SourceEnpara: 2900}, domain.GoldSourceInstruments)

	v := domain.Valuate(h, goldSources, domain.NewQuoteSet(), domain.NewQuoteSet())

	// No Gram Has bid: the gold equivalent stays 0 instead of dividing by zero.
	require.InDelta(t, 10*2900.0+1000, v.Total, 1e-9)
	require.Zero(t, v.GoldGrams)
	require.False(t, v.AboveNisab)
}

func TestValuate_MissingPricesDegradeToZero(t *testing.T) {
	h := domain.Holdings{
		EnparaGrams: 30,
		ZiraatGrams: 35,
		AtaCount:    2,
		CeyrekCount: 3,
		StocksTRY:   50000,
		CryptoUSD:   1000,
		OtherTRY:    25000,
	}

	v := domain.Valuate(h, domain.NewQuoteSet(), domain.NewQuoteSet(), domain.NewQuoteSet())

	// Only the cash categories survive with no market data at all.
	require.Zero(t, v.Enpara)
	require.Zero(t, v.Ziraat)
	require.Zero(t, v.Ata)
	require.Zero(t, v.Ceyrek)
	require.Zero(t, v.Crypto)
	require.InDelta(t, 75000.0, v.Total, 1e-9)
}

func TestValuate_BelowNisab(t *testing.T) {
	h := domain.Holdings{EnparaGrams: 1}
	goldSources := priceSet(map[domain.Instrument]float64{domain.SourceEnpara: 2900}, domain.GoldSourceInstruments)
	goldTypes := priceSet(map[domain.Instrument]float64{domain.GoldGramHas: 2850}, domain.GoldTypeInstruments)

	v := domain.Valuate(h, goldSources, goldTypes, domain.NewQuoteSet())
	require.Less(t, v.GoldGrams, domain.NisabGrams)
	require.False(t, v.AboveNisab)
}
