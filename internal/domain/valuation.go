package domain

// NisabGrams is the zakat eligibility threshold in grams of pure gold.
const NisabGrams = 80.18

// Valuation is a portfolio priced against fresh quotes. Category values are
// quantity times the matching bid; a missing bid degrades that category to
// zero so partial market data still yields a best-effort total.
type Valuation struct {
	Enpara     float64 `json:"enpara"`
	Ziraat     float64 `json:"ziraat"`
	Ata        float64 `json:"ata"`
	Ceyrek     float64 `json:"ceyrek"`
	Stocks     float64 `json:"borsa"`
	Crypto     float64 `json:"kripto"`
	Other      float64 `json:"diger"`
	Total      float64 `json:"total"`
	GoldGrams  float64 `json:"gold_grams"`
	AboveNisab bool    `json:"above_nisab"`
}

// Valuate prices h against gold-source, gold-type and currency quote sets.
// GoldGrams is the total expressed in Gram Has Altın; it stays 0 when that
// bid is unavailable.
func Valuate(h Holdings, goldSources, goldTypes, currency *QuoteSet) Valuation {
	v := Valuation{
		Enpara: h.EnparaGrams * goldSources.Bid(SourceEnpara),
		Ziraat: h.ZiraatGrams * goldSources.Bid(SourceZiraat),
		Ata:    h.AtaCount * goldTypes.Bid(GoldAta),
		Ceyrek: h.CeyrekCount * goldTypes.Bid(GoldCeyrek),
		Stocks: h.StocksTRY,
		Crypto: h.CryptoUSD * currency.Bid(CurrencyUSD),
		Other:  h.OtherTRY,
	}
	v.Total = v.Enpara + v.Ziraat + v.Ata + v.Ceyrek + v.Stocks + v.Crypto + v.Other
	if gramHas := goldTypes.Bid(GoldGramHas); gramHas > 0 {
		v.GoldGrams = v.Total / gramHas
	}
	v.AboveNisab = v.GoldGrams > NisabGrams
	return v
}
