package domain

// Instrument identifies a quoted item by its canonical name or code.
type Instrument string

// PriceQuote is a bid/ask pair with derived spread fields.
type PriceQuote struct {
	Instrument Instrument `json:"instrument"`
	Bid        float64    `json:"bid"`
	Ask        float64    `json:"ask"`
	Spread     float64    `json:"spread"`
	SpreadPct  float64    `json:"spread_pct"`
}

// NewPriceQuote computes the derived spread fields. It reports false when
// bid is not positive; such a quote must be treated as unavailable.
func NewPriceQuote(inst Instrument, bid, ask float64) (PriceQuote, bool) {
	if bid <= 0 {
		return PriceQuote{}, false
	}
	spread := ask - bid
	return PriceQuote{
		Instrument: inst,
		Bid:        bid,
		Ask:        ask,
		Spread:     spread,
		SpreadPct:  spread / bid * 100,
	}, true
}

// ChangeQuote carries raw scraped text for instruments where only the daily
// change (and optionally a symbol-bearing price) is published. The text keeps
// its sign and unit as scraped; direction is inferred at render time.
type ChangeQuote struct {
	Instrument Instrument `json:"instrument"`
	PriceText  string     `json:"price_text,omitempty"`
	ChangeText string     `json:"change_text"`
}
