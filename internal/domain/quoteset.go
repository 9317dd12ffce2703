package domain

// QuoteSet maps instruments to their quotes. Insertion order follows the
// canonical catalog order of the producing extractor, not scrape order, and
// only instruments that parsed completely are present. Partial sets are a
// normal outcome.
type QuoteSet struct {
	order   []Instrument
	prices  map[Instrument]PriceQuote
	changes map[Instrument]ChangeQuote
}

func NewQuoteSet() *QuoteSet {
	return &QuoteSet{
		prices:  make(map[Instrument]PriceQuote),
		changes: make(map[Instrument]ChangeQuote),
	}
}

func (s *QuoteSet) PutPrice(q PriceQuote) {
	if _, dup := s.prices[q.Instrument]; !dup {
		s.order = append(s.order, q.Instrument)
	}
	s.prices[q.Instrument] = q
}

func (s *QuoteSet) PutChange(q ChangeQuote) {
	if _, dup := s.changes[q.Instrument]; !dup {
		s.order = append(s.order, q.Instrument)
	}
	s.changes[q.Instrument] = q
}

func (s *QuoteSet) Price(inst Instrument) (PriceQuote, bool) {
	q, ok := s.prices[inst]
	return q, ok
}

func (s *QuoteSet) Change(inst Instrument) (ChangeQuote, bool) {
	q, ok := s.changes[inst]
	return q, ok
}

// Bid returns the instrument's bid price, or 0 when the instrument is
// absent. Valuation uses this to degrade missing prices to a zero
// contribution instead of failing.
func (s *QuoteSet) Bid(inst Instrument) float64 {
	if q, ok := s.prices[inst]; ok {
		return q.Bid
	}
	return 0
}

// Instruments returns the keys in insertion order.
func (s *QuoteSet) Instruments() []Instrument {
	out := make([]Instrument, len(s.order))
	copy(out, s.order)
	return out
}

func (s *QuoteSet) Len() int { return len(s.order) }

func (s *QuoteSet) Empty() bool { return s == nil || len(s.order) == 0 }
