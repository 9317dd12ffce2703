package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// HoldingsFieldCount is the fixed arity of a portfolio edit.
const HoldingsFieldCount = 7

// Holdings is a user's portfolio record. An edit overwrites the whole
// record; there is no partial update. Gram categories are weights, count
// categories are coin counts, the rest are cash amounts.
type Holdings struct {
	EnparaGrams float64 `json:"enpara_gr"`
	ZiraatGrams float64 `json:"ziraat_gr"`
	AtaCount    float64 `json:"ata"`
	CeyrekCount float64 `json:"ceyrek"`
	StocksTRY   float64 `json:"borsa"`
	CryptoUSD   float64 `json:"kripto"`
	OtherTRY    float64 `json:"diger"`
}

// ParseHoldings parses the comma-separated edit payload in its fixed field
// order: enpara_gr, ziraat_gr, ata, ceyrek, borsa, kripto, diger.
func ParseHoldings(raw string) (Holdings, error) {
	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != HoldingsFieldCount {
		return Holdings{}, fmt.Errorf("expected %d fields, got %d", HoldingsFieldCount, len(parts))
	}
	vals := make([]float64, HoldingsFieldCount)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Holdings{}, fmt.Errorf("field %d is not numeric: %q", i+1, strings.TrimSpace(p))
		}
		vals[i] = v
	}
	return Holdings{
		EnparaGrams: vals[0],
		ZiraatGrams: vals[1],
		AtaCount:    vals[2],
		CeyrekCount: vals[3],
		StocksTRY:   vals[4],
		CryptoUSD:   vals[5],
		OtherTRY:    vals[6],
	}, nil
}
