package htmlx

import (
	"errors"
	"strconv"
	"strings"
)

// ErrUnparseable marks price text that does not normalize to a number.
// Callers must exclude the instrument; zero is never returned as a price.
var ErrUnparseable = errors.New("htmlx: unparseable price text")

// ParsePrice converts continental-notation price text to a float:
// "." is the thousands separator, "," the decimal separator, so
// "87.342,50" parses to 87342.50. Input must already be trimmed of
// currency or percent symbols by the caller.
func ParsePrice(text string) (float64, error) {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return 0, ErrUnparseable
	}
	clean = strings.ReplaceAll(clean, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, ErrUnparseable
	}
	return v, nil
}
