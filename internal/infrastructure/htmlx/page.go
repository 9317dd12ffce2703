package htmlx

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Page wraps a parsed HTML document with the lookup strategies the doviz.com
// layouts require. Every lookup reports ok=false on any structural mismatch
// instead of erroring; a page redesign degrades extraction to empty results.
type Page struct {
	doc *goquery.Document
}

func Parse(body []byte) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("htmlx: parse document: %w", err)
	}
	return &Page{doc: doc}, nil
}

// RowBidAsk scans table rows for the first one whose full text contains name
// and returns the raw text of its second and third cells. Matching rows with
// fewer than four cells are skipped; first usable match wins.
func (p *Page) RowBidAsk(name string) (bid, ask string, ok bool) {
	p.doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if !strings.Contains(row.Text(), name) {
			return true
		}
		cells := row.Find("td")
		if cells.Length() < 4 {
			return true
		}
		bid = strings.TrimSpace(cells.Eq(1).Text())
		ask = strings.TrimSpace(cells.Eq(2).Text())
		ok = true
		return false
	})
	return bid, ask, ok
}

// AttrBidAsk returns the text of the cells carrying the given
// data-socket-key with data-socket-attr bid and ask. Both cells must exist.
func (p *Page) AttrBidAsk(key string) (bid, ask string, ok bool) {
	b := p.doc.Find(fmt.Sprintf(`td[data-socket-key=%q][data-socket-attr="bid"]`, key)).First()
	a := p.doc.Find(fmt.Sprintf(`td[data-socket-key=%q][data-socket-attr="ask"]`, key)).First()
	if b.Length() == 0 || a.Length() == 0 {
		return "", "", false
	}
	return strings.TrimSpace(b.Text()), strings.TrimSpace(a.Text()), true
}

// ContainerChange returns the change text of the container keyed by code.
func (p *Page) ContainerChange(code string) (string, bool) {
	li := p.doc.Find(fmt.Sprintf(`li[data-container=%q]`, code)).First()
	if li.Length() == 0 {
		return "", false
	}
	change := li.Find("span.change").First()
	if change.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(change.Text()), true
}

// CryptoRow scans table rows for the one whose currency-details block names
// the code, returning the raw USD price (second cell) and daily change
// (sixth cell) text. Neither value is numerically coerced.
func (p *Page) CryptoRow(code string) (price, change string, ok bool) {
	p.doc.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		if row.Find("a").Length() == 0 {
			return true
		}
		details := row.Find("div.currency-details").First()
		if details.Length() == 0 {
			return true
		}
		if strings.TrimSpace(details.Find("div").First().Text()) != code {
			return true
		}
		cells := row.Find("td")
		if cells.Length() < 6 {
			return true
		}
		price = strings.TrimSpace(cells.Eq(1).Text())
		change = strings.TrimSpace(cells.Eq(5).Text())
		ok = true
		return false
	})
	return price, change, ok
}
