package scrape_test

import (
	"context"
	"testing"

	"finbot-service/internal/domain"
	"finbot-service/internal/infrastructure/scrape"

	"github.com/stretchr/testify/require"
)

const cryptoHTML = `
<table>
  <tr>
    <td><a href="/bitcoin"><div class="currency-details"><div>BTC</div><div>Bitcoin</div></div></a></td>
    <td>$87.342</td><td>₺3.001.245</td><td>2,1T</td><td>45B</td><td>%-0,80</td>
  </tr>
  <tr>
    <td><a href="/ethereum"><div class="currency-details"><div>ETH</div><div>Ethereum</div></div></a></td>
    <td>$3.012</td><td>₺103.500</td><td>360B</td><td>18B</td><td>%2,15</td>
  </tr>
</table>`

func TestCrypto_Fetch(t *testing.T) {
	s := &scrape.Crypto{URL: "http://example.com/kripto-paralar", Client: pageClient(cryptoHTML, 200)}
	qs, err := s.Fetch(context.Background())
	require.NoError(t, err)

	require.Equal(t, []domain.Instrument{domain.CryptoBTC, domain.CryptoETH}, qs.Instruments())

	q, ok := qs.Change(domain.CryptoBTC)
	require.True(t, ok)
	require.Equal(t, "$87.342", q.PriceText)
	require.Equal(t, "%-0,80", q.ChangeText)

	q, ok = qs.Change(domain.CryptoETH)
	require.True(t, ok)
	require.Equal(t, "$3.012", q.PriceText)
	require.Equal(t, "%2,15", q.ChangeText)
}

func TestCrypto_MissingInstrument(t *testing.T) {
	// Only ETH is on the page; BTC is omitted without error.
	page := `<table><tr>
    <td><a href="/ethereum"><div class="currency-details"><div>ETH</div></div></a></td>
    <td>$3.012</td><td>x</td><td>x</td><td>x</td><td>%2,15</td>
  </tr></table>`
	s := &scrape.Crypto{URL: "http://example.com/kripto-paralar", Client: pageClient(page, 200)}
	qs, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.Instrument{domain.CryptoETH}, qs.Instruments())
}

func TestCrypto_FetchFailure(t *testing.T) {
	s := &scrape.Crypto{URL: "http://example.com/kripto-paralar", Client: downClient()}
	qs, err := s.Fetch(context.Background())
	require.Error(t, err)
	require.True(t, qs.Empty())
}
