package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"finbot-service/internal/domain"
)

// Static render tables, fixed at process start.
var (
	sourceEmojis = map[domain.Instrument]string{
		domain.SourceKapalicarsi: "🏦",
		domain.SourceEnpara:      "🏪",
		domain.SourceZiraat:      "🏪",
	}
	currencyEmojis = map[domain.Instrument]string{
		domain.CurrencyUSD: "🇺🇸",
		domain.CurrencyEUR: "🇪🇺",
	}
	cryptoEmojis = map[domain.Instrument]string{
		domain.CryptoBTC: "🟠",
		domain.CryptoETH: "🔷",
	}
	indexNames = map[domain.Instrument]string{
		domain.IndexXU100: "BIST 100",
		domain.IndexXU030: "BIST 30",
	}
)

const helpText = "🤖 Finans Botu\n\n" +
	"/au - Altın fiyatları\n" +
	"/para - USD/EUR\n" +
	"/borsa - BIST 100/30\n" +
	"/kripto - BTC/ETH\n" +
	"/all - Tüm veriler\n" +
	"/duzenle - Portföy gir\n" +
	"/kasa - Portföy değeri"

const editUsage = "📝 Portföy Düzenleme\n\n" +
	"/duzenle enpara_gr, ziraat_gr, ata, ceyrek, borsa, kripto, diger\n\n" +
	"Örnek: /duzenle 30,35,2,3,50000,1000,25000"

// DirectionEmoji infers up/down from raw change text: known prefix symbols
// are stripped, then the leading sign decides. Text without a sign counts
// as up.
func DirectionEmoji(change string) string {
	trimmed := strings.TrimLeft(change, "%$ \t")
	if strings.HasPrefix(trimmed, "-") {
		return "🔴"
	}
	return "🟢"
}

// FormatGold renders the combined gold message: gram-gold source comparison
// followed by the gold type prices.
func FormatGold(sources, types *domain.QuoteSet) string {
	if sources.Empty() && types.Empty() {
		return "❌ Altın verisi alınamadı."
	}
	var b strings.Builder
	b.WriteString("📊 Altın Fiyatları\n")
	for _, inst := range domain.GoldSourceInstruments {
		q, ok := sources.Price(inst)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s %s\n", sourceEmojis[inst], inst)
		fmt.Fprintf(&b, "Alış: %.2f TL\n", q.Bid)
		fmt.Fprintf(&b, "Satış: %.2f TL\n", q.Ask)
		fmt.Fprintf(&b, "Makas: %%%.2f | %.2f TL\n", q.SpreadPct, q.Spread)
	}
	for _, inst := range domain.GoldTypeInstruments {
		q, ok := types.Price(inst)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n• %s\n", inst)
		fmt.Fprintf(&b, "  Alış: %s TL\n", fmtAmount(q.Bid, 2))
		fmt.Fprintf(&b, "  Satış: %s TL\n", fmtAmount(q.Ask, 2))
		fmt.Fprintf(&b, "  Makas: %%%.2f | %s TL\n", q.SpreadPct, fmtAmount(q.Spread, 2))
	}
	return b.String()
}

func FormatCurrency(qs *domain.QuoteSet) string {
	if qs.Empty() {
		return "❌ Döviz verisi alınamadı."
	}
	var b strings.Builder
	b.WriteString("💱 Döviz Kurları\n")
	for _, inst := range domain.CurrencyInstruments {
		q, ok := qs.Price(inst)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s %s\n", currencyEmojis[inst], inst)
		fmt.Fprintf(&b, "  Alış: %.4f TL\n", q.Bid)
		fmt.Fprintf(&b, "  Satış: %.4f TL\n", q.Ask)
	}
	return b.String()
}

func FormatStocks(qs *domain.QuoteSet) string {
	if qs.Empty() {
		return "❌ Borsa verisi alınamadı."
	}
	var b strings.Builder
	b.WriteString("📈 Borsa İstanbul\n")
	for _, inst := range domain.IndexInstruments {
		q, ok := qs.Change(inst)
		if !ok {
			continue
		}
		name := indexNames[inst]
		if name == "" {
			name = string(inst)
		}
		fmt.Fprintf(&b, "\n%s %s: %s\n", DirectionEmoji(q.ChangeText), name, q.ChangeText)
	}
	return b.String()
}

func FormatCrypto(qs *domain.QuoteSet) string {
	if qs.Empty() {
		return "❌ Kripto verisi alınamadı."
	}
	var b strings.Builder
	b.WriteString("₿ Kripto Paralar\n")
	for _, inst := range domain.CryptoInstruments {
		q, ok := qs.Change(inst)
		if !ok {
			continue
		}
		emoji := cryptoEmojis[inst]
		if emoji == "" {
			emoji = "🪙"
		}
		fmt.Fprintf(&b, "\n%s %s\n", emoji, inst)
		fmt.Fprintf(&b, "  Fiyat: %s\n", q.PriceText)
		fmt.Fprintf(&b, "  Değişim: %s\n", q.ChangeText)
	}
	return b.String()
}

func FormatSaved(h domain.Holdings) string {
	return "✅ Kaydedildi!\n" +
		fmt.Sprintf("Enpara: %gg | Ziraat: %gg\n", h.EnparaGrams, h.ZiraatGrams) +
		fmt.Sprintf("Ata: %g | Çeyrek: %g\n", h.AtaCount, h.CeyrekCount) +
		fmt.Sprintf("Borsa: %s₺ | Kripto: %s$ | Diğer: %s₺",
			fmtAmount(h.StocksTRY, 0), fmtAmount(h.CryptoUSD, 0), fmtAmount(h.OtherTRY, 0))
}

func FormatValuation(h domain.Holdings, v domain.Valuation) string {
	status := "Nisab miktarına ulaşılmadı."
	if v.AboveNisab {
		status = "Zekâta tâbiisiniz 😎"
	}
	return "💰 KASA\n\n" +
		fmt.Sprintf("Enpara (%gg): %s₺\n", h.EnparaGrams, fmtAmount(v.Enpara, 0)) +
		fmt.Sprintf("Ziraat (%gg): %s₺\n", h.ZiraatGrams, fmtAmount(v.Ziraat, 0)) +
		fmt.Sprintf("Ata (%.0f): %s₺\n", h.AtaCount, fmtAmount(v.Ata, 0)) +
		fmt.Sprintf("Çeyrek (%.0f): %s₺\n", h.CeyrekCount, fmtAmount(v.Ceyrek, 0)) +
		fmt.Sprintf("Borsa: %s₺\n", fmtAmount(v.Stocks, 0)) +
		fmt.Sprintf("Kripto (%.0f$): %s₺\n", h.CryptoUSD, fmtAmount(v.Crypto, 0)) +
		fmt.Sprintf("Diğer: %s₺\n\n", fmtAmount(v.Other, 0)) +
		fmt.Sprintf("🏆 TOPLAM: %s₺\n\n", fmtAmount(v.Total, 0)) +
		fmt.Sprintf("⚖️ Altın Karşılığı (gr) : %sg\n\n", fmtAmount(v.GoldGrams, 2)) +
		status
}

// fmtAmount renders v with a fixed number of decimals and comma-grouped
// thousands, e.g. 50000 -> "50,000".
func fmtAmount(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
