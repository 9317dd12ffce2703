package domain

// Canonical instruments per market. The slice order below is the rendering
// and QuoteSet insertion order.

const (
	SourceKapalicarsi Instrument = "Kapalıçarşı"
	SourceEnpara      Instrument = "Enpara"
	SourceZiraat      Instrument = "Ziraat Bankası"

	GoldGramHas Instrument = "Gram Has Altın"
	GoldCeyrek  Instrument = "Çeyrek Altın"
	GoldYarim   Instrument = "Yarım Altın"
	GoldAta     Instrument = "Ata Altın"

	CurrencyUSD Instrument = "USD"
	CurrencyEUR Instrument = "EUR"

	IndexXU100 Instrument = "XU100"
	IndexXU030 Instrument = "XU030"

	CryptoBTC Instrument = "BTC"
	CryptoETH Instrument = "ETH"
)

var (
	GoldSourceInstruments = []Instrument{SourceKapalicarsi, SourceEnpara, SourceZiraat}
	GoldTypeInstruments   = []Instrument{GoldGramHas, GoldCeyrek, GoldYarim, GoldAta}
	CurrencyInstruments   = []Instrument{CurrencyUSD, CurrencyEUR}
	IndexInstruments      = []Instrument{IndexXU100, IndexXU030}
	CryptoInstruments     = []Instrument{CryptoBTC, CryptoETH}
)
