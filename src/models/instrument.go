package models

import "strings"

// -----------------------------------------------------------------------------
// Category selects one instrument list inside a snapshot.
// -----------------------------------------------------------------------------

type Category string

const (
	CategoryGold     Category = "gold"
	CategoryCurrency Category = "currency"
	CategoryCrypto   Category = "cryptocurrency"
)

// Categories lists every category in the order the provider returns them.
var Categories = []Category{CategoryGold, CategoryCurrency, CategoryCrypto}

// -----------------------------------------------------------------------------

// ParseCategory resolves a consumer supplied name. "crypto" is accepted as an
// alias of "cryptocurrency". Unknown names return false.
func ParseCategory(name string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gold":
		return CategoryGold, true
	case "currency":
		return CategoryCurrency, true
	case "cryptocurrency", "crypto":
		return CategoryCrypto, true
	}
	return Category(name), false
}

// -----------------------------------------------------------------------------
// Instrument is the shape shared by every category.
// -----------------------------------------------------------------------------

type Instrument struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Unit          string  `json:"unit"`
	ChangeValue   float64 `json:"change_value"`
	ChangePercent float64 `json:"change_percent"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
}

// Listing is implemented by the per-category variants.
type Listing interface {
	Category() Category
	Base() Instrument
	// SearchKeys returns the fields a search term is matched against.
	SearchKeys() []string
}

// -----------------------------------------------------------------------------

// MGoldInstrument is a gold coin, bar or karat price. Searches match its name only.
type MGoldInstrument struct {
	Instrument
}

func (g MGoldInstrument) Category() Category   { return CategoryGold }
func (g MGoldInstrument) Base() Instrument     { return g.Instrument }
func (g MGoldInstrument) SearchKeys() []string { return []string{g.Name} }

// -----------------------------------------------------------------------------

// MCurrencyInstrument is a fiat exchange rate.
type MCurrencyInstrument struct {
	Instrument
}

func (c MCurrencyInstrument) Category() Category   { return CategoryCurrency }
func (c MCurrencyInstrument) Base() Instrument     { return c.Instrument }
func (c MCurrencyInstrument) SearchKeys() []string { return []string{c.Name, c.Symbol} }

// -----------------------------------------------------------------------------

// MCryptoInstrument is a cryptocurrency quote. MarketCap is zero when the
// provider omits it.
type MCryptoInstrument struct {
	Instrument
	MarketCap float64 `json:"market_cap"`
}

func (c MCryptoInstrument) Category() Category   { return CategoryCrypto }
func (c MCryptoInstrument) Base() Instrument     { return c.Instrument }
func (c MCryptoInstrument) SearchKeys() []string { return []string{c.Name, c.Symbol} }
