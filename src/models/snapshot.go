package models

import "time"

// -----------------------------------------------------------------------------
// MSnapshot is one complete dataset returned by the provider. It is replaced
// wholesale on every successful fetch and never mutated afterwards.
// -----------------------------------------------------------------------------

type MSnapshot struct {
	Gold       []MGoldInstrument     `json:"gold"`
	Currency   []MCurrencyInstrument `json:"currency"`
	Crypto     []MCryptoInstrument   `json:"cryptocurrency"`
	CapturedAt time.Time             `json:"captured_at"`
}

// -----------------------------------------------------------------------------

// List returns the category's items as listings, preserving provider order.
// The second result is false when the snapshot has no list for the category.
func (s *MSnapshot) List(c Category) ([]Listing, bool) {
	if s == nil {
		return nil, false
	}
	switch c {
	case CategoryGold:
		return toListings(s.Gold), true
	case CategoryCurrency:
		return toListings(s.Currency), true
	case CategoryCrypto:
		return toListings(s.Crypto), true
	}
	return nil, false
}

// -----------------------------------------------------------------------------

// Counts returns the number of items per category.
func (s *MSnapshot) Counts() map[Category]int {
	if s == nil {
		return map[Category]int{}
	}
	return map[Category]int{
		CategoryGold:     len(s.Gold),
		CategoryCurrency: len(s.Currency),
		CategoryCrypto:   len(s.Crypto),
	}
}

// -----------------------------------------------------------------------------

// SourceAsOf is the provider's own as-of label, taken from the first gold item.
func (s *MSnapshot) SourceAsOf() string {
	if s == nil || len(s.Gold) == 0 {
		return ""
	}
	g := s.Gold[0]
	switch {
	case g.Date != "" && g.Time != "":
		return g.Date + " " + g.Time
	case g.Date != "":
		return g.Date
	}
	return g.Time
}

// -----------------------------------------------------------------------------

func toListings[T Listing](items []T) []Listing {
	out := make([]Listing, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
