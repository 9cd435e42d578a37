package format

import "market-viewer/src/models"

// Present renders one listing for display. The direction of change_value and
// change_percent are classified independently.
func (f *Formatter) Present(l models.Listing) models.MInstrumentView {
	base := l.Base()
	v := models.MInstrumentView{
		Category:         l.Category(),
		Symbol:           base.Symbol,
		Name:             base.Name,
		Unit:             base.Unit,
		Price:            base.Price,
		PriceText:        f.FormatNumber(base.Price),
		ChangeValue:      base.ChangeValue,
		ChangeText:       f.FormatChange(base.ChangeValue),
		ChangeDirection:  ClassifyChange(base.ChangeValue).String(),
		ChangePercent:    base.ChangePercent,
		PercentText:      f.FormatPercent(base.ChangePercent),
		PercentDirection: ClassifyChange(base.ChangePercent).String(),
		Date:             base.Date,
		Time:             base.Time,
	}

	switch it := l.(type) {
	case models.MCurrencyInstrument:
		v.Flag = CurrencyFlag(it.Symbol)
	case models.MCryptoInstrument:
		if it.MarketCap > 0 {
			v.MarketCap = it.MarketCap
			v.MarketCapText = f.FormatNumber(it.MarketCap)
		}
	}
	return v
}

// PresentAll renders listings in order. The result is never nil.
func (f *Formatter) PresentAll(items []models.Listing) []models.MInstrumentView {
	out := make([]models.MInstrumentView, 0, len(items))
	for _, l := range items {
		out = append(out, f.Present(l))
	}
	return out
}
