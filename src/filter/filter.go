// Package filter selects instruments from a snapshot by category and search term.
package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"market-viewer/src/models"
)

// Filter returns the items of category c whose search keys contain term,
// ignoring case. Gold items are matched on name only; currency and crypto
// items on name or symbol. A blank term returns the whole category. The
// result keeps the snapshot's order and is never nil.
func Filter(s *models.MSnapshot, c models.Category, term string) []models.Listing {
	items, ok := s.List(c)
	if !ok {
		return []models.Listing{}
	}
	if strings.TrimSpace(term) == "" {
		return items
	}

	// cases.Caser is stateful, so each call gets its own.
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]models.Listing, 0, len(items))
	for _, it := range items {
		if matches(fold, it.SearchKeys(), needle) {
			out = append(out, it)
		}
	}
	return out
}

// FilterByName is Filter with the category given by name, as consumers send it.
func FilterByName(s *models.MSnapshot, category, term string) []models.Listing {
	c, ok := models.ParseCategory(category)
	if !ok {
		return []models.Listing{}
	}
	return Filter(s, c, term)
}

func matches(fold cases.Caser, keys []string, needle string) bool {
	for _, k := range keys {
		if strings.Contains(fold.String(k), needle) {
			return true
		}
	}
	return false
}
