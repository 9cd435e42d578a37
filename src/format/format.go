// Package format turns raw quote fields into display values.
//
// Numbers are rendered through golang.org/x/text with an explicit locale, so
// the output never depends on the host's locale settings. The default locale
// is fa-IR, matching the provider's audience.
package format

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is used when no locale is configured. The nu extension
// selects extended Arabic-Indic (Persian) digits; plain fa-IR renders Latin
// digits in golang.org/x/text.
const DefaultLocale = "fa-IR-u-nu-arabext"

const maxFractionDigits = 3

// -----------------------------------------------------------------------------
// Direction
// -----------------------------------------------------------------------------

// Direction classifies a signed change.
type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "flat"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "up":
		*d = Up
	case "down":
		*d = Down
	case "flat":
		*d = Flat
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// ClassifyChange returns Up for positive values, Down for negative values and
// Flat for zero. NaN is Flat. Callers classify change_value and change_percent
// separately; the two results are not assumed to agree.
func ClassifyChange(v float64) Direction {
	switch {
	case v > 0:
		return Up
	case v < 0:
		return Down
	}
	return Flat
}

// -----------------------------------------------------------------------------
// Formatter
// -----------------------------------------------------------------------------

// Formatter renders numbers with grouped thousands for one locale.
type Formatter struct {
	tag language.Tag

	mu      sync.Mutex
	printer *message.Printer
}

// NewFormatter builds a Formatter for a BCP 47 locale such as "fa-IR" or "en-US".
func NewFormatter(locale string) (*Formatter, error) {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	tag = withNativeDigits(tag)
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}, nil
}

// withNativeDigits selects Persian digits for fa tags that do not name a
// numbering system, matching what browsers render for "fa-IR".
func withNativeDigits(tag language.Tag) language.Tag {
	if base, _ := tag.Base(); base.String() != "fa" || tag.TypeForKey("nu") != "" {
		return tag
	}
	if t, err := tag.SetTypeForKey("nu", "arabext"); err == nil {
		return t
	}
	return tag
}

var defaultFormatter = &Formatter{
	tag:     language.MustParse(DefaultLocale),
	printer: message.NewPrinter(language.MustParse(DefaultLocale)),
}

// Default returns the shared fa-IR formatter.
func Default() *Formatter {
	return defaultFormatter
}

// Locale returns the formatter's locale tag.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// FormatNumber renders v with grouped thousands and at most three fraction
// digits.
func (f *Formatter) FormatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFractionDigits)))
}

// FormatChange renders the magnitude of a change. The sign is conveyed by
// ClassifyChange.
func (f *Formatter) FormatChange(v float64) string {
	return f.FormatNumber(math.Abs(v))
}

// FormatPercent renders the magnitude of a percentage change followed by "%".
func (f *Formatter) FormatPercent(v float64) string {
	return f.FormatChange(v) + "%"
}

// -----------------------------------------------------------------------------

// FormatNumber formats v with the default fa-IR formatter.
func FormatNumber(v float64) string {
	return defaultFormatter.FormatNumber(v)
}
