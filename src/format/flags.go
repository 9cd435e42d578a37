package format

import "strings"

const globe = "🌐"

var currencyFlags = map[string]string{
	"USD": "🇺🇸",
	"EUR": "🇪🇺",
	"GBP": "🇬🇧",
	"AED": "🇦🇪",
	"TRY": "🇹🇷",
	"CAD": "🇨🇦",
	"CNY": "🇨🇳",
	"AUD": "🇦🇺",
	"JPY": "🇯🇵",
	"CHF": "🇨🇭",
	"KWD": "🇰🇼",
	"SAR": "🇸🇦",
	"INR": "🇮🇳",
	"PKR": "🇵🇰",
	"IQD": "🇮🇶",
	"QAR": "🇶🇦",
	"OMR": "🇴🇲",
	"BHD": "🇧🇭",
	"AFN": "🇦🇫",
	"MYR": "🇲🇾",
	"THB": "🇹🇭",
	"RUB": "🇷🇺",
	"AZN": "🇦🇿",
	"AMD": "🇦🇲",
	"GEL": "🇬🇪",
}

// CurrencyFlag returns the flag emoji for an ISO 4217 code, or a globe.
func CurrencyFlag(symbol string) string {
	if f, ok := currencyFlags[strings.ToUpper(strings.TrimSpace(symbol))]; ok {
		return f
	}
	return globe
}
