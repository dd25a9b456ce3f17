// Package currencyfmt renders monetary amounts with locale-aware grouping and
// decimal conventions. The currency symbol is prefixed as-is; digit shaping,
// grouping and the decimal separator follow the locale tag.
package currencyfmt

import (
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	mu       sync.RWMutex
	printers = map[string]*message.Printer{}
)

// Format renders amount with the given symbol under the given BCP 47 locale
// tag, always showing two fraction digits. An unparsable locale falls back to
// en-US rather than failing: formatting is a display concern and must stay
// total.
func Format(amount float64, symbol, locale string) string {
	p := printerFor(locale)
	return p.Sprintf("%s%v", symbol, number.Decimal(amount,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

func printerFor(locale string) *message.Printer {
	mu.RLock()
	p, ok := printers[locale]
	mu.RUnlock()
	if ok {
		return p
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	p = message.NewPrinter(tag)

	mu.Lock()
	printers[locale] = p
	mu.Unlock()
	return p
}
