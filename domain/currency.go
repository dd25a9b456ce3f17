package domain

// Currency describes a selectable display currency. The table below is static
// reference data shipped with the store; it is never persisted or mutated.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Locale string `json:"locale"`
	Symbol string `json:"symbol"`
}

var currencies = []Currency{
	{Code: "USD", Name: "US Dollar", Locale: "en-US", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Locale: "de-DE", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Locale: "en-GB", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Locale: "ja-JP", Symbol: "¥"},
	{Code: "MXN", Name: "Mexican Peso", Locale: "es-MX", Symbol: "$"},
	{Code: "CAD", Name: "Canadian Dollar", Locale: "en-CA", Symbol: "C$"},
	{Code: "AUD", Name: "Australian Dollar", Locale: "en-AU", Symbol: "A$"},
	{Code: "CNY", Name: "Chinese Yuan", Locale: "zh-CN", Symbol: "¥"},
	{Code: "INR", Name: "Indian Rupee", Locale: "en-IN", Symbol: "₹"},
	{Code: "KRW", Name: "South Korean Won", Locale: "ko-KR", Symbol: "₩"},
}

// Currencies returns the supported currency table in display order.
func Currencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

// CurrencyByCode looks up a currency descriptor by its ISO code.
func CurrencyByCode(code string) (Currency, bool) {
	for _, c := range currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}
