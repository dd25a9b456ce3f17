package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyByCode(t *testing.T) {
	eur, ok := CurrencyByCode("EUR")
	require.True(t, ok)
	assert.Equal(t, "Euro", eur.Name)
	assert.Equal(t, "de-DE", eur.Locale)
	assert.Equal(t, "€", eur.Symbol)

	_, ok = CurrencyByCode("XYZ")
	assert.False(t, ok)
}

func TestCurrencies_TableIsComplete(t *testing.T) {
	table := Currencies()
	require.Len(t, table, 10)

	seen := map[string]bool{}
	for _, c := range table {
		assert.NotEmpty(t, c.Code)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Locale)
		assert.NotEmpty(t, c.Symbol)
		assert.False(t, seen[c.Code], "duplicate code %s", c.Code)
		seen[c.Code] = true
	}

	for _, code := range []string{"USD", "EUR", "GBP", "JPY", "MXN", "CAD", "AUD", "CNY", "INR", "KRW"} {
		assert.True(t, seen[code], "missing %s", code)
	}
}

func TestCurrencies_ReturnsCopy(t *testing.T) {
	table := Currencies()
	table[0].Code = "ZZZ"

	_, ok := CurrencyByCode("ZZZ")
	assert.False(t, ok)
}
