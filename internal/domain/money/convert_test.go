package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseCurrency
// ──────────────────────────────────────────────────────────────────────────────

func TestParseCurrency_MonedasValidas(t *testing.T) {
	for _, code := range []string{"usd", "eur", "cop"} {
		c, err := money.ParseCurrency(code)
		require.NoError(t, err, "la moneda %q debe ser válida", code)
		assert.Equal(t, money.Currency(code), c)
	}
}

func TestParseCurrency_MonedaDesconocida(t *testing.T) {
	_, err := money.ParseCurrency("gbp")
	assert.Error(t, err, "una moneda fuera de la tabla debe rechazarse")

	_, err = money.ParseCurrency("USD")
	assert.Error(t, err, "los códigos son en minúscula")
}

// ──────────────────────────────────────────────────────────────────────────────
// Derive
// ──────────────────────────────────────────────────────────────────────────────

// Editar 100 USD debe derivar 92.00 EUR y 400000.00 COP con la tabla fija.
func TestDerive_DesdeUSD(t *testing.T) {
	price, err := money.Derive(money.USD, decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, price.USD.Equal(decimal.NewFromInt(100)),
		"el monto activo se conserva tal cual")
	assert.True(t, price.EUR.Equal(decimal.RequireFromString("92.00")),
		"100 USD * 0.92 = 92.00 EUR, se obtuvo %s", price.EUR)
	assert.True(t, price.COP.Equal(decimal.RequireFromString("400000.00")),
		"100 USD * 4000 = 400000.00 COP, se obtuvo %s", price.COP)
}

func TestDerive_DesdeEUR(t *testing.T) {
	price, err := money.Derive(money.EUR, decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, price.EUR.Equal(decimal.NewFromInt(100)))
	assert.True(t, price.USD.Equal(decimal.RequireFromString("109.00")),
		"100 EUR * 1.09 = 109.00 USD, se obtuvo %s", price.USD)
	assert.True(t, price.COP.Equal(decimal.RequireFromString("434800.00")),
		"100 EUR * 4348 = 434800.00 COP, se obtuvo %s", price.COP)
}

func TestDerive_DesdeCOP_RedondeaADosDecimales(t *testing.T) {
	price, err := money.Derive(money.COP, decimal.NewFromInt(10000))
	require.NoError(t, err)

	assert.True(t, price.COP.Equal(decimal.NewFromInt(10000)))
	assert.True(t, price.USD.Equal(decimal.RequireFromString("2.50")),
		"10000 COP * 0.00025 = 2.50 USD, se obtuvo %s", price.USD)
	assert.True(t, price.EUR.Equal(decimal.RequireFromString("2.30")),
		"10000 COP * 0.00023 = 2.30 EUR, se obtuvo %s", price.EUR)
}

// La tabla es asimétrica a propósito: ida y vuelta no recupera el monto
// original. Este test fija ese comportamiento para que un cambio sea
// deliberado y no accidental.
func TestDerive_IdaYVueltaNoEsIdentidad(t *testing.T) {
	ida, err := money.Derive(money.USD, decimal.NewFromInt(100))
	require.NoError(t, err)

	vuelta, err := money.Derive(money.EUR, ida.EUR)
	require.NoError(t, err)

	// 100 USD -> 92 EUR -> 100.28 USD
	assert.True(t, vuelta.USD.Equal(decimal.RequireFromString("100.28")),
		"92 EUR * 1.09 = 100.28 USD, se obtuvo %s", vuelta.USD)
	assert.False(t, vuelta.USD.Equal(decimal.NewFromInt(100)),
		"la ida y vuelta no debe ser identidad con la tabla fija")
}

func TestRate_ParesConocidos(t *testing.T) {
	r, ok := money.Rate(money.USD, money.COP)
	require.True(t, ok)
	assert.True(t, r.Equal(decimal.NewFromInt(4000)))

	_, ok = money.Rate(money.USD, money.USD)
	assert.False(t, ok, "no hay tasa de una moneda a sí misma")
}
