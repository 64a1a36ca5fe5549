// Package money implementa la conversión de precios entre las tres monedas
// soportadas usando una tabla fija de multiplicadores.
//
// La tabla NO es consistente en viaje redondo: convertir USD→EUR→USD no
// reproduce el monto original (0.92 vs 1.09). Es una aproximación documentada
// del sistema, no un defecto a corregir en silencio.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// Currency código de moneda soportado.
type Currency string

const (
	USD Currency = "usd"
	EUR Currency = "eur"
	COP Currency = "cop"
)

// rates multiplicadores fijos moneda origen → moneda destino.
var rates = map[Currency]map[Currency]decimal.Decimal{
	USD: {
		EUR: decimal.NewFromFloat(0.92),
		COP: decimal.NewFromInt(4000),
	},
	EUR: {
		USD: decimal.NewFromFloat(1.09),
		COP: decimal.NewFromInt(4348),
	},
	COP: {
		USD: decimal.NewFromFloat(0.00025),
		EUR: decimal.NewFromFloat(0.00023),
	},
}

// ParseCurrency valida un código de moneda ("usd", "eur", "cop").
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case USD, EUR, COP:
		return Currency(s), nil
	}
	return "", fmt.Errorf("money: moneda desconocida %q", s)
}

// Rate devuelve el multiplicador fijo de from a to.
func Rate(from, to Currency) (decimal.Decimal, bool) {
	r, ok := rates[from][to]
	return r, ok
}

// Derive recalcula las otras dos monedas a partir del monto editado en la
// moneda activa. El monto activo se conserva tal cual; los derivados se
// redondean a dos decimales. Cambiar de moneda activa no recalcula nada por
// sí solo: solo cambia a qué campo escribe la próxima edición.
func Derive(active Currency, amount decimal.Decimal) (entity.Price, error) {
	table, ok := rates[active]
	if !ok {
		return entity.Price{}, fmt.Errorf("money: moneda desconocida %q", active)
	}

	var p entity.Price
	set := func(c Currency, v decimal.Decimal) {
		switch c {
		case USD:
			p.USD = v
		case EUR:
			p.EUR = v
		case COP:
			p.COP = v
		}
	}

	set(active, amount)
	for to, rate := range table {
		set(to, amount.Mul(rate).Round(2))
	}
	return p, nil
}
