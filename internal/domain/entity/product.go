package entity

import "github.com/shopspring/decimal"

// Price precio de un producto en las tres monedas soportadas.
// Los tres montos se mantienen sincronizados con la tabla fija de conversión
// (ver internal/domain/money); no hay histórico de tasas.
type Price struct {
	USD decimal.Decimal
	EUR decimal.Decimal
	COP decimal.Decimal
}

// Product representa un producto del catálogo.
// CompanyName es una copia desnormalizada del nombre de la empresa dueña:
// se adjunta al escribir y se propaga cuando la empresa cambia de nombre.
// Una referencia colgante (empresa borrada por fuera) se tolera y se muestra
// como "Sin Empresa".
type Product struct {
	ID              string // identificador opaco generado (uuid)
	Name            string
	Characteristics string
	Price           Price
	CompanyNIT      string // FK al NIT de la empresa dueña
	CompanyName     string // desnormalizado
}
