package dto

import "github.com/shopspring/decimal"

// PriceDTO montos paralelos en las tres monedas.
type PriceDTO struct {
	USD decimal.Decimal `json:"usd"`
	EUR decimal.Decimal `json:"eur"`
	COP decimal.Decimal `json:"cop"`
}

// CreateProductRequest entrada para crear un producto.
// Currency indica la moneda activa del formulario: si viene informada, los
// otros dos montos se derivan con la tabla fija a partir del monto de esa
// moneda. Vacía, el precio se toma tal cual llega.
type CreateProductRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Characteristics string   `json:"characteristics" validate:"required"`
	Price           PriceDTO `json:"price"`
	Currency        string   `json:"currency" validate:"omitempty,oneof=usd eur cop"`
	CompanyNIT      string   `json:"companyNit" validate:"required"`
}

// UpdateProductRequest entrada para actualizar un producto (el ID va en la ruta).
type UpdateProductRequest struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Characteristics string   `json:"characteristics" validate:"required"`
	Price           PriceDTO `json:"price"`
	Currency        string   `json:"currency" validate:"omitempty,oneof=usd eur cop"`
	CompanyNIT      string   `json:"companyNit" validate:"required"`
}

// ProductResponse salida de un producto, con el nombre de empresa desnormalizado.
type ProductResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Characteristics string   `json:"characteristics"`
	Price           PriceDTO `json:"price"`
	CompanyNIT      string   `json:"companyNit"`
	CompanyName     string   `json:"companyName"`
}

// ProductListResponse lista de productos con indicador de frescura.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Stale bool              `json:"stale,omitempty"`
}

// PricePreviewRequest entrada para derivar los montos no editados del formulario.
type PricePreviewRequest struct {
	Currency string          `json:"currency" validate:"required,oneof=usd eur cop"`
	Amount   decimal.Decimal `json:"amount"`
}
