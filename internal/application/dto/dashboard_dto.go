package dto

// DashboardResponse estadísticas agregadas del catálogo.
// AverageProductsPerCompany se entrega redondeado a un decimal.
type DashboardResponse struct {
	TotalCompanies            int     `json:"total_companies"`
	TotalProducts             int     `json:"total_products"`
	AverageProductsPerCompany float64 `json:"average_products_per_company"`
}
