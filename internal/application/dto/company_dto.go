package dto

// CreateCompanyRequest entrada para registrar una empresa.
type CreateCompanyRequest struct {
	NIT     string `json:"nit" validate:"required,min=1,max=20"`
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (el NIT va en la ruta).
type UpdateCompanyRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	NIT     string `json:"nit"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// CompanyListResponse lista de empresas con indicador de frescura.
// Stale es true cuando la última recarga contra el backend falló y se
// está sirviendo la colección retenida en memoria.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Stale bool              `json:"stale,omitempty"`
}

// DirectoryEntry empresa del directorio con su conteo de productos.
type DirectoryEntry struct {
	CompanyResponse
	ProductCount int `json:"product_count"`
}

// DirectoryResponse directorio de empresas (vista de solo lectura).
type DirectoryResponse struct {
	Items []DirectoryEntry `json:"items"`
	Stale bool             `json:"stale,omitempty"`
}
