package restapi

import (
	"net/http"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo repositorio de empresas sobre la API CRUD remota.
type CompanyRepo struct {
	client *Client
}

// NewCompanyRepository construye el adaptador remoto de empresas.
func NewCompanyRepository(client *Client) *CompanyRepo {
	return &CompanyRepo{client: client}
}

// List descarga la colección completa de empresas.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	var payload []companyPayload
	if err := r.client.do(http.MethodGet, "/getCompanies", nil, &payload); err != nil {
		return nil, err
	}
	list := make([]*entity.Company, 0, len(payload))
	for _, p := range payload {
		list = append(list, &entity.Company{NIT: p.NIT, Name: p.Name, Address: p.Address, Phone: p.Phone})
	}
	return list, nil
}

// GetByNIT busca en el listado remoto: la API no expone un GET individual.
func (r *CompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, c := range list {
		if c.NIT == nit {
			return c, nil
		}
	}
	return nil, nil
}

// Create registra una empresa nueva.
func (r *CompanyRepo) Create(company *entity.Company) error {
	body := companyPayload{NIT: company.NIT, Name: company.Name, Address: company.Address, Phone: company.Phone}
	return r.client.do(http.MethodPost, "/postCompanies", body, nil)
}

// Update actualiza una empresa por NIT.
func (r *CompanyRepo) Update(company *entity.Company) error {
	body := companyPayload{NIT: company.NIT, Name: company.Name, Address: company.Address, Phone: company.Phone}
	return r.client.do(http.MethodPut, "/putCompanies/"+company.NIT, body, nil)
}

// Delete elimina una empresa por NIT.
func (r *CompanyRepo) Delete(nit string) error {
	return r.client.do(http.MethodDelete, "/deleteCompanies/"+nit, nil, nil)
}
