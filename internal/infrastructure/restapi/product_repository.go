package restapi

import (
	"net/http"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos sobre la API CRUD remota.
type ProductRepo struct {
	client *Client
}

// NewProductRepository construye el adaptador remoto de productos.
func NewProductRepository(client *Client) *ProductRepo {
	return &ProductRepo{client: client}
}

// List descarga la colección completa de productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var payload []productPayload
	if err := r.client.do(http.MethodGet, "/getProducts", nil, &payload); err != nil {
		return nil, err
	}
	list := make([]*entity.Product, 0, len(payload))
	for _, p := range payload {
		list = append(list, toEntity(p))
	}
	return list, nil
}

// GetByID busca en el listado remoto: la API no expone un GET individual.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	list, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

// Create registra un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	return r.client.do(http.MethodPost, "/postProducts", toPayload(product), nil)
}

// Update actualiza un producto por ID.
func (r *ProductRepo) Update(product *entity.Product) error {
	return r.client.do(http.MethodPut, "/putProducts/"+product.ID, toPayload(product), nil)
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	return r.client.do(http.MethodDelete, "/deleteProducts/"+id, nil, nil)
}

func toPayload(p *entity.Product) productPayload {
	return productPayload{
		ID:              p.ID,
		Name:            p.Name,
		Characteristics: p.Characteristics,
		Price:           pricePayload{USD: p.Price.USD, EUR: p.Price.EUR, COP: p.Price.COP},
		CompanyNIT:      p.CompanyNIT,
		CompanyName:     p.CompanyName,
	}
}

func toEntity(p productPayload) *entity.Product {
	return &entity.Product{
		ID:              p.ID,
		Name:            p.Name,
		Characteristics: p.Characteristics,
		Price:           entity.Price{USD: p.Price.USD, EUR: p.Price.EUR, COP: p.Price.COP},
		CompanyNIT:      p.CompanyNIT,
		CompanyName:     p.CompanyName,
	}
}
