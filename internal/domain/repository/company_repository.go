package repository

import "github.com/jhoicas/inventario-admin/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// Las implementaciones viven en infrastructure: bbolt, PostgreSQL o la API
// CRUD remota — intercambiables por configuración.
type CompanyRepository interface {
	List() ([]*entity.Company, error)
	GetByNIT(nit string) (*entity.Company, error)
	Create(company *entity.Company) error
	Update(company *entity.Company) error
	Delete(nit string) error
}
