package repository

import "github.com/jhoicas/inventario-admin/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	List() ([]*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	Create(product *entity.Product) error
	Update(product *entity.Product) error
	Delete(id string) error
}
