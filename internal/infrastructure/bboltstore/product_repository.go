package bboltstore

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre bbolt.
// Clave del bucket = ID opaco del producto.
type ProductRepo struct {
	store *Store
}

// NewProductRepository construye el adaptador local de productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

// List devuelve todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	err := r.store.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProducts).ForEach(func(_, v []byte) error {
			var rec productRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decodificar producto: %w", err)
			}
			list = append(list, rec.toEntity())
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// GetByID devuelve el producto o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	var product *entity.Product
	err := r.store.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketProducts).Get([]byte(id))
		if raw == nil {
			return nil
		}
		var rec productRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("decodificar producto %s: %w", id, err)
		}
		product = rec.toEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	return r.put(product)
}

// Update sobrescribe un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	return r.put(product)
}

func (r *ProductRepo) put(product *entity.Product) error {
	raw, err := json.Marshal(toProductRecord(product))
	if err != nil {
		return fmt.Errorf("serializar producto %s: %w", product.ID, err)
	}
	return r.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProducts).Put([]byte(product.ID), raw)
	})
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	return r.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketProducts).Delete([]byte(id))
	})
}
