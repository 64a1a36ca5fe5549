package bboltstore

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre bbolt.
// Clave del bucket = NIT.
type CompanyRepo struct {
	store *Store
}

// NewCompanyRepository construye el adaptador local de empresas.
func NewCompanyRepository(store *Store) *CompanyRepo {
	return &CompanyRepo{store: store}
}

// List devuelve todas las empresas.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	var list []*entity.Company
	err := r.store.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCompanies).ForEach(func(_, v []byte) error {
			var rec companyRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decodificar empresa: %w", err)
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

// GetByNIT devuelve la empresa o (nil, nil) si no existe.
func (r *CompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	var company *entity.Company
	err := r.store.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketCompanies).Get([]byte(nit))
		if raw == nil {
			return nil
		}
		var rec companyRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return fmt.Errorf("decodificar empresa %s: %w", nit, err)
		}
		company = rec.toEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return company, nil
}

// Create persiste una empresa nueva.
func (r *CompanyRepo) Create(company *entity.Company) error {
	return r.put(company)
}

// Update sobrescribe una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	return r.put(company)
}

func (r *CompanyRepo) put(company *entity.Company) error {
	raw, err := json.Marshal(toCompanyRecord(company))
	if err != nil {
		return fmt.Errorf("serializar empresa %s: %w", company.NIT, err)
	}
	return r.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCompanies).Put([]byte(company.NIT), raw)
	})
}

// Delete elimina una empresa por NIT.
func (r *CompanyRepo) Delete(nit string) error {
	return r.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCompanies).Delete([]byte(nit))
	})
}
