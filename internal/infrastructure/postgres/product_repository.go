package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// Asegura que ProductRepo implementa repository.ProductRepository.
var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Los tres montos van en columnas NUMERIC escaneadas a shopspring/decimal
// (codec registrado en el pool); company_name es la copia desnormalizada.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// List devuelve todos los productos.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `
		SELECT id, name, characteristics, price_usd, price_eur, price_cop, company_nit, company_name
		FROM products ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Characteristics,
			&p.Price.USD, &p.Price.EUR, &p.Price.COP,
			&p.CompanyNIT, &p.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByID obtiene un producto por ID, (nil, nil) si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `
		SELECT id, name, characteristics, price_usd, price_eur, price_cop, company_nit, company_name
		FROM products WHERE id = $1`
	var p entity.Product
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.Name, &p.Characteristics,
		&p.Price.USD, &p.Price.EUR, &p.Price.COP,
		&p.CompanyNIT, &p.CompanyName,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Create persiste un producto nuevo.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, characteristics, price_usd, price_eur, price_cop, company_nit, company_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Characteristics,
		product.Price.USD, product.Price.EUR, product.Price.COP,
		product.CompanyNIT, product.CompanyName,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, characteristics = $3, price_usd = $4, price_eur = $5,
		    price_cop = $6, company_nit = $7, company_name = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		product.ID, product.Name, product.Characteristics,
		product.Price.USD, product.Price.EUR, product.Price.COP,
		product.CompanyNIT, product.CompanyName,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
