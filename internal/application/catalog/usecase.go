// Package catalog implementa el almacén de catálogo: colecciones de empresas
// y productos en memoria respaldadas por una estrategia de persistencia
// intercambiable (bbolt local, PostgreSQL o API CRUD remota).
//
// Contrato de mutaciones: cada mutación exitosa recarga la colección afectada
// desde el backend en lugar de parchear la copia local. Es un trade-off
// deliberado de simplicidad/consistencia: ninguna lectura obsoleta sobrevive
// a una mutación exitosa.
//
// Contrato de lecturas: si la recarga falla se retiene la colección previa y
// se marca como stale; el error se devuelve al caller, que decide si degradar
// en silencio (política por defecto) o avisar al usuario.
package catalog

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
	"github.com/jhoicas/inventario-admin/internal/domain/money"
	"github.com/jhoicas/inventario-admin/internal/domain/repository"
)

// Store almacén de catálogo. Construir al arrancar y pasar por referencia.
type Store struct {
	mu          sync.RWMutex
	companyRepo repository.CompanyRepository
	productRepo repository.ProductRepository

	companies      []*entity.Company
	products       []*entity.Product
	companiesStale bool
	productsStale  bool
}

// NewStore construye el almacén con los puertos de persistencia.
func NewStore(companyRepo repository.CompanyRepository, productRepo repository.ProductRepository) *Store {
	return &Store{companyRepo: companyRepo, productRepo: productRepo}
}

// ── Recargas ──────────────────────────────────────────────────────────────────

// Refresh recarga ambas colecciones (arranque). Un fallo no es fatal: la
// colección afectada queda vacía o retenida y marcada stale.
func (s *Store) Refresh() error {
	errCompanies := s.RefreshCompanies()
	errProducts := s.RefreshProducts()
	if errCompanies != nil {
		return errCompanies
	}
	return errProducts
}

// RefreshCompanies recarga la colección de empresas. En fallo retiene la
// colección previa y la marca stale.
func (s *Store) RefreshCompanies() error {
	list, err := s.companyRepo.List()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.companiesStale = true
		return fmt.Errorf("recargar empresas: %w", err)
	}
	s.companies = list
	s.companiesStale = false
	return nil
}

// RefreshProducts recarga la colección de productos. En fallo retiene la
// colección previa y la marca stale.
func (s *Store) RefreshProducts() error {
	list, err := s.productRepo.List()
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.productsStale = true
		return fmt.Errorf("recargar productos: %w", err)
	}
	s.products = list
	s.productsStale = false
	return nil
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// Companies devuelve una copia de la colección de empresas y si está stale.
func (s *Store) Companies() ([]*entity.Company, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Company, len(s.companies))
	copy(out, s.companies)
	return out, s.companiesStale
}

// Products devuelve una copia de la colección de productos y si está stale.
func (s *Store) Products() ([]*entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, len(s.products))
	copy(out, s.products)
	return out, s.productsStale
}

// GetCompanyName busca el nombre de una empresa por NIT en la colección en
// memoria. Lectura pura, sin efectos.
func (s *Store) GetCompanyName(nit string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.companies {
		if c.NIT == nit {
			return c.Name, true
		}
	}
	return "", false
}

// ── Mutaciones de empresas ────────────────────────────────────────────────────

// AddCompany registra una empresa nueva. Devuelve domain.ErrDuplicate si el
// NIT ya existe.
func (s *Store) AddCompany(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	existing, _ := s.companyRepo.GetByNIT(in.NIT)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	company := &entity.Company{
		NIT:     in.NIT,
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
	}
	if err := s.companyRepo.Create(company); err != nil {
		return nil, err
	}
	if err := s.RefreshCompanies(); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// UpdateCompany actualiza una empresa. Si el nombre cambia, propaga el nuevo
// nombre desnormalizado a todos los productos que la referencian antes de
// recargar las colecciones.
func (s *Store) UpdateCompany(nit string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := s.companyRepo.GetByNIT(nit)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}

	renamed := company.Name != in.Name
	company.Name = in.Name
	company.Address = in.Address
	company.Phone = in.Phone
	if err := s.companyRepo.Update(company); err != nil {
		return nil, err
	}

	if renamed {
		if err := s.propagateCompanyName(nit, in.Name); err != nil {
			return nil, err
		}
	}

	if err := s.RefreshCompanies(); err != nil {
		return nil, err
	}
	if err := s.RefreshProducts(); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// propagateCompanyName reescribe el nombre desnormalizado en cada producto
// que referencia el NIT. Lee la lista autoritativa del backend para no
// propagar sobre una copia obsoleta.
func (s *Store) propagateCompanyName(nit, name string) error {
	products, err := s.productRepo.List()
	if err != nil {
		return fmt.Errorf("propagar nombre de empresa: %w", err)
	}
	for _, p := range products {
		if p.CompanyNIT != nit || p.CompanyName == name {
			continue
		}
		p.CompanyName = name
		if err := s.productRepo.Update(p); err != nil {
			return fmt.Errorf("propagar nombre a producto %s: %w", p.ID, err)
		}
	}
	return nil
}

// DeleteCompany elimina la empresa y, en cascada, todos los productos que la
// referencian. Recarga ambas colecciones.
func (s *Store) DeleteCompany(nit string) error {
	company, err := s.companyRepo.GetByNIT(nit)
	if err != nil {
		return err
	}
	if company == nil {
		return domain.ErrNotFound
	}

	// Primero los productos: así un corte a mitad deja una empresa sin
	// productos y no productos colgantes.
	products, err := s.productRepo.List()
	if err != nil {
		return fmt.Errorf("cascada de borrado: %w", err)
	}
	for _, p := range products {
		if p.CompanyNIT != nit {
			continue
		}
		if err := s.productRepo.Delete(p.ID); err != nil {
			return fmt.Errorf("cascada de borrado del producto %s: %w", p.ID, err)
		}
	}
	if err := s.companyRepo.Delete(nit); err != nil {
		return err
	}

	if err := s.RefreshCompanies(); err != nil {
		return err
	}
	return s.RefreshProducts()
}

// ── Mutaciones de productos ───────────────────────────────────────────────────

// AddProduct crea un producto con ID opaco generado, precio derivado según la
// moneda activa y el nombre de empresa desnormalizado resuelto al escribir.
func (s *Store) AddProduct(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	price, err := resolvePrice(in.Price, in.Currency)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:              uuid.New().String(),
		Name:            in.Name,
		Characteristics: in.Characteristics,
		Price:           price,
		CompanyNIT:      in.CompanyNIT,
		CompanyName:     s.resolveCompanyName(in.CompanyNIT),
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	if err := s.RefreshProducts(); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// UpdateProduct actualiza un producto existente, re-resolviendo el nombre de
// empresa por si cambió la referencia.
func (s *Store) UpdateProduct(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	price, err := resolvePrice(in.Price, in.Currency)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Characteristics = in.Characteristics
	product.Price = price
	product.CompanyNIT = in.CompanyNIT
	product.CompanyName = s.resolveCompanyName(in.CompanyNIT)
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	if err := s.RefreshProducts(); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct elimina un producto por ID y recarga la colección.
func (s *Store) DeleteProduct(id string) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := s.productRepo.Delete(id); err != nil {
		return err
	}
	return s.RefreshProducts()
}

// resolveCompanyName resuelve el nombre actual de la empresa dueña contra el
// backend. Una referencia colgante deja el nombre vacío (se renderiza como
// "Sin Empresa"), no es un error: la integridad referencial no se fuerza más
// allá de la propagación y la cascada.
func (s *Store) resolveCompanyName(nit string) string {
	company, err := s.companyRepo.GetByNIT(nit)
	if err != nil || company == nil {
		return ""
	}
	return company.Name
}

// resolvePrice aplica la tabla fija cuando el formulario indica moneda activa;
// sin moneda activa el precio llega completo y se toma tal cual.
func resolvePrice(in dto.PriceDTO, currency string) (entity.Price, error) {
	if currency == "" {
		return entity.Price{USD: in.USD, EUR: in.EUR, COP: in.COP}, nil
	}
	active, err := money.ParseCurrency(currency)
	if err != nil {
		return entity.Price{}, domain.ErrInvalidInput
	}
	var amount decimal.Decimal
	switch active {
	case money.USD:
		amount = in.USD
	case money.EUR:
		amount = in.EUR
	case money.COP:
		amount = in.COP
	}
	return money.Derive(active, amount)
}

// ── Vistas derivadas ─────────────────────────────────────────────────────────

// FilterProducts filtra la colección en memoria por subcadena (nombre o
// características, sin distinguir mayúsculas) y por NIT de empresa.
// companyNIT vacío o "all" no filtra por empresa.
func (s *Store) FilterProducts(search, companyNIT string) ([]*entity.Product, bool) {
	products, stale := s.Products()
	needle := strings.ToLower(search)
	var out []*entity.Product
	for _, p := range products {
		if companyNIT != "" && companyNIT != "all" && p.CompanyNIT != companyNIT {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Characteristics), needle) {
			continue
		}
		out = append(out, p)
	}
	return out, stale
}

// Directory devuelve las empresas filtradas por nombre o dirección junto con
// el conteo de productos de cada una (vista de solo lectura).
func (s *Store) Directory(search string) (*dto.DirectoryResponse, error) {
	companies, companiesStale := s.Companies()
	products, productsStale := s.Products()

	counts := make(map[string]int, len(companies))
	for _, p := range products {
		counts[p.CompanyNIT]++
	}

	needle := strings.ToLower(search)
	items := make([]dto.DirectoryEntry, 0, len(companies))
	for _, c := range companies {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Name), needle) &&
			!strings.Contains(strings.ToLower(c.Address), needle) {
			continue
		}
		items = append(items, dto.DirectoryEntry{
			CompanyResponse: *toCompanyResponse(c),
			ProductCount:    counts[c.NIT],
		})
	}
	return &dto.DirectoryResponse{Items: items, Stale: companiesStale || productsStale}, nil
}

// Dashboard calcula los totales y el promedio de productos por empresa con
// un decimal.
func (s *Store) Dashboard() *dto.DashboardResponse {
	companies, _ := s.Companies()
	products, _ := s.Products()

	avg := 0.0
	if len(companies) > 0 {
		avg = float64(len(products)) / float64(len(companies))
		// Un decimal, igual que toFixed(1).
		avg = float64(int(avg*10+0.5)) / 10
	}
	return &dto.DashboardResponse{
		TotalCompanies:            len(companies),
		TotalProducts:             len(products),
		AverageProductsPerCompany: avg,
	}
}

// ── Conversión entity ↔ dto ───────────────────────────────────────────────────

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		NIT:     c.NIT,
		Name:    c.Name,
		Address: c.Address,
		Phone:   c.Phone,
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Characteristics: p.Characteristics,
		Price:           dto.PriceDTO{USD: p.Price.USD, EUR: p.Price.EUR, COP: p.Price.COP},
		CompanyNIT:      p.CompanyNIT,
		CompanyName:     p.CompanyName,
	}
}

// ToProductResponses convierte una lista de entidades a DTOs de salida.
func ToProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

// ToCompanyResponses convierte una lista de entidades a DTOs de salida.
func ToCompanyResponses(list []*entity.Company) []dto.CompanyResponse {
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCompanyResponse(c))
	}
	return items
}
