package catalog_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/catalog"
	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios fake en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
	listErr   error
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entity.Company)}
}

func (r *fakeCompanyRepo) List() ([]*entity.Company, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entity.Company, 0, len(r.companies))
	for _, c := range r.companies {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCompanyRepo) GetByNIT(nit string) (*entity.Company, error) {
	c, ok := r.companies[nit]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error {
	cp := *c
	r.companies[c.NIT] = &cp
	return nil
}

func (r *fakeCompanyRepo) Update(c *entity.Company) error {
	cp := *c
	r.companies[c.NIT] = &cp
	return nil
}

func (r *fakeCompanyRepo) Delete(nit string) error {
	delete(r.companies, nit)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	listErr  error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

// buildStore construye un almacén con los fakes y la carga inicial hecha.
func buildStore(t *testing.T) (*catalog.Store, *fakeCompanyRepo, *fakeProductRepo) {
	t.Helper()
	companyRepo := newFakeCompanyRepo()
	productRepo := newFakeProductRepo()
	store := catalog.NewStore(companyRepo, productRepo)
	require.NoError(t, store.Refresh())
	return store, companyRepo, productRepo
}

func usd(amount int64) dto.PriceDTO {
	return dto.PriceDTO{USD: decimal.NewFromInt(amount)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Empresas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddCompany_Y_Duplicado(t *testing.T) {
	store, _, _ := buildStore(t)

	out, err := store.AddCompany(dto.CreateCompanyRequest{NIT: "123", Name: "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "Acme", out.Name)

	companies, stale := store.Companies()
	assert.Len(t, companies, 1, "la colección debe recargarse tras la mutación")
	assert.False(t, stale)

	_, err = store.AddCompany(dto.CreateCompanyRequest{NIT: "123", Name: "Otra"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el NIT es la clave natural")
}

// Renombrar una empresa debe reescribir el nombre desnormalizado en todos los
// productos que la referencian.
func TestUpdateCompany_PropagaRenombre(t *testing.T) {
	store, _, productRepo := buildStore(t)

	_, err := store.AddCompany(dto.CreateCompanyRequest{NIT: "123", Name: "Acme"})
	require.NoError(t, err)
	created, err := store.AddProduct(dto.CreateProductRequest{
		Name: "Widget", Characteristics: "chico", Price: usd(10), CompanyNIT: "123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", created.CompanyName, "el nombre se desnormaliza al crear")

	_, err = store.UpdateCompany("123", dto.UpdateCompanyRequest{Name: "Acme Corp"})
	require.NoError(t, err)

	stored := productRepo.products[created.ID]
	require.NotNil(t, stored)
	assert.Equal(t, "Acme Corp", stored.CompanyName,
		"el renombre debe propagarse hasta la persistencia")

	products, _ := store.Products()
	require.Len(t, products, 1)
	assert.Equal(t, "Acme Corp", products[0].CompanyName,
		"la colección en memoria debe reflejar el nuevo nombre")
}

// Actualizar sin cambiar el nombre no debe tocar los productos.
func TestUpdateCompany_SinRenombreNoToca(t *testing.T) {
	store, _, _ := buildStore(t)

	_, err := store.AddCompany(dto.CreateCompanyRequest{NIT: "123", Name: "Acme"})
	require.NoError(t, err)

	out, err := store.UpdateCompany("123", dto.UpdateCompanyRequest{Name: "Acme", Address: "Calle 1"})
	require.NoError(t, err)
	assert.Equal(t, "Calle 1", out.Address)
}

func TestUpdateCompany_NoExiste(t *testing.T) {
	store, _, _ := buildStore(t)
	_, err := store.UpdateCompany("999", dto.UpdateCompanyRequest{Name: "Nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Borrar una empresa arrastra todos sus productos y solo los suyos.
func TestDeleteCompany_CascadaDeProductos(t *testing.T) {
	store, _, _ := buildStore(t)

	_, err := store.AddCompany(dto.CreateCompanyRequest{NIT: "123", Name: "Acme"})
	require.NoError(t, err)
	_, err = store.AddCompany(dto.CreateCompanyRequest{NIT: "456", Name: "Globex"})
	require.NoError(t, err)

	_, err = store.AddProduct(dto.CreateProductRequest{
		Name: "Widget", Characteristics: "chico", Price: usd(10), CompanyNIT: "123",
	})
	require.NoError(t, err)
	_, err = store.AddProduct(dto.CreateProductRequest{
		Name: "Gadget", Characteristics: "grande", Price: usd(20), CompanyNIT: "456",
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteCompany("123"))

	companies, _ := store.Companies()
	assert.Len(t, companies, 1, "solo debe quedar la empresa no borrada")
	assert.Equal(t, "456", companies[0].NIT)

	products, _ := store.Products()
	require.Len(t, products, 1, "los productos de la empresa borrada caen en cascada")
	assert.Equal(t, "Gadget", products[0].Name)
}

func TestDeleteCompany_NoExiste(t *testing.T) {
	store, _, _ := buildStore(t)
	assert.ErrorIs(t, store.DeleteCompany("999"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestAddProduct_DerivaPrecioYGeneraID(t *testing.T) {
	store, _, _ := buildStore(t)

	_, err := store.AddCompany(dto.CreateCompanyRequest{NIT: "123", Name: "Acme"})
	require.NoError(t, err)

	out, err := store.AddProduct(dto.CreateProductRequest{
		Name:            "Widget",
		Characteristics: "chico",
		Price:           usd(100),
		Currency:        "usd",
		CompanyNIT:      "123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID, "el ID es opaco y generado por el sistema")
	assert.True(t, out.Price.EUR.Equal(decimal.RequireFromString("92.00")),
		"el EUR se deriva de la tabla fija, se obtuvo %s", out.Price.EUR)
	assert.True(t, out.Price.COP.Equal(decimal.RequireFromString("400000.00")),
		"el COP se deriva de la tabla fija, se obtuvo %s", out.Price.COP)
}

// Sin moneda activa el precio llega completo del formulario y se toma tal cual.
func TestAddProduct_SinMonedaActivaTomaPrecioCompleto(t *testing.T) {
	store, _, _ := buildStore(t)

	out, err := store.AddProduct(dto.CreateProductRequest{
		Name:            "Widget",
		Characteristics: "chico",
		Price: dto.PriceDTO{
			USD: decimal.NewFromInt(1),
			EUR: decimal.NewFromInt(2),
			COP: decimal.NewFromInt(3),
		},
		CompanyNIT: "123",
	})
	require.NoError(t, err)
	assert.True(t, out.Price.EUR.Equal(decimal.NewFromInt(2)),
		"sin moneda activa no se deriva nada")
}

// Una referencia de empresa colgante no es error: el nombre queda vacío.
func TestAddProduct_ReferenciaColganteNombreVacio(t *testing.T) {
	store, _, _ := buildStore(t)

	out, err := store.AddProduct(dto.CreateProductRequest{
		Name: "Huérfano", Characteristics: "sin dueño", Price: usd(5), CompanyNIT: "999",
	})
	require.NoError(t, err)
	assert.Empty(t, out.CompanyName, "la referencia colgante deja el nombre vacío")
}

func TestAddProduct_MonedaInvalida(t *testing.T) {
	store, _, _ := buildStore(t)
	_, err := store.AddProduct(dto.CreateProductRequest{
		Name: "Widget", Characteristics: "chico", Price: usd(10),
		Currency: "gbp", CompanyNIT: "123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProduct_ReResuelveEmpresa(t *testing.T) {
	store, _, _ := buildStore(t)

	_, err := store.AddCompany(dto.CreateCompanyRequest{NIT: "123", Name: "Acme"})
	require.NoError(t, err)
	_, err = store.AddCompany(dto.CreateCompanyRequest{NIT: "456", Name: "Globex"})
	require.NoError(t, err)

	created, err := store.AddProduct(dto.CreateProductRequest{
		Name: "Widget", Characteristics: "chico", Price: usd(10), CompanyNIT: "123",
	})
	require.NoError(t, err)

	out, err := store.UpdateProduct(created.ID, dto.UpdateProductRequest{
		Name: "Widget", Characteristics: "chico", Price: usd(10), CompanyNIT: "456",
	})
	require.NoError(t, err)
	assert.Equal(t, "Globex", out.CompanyName,
		"cambiar la referencia debe re-resolver el nombre desnormalizado")
}

func TestUpdateProduct_NoExiste(t *testing.T) {
	store, _, _ := buildStore(t)
	_, err := store.UpdateProduct("nope", dto.UpdateProductRequest{
		Name: "X", Characteristics: "Y", CompanyNIT: "123",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	store, _, _ := buildStore(t)

	created, err := store.AddProduct(dto.CreateProductRequest{
		Name: "Widget", Characteristics: "chico", Price: usd(10), CompanyNIT: "123",
	})
	require.NoError(t, err)

	require.NoError(t, store.DeleteProduct(created.ID))
	products, _ := store.Products()
	assert.Empty(t, products)

	assert.ErrorIs(t, store.DeleteProduct(created.ID), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Frescura (stale)
// ──────────────────────────────────────────────────────────────────────────────

// Si la recarga falla, la colección previa se retiene y se marca stale; una
// recarga exitosa posterior limpia la marca.
func TestRefresh_FalloRetieneYMarcaStale(t *testing.T) {
	store, _, productRepo := buildStore(t)

	created, err := store.AddProduct(dto.CreateProductRequest{
		Name: "Widget", Characteristics: "chico", Price: usd(10), CompanyNIT: "123",
	})
	require.NoError(t, err)

	productRepo.listErr = errors.New("backend caído")
	err = store.RefreshProducts()
	require.Error(t, err, "el error de recarga se devuelve al caller")

	products, stale := store.Products()
	assert.True(t, stale, "la colección debe marcarse stale")
	require.Len(t, products, 1, "la colección previa se retiene, no se vacía")
	assert.Equal(t, created.ID, products[0].ID)

	productRepo.listErr = nil
	require.NoError(t, store.RefreshProducts())
	_, stale = store.Products()
	assert.False(t, stale, "una recarga exitosa limpia la marca")
}

// ──────────────────────────────────────────────────────────────────────────────
// Vistas derivadas
// ──────────────────────────────────────────────────────────────────────────────

func TestFilterProducts(t *testing.T) {
	store, _, _ := buildStore(t)

	_, err := store.AddCompany(dto.CreateCompanyRequest{NIT: "123", Name: "Acme"})
	require.NoError(t, err)
	_, err = store.AddProduct(dto.CreateProductRequest{
		Name: "Laptop Dell", Characteristics: "ultraliviana", Price: usd(1000), CompanyNIT: "123",
	})
	require.NoError(t, err)
	_, err = store.AddProduct(dto.CreateProductRequest{
		Name: "Monitor LG", Characteristics: "27 pulgadas", Price: usd(300), CompanyNIT: "456",
	})
	require.NoError(t, err)

	// Subcadena sin distinguir mayúsculas, sobre nombre o características.
	out, _ := store.FilterProducts("LAPTOP", "")
	require.Len(t, out, 1)
	assert.Equal(t, "Laptop Dell", out[0].Name)

	out, _ = store.FilterProducts("pulgadas", "")
	require.Len(t, out, 1)
	assert.Equal(t, "Monitor LG", out[0].Name)

	// "all" y vacío no filtran por empresa.
	out, _ = store.FilterProducts("", "all")
	assert.Len(t, out, 2)

	out, _ = store.FilterProducts("", "123")
	require.Len(t, out, 1)
	assert.Equal(t, "Laptop Dell", out[0].Name)

	out, _ = store.FilterProducts("inexistente", "")
	assert.Empty(t, out)
}

func TestDirectory_ConteosYFiltro(t *testing.T) {
	store, _, _ := buildStore(t)

	_, err := store.AddCompany(dto.CreateCompanyRequest{NIT: "123", Name: "Acme", Address: "Calle 10"})
	require.NoError(t, err)
	_, err = store.AddCompany(dto.CreateCompanyRequest{NIT: "456", Name: "Globex", Address: "Carrera 5"})
	require.NoError(t, err)
	_, err = store.AddProduct(dto.CreateProductRequest{
		Name: "Widget", Characteristics: "chico", Price: usd(10), CompanyNIT: "123",
	})
	require.NoError(t, err)
	_, err = store.AddProduct(dto.CreateProductRequest{
		Name: "Gadget", Characteristics: "grande", Price: usd(20), CompanyNIT: "123",
	})
	require.NoError(t, err)

	out, err := store.Directory("")
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	counts := map[string]int{}
	for _, item := range out.Items {
		counts[item.NIT] = item.ProductCount
	}
	assert.Equal(t, 2, counts["123"])
	assert.Equal(t, 0, counts["456"])

	// Filtro por dirección, sin distinguir mayúsculas.
	out, err = store.Directory("carrera")
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Globex", out.Items[0].Name)
}

func TestDashboard_PromedioConUnDecimal(t *testing.T) {
	store, _, _ := buildStore(t)

	out := store.Dashboard()
	assert.Zero(t, out.AverageProductsPerCompany, "sin empresas el promedio es 0")

	_, err := store.AddCompany(dto.CreateCompanyRequest{NIT: "123", Name: "Acme"})
	require.NoError(t, err)
	_, err = store.AddCompany(dto.CreateCompanyRequest{NIT: "456", Name: "Globex"})
	require.NoError(t, err)
	_, err = store.AddCompany(dto.CreateCompanyRequest{NIT: "789", Name: "Initech"})
	require.NoError(t, err)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		_, err = store.AddProduct(dto.CreateProductRequest{
			Name: name, Characteristics: "x", Price: usd(1), CompanyNIT: "123",
		})
		require.NoError(t, err)
	}

	out = store.Dashboard()
	assert.Equal(t, 3, out.TotalCompanies)
	assert.Equal(t, 5, out.TotalProducts)
	// 5/3 = 1.666... -> 1.7 con un decimal.
	assert.InDelta(t, 1.7, out.AverageProductsPerCompany, 0.0001)
}
