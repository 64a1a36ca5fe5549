// Package bboltstore implementa la persistencia local embebida sobre bbolt.
// Cada colección vive en su bucket bajo claves fijas, serializada como JSON,
// y las escrituras son síncronas respecto a la mutación que las origina.
package bboltstore

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

var (
	bucketCompanies = []byte("companies")
	bucketProducts  = []byte("products")
	bucketSession   = []byte("session")
)

// Store archivo bbolt compartido por los repositorios locales.
type Store struct {
	db *bolt.DB
}

// Open abre (o crea) el archivo bbolt, garantiza los buckets y siembra los
// datos de demostración la primera vez.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir bbolt %s: %w", path, err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close cierra el archivo subyacente.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) init() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketCompanies, bucketProducts, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("crear bucket %s: %w", name, err)
			}
		}
		// Siembra de demostración solo en la primera apertura.
		companies := tx.Bucket(bucketCompanies)
		if k, _ := companies.Cursor().First(); k != nil {
			return nil
		}
		return seed(tx)
	})
}

// seed datos de demostración iniciales.
func seed(tx *bolt.Tx) error {
	demoCompanies := []*entity.Company{
		{NIT: "901234567", Name: "Empresa ABC", Address: "Calle 123 #45-67", Phone: "601-1234567"},
		{NIT: "900123456", Name: "Soluciones XYZ", Address: "Avenida 789 #12-34", Phone: "601-7654321"},
	}
	demoProducts := []*entity.Product{
		{
			ID:              "1",
			Name:            "Laptop Dell XPS 13",
			Characteristics: "Intel Core i7, 16GB RAM, 512GB SSD",
			Price: entity.Price{
				USD: decimal.NewFromInt(1200),
				EUR: decimal.NewFromInt(1100),
				COP: decimal.NewFromInt(4800000),
			},
			CompanyNIT:  "901234567",
			CompanyName: "Empresa ABC",
		},
		{
			ID:              "2",
			Name:            "Monitor LG 27\"",
			Characteristics: "4K, UltraHD, IPS Panel",
			Price: entity.Price{
				USD: decimal.NewFromInt(350),
				EUR: decimal.NewFromInt(320),
				COP: decimal.NewFromInt(1400000),
			},
			CompanyNIT:  "900123456",
			CompanyName: "Soluciones XYZ",
		},
	}

	companies := tx.Bucket(bucketCompanies)
	for _, c := range demoCompanies {
		raw, err := json.Marshal(toCompanyRecord(c))
		if err != nil {
			return err
		}
		if err := companies.Put([]byte(c.NIT), raw); err != nil {
			return err
		}
	}
	products := tx.Bucket(bucketProducts)
	for _, p := range demoProducts {
		raw, err := json.Marshal(toProductRecord(p))
		if err != nil {
			return err
		}
		if err := products.Put([]byte(p.ID), raw); err != nil {
			return err
		}
	}
	return nil
}

// ── Registros serializados ────────────────────────────────────────────────────

type companyRecord struct {
	NIT     string `json:"nit"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type priceRecord struct {
	USD decimal.Decimal `json:"usd"`
	EUR decimal.Decimal `json:"eur"`
	COP decimal.Decimal `json:"cop"`
}

type productRecord struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Characteristics string      `json:"characteristics"`
	Price           priceRecord `json:"price"`
	CompanyNIT      string      `json:"companyNit"`
	CompanyName     string      `json:"companyName"`
}

func toCompanyRecord(c *entity.Company) companyRecord {
	return companyRecord{NIT: c.NIT, Name: c.Name, Address: c.Address, Phone: c.Phone}
}

func (r companyRecord) toEntity() *entity.Company {
	return &entity.Company{NIT: r.NIT, Name: r.Name, Address: r.Address, Phone: r.Phone}
}

func toProductRecord(p *entity.Product) productRecord {
	return productRecord{
		ID:              p.ID,
		Name:            p.Name,
		Characteristics: p.Characteristics,
		Price:           priceRecord{USD: p.Price.USD, EUR: p.Price.EUR, COP: p.Price.COP},
		CompanyNIT:      p.CompanyNIT,
		CompanyName:     p.CompanyName,
	}
}

func (r productRecord) toEntity() *entity.Product {
	return &entity.Product{
		ID:              r.ID,
		Name:            r.Name,
		Characteristics: r.Characteristics,
		Price:           entity.Price{USD: r.Price.USD, EUR: r.Price.EUR, COP: r.Price.COP},
		CompanyNIT:      r.CompanyNIT,
		CompanyName:     r.CompanyName,
	}
}
