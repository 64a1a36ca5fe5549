// Package postgres implementa la estrategia de catálogo sobre PostgreSQL.
//
// Esquema esperado:
//
//	CREATE TABLE companies (
//	    nit     TEXT PRIMARY KEY,
//	    name    TEXT NOT NULL,
//	    address TEXT NOT NULL DEFAULT '',
//	    phone   TEXT NOT NULL DEFAULT ''
//	);
//	CREATE TABLE products (
//	    id              TEXT PRIMARY KEY,
//	    name            TEXT NOT NULL,
//	    characteristics TEXT NOT NULL DEFAULT '',
//	    price_usd       NUMERIC(14,2) NOT NULL DEFAULT 0,
//	    price_eur       NUMERIC(14,2) NOT NULL DEFAULT 0,
//	    price_cop       NUMERIC(18,2) NOT NULL DEFAULT 0,
//	    company_nit     TEXT NOT NULL,
//	    company_name    TEXT NOT NULL DEFAULT ''
//	);
//
// products.company_nit no lleva FOREIGN KEY a propósito: la integridad
// referencial se limita a la propagación de renombres y la cascada de borrado
// del caso de uso, y una referencia colgante se tolera.
package postgres

import (
	"context"
	"fmt"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-admin/pkg/config"
)

// NewPool crea un pool de conexiones PostgreSQL usando la configuración de la app.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC/DECIMAL -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}
