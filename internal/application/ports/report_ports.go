package ports

import (
	"context"
	"time"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// ReportGenerator genera el PDF tabular del inventario.
// filter es la empresa seleccionada o nil cuando el reporte cubre todo el catálogo.
type ReportGenerator interface {
	GenerateInventoryPDF(ctx context.Context, products []*entity.Product, filter *entity.Company, date time.Time) ([]byte, error)
}

// Mailer entrega el reporte como adjunto PDF. Implementaciones: SMTP y AWS SES.
// No hay reintentos: un fallo es terminal para ese intento y lo reinicia el usuario.
type Mailer interface {
	SendReport(ctx context.Context, to string, pdf []byte, filename string) error
}
