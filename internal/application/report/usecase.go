// Package report orquesta la exportación del inventario a PDF y su envío por
// correo como adjunto.
package report

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/inventario-admin/internal/application/ports"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// emailRe validación sintáctica mínima del destinatario.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UseCase genera el reporte tabular y lo entrega por correo.
type UseCase struct {
	generator ports.ReportGenerator
	mailer    ports.Mailer
	now       func() time.Time
}

// NewUseCase construye el caso de uso. mailer puede ser nil cuando el envío
// de correo no está configurado; Generate sigue funcionando.
func NewUseCase(generator ports.ReportGenerator, mailer ports.Mailer) *UseCase {
	return &UseCase{generator: generator, mailer: mailer, now: time.Now}
}

// Generate produce el PDF del inventario filtrado y el nombre de archivo
// inventario_YYYY-MM-DD.pdf.
func (uc *UseCase) Generate(ctx context.Context, products []*entity.Product, filter *entity.Company) ([]byte, string, error) {
	date := uc.now()
	pdf, err := uc.generator.GenerateInventoryPDF(ctx, products, filter, date)
	if err != nil {
		return nil, "", fmt.Errorf("generar reporte: %w", err)
	}
	filename := fmt.Sprintf("inventario_%s.pdf", date.Format("2006-01-02"))
	return pdf, filename, nil
}

// Send valida sintácticamente el correo y entrega el PDF adjunto. Sin
// reintentos: un fallo de red es terminal para este intento.
func (uc *UseCase) Send(ctx context.Context, email string, pdf []byte, filename string) error {
	if !emailRe.MatchString(email) {
		return domain.ErrInvalidEmail
	}
	if uc.mailer == nil {
		return fmt.Errorf("envío de correo no configurado")
	}
	if err := uc.mailer.SendReport(ctx, email, pdf, filename); err != nil {
		return fmt.Errorf("enviar reporte a %s: %w", email, err)
	}
	return nil
}
