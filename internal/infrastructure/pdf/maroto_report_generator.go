// Package pdf implementa la generación del reporte de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Reporte de Inventario                               │
//	│  Fecha: DD/MM/AAAA   [Empresa: Nombre (NIT: ...)]            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Nombre | Empresa | Características | Precio │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-admin/internal/application/ports"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Asegura que MarotoReportGenerator implementa ports.ReportGenerator.
var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator genera el reporte de inventario usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryPDF genera el reporte y devuelve sus bytes.
// Si filter no es nil el reporte indica la empresa sobre la que se filtró.
func (g *MarotoReportGenerator) GenerateInventoryPDF(
	_ context.Context,
	products []*entity.Product,
	filter *entity.Company,
	date time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(filter, date))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range productRows(products) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// titleRow: título del reporte, fecha y empresa filtrada si aplica.
func titleRow(filter *entity.Company, date time.Time) core.Row {
	texts := []core.Component{
		text.New("Reporte de Inventario", props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
		}),
		text.New("Fecha: "+date.Format("02/01/2006"), props.Text{
			Size: 9, Top: 10, Color: colorGray,
		}),
	}
	height := 18.0
	if filter != nil {
		texts = append(texts, text.New(
			fmt.Sprintf("Empresa: %s (NIT: %s)", filter.Name, filter.NIT),
			props.Text{Size: 9, Top: 16, Color: colorGray},
		))
		height = 24
	}
	return row.New(height).Add(col.New(12).Add(texts...))
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Nombre", 3, align.Left),
		h("Empresa", 2, align.Left),
		h("Características", 3, align.Left),
		h("Precio (USD)", 2, align.Right),
	)
}

// productRows: una fila por producto del inventario.
func productRows(products []*entity.Product) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		company := p.CompanyName
		if company == "" {
			company = "Sin Empresa"
		}
		usd, _ := p.Price.USD.Float64()
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(p.ID, props.Text{Size: 7, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(p.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(company, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(3).Add(text.New(p.Characteristics, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(
				fmt.Sprintf("$%.2f", usd),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}
