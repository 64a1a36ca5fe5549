package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/catalog"
	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/report"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// InventoryHandler expone la vista de inventario: listado filtrado,
// descarga del reporte PDF y envío por correo.
type InventoryHandler struct {
	catalog *catalog.Store
	report  *report.UseCase
}

// NewInventoryHandler construye el handler de inventario.
func NewInventoryHandler(cat *catalog.Store, rep *report.UseCase) *InventoryHandler {
	return &InventoryHandler{catalog: cat, report: rep}
}

// List godoc
// @Summary      Inventario filtrado
// @Tags         inventory
// @Produce      json
// @Param        search   query  string  false  "Subcadena en nombre o características"
// @Param        company  query  string  false  "NIT de empresa, o 'all'"
// @Success      200      {object}  dto.ProductListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	products, stale := h.catalog.FilterProducts(c.Query("search"), c.Query("company"))
	return c.JSON(dto.ProductListResponse{
		Items: catalog.ToProductResponses(products),
		Stale: stale,
	})
}

// Report godoc
// @Summary      Descargar reporte de inventario en PDF
// @Tags         inventory
// @Produce      application/pdf
// @Param        search   query  string  false  "Subcadena en nombre o características"
// @Param        company  query  string  false  "NIT de empresa, o 'all'"
// @Success      200  {file}  file
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/report [get]
func (h *InventoryHandler) Report(c *fiber.Ctx) error {
	companyNIT := c.Query("company")
	products, _ := h.catalog.FilterProducts(c.Query("search"), companyNIT)

	filter := h.filterCompany(companyNIT)
	pdf, filename, err := h.report.Generate(c.Context(), products, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// SendEmail godoc
// @Summary      Enviar un PDF de productos por correo
// @Tags         inventory
// @Accept       multipart/form-data
// @Produce      json
// @Param        email  formData  string  true  "Destinatario"
// @Param        pdf    formData  file    true  "Archivo PDF"
// @Success      200    {object}  dto.MessageResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/send-email [post]
func (h *InventoryHandler) SendEmail(c *fiber.Ctx) error {
	email := c.FormValue("email")
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y pdf son requeridos"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el adjunto"})
	}
	defer file.Close()
	pdf, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el adjunto"})
	}

	if err := h.report.Send(c.Context(), email, pdf, fileHeader.Filename); err != nil {
		if errors.Is(err, domain.ErrInvalidEmail) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EMAIL", Message: "formato de correo inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Correo enviado correctamente."})
}

// filterCompany resuelve la empresa filtrada para el encabezado del reporte.
// "" y "all" significan inventario completo.
func (h *InventoryHandler) filterCompany(nit string) *entity.Company {
	if nit == "" || nit == "all" {
		return nil
	}
	companies, _ := h.catalog.Companies()
	for _, c := range companies {
		if c.NIT == nit {
			return c
		}
	}
	return nil
}
