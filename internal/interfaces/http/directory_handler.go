package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/catalog"
	"github.com/jhoicas/inventario-admin/internal/application/dto"
)

// DirectoryHandler expone el directorio de empresas (solo lectura, ambos roles).
type DirectoryHandler struct {
	uc *catalog.Store
}

// NewDirectoryHandler construye el handler del directorio.
func NewDirectoryHandler(uc *catalog.Store) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// List godoc
// @Summary      Directorio de empresas con conteo de productos
// @Tags         directory
// @Produce      json
// @Param        search  query  string  false  "Filtro por nombre o dirección"
// @Success      200     {object}  dto.DirectoryResponse
// @Router       /api/directory [get]
func (h *DirectoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.Directory(c.Query("search"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
