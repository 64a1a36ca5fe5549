package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-admin/internal/application/catalog"
	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/recommend"
	"github.com/jhoicas/inventario-admin/internal/domain"
)

// AIHandler expone las recomendaciones de inventario generadas por el modelo.
type AIHandler struct {
	catalog *catalog.Store
	uc      *recommend.UseCase
}

// NewAIHandler construye el handler de recomendaciones.
func NewAIHandler(cat *catalog.Store, uc *recommend.UseCase) *AIHandler {
	return &AIHandler{catalog: cat, uc: uc}
}

// Recommendations godoc
// @Summary      Generar recomendaciones de productos
// @Tags         ai
// @Produce      json
// @Success      200  {object}  dto.RecommendationsResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ai/recommendations [post]
func (h *AIHandler) Recommendations(c *fiber.Ctx) error {
	products, _ := h.catalog.Products()
	out, err := h.uc.Recommend(c.Context(), products)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyResponse) {
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "EMPTY_RESPONSE", Message: "la respuesta del modelo fue vacía"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_ERROR", Message: err.Error()})
	}
	return c.JSON(out)
}
