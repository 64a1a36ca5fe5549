// Package recommend orquesta las recomendaciones de productos asistidas por IA.
package recommend

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/jhoicas/inventario-admin/internal/application/dto"
	"github.com/jhoicas/inventario-admin/internal/application/ports"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// boldRe convierte el énfasis **doble asterisco** del modelo a marcado HTML.
var boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)

// UseCase aplica un timeout de 10 segundos en cada llamada al LLM para evitar
// que las latencias externas bloqueen los goroutines del servidor.
type UseCase struct {
	llm ports.Recommender
}

// NewUseCase construye el caso de uso inyectando el puerto Recommender.
func NewUseCase(llm ports.Recommender) *UseCase {
	return &UseCase{llm: llm}
}

// Recommend envía el catálogo completo al modelo y devuelve el texto con el
// formato de salida aplicado. Sin caché: cada invocación consulta de nuevo.
func (uc *UseCase) Recommend(ctx context.Context, products []*entity.Product) (*dto.RecommendationsResponse, error) {
	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	text, err := uc.llm.RecommendProducts(ctx, products)
	if err != nil {
		return nil, fmt.Errorf("recomendaciones IA: %w", err)
	}
	return &dto.RecommendationsResponse{
		Recommendations: formatBold(text),
	}, nil
}

// formatBold reemplaza **texto** por <strong>texto</strong>.
func formatBold(s string) string {
	return boldRe.ReplaceAllString(s, "<strong>$1</strong>")
}
