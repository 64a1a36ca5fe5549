package ports

import (
	"context"

	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// Recommender define el puerto de salida hacia el servicio de recomendaciones.
// Cualquier adaptador (OpenAI, Ollama, mock) debe implementar esta interfaz.
// El adaptador serializa el catálogo en el prompt y devuelve el texto crudo
// de la primera completion; el caso de uso aplica el formateo de salida.
type Recommender interface {
	// RecommendProducts analiza el catálogo completo y devuelve entre 3 y 5
	// recomendaciones de productos nuevos en texto libre.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	RecommendProducts(ctx context.Context, products []*entity.Product) (string, error)
}
