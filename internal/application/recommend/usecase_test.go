package recommend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/application/recommend"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// fakeRecommender puerto Recommender controlable desde el test.
type fakeRecommender struct {
	text       string
	err        error
	gotCtx     context.Context
	gotCatalog []*entity.Product
}

func (f *fakeRecommender) RecommendProducts(ctx context.Context, products []*entity.Product) (string, error) {
	f.gotCtx = ctx
	f.gotCatalog = products
	return f.text, f.err
}

func TestRecommend_ConvierteNegritas(t *testing.T) {
	llm := &fakeRecommender{text: "Sugiero **Laptop HP** por su **precio** competitivo"}
	uc := recommend.NewUseCase(llm)

	out, err := uc.Recommend(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t,
		"Sugiero <strong>Laptop HP</strong> por su <strong>precio</strong> competitivo",
		out.Recommendations,
		"el énfasis **doble asterisco** se convierte a <strong>")
}

func TestRecommend_TextoSinEnfasisQuedaIgual(t *testing.T) {
	llm := &fakeRecommender{text: "sin énfasis ** suelto"}
	uc := recommend.NewUseCase(llm)

	out, err := uc.Recommend(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "sin énfasis ** suelto", out.Recommendations,
		"un par sin cerrar no debe transformarse")
}

func TestRecommend_PropagaError(t *testing.T) {
	llm := &fakeRecommender{err: errors.New("cuota agotada")}
	uc := recommend.NewUseCase(llm)

	_, err := uc.Recommend(context.Background(), nil)
	assert.ErrorContains(t, err, "cuota agotada")
}

// El catálogo completo llega al puerto y la llamada lleva deadline.
func TestRecommend_PasaCatalogoYTimeout(t *testing.T) {
	llm := &fakeRecommender{text: "ok"}
	uc := recommend.NewUseCase(llm)

	products := []*entity.Product{{ID: "p1", Name: "Widget"}}
	_, err := uc.Recommend(context.Background(), products)
	require.NoError(t, err)

	assert.Len(t, llm.gotCatalog, 1)
	_, hasDeadline := llm.gotCtx.Deadline()
	assert.True(t, hasDeadline, "la llamada al LLM debe llevar timeout")
}
