package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

// newTestService apunta el servicio a un servidor httptest.
func newTestService(url string) *OpenAIService {
	svc := NewOpenAIService("sk-test", "gpt-4o-mini")
	svc.baseURL = url
	return svc
}

func TestRecommendProducts_PeticionYRespuesta(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": "Recomiendo **teclados**"}},
			},
		})
	}))
	defer srv.Close()

	svc := newTestService(srv.URL)
	products := []*entity.Product{{
		ID:    "p-1",
		Name:  "Laptop",
		Price: entity.Price{USD: decimal.NewFromInt(1200)},
	}}

	text, err := svc.RecommendProducts(context.Background(), products)
	require.NoError(t, err)
	assert.Equal(t, "Recomiendo **teclados**", text,
		"el contenido del primer choice se devuelve sin transformar")

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody.Model)
	assert.InDelta(t, 0.7, gotBody.Temperature, 0.0001)
	require.Len(t, gotBody.Messages, 1)
	assert.Equal(t, "user", gotBody.Messages[0].Role)
	assert.Contains(t, gotBody.Messages[0].Content, "Laptop",
		"el inventario serializado viaja dentro del prompt")
	assert.Contains(t, gotBody.Messages[0].Content, "confidenceScore")
}

func TestRecommendProducts_RespuestaVacia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	_, err := newTestService(srv.URL).RecommendProducts(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyResponse)
}

func TestRecommendProducts_ErrorHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": {"message": "invalid api key"}}`))
	}))
	defer srv.Close()

	_, err := newTestService(srv.URL).RecommendProducts(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "HTTP 401")
}

func TestRecommendProducts_ContextoCancelado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestService(srv.URL).RecommendProducts(ctx, nil)
	assert.Error(t, err, "un contexto cancelado corta la llamada")
}
