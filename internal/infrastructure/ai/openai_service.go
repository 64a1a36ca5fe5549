// Package ai contiene el adaptador hacia la API de chat de OpenAI,
// usado por el caso de uso de recomendaciones de inventario.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jhoicas/inventario-admin/internal/application/ports"
	"github.com/jhoicas/inventario-admin/internal/domain"
	"github.com/jhoicas/inventario-admin/internal/domain/entity"
)

const openAIURL = "https://api.openai.com/v1/chat/completions"

// Asegura que OpenAIService implementa el puerto Recommender.
var _ ports.Recommender = (*OpenAIService)(nil)

// OpenAIService cliente del endpoint de chat completions.
type OpenAIService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewOpenAIService construye el servicio con la clave y el modelo configurados.
func NewOpenAIService(apiKey, model string) *OpenAIService {
	return &OpenAIService{
		apiKey:  apiKey,
		model:   model,
		baseURL: openAIURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// RecommendProducts envía el inventario serializado y devuelve el texto
// de recomendaciones tal cual lo produce el modelo.
func (s *OpenAIService) RecommendProducts(ctx context.Context, products []*entity.Product) (string, error) {
	inventory, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializar inventario: %w", err)
	}

	prompt := fmt.Sprintf(`
Tengo un catálogo de productos con estas características:

%s

Basado en este catálogo, dame entre 3 y 5 recomendaciones de productos nuevos que podrían complementar o mejorar el inventario actual. Por cada recomendación, incluye:

- "product": nombre del producto recomendado
- "reason": por qué lo recomiendas
- "confidenceScore": un valor estimado entre 70 y 100 sobre la confianza de esa recomendación
`, inventory)

	body, err := json.Marshal(chatRequest{
		Model:       s.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("serializar petición: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("crear petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llamar a OpenAI: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return "", fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI respondió HTTP %d: %s", resp.StatusCode, raw)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("deserializar respuesta: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", domain.ErrEmptyResponse
	}
	return parsed.Choices[0].Message.Content, nil
}
