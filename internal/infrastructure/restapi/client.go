// Package restapi implementa la estrategia de catálogo contra la API CRUD
// remota (modo "remote"): GET de listado, POST de creación, PUT por
// identificador y DELETE por identificador, todo con cuerpos JSON.
//
// Cualquier estado distinto de 2xx se convierte en error con el detalle del
// cuerpo cuando existe; nunca se ignora en silencio.
package restapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Client HTTP compartido por los repositorios remotos.
// Usa net/http directamente, igual que el resto de adaptadores externos.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente contra la base de la API remota.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// apiError cuerpo de error de la API remota ({"detail": "..."}).
type apiError struct {
	Detail string `json:"detail"`
}

// do ejecuta la petición y deserializa la respuesta en out (si out != nil).
func (c *Client) do(method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api remota: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api remota: crear petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("api remota: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("api remota: leer respuesta: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if jsonErr := json.Unmarshal(raw, &apiErr); jsonErr == nil && apiErr.Detail != "" {
			return fmt.Errorf("api remota: %s %s: HTTP %d: %s", method, path, resp.StatusCode, apiErr.Detail)
		}
		return fmt.Errorf("api remota: %s %s: HTTP %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api remota: deserializar respuesta: %w", err)
	}
	return nil
}

// ── Formato de intercambio ────────────────────────────────────────────────────

type companyPayload struct {
	NIT     string `json:"nit"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type pricePayload struct {
	USD decimal.Decimal `json:"usd"`
	EUR decimal.Decimal `json:"eur"`
	COP decimal.Decimal `json:"cop"`
}

type productPayload struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Characteristics string       `json:"characteristics"`
	Price           pricePayload `json:"price"`
	CompanyNIT      string       `json:"company_nit"`
	CompanyName     string       `json:"company_name"`
}
