// Package tcgapi cliente del catálogo remoto de expansiones (api.pokemontcg.io).
package tcgapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	"github.com/kartoteka/kartoteka-api/internal/domain/catalog"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// Verificar en tiempo de compilación que SetsClient implementa SetCatalogProvider.
var _ ports.SetCatalogProvider = (*SetsClient)(nil)

// DefaultBaseURL endpoint público del API.
const DefaultBaseURL = "https://api.pokemontcg.io"

// SetsClient adaptador HTTP del catálogo de expansiones.
type SetsClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewSetsClient construye el cliente; baseURL vacío usa el endpoint público.
func NewSetsClient(baseURL string, log *logger.Logger) *SetsClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &SetsClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

type setsResponse struct {
	Data []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"data"`
}

// FetchSets baja todas las expansiones publicadas. El id del API es el código
// corto que usan los archivos de símbolos (sv1, base1...).
func (c *SetsClient) FetchSets(ctx context.Context) ([]catalog.Set, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v2/sets", nil)
	if err != nil {
		return nil, fmt.Errorf("tcgapi: crear request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tcgapi: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tcgapi: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("tcgapi: leer respuesta: %w", err)
	}

	var parsed setsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("tcgapi: deserializar respuesta: %w", err)
	}

	sets := make([]catalog.Set, 0, len(parsed.Data))
	for _, s := range parsed.Data {
		if s.Name == "" {
			continue
		}
		sets = append(sets, catalog.Set{Name: s.Name, Code: s.ID})
	}
	c.log.Debug().Int("sets", len(sets)).Msg("catálogo remoto descargado")
	return sets, nil
}
