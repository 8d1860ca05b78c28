// Package nbp cliente del API público del Narodowy Bank Polski para el tipo
// de cambio EUR/PLN. El proveedor puede caerse sin avisar, así que el cliente
// degrada siempre a un valor de respaldo configurado y cachea el último tipo
// bueno durante una hora.
package nbp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa ExchangeRateProvider.
var _ ports.ExchangeRateProvider = (*Client)(nil)

const (
	eurPath  = "/api/exchangerates/rates/a/eur/?format=json"
	cacheTTL = time.Hour
)

// Client adaptador HTTP del API de tipos de cambio.
type Client struct {
	baseURL    string
	fallback   decimal.Decimal
	httpClient *http.Client
	log        *logger.Logger

	mu        sync.Mutex
	cached    decimal.Decimal
	fetchedAt time.Time
}

// NewClient construye el cliente. fallback se usa cuando el API no responde y
// no hay tipo cacheado.
func NewClient(baseURL string, fallback decimal.Decimal, log *logger.Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		fallback: fallback,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

type ratesResponse struct {
	Rates []struct {
		Mid float64 `json:"mid"`
	} `json:"rates"`
}

// EURPLN devuelve el tipo medio EUR/PLN. Nunca falla: sin API responde el
// último tipo cacheado y, en frío, el de respaldo.
func (c *Client) EURPLN(ctx context.Context) decimal.Decimal {
	c.mu.Lock()
	if !c.fetchedAt.IsZero() && time.Since(c.fetchedAt) < cacheTTL {
		rate := c.cached
		c.mu.Unlock()
		return rate
	}
	c.mu.Unlock()

	rate, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn().Err(err).Str("fallback", c.fallback.String()).Msg("NBP no disponible, se usa el tipo de respaldo")
		c.mu.Lock()
		defer c.mu.Unlock()
		if !c.fetchedAt.IsZero() {
			return c.cached
		}
		return c.fallback
	}

	c.mu.Lock()
	c.cached = rate
	c.fetchedAt = time.Now()
	c.mu.Unlock()
	return rate
}

func (c *Client) fetch(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+eurPath, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("NBP: crear request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("NBP: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("NBP: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return decimal.Zero, fmt.Errorf("NBP: leer respuesta: %w", err)
	}

	var parsed ratesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return decimal.Zero, fmt.Errorf("NBP: deserializar respuesta: %w", err)
	}
	if len(parsed.Rates) == 0 || parsed.Rates[0].Mid <= 0 {
		return decimal.Zero, fmt.Errorf("NBP: respuesta sin tipo de cambio")
	}
	return decimal.NewFromFloat(parsed.Rates[0].Mid), nil
}
