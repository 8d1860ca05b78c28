// Package tcggo cliente del API de precios de cartas. Con credenciales de
// RapidAPI usa ese endpoint; sin ellas cae al API público de tcggo.com. Las
// respuestas de ambos varían en forma, así que el parseo es tolerante: varios
// nombres de campo para el mismo dato y envoltorios "cards"/"data" opcionales.
package tcggo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	"github.com/kartoteka/kartoteka-api/internal/domain/pricing"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa CardPriceProvider.
var _ ports.CardPriceProvider = (*Client)(nil)

const publicBaseURL = "https://www.tcggo.com/api/cards/"

// cardmarketFields campos de precio en orden de preferencia.
var cardmarketFields = []string{"30d_average", "trendPrice", "trend_price", "lowest_near_mint"}

// Client adaptador HTTP del proveedor de precios.
type Client struct {
	host       string // host de RapidAPI; vacío usa el API público
	key        string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. Con key y host vacíos se consulta el API
// público sin autenticar.
func NewClient(host, key string, log *logger.Logger) *Client {
	return &Client{
		host: host,
		key:  key,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// LookupCard busca la carta y devuelve su mejor precio Cardmarket en EUR más
// los recursos gráficos. Sin coincidencia exacta devuelve nil sin error.
func (c *Client) LookupCard(ctx context.Context, name, number, setCode string) (*dto.CardPriceDTO, error) {
	cards, err := c.search(ctx, name, number, setCode)
	if err != nil {
		return nil, err
	}

	nameInput := pricing.Normalize(name, false)
	numberInput := strings.ToLower(strings.TrimSpace(number))
	setInput := strings.ToLower(strings.TrimSpace(setCode))

	for _, card := range cards {
		cardName := pricing.Normalize(getString(card, "name"), false)
		cardNumber := strings.ToLower(fmt.Sprintf("%v", card["card_number"]))
		episode := getMap(card, "episode")
		cardSet := strings.ToLower(getString(episode, "name"))

		if !strings.Contains(cardName, nameInput) || numberInput != cardNumber {
			continue
		}
		if setInput != "" && !strings.Contains(cardSet, setInput) && !strings.HasPrefix(cardSet, setInput) {
			continue
		}

		out := &dto.CardPriceDTO{
			PriceEUR:  extractCardmarketPrice(card),
			Expansion: getString(episode, "name"),
			ImageURL:  cardImageURL(card),
			LogoURL:   setLogoURL(card),
		}
		return out, nil
	}

	c.log.Debug().Str("name", name).Str("number", number).Msg("sin coincidencia exacta en el proveedor de precios")
	return nil, nil
}

func (c *Client) search(ctx context.Context, name, number, setCode string) ([]map[string]any, error) {
	nameAPI := pricing.Normalize(name, true)

	var reqURL string
	headers := map[string]string{}
	if c.key != "" && c.host != "" {
		reqURL = fmt.Sprintf("https://%s/cards/search?search=%s", c.host, url.QueryEscape(nameAPI))
		headers["X-RapidAPI-Key"] = c.key
		headers["X-RapidAPI-Host"] = c.host
	} else {
		q := url.Values{}
		q.Set("name", nameAPI)
		q.Set("number", strings.TrimSpace(number))
		q.Set("set", strings.TrimSpace(setCode))
		reqURL = publicBaseURL + "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("tcggo: crear request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tcggo: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tcggo: HTTP %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("tcggo: leer respuesta: %w", err)
	}
	return decodeCards(body)
}

// decodeCards acepta tanto una lista pelada como {"cards": [...]} o {"data": [...]}.
func decodeCards(body []byte) ([]map[string]any, error) {
	var asList []map[string]any
	if err := json.Unmarshal(body, &asList); err == nil {
		return asList, nil
	}
	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("tcggo: deserializar respuesta: %w", err)
	}
	for _, key := range []string{"cards", "data"} {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &asList); err != nil {
			return nil, fmt.Errorf("tcggo: deserializar %q: %w", key, err)
		}
		return asList, nil
	}
	return nil, nil
}

// extractCardmarketPrice devuelve el mejor precio Cardmarket disponible, ""
// si no hay ninguno publicado o todos son cero.
func extractCardmarketPrice(card map[string]any) string {
	cardmarket := getMap(getMap(card, "prices"), "cardmarket")
	for _, field := range cardmarketFields {
		if v, ok := toFloat(cardmarket[field]); ok && v > 0 {
			return strconv.FormatFloat(v, 'f', 2, 64)
		}
	}
	return ""
}

func cardImageURL(card map[string]any) string {
	if u := getString(getMap(card, "images"), "large"); u != "" {
		return u
	}
	for _, field := range []string{"image", "imageUrl", "image_url"} {
		if u := getString(card, field); u != "" {
			return u
		}
	}
	return ""
}

func setLogoURL(card map[string]any) string {
	setInfo := getMap(card, "episode")
	if len(setInfo) == 0 {
		setInfo = getMap(card, "set")
	}
	images := getMap(setInfo, "images")
	for _, field := range []string{"logo", "logoUrl", "logo_url"} {
		if u := getString(images, field); u != "" {
			return u
		}
	}
	return getString(setInfo, "logo")
}

func getMap(m map[string]any, key string) map[string]any {
	if m == nil {
		return nil
	}
	child, _ := m[key].(map[string]any)
	return child
}

func getString(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
