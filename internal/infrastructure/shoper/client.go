// Package shoper cliente REST de la tienda (endpoint "webapi/rest" de Shoper).
// Los números llegan a veces como string y a veces como número, así que el
// parseo de pedidos es tolerante.
package shoper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa ShoperClient.
var _ ports.ShoperClient = (*Client)(nil)

// Client adaptador HTTP de la tienda.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente. baseURL debe incluir el prefijo
// "/webapi/rest" de la instalación.
func NewClient(baseURL, token string, log *logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		log: log,
	}
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

type orderList struct {
	List []orderPayload `json:"list"`
}

type orderPayload struct {
	OrderID  json.Number    `json:"order_id"`
	Products []orderProduct `json:"products"`
}

type orderProduct struct {
	ProductID json.Number `json:"product_id"`
	Code      string      `json:"code"`
	Name      string      `json:"name"`
	Quantity  json.Number `json:"quantity"`
}

// ListNewOrders devuelve los pedidos en estado "nuevo" con sus líneas.
func (c *Client) ListNewOrders(ctx context.Context) ([]*entity.Order, error) {
	q := url.Values{}
	q.Set("filters[status]", "new")
	body, err := c.do(ctx, http.MethodGet, "/orders?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var parsed orderList
	if err := json.Unmarshal(body, &parsed); err != nil {
		// algunas instalaciones devuelven la lista pelada
		var bare []orderPayload
		if berr := json.Unmarshal(body, &bare); berr != nil {
			return nil, fmt.Errorf("shoper: deserializar pedidos: %w", err)
		}
		parsed.List = bare
	}

	orders := make([]*entity.Order, 0, len(parsed.List))
	for _, o := range parsed.List {
		order := &entity.Order{ID: o.OrderID.String()}
		for _, p := range o.Products {
			qty, _ := strconv.Atoi(p.Quantity.String())
			if qty <= 0 {
				qty = 1
			}
			order.Products = append(order.Products, entity.OrderItem{
				ProductCode: p.ProductID.String(),
				Code:        p.Code,
				Name:        p.Name,
				Quantity:    qty,
			})
		}
		orders = append(orders, order)
	}
	c.log.Debug().Int("orders", len(orders)).Msg("pedidos nuevos descargados")
	return orders, nil
}

// ── Productos ─────────────────────────────────────────────────────────────────

// AddProduct crea el producto con su traducción polaca y devuelve su ID.
func (c *Client) AddProduct(ctx context.Context, p ports.ShoperProduct) (string, error) {
	stock := map[string]any{
		"price": p.Price,
		"stock": p.Stock,
	}
	if p.Delivery > 0 {
		stock["delivery_id"] = p.Delivery
	}
	payload := map[string]any{
		"code":  p.Code,
		"stock": stock,
		"translations": map[string]any{
			"pl_PL": map[string]any{
				"name":              p.Name,
				"short_description": p.ShortDesc,
				"description":       p.Description,
				"active":            true,
			},
		},
	}
	if p.ImageURL != "" {
		payload["main_image"] = p.ImageURL
	}

	body, err := c.do(ctx, http.MethodPost, "/products", payload)
	if err != nil {
		return "", err
	}

	var id json.Number
	if err := json.Unmarshal(body, &id); err != nil {
		return "", fmt.Errorf("shoper: deserializar ID de producto: %w", err)
	}
	return id.String(), nil
}

// FindProductID busca un producto por código; "" si no existe.
func (c *Client) FindProductID(ctx context.Context, code string) (string, error) {
	q := url.Values{}
	q.Set("filters[code]", code)
	body, err := c.do(ctx, http.MethodGet, "/products?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}

	var parsed struct {
		List []struct {
			ProductID json.Number `json:"product_id"`
		} `json:"list"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("shoper: deserializar productos: %w", err)
	}
	if len(parsed.List) == 0 {
		return "", nil
	}
	return parsed.List[0].ProductID.String(), nil
}

// UpdateStock fija el stock del producto.
func (c *Client) UpdateStock(ctx context.Context, productID string, stock int) error {
	payload := map[string]any{
		"stock": map[string]any{"stock": stock},
	}
	_, err := c.do(ctx, http.MethodPut, "/products/"+productID, payload)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("shoper: serializar request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("shoper: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("shoper: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("shoper: leer respuesta: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("shoper: HTTP %d en %s %s: %s", resp.StatusCode, method, path, truncate(body))
	}
	return body, nil
}

func truncate(b []byte) string {
	const max = 200
	s := string(b)
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}
