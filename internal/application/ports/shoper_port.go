package ports

import (
	"context"

	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
)

// ShoperProduct los campos mínimos para dar de alta un producto en la tienda.
type ShoperProduct struct {
	Code        string
	Name        string
	Price       string
	Stock       int
	Delivery    int // id de la forma de envío; 0 = dejar el default de la tienda
	Description string
	ShortDesc   string
	ImageURL    string
}

// ShoperClient define el puerto de salida hacia la API REST de la tienda.
type ShoperClient interface {
	// ListNewOrders devuelve los pedidos en estado "nuevo" con sus líneas.
	ListNewOrders(ctx context.Context) ([]*entity.Order, error)
	// AddProduct crea el producto y devuelve su ID en la tienda.
	AddProduct(ctx context.Context, p ShoperProduct) (string, error)
	// FindProductID busca un producto por su código, "" si no existe.
	FindProductID(ctx context.Context, code string) (string, error)
	// UpdateStock fija el stock del producto dado.
	UpdateStock(ctx context.Context, productID string, stock int) error
}
