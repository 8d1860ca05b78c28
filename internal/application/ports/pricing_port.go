package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
)

// CardPriceProvider define el puerto de salida hacia el proveedor de precios
// de mercado. Devuelve el precio en EUR y los recursos gráficos de la carta.
type CardPriceProvider interface {
	// LookupCard busca una carta por nombre y número, restringida a la
	// expansión si setCode no está vacío. Una carta sin precio publicado no
	// es un error: PriceEUR viene vacío.
	LookupCard(ctx context.Context, name, number, setCode string) (*dto.CardPriceDTO, error)
}

// ExchangeRateProvider define el puerto de salida para el tipo de cambio.
type ExchangeRateProvider interface {
	// EURPLN devuelve el tipo medio EUR/PLN vigente. Las implementaciones
	// deben degradar a un valor de respaldo si el proveedor no responde.
	EURPLN(ctx context.Context) decimal.Decimal
}
