package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	"github.com/kartoteka/kartoteka-api/internal/domain/storage"
)

func TestNextFreeLocation_Secuencial(t *testing.T) {
	dims := storage.DefaultDimensions()
	rows := []*entity.InventoryRow{
		row("K01R1P0001"),
		nil,
		row("K01R1P0003"),
	}

	first := storage.NextFreeLocation(rows, dims, 0)
	assert.Equal(t, "K01R1P0002", first, "el hueco entre 1 y 3 es la primera posición libre")

	rows = append(rows, row(first))
	second := storage.NextFreeLocation(rows, dims, 0)
	assert.Equal(t, "K01R1P0004", second)
}

func TestNextFreeLocation_Vacio(t *testing.T) {
	assert.Equal(t, "K01R1P0001", storage.NextFreeLocation(nil, storage.DefaultDimensions(), 0))
}

// TestNextFreeLocation_PisoMonotono con startIdx en el cartón 2, ninguna
// posición del cartón 1 se devuelve aunque esté libre: un operador avanzando
// físicamente nunca recibe una posición detrás de donde está.
func TestNextFreeLocation_PisoMonotono(t *testing.T) {
	dims := storage.DefaultDimensions()
	rows := []*entity.InventoryRow{
		row("K02R1P0001"),
	}

	start, ok := storage.Decode("K02R1P0001")
	require.True(t, ok)

	got := storage.NextFreeLocation(rows, dims, dims.Index(start))
	assert.Equal(t, "K02R1P0002", got, "el hueco K01... queda por debajo del piso y se ignora")

	l, ok := storage.Decode(got)
	require.True(t, ok)
	assert.GreaterOrEqual(t, l.Box, 2, "nunca se devuelve un cartón por debajo del piso")
}

func TestNextFreeLocation_SaltaOcupadosSobreElPiso(t *testing.T) {
	dims := storage.DefaultDimensions()
	rows := []*entity.InventoryRow{
		row("K02R1P0001;K02R1P0002;K02R1P0003"),
	}
	start, _ := storage.Decode("K02R1P0001")

	got := storage.NextFreeLocation(rows, dims, dims.Index(start))
	assert.Equal(t, "K02R1P0004", got)
}

// TestNextFreeLocation_AlmacenLleno sin huecos dentro de la geometría el
// resultado es cadena vacía: nunca se inventa una posición fuera del almacén.
func TestNextFreeLocation_AlmacenLleno(t *testing.T) {
	dims := storage.Dimensions{Boxes: 1, Columns: 1, Positions: 2}
	rows := []*entity.InventoryRow{
		row("K01R1P0001"),
		row("K01R1P0002"),
	}

	assert.Empty(t, storage.NextFreeLocation(rows, dims, 0), "almacén lleno no tiene próxima posición")
	assert.Empty(t, storage.NextFreeLocation(nil, dims, dims.Capacity()),
		"un piso en la capacidad o más allá tampoco devuelve posición")
}

func TestNextFreeLocation_StartNegativoSeNormaliza(t *testing.T) {
	got := storage.NextFreeLocation(nil, storage.DefaultDimensions(), -5)
	assert.Equal(t, "K01R1P0001", got)
}

// TestNextFreeLocation_CodigosLegados los códigos sin relleno ocupan el mismo
// índice que su forma canónica.
func TestNextFreeLocation_CodigosLegados(t *testing.T) {
	rows := []*entity.InventoryRow{
		row("K1R1P1"),
	}
	got := storage.NextFreeLocation(rows, storage.DefaultDimensions(), 0)
	assert.Equal(t, "K01R1P0002", got)
}
