package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	"github.com/kartoteka/kartoteka-api/internal/domain/storage"
)

func row(codes string) *entity.InventoryRow {
	return &entity.InventoryRow{WarehouseCode: codes}
}

func TestComputeOccupancy_Basico(t *testing.T) {
	rows := []*entity.InventoryRow{
		row("K01R1P0001;K01R1P0002"),
		row("K01R2P0001"),
		nil,
		row("K02R1P0001"),
	}
	occ := storage.ComputeOccupancy(rows, storage.DefaultDimensions())

	assert.Equal(t, 2, occ.Count(1, 1))
	assert.Equal(t, 1, occ.Count(1, 2))
	assert.Equal(t, 0, occ.Count(1, 3))
	assert.Equal(t, 1, occ.Count(2, 1))
}

// TestComputeOccupancy_TodasLasColumnasInicializadas cada par (cartón, columna)
// dentro de la geometría existe en el resultado aunque esté vacío.
func TestComputeOccupancy_TodasLasColumnasInicializadas(t *testing.T) {
	occ := storage.ComputeOccupancy(nil, storage.DefaultDimensions())
	require.Len(t, occ, 8)
	for b := 1; b <= 8; b++ {
		require.Len(t, occ[b], 4, "cartón %d", b)
		for c := 1; c <= 4; c++ {
			assert.Zero(t, occ[b][c])
		}
	}
}

// TestComputeOccupancy_IgnoraInvalidos los códigos malformados o fuera de la
// geometría se omiten sin afectar el resto del cálculo.
func TestComputeOccupancy_IgnoraInvalidos(t *testing.T) {
	rows := []*entity.InventoryRow{
		row("K01R1P0001;garbage;K99R1P0001;K01R9P0001"),
	}
	occ := storage.ComputeOccupancy(rows, storage.DefaultDimensions())

	assert.Equal(t, 1, occ.Count(1, 1), "solo el código válido dentro de rango cuenta")
	assert.Equal(t, 0, occ.Count(99, 1))
}

// TestComputeOccupancy_Aditividad partir los códigos de una fila en dos filas
// con subconjuntos disjuntos no cambia los totales por columna.
func TestComputeOccupancy_Aditividad(t *testing.T) {
	dims := storage.DefaultDimensions()

	junto := []*entity.InventoryRow{
		row("K01R1P0001;K01R1P0002;K01R2P0005"),
	}
	partido := []*entity.InventoryRow{
		row("K01R1P0001"),
		row("K01R1P0002;K01R2P0005"),
	}

	occA := storage.ComputeOccupancy(junto, dims)
	occB := storage.ComputeOccupancy(partido, dims)
	assert.Equal(t, occA, occB, "la ocupación es función del multiconjunto de códigos, no de las filas")
}

func TestOccupancy_FreePercent(t *testing.T) {
	rows := []*entity.InventoryRow{}
	for i := 0; i < 300; i++ {
		rows = append(rows, row(storage.Encode(i)))
	}
	occ := storage.ComputeOccupancy(rows, storage.DefaultDimensions())

	assert.InDelta(t, 70.0, occ.FreePercent(1, 1, 1000), 0.001)
	assert.InDelta(t, 100.0, occ.FreePercent(1, 2, 1000), 0.001)
	assert.Zero(t, occ.FreePercent(1, 1, 0), "capacidad inválida no divide por cero")
}
