package storage

import (
	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
)

// Occupancy cuenta de posiciones usadas por cartón y columna.
// Es un derivado puro del snapshot: se recalcula completo en cada consulta en
// lugar de parchearse incrementalmente, para que nunca pueda divergir de las filas.
type Occupancy map[int]map[int]int

// Count devuelve las posiciones ocupadas de la columna (0 si está fuera de rango).
func (o Occupancy) Count(box, column int) int {
	cols, ok := o[box]
	if !ok {
		return 0
	}
	return cols[column]
}

// FreePercent devuelve el porcentaje libre de la columna dada la capacidad por columna.
func (o Occupancy) FreePercent(box, column, perColumn int) float64 {
	if perColumn <= 0 {
		return 0
	}
	return float64(perColumn-o.Count(box, column)) / float64(perColumn) * 100
}

// ComputeOccupancy recorre todos los códigos de ubicación del snapshot y cuenta
// ocurrencias por (cartón, columna). Cada par dentro de la geometría arranca en 0.
// Los códigos malformados o fuera de rango se omiten en silencio: una celda mala
// no puede tumbar el cálculo de todo el almacén.
func ComputeOccupancy(rows []*entity.InventoryRow, dims Dimensions) Occupancy {
	occ := make(Occupancy, dims.Boxes)
	for b := 1; b <= dims.Boxes; b++ {
		occ[b] = make(map[int]int, dims.Columns)
		for c := 1; c <= dims.Columns; c++ {
			occ[b][c] = 0
		}
	}

	for _, row := range rows {
		if row == nil {
			continue
		}
		for _, code := range row.Codes() {
			l, ok := Decode(code)
			if !ok {
				continue
			}
			cols, ok := occ[l.Box]
			if !ok {
				continue
			}
			if _, ok := cols[l.Column]; !ok {
				continue
			}
			cols[l.Column]++
		}
	}
	return occ
}
