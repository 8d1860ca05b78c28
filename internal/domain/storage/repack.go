package storage

import (
	"sort"

	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
)

// RepackColumn renumera todas las posiciones ocupadas de la columna (box, column)
// para que queden contiguas desde 1, preservando el orden relativo actual.
// Muta las filas en el sitio; los códigos de otras columnas de la misma fila
// quedan intactos y en su orden original. Llamarla sobre una columna ya
// contigua es un no-op.
func RepackColumn(rows []*entity.InventoryRow, box, column int) {
	type slotRef struct {
		pos   int
		row   *entity.InventoryRow
		idx   int      // posición del código dentro de la lista de la fila
		codes []string // lista compartida por todas las entradas de la fila
	}

	var entries []slotRef
	for _, row := range rows {
		if row == nil {
			continue
		}
		codes := row.Codes()
		for i, code := range codes {
			l, ok := Decode(code)
			if !ok || l.Box != box || l.Column != column {
				continue
			}
			entries = append(entries, slotRef{pos: l.Position, row: row, idx: i, codes: codes})
		}
	}

	// Orden estable: ante posiciones duplicadas (misma posición reclamada dos
	// veces, no debería pasar) gana el orden de recorrido de filas.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].pos < entries[j].pos
	})

	for newPos, e := range entries {
		e.codes[e.idx] = Format(box, column, newPos+1)
		e.row.SetCodes(e.codes)
	}
}

// RemoveWarehouseCode retira una copia física: elimina la primera ocurrencia
// exacta del código en el snapshot (borrando la fila si era su último código)
// y reempaqueta siempre la columna afectada, de modo que ninguna consulta
// posterior tenga que tratar huecos. Devuelve el snapshot resultante y si se
// eliminó algo. Un código malformado no hace nada.
func RemoveWarehouseCode(rows []*entity.InventoryRow, code string) ([]*entity.InventoryRow, bool) {
	l, ok := Decode(code)
	if !ok {
		return rows, false
	}

	removed := false
	for i, row := range rows {
		if row == nil {
			continue
		}
		codes := row.Codes()
		for j, c := range codes {
			if c != code {
				continue
			}
			codes = append(codes[:j], codes[j+1:]...)
			if len(codes) == 0 {
				rows = append(rows[:i], rows[i+1:]...)
			} else {
				row.SetCodes(codes)
			}
			removed = true
			break
		}
		if removed {
			break
		}
	}

	RepackColumn(rows, l.Box, l.Column)
	return rows, removed
}
