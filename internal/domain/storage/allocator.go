package storage

import (
	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
)

// NextFreeLocation devuelve el código del menor índice lineal libre >= startIdx,
// o cadena vacía si no queda ningún hueco dentro de la geometría configurada.
//
// startIdx permite al operador retomar el archivado en un punto físico
// arbitrario (p. ej. mitad de un cartón): los huecos libres por debajo del
// piso nunca se devuelven, porque un operador que recorre el almacén en orden
// no debe recibir una posición detrás de donde está parado.
//
// Se reescanea el snapshot completo en cada llamada: las filas mutan entre
// llamadas (reempaquetado, retiradas, archivados nuevos) y un caché silencioso
// reintroduciría la clase de bugs de estado rancio que este diseño evita.
func NextFreeLocation(rows []*entity.InventoryRow, dims Dimensions, startIdx int) string {
	if startIdx < 0 {
		startIdx = 0
	}

	used := make(map[int]struct{})
	for _, row := range rows {
		if row == nil {
			continue
		}
		for _, code := range row.Codes() {
			l, ok := Decode(code)
			if !ok {
				continue
			}
			used[dims.Index(l)] = struct{}{}
		}
	}

	for idx := startIdx; idx < dims.Capacity(); idx++ {
		if _, taken := used[idx]; !taken {
			return dims.Encode(idx)
		}
	}
	return ""
}
