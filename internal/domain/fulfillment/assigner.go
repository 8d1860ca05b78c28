// Package fulfillment asigna ubicaciones físicas de almacén a las líneas de
// pedido, eligiendo el conjunto de copias más agrupado para minimizar el
// recorrido del operador que recoge las cartas.
package fulfillment

import (
	"sort"
	"strings"

	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	"github.com/kartoteka/kartoteka-api/internal/domain/storage"
)

// LocationOption una copia física disponible de un producto.
type LocationOption struct {
	Loc  storage.Location
	Code string
}

// Manhattan distancia |Δcartón| + |Δcolumna| + |Δposición| entre dos ubicaciones.
func Manhattan(a, b storage.Location) int {
	return abs(a.Box-b.Box) + abs(a.Column-b.Column) + abs(a.Position-b.Position)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ChooseNearestLocations asigna códigos de almacén a cada línea de cada pedido,
// mutando los pedidos en el sitio.
//
// La disponibilidad se agrupa por product_code a partir del snapshot y se
// consume entre pedidos del mismo lote: dos pedidos nunca reciben la misma
// copia física. Una línea sin disponibilidad queda sin asignar (no es error:
// se sirve de otro origen o queda pendiente).
func ChooseNearestLocations(orders []*entity.Order, rows []*entity.InventoryRow) {
	available := buildAvailability(rows)

	for _, order := range orders {
		if order == nil {
			continue
		}
		for i := range order.Products {
			item := &order.Products[i]
			prod := item.ProductID()
			qty := item.Quantity
			if qty < 1 {
				qty = 1
			}
			options := available[prod]
			if len(options) == 0 {
				continue
			}
			// Orden base estable por código antes de optimizar.
			sort.Slice(options, func(a, b int) bool {
				return options[a].Code < options[b].Code
			})
			chosen := BestCodes(options, qty)
			available[prod] = consume(options, chosen)
			if len(chosen) > 0 {
				item.WarehouseCode = strings.Join(chosen, ";")
			}
		}
	}
}

// BestCodes elige min(qty, len(options)) ubicaciones. Para qty <= 1 toma la
// primera opción (la lista ya viene ordenada, así que es determinista). Para
// qty > 1 enumera todas las combinaciones y devuelve la de menor suma de
// distancias Manhattan entre pares: el grupo físico más compacto. El coste es
// C(n, k); en la práctica la disponibilidad por producto es pequeña.
func BestCodes(options []LocationOption, qty int) []string {
	if len(options) == 0 {
		return nil
	}
	if qty <= 1 {
		return []string{options[0].Code}
	}

	k := qty
	if k > len(options) {
		k = len(options)
	}

	var best []string
	bestCost := -1
	combo := make([]int, k)

	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == k {
			cost := 0
			for i := 0; i < k; i++ {
				for j := i + 1; j < k; j++ {
					cost += Manhattan(options[combo[i]].Loc, options[combo[j]].Loc)
				}
			}
			if bestCost < 0 || cost < bestCost {
				bestCost = cost
				best = make([]string, k)
				for i, idx := range combo {
					best[i] = options[idx].Code
				}
			}
			return
		}
		for i := start; i <= len(options)-(k-depth); i++ {
			combo[depth] = i
			walk(i+1, depth+1)
		}
	}
	walk(0, 0)

	return best
}

func buildAvailability(rows []*entity.InventoryRow) map[string][]LocationOption {
	available := make(map[string][]LocationOption)
	for _, row := range rows {
		if row == nil {
			continue
		}
		prod := row.ProductCode
		for _, code := range row.Codes() {
			l, ok := storage.Decode(code)
			if !ok {
				continue
			}
			available[prod] = append(available[prod], LocationOption{Loc: l, Code: code})
		}
	}
	return available
}

func consume(options []LocationOption, chosen []string) []LocationOption {
	taken := make(map[string]struct{}, len(chosen))
	for _, c := range chosen {
		taken[c] = struct{}{}
	}
	remaining := options[:0:0]
	for _, o := range options {
		if _, ok := taken[o.Code]; !ok {
			remaining = append(remaining, o)
		}
	}
	return remaining
}
