package entity

// Order pedido proveniente de la plataforma de comercio (Shoper).
// El origen es un colaborador externo; aquí solo consumimos la estructura.
type Order struct {
	ID       string
	Products []OrderItem
}

// OrderItem línea de pedido. ProductCode identifica el producto (con Code como
// alternativa en payloads antiguos). Tras la asignación de almacén el campo
// WarehouseCode lista las ubicaciones elegidas unidas por ';'.
type OrderItem struct {
	ProductCode   string
	Code          string
	Name          string
	Quantity      int
	WarehouseCode string
}

// ProductID devuelve el identificador efectivo del producto: ProductCode si está
// presente, si no Code. Vacío significa línea no identificable (se deja sin asignar).
func (it *OrderItem) ProductID() string {
	if it.ProductCode != "" {
		return it.ProductCode
	}
	return it.Code
}
