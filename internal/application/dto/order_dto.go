package dto

// OrderItemResponse una línea de pedido con sus ubicaciones asignadas.
type OrderItemResponse struct {
	ProductCode   string `json:"product_code"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	WarehouseCode string `json:"warehouse_code,omitempty"`
}

// OrderAssignmentResponse un pedido con todas sus líneas resueltas.
type OrderAssignmentResponse struct {
	OrderID string              `json:"order_id"`
	Items   []OrderItemResponse `json:"items"`
}

// AssignResponse resultado de asignar ubicaciones a los pedidos nuevos.
type AssignResponse struct {
	Orders     []OrderAssignmentResponse `json:"orders"`
	Unassigned int                       `json:"unassigned"`
}
