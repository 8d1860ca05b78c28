package dto

// MergeRequest archivos CSV a fusionar dentro del libro de inventario.
type MergeRequest struct {
	Files []string `json:"files"`
}

// MergeResponse resumen de una fusión.
type MergeResponse struct {
	Rows     int      `json:"rows"`
	Qty      int      `json:"qty"`
	QtyField string   `json:"qty_field"`
	Skipped  []string `json:"skipped,omitempty"`
}

// InventoryRowResponse una fila del libro de inventario.
type InventoryRowResponse struct {
	Name          string            `json:"name"`
	Number        string            `json:"number"`
	Set           string            `json:"set"`
	Suffix        string            `json:"suffix,omitempty"`
	ProductCode   string            `json:"product_code"`
	WarehouseCode string            `json:"warehouse_code"`
	Qty           int               `json:"qty"`
	Price         string            `json:"price,omitempty"`
	Image         string            `json:"image,omitempty"`
	Extra         map[string]string `json:"extra,omitempty"`
}

// InventoryListResponse listado paginado del libro.
type InventoryListResponse struct {
	Items []InventoryRowResponse `json:"items"`
	Page  PageResponse           `json:"page"`
}
