package dto

// SetResponse una expansión del catálogo con su código corto.
type SetResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// CatalogResponse catálogo completo de expansiones.
type CatalogResponse struct {
	Sets  []SetResponse `json:"sets"`
	Total int           `json:"total"`
}

// CatalogUpdateResponse resumen de una actualización del catálogo remoto.
type CatalogUpdateResponse struct {
	Added int `json:"added"`
	Total int `json:"total"`
}
