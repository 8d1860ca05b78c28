package dto

// OccupancyCell ocupación de una columna física (caja + columna).
type OccupancyCell struct {
	Box      int     `json:"box"`
	Column   int     `json:"column"`
	Used     int     `json:"used"`
	Capacity int     `json:"capacity"`
	FreePct  float64 `json:"free_pct"`
}

// OccupancyResponse mapa de ocupación del almacén completo.
type OccupancyResponse struct {
	Boxes     int             `json:"boxes"`
	Columns   int             `json:"columns"`
	Positions int             `json:"positions"`
	Cells     []OccupancyCell `json:"cells"`
}

// NextFreeResponse primer hueco libre del almacén.
type NextFreeResponse struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// LocationResponse un código de ubicación descompuesto.
type LocationResponse struct {
	Code        string `json:"code"`
	Box         int    `json:"box"`
	Column      int    `json:"column"`
	Position    int    `json:"position"`
	Description string `json:"description"`
}

// RepackRequest columna a recompactar.
type RepackRequest struct {
	Box    int `json:"box"`
	Column int `json:"column"`
}

// RepackResponse resultado del recompactado.
type RepackResponse struct {
	Box    int `json:"box"`
	Column int `json:"column"`
	Slots  int `json:"slots"`
}

// RemoveCodeResponse resultado de retirar una copia física.
type RemoveCodeResponse struct {
	Code    string `json:"code"`
	Removed bool   `json:"removed"`
}
