package dto

// CardPriceDTO datos de mercado de una carta tal como los entrega el proveedor
// de precios: precio en EUR y los recursos gráficos de la expansión.
type CardPriceDTO struct {
	PriceEUR  string `json:"price_eur"`
	ImageURL  string `json:"image_url,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
	Expansion string `json:"expansion,omitempty"`
}

// CardInfoResponse respuesta del buscador de precios: EUR de mercado, tipo de
// cambio aplicado y los dos precios en PLN (con margen y al 80%).
type CardInfoResponse struct {
	Name       string `json:"name"`
	Number     string `json:"number"`
	PriceEUR   string `json:"price_eur"`
	EURPLNRate string `json:"eur_pln_rate"`
	PricePLN   string `json:"price_pln"`
	PricePLN80 string `json:"price_pln_80"`
	ImageURL   string `json:"image_url,omitempty"`
	LogoURL    string `json:"logo_url,omitempty"`
}
