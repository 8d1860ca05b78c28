package dto

// CardRecognitionDTO resultado del reconocimiento de una foto de carta.
type CardRecognitionDTO struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Set    string `json:"set,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// RecognizeRequest imagen a reconocer, codificada en base64.
type RecognizeRequest struct {
	Image string `json:"image"`
}

// IntakeRequest alta de una carta física en el almacén.
type IntakeRequest struct {
	Name       string `json:"name"`
	Number     string `json:"number"`
	Set        string `json:"set"`
	Suffix     string `json:"suffix,omitempty"`
	Holo       bool   `json:"holo,omitempty"`
	Reverse    bool   `json:"reverse,omitempty"`
	Pokeball   bool   `json:"pokeball,omitempty"`
	Masterball bool   `json:"masterball,omitempty"`
	// PriceEUR fuerza el precio de mercado; vacío significa consultarlo.
	PriceEUR string `json:"price_eur,omitempty"`
	Image    string `json:"image,omitempty"`
}

// IntakeResponse resultado del alta: la ubicación asignada, el código de
// producto emitido y el precio final en PLN.
type IntakeResponse struct {
	WarehouseCode string `json:"warehouse_code"`
	Description   string `json:"description"`
	ProductCode   string `json:"product_code"`
	Name          string `json:"name"`
	PricePLN      string `json:"price_pln"`
	ImageURL      string `json:"image_url,omitempty"`
}
