// Package pricing reglas de precio del dominio: multiplicadores por variante,
// conversión EUR->PLN con margen y normalización de nombres para consultas.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Multiplicadores de variante. Masterball tiene prioridad sobre Pokeball.
var (
	// PriceMultiplier margen aplicado sobre el precio Cardmarket convertido a PLN.
	PriceMultiplier = decimal.NewFromFloat(1.23)
	// HoloReverseMultiplier recargo para cartas holo o reverse holo.
	HoloReverseMultiplier = decimal.NewFromFloat(3.5)
	// PokeballMultiplier recargo para la variante Pokeball.
	PokeballMultiplier = decimal.NewFromInt(5)
	// MasterballMultiplier recargo para la variante Masterball.
	MasterballMultiplier = decimal.NewFromInt(10)
)

// Variant banderas de variante de una carta física.
type Variant struct {
	Reverse    bool
	Holo       bool
	Pokeball   bool
	Masterball bool
}

// ApplyVariantMultiplier aplica los recargos de variante al precio base y
// redondea a 2 decimales. Holo y reverse comparten recargo (no se acumulan
// entre sí); Masterball gana sobre Pokeball.
func ApplyVariantMultiplier(price decimal.Decimal, v Variant) decimal.Decimal {
	mult := decimal.NewFromInt(1)
	if v.Reverse || v.Holo {
		mult = mult.Mul(HoloReverseMultiplier)
	}
	switch {
	case v.Masterball:
		mult = mult.Mul(MasterballMultiplier)
	case v.Pokeball:
		mult = mult.Mul(PokeballMultiplier)
	}
	return price.Mul(mult).Round(2)
}

// ConvertEURToPLN convierte un precio Cardmarket en EUR a PLN aplicando el
// tipo de cambio y el margen de la tienda, redondeado a 2 decimales.
func ConvertEURToPLN(priceEUR, eurPLN decimal.Decimal) decimal.Decimal {
	return priceEUR.Mul(eurPLN).Mul(PriceMultiplier).Round(2)
}

// suffixes de carta que se descartan al comparar nombres contra el API.
var nameSuffixes = []string{" ex", " gx", " v", " vmax", " vstar", " shiny", " promo"}

// Normalize prepara un nombre de carta para comparaciones y consultas al API:
// descomposición NFKD, minúsculas, sin sufijos de variante ni guiones.
// keepSpaces conserva los espacios (forma usada en los parámetros de búsqueda).
func Normalize(text string, keepSpaces bool) string {
	if text == "" {
		return ""
	}
	text = norm.NFKD.String(text)
	text = strings.ToLower(text)
	for _, suffix := range nameSuffixes {
		text = strings.ReplaceAll(text, suffix, "")
	}
	text = strings.ReplaceAll(text, "-", "")
	if !keepSpaces {
		text = strings.ReplaceAll(text, " ", "")
	}
	return strings.TrimSpace(text)
}
