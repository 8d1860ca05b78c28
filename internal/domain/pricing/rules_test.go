package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/kartoteka/kartoteka-api/internal/domain/pricing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyVariantMultiplier_Bolas(t *testing.T) {
	base := dec("10")

	got := pricing.ApplyVariantMultiplier(base, pricing.Variant{Pokeball: true})
	assert.True(t, dec("50").Equal(got), "Pokeball multiplica x5, fue %s", got)

	got = pricing.ApplyVariantMultiplier(base, pricing.Variant{Masterball: true})
	assert.True(t, dec("100").Equal(got), "Masterball multiplica x10, fue %s", got)

	// Masterball gana cuando están marcadas ambas.
	got = pricing.ApplyVariantMultiplier(base, pricing.Variant{Pokeball: true, Masterball: true})
	assert.True(t, dec("100").Equal(got))
}

func TestApplyVariantMultiplier_HoloReverse(t *testing.T) {
	base := dec("10")

	holo := pricing.ApplyVariantMultiplier(base, pricing.Variant{Holo: true})
	reverse := pricing.ApplyVariantMultiplier(base, pricing.Variant{Reverse: true})
	ambos := pricing.ApplyVariantMultiplier(base, pricing.Variant{Holo: true, Reverse: true})

	assert.True(t, dec("35").Equal(holo))
	assert.True(t, dec("35").Equal(reverse))
	assert.True(t, dec("35").Equal(ambos), "holo y reverse comparten recargo, no se acumulan")
}

func TestApplyVariantMultiplier_Combinado(t *testing.T) {
	// Reverse + Masterball: 10 * 3.5 * 10 = 350
	got := pricing.ApplyVariantMultiplier(dec("10"), pricing.Variant{Reverse: true, Masterball: true})
	assert.True(t, dec("350").Equal(got), "fue %s", got)
}

func TestApplyVariantMultiplier_SinVariante(t *testing.T) {
	got := pricing.ApplyVariantMultiplier(dec("12.345"), pricing.Variant{})
	assert.True(t, dec("12.35").Equal(got), "sin variante solo se redondea a 2 decimales")
}

func TestConvertEURToPLN(t *testing.T) {
	// 10 EUR * 4.265 * 1.23 = 52.4595 -> 52.46
	got := pricing.ConvertEURToPLN(dec("10"), dec("4.265"))
	assert.True(t, dec("52.46").Equal(got), "fue %s", got)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		in         string
		keepSpaces bool
		want       string
	}{
		{"Pikachu EX", false, "pikachu"},
		{"Pikachu EX", true, "pikachu"},
		// " v" se reemplaza antes que " vmax": ambos lados de una comparación
		// pasan por la misma normalización, así que el resultado es consistente.
		{"Charizard VMAX", false, "charizardmax"},
		{"Mr. Mime", false, "mr.mime"},
		{"Ho-Oh V", false, "hooh"},
		{"Iron Hands ex", true, "iron hands"},
		{"", false, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, pricing.Normalize(c.in, c.keepSpaces),
			"normalize(%q, keepSpaces=%v)", c.in, c.keepSpaces)
	}
}
