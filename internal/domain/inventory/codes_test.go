package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartoteka/kartoteka-api/internal/domain/inventory"
)

func TestProductCodeRegistry_EmisionMonotona(t *testing.T) {
	r := inventory.NewProductCodeRegistry()

	assert.Equal(t, 1, r.Assign("Pikachu|1|Base", ""))
	assert.Equal(t, 2, r.Assign("Charizard|4|Base", ""))
	assert.Equal(t, 3, r.Next())
}

func TestProductCodeRegistry_Estable(t *testing.T) {
	r := inventory.NewProductCodeRegistry()

	first := r.Assign("Pikachu|1|Base", "")
	second := r.Assign("Pikachu|1|Base", "")
	assert.Equal(t, first, second, "la misma clave siempre recibe el mismo código")

	// Un explícito posterior no puede pisar un código ya emitido.
	third := r.Assign("Pikachu|1|Base", "99")
	assert.Equal(t, first, third)
}

func TestProductCodeRegistry_ReservaExplicito(t *testing.T) {
	r := inventory.NewProductCodeRegistry()

	assert.Equal(t, 50, r.Assign("Mew|151|Base", "50"))
	// El contador saltó por encima del reservado.
	assert.Equal(t, 51, r.Assign("Mewtwo|150|Base", ""))
	assert.Equal(t, 52, r.Next())
}

func TestProductCodeRegistry_ExplicitoBajoNoRetrocedeContador(t *testing.T) {
	r := inventory.NewProductCodeRegistry()
	r.Assign("a|1|x", "")
	r.Assign("b|2|x", "")
	require.Equal(t, 3, r.Next())

	assert.Equal(t, 1, r.Assign("c|3|x", "1"), "un explícito bajo se reserva tal cual")
	assert.Equal(t, 3, r.Next(), "pero el contador no retrocede")
}

func TestProductCodeRegistry_ExplicitoNoNumerico(t *testing.T) {
	r := inventory.NewProductCodeRegistry()

	// Códigos de ubicación, vacíos o decimales no cuentan como explícitos.
	for _, explicit := range []string{"K1R1P1", "", "-3", "1.0", " 7"} {
		r = inventory.NewProductCodeRegistry()
		assert.Equal(t, 1, r.Assign("x|y|z", explicit), "explicit=%q", explicit)
	}
}

func TestProductCodeRegistry_Lookup(t *testing.T) {
	r := inventory.NewProductCodeRegistry()
	_, ok := r.Lookup("nadie")
	assert.False(t, ok)

	r.Assign("Pikachu|1|Base", "")
	code, ok := r.Lookup("Pikachu|1|Base")
	require.True(t, ok)
	assert.Equal(t, 1, code)
	assert.Equal(t, 1, r.Len())
}
