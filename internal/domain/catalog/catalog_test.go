package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartoteka/kartoteka-api/internal/domain/catalog"
)

func TestCatalog_SetCode(t *testing.T) {
	c := catalog.New()
	c.ReplaceAll([]catalog.Set{
		{Name: "Scarlet & Violet", Code: "SVI"},
		{Name: "Paldea Evolved", Code: "PAL"},
	})

	code, ok := c.SetCode("Scarlet & Violet")
	require.True(t, ok)
	assert.Equal(t, "SVI", code)
}

func TestCatalog_BusquedaNormalizada(t *testing.T) {
	c := catalog.New()
	c.ReplaceAll([]catalog.Set{{Name: "Paldea Evolved", Code: "PAL"}})

	code, ok := c.SetCode("  PALDEA EVOLVED ")
	require.True(t, ok)
	assert.Equal(t, "PAL", code)

	_, ok = c.SetCode("Obsidian Flames")
	assert.False(t, ok)
}

func TestCatalog_AddNoDuplica(t *testing.T) {
	c := catalog.New()
	require.True(t, c.Add(catalog.Set{Name: "151", Code: "MEW"}))
	assert.False(t, c.Add(catalog.Set{Name: "151", Code: "OTRO"}))
	assert.Equal(t, 1, c.Len())

	code, _ := c.SetCode("151")
	assert.Equal(t, "MEW", code, "el primer alta gana")
}

func TestCatalog_ReplaceAllSustituye(t *testing.T) {
	c := catalog.New()
	c.ReplaceAll([]catalog.Set{{Name: "A", Code: "A1"}})
	c.ReplaceAll([]catalog.Set{{Name: "B", Code: "B1"}})

	assert.Equal(t, 1, c.Len())
	_, ok := c.SetCode("A")
	assert.False(t, ok)
}
