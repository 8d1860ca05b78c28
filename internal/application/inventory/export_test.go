package inventory_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/kartoteka/kartoteka-api/internal/application/inventory"
	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
)

func exportRows(t *testing.T, rows []*entity.InventoryRow) [][]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, appinv.ExportShoperCSV(&buf, rows))
	cr := csv.NewReader(strings.NewReader(buf.String()))
	cr.Comma = ';'
	records, err := cr.ReadAll()
	require.NoError(t, err)
	return records
}

func TestExportShoper_CabeceraYValoresPorDefecto(t *testing.T) {
	row := &entity.InventoryRow{Name: "Pikachu", Number: "1", Set: "Base", Qty: 3, ProductCode: "7"}
	records := exportRows(t, []*entity.InventoryRow{row})

	require.Len(t, records, 2)
	header := records[0]
	assert.Equal(t, "product_code", header[0])
	assert.Contains(t, header, "vat")
	assert.Contains(t, header, "unit")

	idx := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("columna %q ausente", name)
		return -1
	}
	out := records[1]
	assert.Equal(t, "Pikachu 1", out[idx("name")], "el nombre compone nazwa y numer")
	assert.Equal(t, "3", out[idx("stock")])
	assert.Equal(t, "23%", out[idx("vat")])
	assert.Equal(t, "szt.", out[idx("unit")])
	assert.Equal(t, "1", out[idx("active")])
}

func TestExportShoper_ColapsaDuplicados(t *testing.T) {
	rows := []*entity.InventoryRow{
		{Name: "Mew", Number: "151", Set: "Base", Qty: 1},
		{Name: "Mew", Number: "151", Set: "Base", Qty: 2},
	}
	records := exportRows(t, rows)
	require.Len(t, records, 2, "una sola fila por clave de identidad")

	var stockIdx int
	for i, h := range records[0] {
		if h == "stock" {
			stockIdx = i
		}
	}
	assert.Equal(t, "3", records[1][stockIdx])
}

func TestExportShoper_SufijoEnElNombre(t *testing.T) {
	row := &entity.InventoryRow{Name: "Charizard", Number: "4", Set: "Base", Suffix: "holo", Qty: 1}
	records := exportRows(t, []*entity.InventoryRow{row})
	assert.Contains(t, strings.Join(records[1], ";"), "Charizard holo 4")
}
