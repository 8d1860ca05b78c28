package inventory_test

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appinv "github.com/kartoteka/kartoteka-api/internal/application/inventory"
	dominv "github.com/kartoteka/kartoteka-api/internal/domain/inventory"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvio"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

func newMerger() *appinv.Merger {
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return appinv.NewMerger(dominv.NewProductCodeRegistry(), log)
}

func parse(t *testing.T, content string) *csvio.Table {
	t.Helper()
	table, err := csvio.ReadTable(strings.NewReader(content))
	require.NoError(t, err)
	return table
}

func TestMerge_FilasDuplicadasSeFunden(t *testing.T) {
	m := newMerger()
	res := m.MergeTables([]*csvio.Table{parse(t,
		"nazwa;numer;set;stock\n"+
			"Pikachu;1;Base;1\n"+
			"Pikachu;1;Base;2\n"+
			"Charizard;4;Base;1\n",
	)})

	require.Len(t, res.Rows, 2)
	assert.Equal(t, 3, res.Rows[0].Qty, "las cantidades de los duplicados se suman")
	assert.Equal(t, "stock", res.QtyField)
	assert.Equal(t, "1", res.Rows[0].ProductCode)
	assert.Equal(t, "2", res.Rows[1].ProductCode)
}

// TestMerge_ConmutativaEnCantidad fusionar A(1) y A(2) en cualquier orden da qty=3.
func TestMerge_ConmutativaEnCantidad(t *testing.T) {
	a := "nazwa;numer;set;stock\nPikachu;1;Base;1\n"
	b := "nazwa;numer;set;stock\nPikachu;1;Base;2\n"

	r1 := newMerger().MergeTables([]*csvio.Table{parse(t, a), parse(t, b)})
	r2 := newMerger().MergeTables([]*csvio.Table{parse(t, b), parse(t, a)})

	require.Len(t, r1.Rows, 1)
	require.Len(t, r2.Rows, 1)
	assert.Equal(t, 3, r1.Rows[0].Qty)
	assert.Equal(t, r1.Rows[0].Qty, r2.Rows[0].Qty)
}

// TestMerge_EscenarioDosArchivos el mismo producto en dos archivos con códigos
// de almacén distintos: una sola fila con ambos códigos unidos y qty=2.
func TestMerge_EscenarioDosArchivos(t *testing.T) {
	m := newMerger()
	res := m.MergeTables([]*csvio.Table{
		parse(t, "nazwa;numer;set;warehouse_code;ilość\nPikachu;1;Base;K01R1P0001;1\n"),
		parse(t, "nazwa;numer;set;warehouse_code;ilość\nPikachu;1;Base;K01R1P0002;1\n"),
	})

	require.Len(t, res.Rows, 1)
	row := res.Rows[0]
	assert.Equal(t, "K01R1P0001;K01R1P0002", row.WarehouseCode)
	assert.Equal(t, 2, row.Qty)
	assert.Equal(t, "ilość", res.QtyField)
}

// TestMerge_CodigosEstables repetir la fusión de los mismos archivos produce
// los mismos product_code para las mismas claves de identidad.
func TestMerge_CodigosEstables(t *testing.T) {
	a := "nazwa;numer;set;stock\nPikachu;1;Base;1\nCharizard;4;Base;1\n"
	b := "nazwa;numer;set;stock\nMew;151;Base;1\nPikachu;1;Base;1\n"

	m := newMerger()
	first := m.MergeTables([]*csvio.Table{parse(t, a), parse(t, b)})
	second := m.MergeTables([]*csvio.Table{parse(t, a), parse(t, b)})

	codes := func(res *appinv.MergeResult) map[string]string {
		out := make(map[string]string)
		for _, r := range res.Rows {
			out[r.Key()] = r.ProductCode
		}
		return out
	}
	assert.Equal(t, codes(first), codes(second),
		"el registro compartido garantiza códigos idénticos entre pasadas")
}

// TestMerge_FormatoLegado un product_code con forma de código de ubicación se
// reinterpreta como warehouse_code y el campo se limpia (exports antiguos que
// confundían los dos conceptos).
func TestMerge_FormatoLegado(t *testing.T) {
	m := newMerger()
	res := m.MergeTables([]*csvio.Table{parse(t,
		"product_code;nazwa;numer;set;stock\n"+
			"K1R1P1;Pikachu;1;Base;1\n"+
			"K1R1P1;Pikachu;1;Base;1\n",
	)})

	require.Len(t, res.Rows, 1)
	row := res.Rows[0]
	assert.Equal(t, "K1R1P1", row.WarehouseCode, "el código legado se conserva tal cual, sin canonicalizar")
	assert.Equal(t, "1", row.ProductCode, "el registro emite un código nuevo")
	assert.Equal(t, 2, row.Qty)
	assert.Contains(t, res.Header, "warehouse_code")
}

func TestMerge_CodigoExplicitoSeReserva(t *testing.T) {
	registry := dominv.NewProductCodeRegistry()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	m := appinv.NewMerger(registry, log)

	res := m.MergeTables([]*csvio.Table{parse(t,
		"product_code;nazwa;numer;set;stock\n"+
			"40;Mew;151;Base;1\n"+
			";Mewtwo;150;Base;1\n",
	)})

	require.Len(t, res.Rows, 2)
	assert.Equal(t, "40", res.Rows[0].ProductCode)
	assert.Equal(t, "41", res.Rows[1].ProductCode, "el contador avanzó más allá del reservado")
}

func TestMerge_SinColumnaDeCantidad(t *testing.T) {
	m := newMerger()
	res := m.MergeTables([]*csvio.Table{parse(t,
		"nazwa;numer;set\nPikachu;1;Base\nPikachu;1;Base\n",
	)})

	require.Len(t, res.Rows, 1)
	assert.Equal(t, 2, res.Rows[0].Qty, "sin columna, cada fila cuenta 1")
	assert.Equal(t, "ilość", res.QtyField, "se sintetiza la columna de salida")
	assert.Contains(t, res.Header, "ilość")
}

func TestMerge_CantidadNoNumerica(t *testing.T) {
	m := newMerger()
	res := m.MergeTables([]*csvio.Table{parse(t,
		"nazwa;numer;set;qty\nPikachu;1;Base;muchas\n",
	)})
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 1, res.Rows[0].Qty, "una cantidad no parseable vale 1")
}

// TestMerge_PrimeraVarianteEnCabeceraGana con varias columnas candidatas de
// cantidad gana la primera en el orden físico de la cabecera.
func TestMerge_PrimeraVarianteEnCabeceraGana(t *testing.T) {
	m := newMerger()
	res := m.MergeTables([]*csvio.Table{parse(t,
		"nazwa;numer;set;quantity;stock\nPikachu;1;Base;5;9\n",
	)})
	assert.Equal(t, "quantity", res.QtyField)
	assert.Equal(t, 5, res.Rows[0].Qty)
}

func TestMerge_ColumnasDesconocidasPasanSinCambios(t *testing.T) {
	m := newMerger()
	res := m.MergeTables([]*csvio.Table{parse(t,
		"nazwa;numer;set;stock;kolor;Images 1\nPikachu;1;Base;1;amarillo;http://img/p.png\n",
	)})

	require.Len(t, res.Rows, 1)
	assert.Equal(t, "amarillo", res.Rows[0].ExtraField("kolor"))
	assert.Equal(t, "http://img/p.png", res.Rows[0].Image, `"Images 1" se normaliza a image1`)

	var buf bytes.Buffer
	require.NoError(t, m.WriteResult(&buf, res))
	out := buf.String()
	assert.Contains(t, out, "images 1", "la columna de imagen recupera su nombre de display")
	assert.Contains(t, out, "amarillo")
}

func TestMerge_EntradaConComas(t *testing.T) {
	m := newMerger()
	res := m.MergeTables([]*csvio.Table{parse(t,
		"nazwa,numer,set,stock\nPikachu,1,Base,2\n",
	)})
	require.Len(t, res.Rows, 1)
	assert.Equal(t, 2, res.Rows[0].Qty, "el delimitador ',' se detecta automáticamente")
}

func TestMergeFiles_ArchivoAusenteSeOmite(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(existing,
		[]byte("nazwa;numer;set;stock\nPikachu;1;Base;1\n"), 0o644))

	m := newMerger()
	res, err := m.MergeFiles([]string{
		filepath.Join(dir, "no-existe.csv"),
		existing,
	})
	require.NoError(t, err, "un archivo ausente es advertencia, no error")
	assert.Len(t, res.Skipped, 1)
	assert.Len(t, res.Rows, 1)
}

// TestMerge_SalidaRoundTrip la salida usa ';' y puede releerse con el mismo lector.
func TestMerge_SalidaRoundTrip(t *testing.T) {
	m := newMerger()
	res := m.MergeTables([]*csvio.Table{parse(t,
		"nazwa;numer;set;warehouse_code;ilość\nPikachu;1;Base;K01R1P0001;2\n",
	)})

	var buf bytes.Buffer
	require.NoError(t, m.WriteResult(&buf, res))

	cr := csv.NewReader(strings.NewReader(buf.String()))
	cr.Comma = ';'
	records, err := cr.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	reread := m.MergeTables([]*csvio.Table{parse(t, buf.String())})
	require.Len(t, reread.Rows, 1)
	assert.Equal(t, 2, reread.Rows[0].Qty)
	assert.Equal(t, "K01R1P0001", reread.Rows[0].WarehouseCode)
}
