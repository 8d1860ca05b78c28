// Package inventory casos de uso del snapshot de inventario: fusión de
// exports CSV heterogéneos y export en el formato de import de Shoper.
// Es el único punto por donde entra o sale stock del libro de ubicaciones.
package inventory

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	dominv "github.com/kartoteka/kartoteka-api/internal/domain/inventory"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvio"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// legacyCodeRe detecta exports antiguos que guardaban el código de ubicación
// en la columna product_code (prefijo, insensible a mayúsculas).
var legacyCodeRe = regexp.MustCompile(`(?i)^k\d+r\d+p\d+`)

// Merger fusiona exports CSV: normaliza cabeceras, funde filas duplicadas por
// clave de identidad, suma cantidades, une conjuntos de códigos de almacén y
// emite códigos de producto estables a través del registro.
type Merger struct {
	registry *dominv.ProductCodeRegistry
	log      *logger.Logger
}

// NewMerger construye el caso de uso. El registro se comparte entre
// invocaciones para que los códigos emitidos sean estables entre imports.
func NewMerger(registry *dominv.ProductCodeRegistry, log *logger.Logger) *Merger {
	return &Merger{registry: registry, log: log}
}

// MergeResult resultado de una fusión: cabecera acumulada (claves internas en
// orden de aparición), filas fundidas y la columna de cantidad de la salida.
type MergeResult struct {
	Header   []string
	Rows     []*entity.InventoryRow
	QtyField string
	Skipped  []string // archivos de entrada ausentes (advertidos, no fatales)
}

// MergeFiles fusiona varios archivos CSV en un único snapshot. Un archivo
// inexistente se reporta como advertencia y el lote continúa con el resto.
func (m *Merger) MergeFiles(paths []string) (*MergeResult, error) {
	st := newMergeState()
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				m.log.Warn().Str("file", path).Msg("archivo de entrada ausente, se omite")
				st.skipped = append(st.skipped, path)
				continue
			}
			return nil, fmt.Errorf("abrir %s: %w", path, err)
		}
		table, err := csvio.ReadTable(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsear %s: %w", path, err)
		}
		m.mergeTable(st, table)
	}
	return m.finish(st), nil
}

// MergeTables fusiona tablas ya parseadas (la variante pura, usada por el
// handler HTTP que recibe el archivo en el cuerpo de la petición).
func (m *Merger) MergeTables(tables []*csvio.Table) *MergeResult {
	st := newMergeState()
	for _, t := range tables {
		m.mergeTable(st, t)
	}
	return m.finish(st)
}

type mergeState struct {
	header    []string
	headerSet map[string]bool
	order     []string // claves de identidad en orden de primera aparición
	merged    map[string]*mergedRow
	qtyField  string
	skipped   []string
}

type mergedRow struct {
	row        *entity.InventoryRow
	warehouses map[string]bool
}

func newMergeState() *mergeState {
	return &mergeState{
		headerSet: make(map[string]bool),
		merged:    make(map[string]*mergedRow),
	}
}

func (st *mergeState) addHeader(key string) {
	if key == "" || st.headerSet[key] {
		return
	}
	st.header = append(st.header, key)
	st.headerSet[key] = true
}

func (m *Merger) mergeTable(st *mergeState, table *csvio.Table) {
	if table == nil {
		return
	}
	for _, h := range table.Header {
		st.addHeader(h)
	}

	// Columna de cantidad de ESTE archivo: la primera variante reconocida en
	// el orden físico de su cabecera. Nunca es un error que haya varias.
	qtyField := entity.DetectQtyColumn(table.Header)
	if st.qtyField == "" {
		st.qtyField = qtyField
	}

	hasWarehouseCol := false
	for _, h := range table.Header {
		if h == "warehouse_code" {
			hasWarehouseCol = true
			break
		}
	}

	for _, raw := range table.Rows {
		// Unificar las dos columnas de imagen.
		img := raw["image1"]
		if img == "" {
			img = raw["images"]
		}
		raw["image1"] = img
		raw["images"] = img

		// Detector de formato legado: product_code que en realidad es un
		// código de ubicación.
		if !hasWarehouseCol && legacyCodeRe.MatchString(raw["product_code"]) {
			raw["warehouse_code"] = raw["product_code"]
			raw["product_code"] = ""
			st.addHeader("warehouse_code")
		}

		key := identityKey(raw)

		qty := 1
		if qtyField != "" {
			if n, err := strconv.Atoi(strings.TrimSpace(raw[qtyField])); err == nil {
				qty = n
			}
		}

		warehouse := strings.TrimSpace(raw["warehouse_code"])

		if mr, ok := st.merged[key]; ok {
			mr.row.Qty += qty
			addCodes(mr.warehouses, warehouse)
			continue
		}

		mr := &mergedRow{
			row: &entity.InventoryRow{
				Name:        raw["nazwa"],
				Number:      raw["numer"],
				Set:         raw["set"],
				Suffix:      raw["suffix"],
				ProductCode: raw["product_code"],
				Price:       raw["cena"],
				Image:       img,
				Qty:         qty,
			},
			warehouses: make(map[string]bool),
		}
		addCodes(mr.warehouses, warehouse)
		for k, v := range raw {
			if !entity.IsRecognizedColumn(k) && !entity.IsQtyColumn(k) {
				mr.row.SetExtraField(k, v)
			}
		}
		st.merged[key] = mr
		st.order = append(st.order, key)
	}
}

func (m *Merger) finish(st *mergeState) *MergeResult {
	rows := make([]*entity.InventoryRow, 0, len(st.order))
	for _, key := range st.order {
		mr := st.merged[key]

		codes := make([]string, 0, len(mr.warehouses))
		for c := range mr.warehouses {
			codes = append(codes, c)
		}
		sort.Strings(codes)
		mr.row.SetCodes(codes)
		if len(codes) > 0 {
			st.addHeader("warehouse_code")
		}

		code := m.registry.Assign(key, strings.TrimSpace(mr.row.ProductCode))
		mr.row.ProductCode = strconv.Itoa(code)

		rows = append(rows, mr.row)
	}

	qtyField := st.qtyField
	if qtyField == "" {
		qtyField = entity.DefaultQtyColumn
	}
	st.addHeader(qtyField)

	return &MergeResult{
		Header:   st.header,
		Rows:     rows,
		QtyField: qtyField,
		Skipped:  st.skipped,
	}
}

// WriteResult reescribe la tabla fusionada con delimitador ';', la columna de
// cantidad restaurada a su nombre de display y los códigos de almacén unidos.
// Las columnas no reconocidas pasan sin cambios.
func (m *Merger) WriteResult(w io.Writer, res *MergeResult) error {
	display := make([]string, len(res.Header))
	for i, h := range res.Header {
		display[i] = csvio.DisplayName(h)
	}

	out := make([]map[string]string, 0, len(res.Rows))
	for _, row := range res.Rows {
		out = append(out, row.Record(res.QtyField))
	}

	return csvio.WriteTable(w, display, out, csvio.NormalizeHeader)
}

func identityKey(raw map[string]string) string {
	return fmt.Sprintf("%s|%s|%s",
		strings.TrimSpace(raw["nazwa"]),
		strings.TrimSpace(raw["numer"]),
		strings.TrimSpace(raw["set"]),
	)
}

func addCodes(set map[string]bool, cell string) {
	for _, c := range strings.Split(cell, ";") {
		c = strings.TrimSpace(c)
		if c != "" {
			set[c] = true
		}
	}
}
