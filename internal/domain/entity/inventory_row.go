package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// InventoryRow representa un producto del snapshot de inventario (una carta distinta).
// Los campos reconocidos tienen nombre propio; todo lo demás que traiga un CSV se
// conserva sin interpretar en Extra para que los exports de ida y vuelta no pierdan columnas.
type InventoryRow struct {
	Name   string // columna "nazwa"
	Number string // columna "numer"
	Set    string
	Suffix string // EX, GX, V, VMAX, VSTAR, Shiny, Promo

	// ProductCode es el identificador numérico estable emitido por el registro de
	// códigos. Se mantiene como string porque los exports antiguos traían aquí el
	// código de ubicación (el detector de formato legado lo reubica).
	ProductCode string

	// WarehouseCode contiene cero o más códigos de ubicación unidos por ';'.
	// Cada código representa una copia física de la carta.
	WarehouseCode string

	Qty   int
	Price string // columna "cena"; se conserva textual, la aritmética usa decimal
	Image string // columna "images 1" / "image1"

	// Extra conserva las columnas no reconocidas; el orden no importa aquí,
	// la cabecera del archivo decide el orden al reescribir.
	Extra map[string]string
}

// Columnas con campo propio en InventoryRow; todo lo demás pasa a Extra.
var recognizedColumns = map[string]bool{
	"nazwa":          true,
	"numer":          true,
	"set":            true,
	"suffix":         true,
	"product_code":   true,
	"warehouse_code": true,
	"cena":           true,
	"image1":         true,
	"images":         true,
}

// IsRecognizedColumn indica si la clave interna de columna tiene campo propio.
func IsRecognizedColumn(key string) bool { return recognizedColumns[key] }

// qtyColumnVariants nombres aceptados para la columna de cantidad.
var qtyColumnVariants = map[string]bool{
	"stock":    true,
	"ilość":    true,
	"ilosc":    true,
	"quantity": true,
	"qty":      true,
}

// DefaultQtyColumn columna de cantidad que se sintetiza cuando el archivo no traía una.
const DefaultQtyColumn = "ilość"

// IsQtyColumn indica si la clave interna es una variante de la columna de cantidad.
func IsQtyColumn(key string) bool { return qtyColumnVariants[key] }

// DetectQtyColumn devuelve la primera variante de cantidad en el orden físico
// de la cabecera, o "" si no hay ninguna.
func DetectQtyColumn(header []string) string {
	for _, h := range header {
		if qtyColumnVariants[h] {
			return h
		}
	}
	return ""
}

// RowFromRecord construye una fila desde un registro con claves internas de
// columna. Las dos columnas de imagen se unifican, una cantidad no parseable
// vale 1 y lo no reconocido pasa a Extra.
func RowFromRecord(raw map[string]string, qtyField string) *InventoryRow {
	img := raw["image1"]
	if img == "" {
		img = raw["images"]
	}
	qty := 1
	if qtyField != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(raw[qtyField])); err == nil {
			qty = n
		}
	}
	row := &InventoryRow{
		Name:          raw["nazwa"],
		Number:        raw["numer"],
		Set:           raw["set"],
		Suffix:        raw["suffix"],
		ProductCode:   raw["product_code"],
		WarehouseCode: strings.TrimSpace(raw["warehouse_code"]),
		Price:         raw["cena"],
		Image:         img,
		Qty:           qty,
	}
	for k, v := range raw {
		if !recognizedColumns[k] && !qtyColumnVariants[k] {
			row.SetExtraField(k, v)
		}
	}
	return row
}

// Record proyecta la fila a un registro con claves internas de columna.
// La cantidad se emite bajo qtyField.
func (r *InventoryRow) Record(qtyField string) map[string]string {
	out := make(map[string]string, len(r.Extra)+10)
	for k, v := range r.Extra {
		out[k] = v
	}
	out["nazwa"] = r.Name
	out["numer"] = r.Number
	out["set"] = r.Set
	out["suffix"] = r.Suffix
	out["product_code"] = r.ProductCode
	out["warehouse_code"] = r.WarehouseCode
	out["cena"] = r.Price
	out["image1"] = r.Image
	out["images"] = r.Image
	out[qtyField] = strconv.Itoa(r.Qty)
	return out
}

// Key devuelve la clave de identidad "name|number|set" (recortada).
// Dos filas con la misma clave son el mismo producto y se fusionan.
func (r *InventoryRow) Key() string {
	return fmt.Sprintf("%s|%s|%s",
		strings.TrimSpace(r.Name),
		strings.TrimSpace(r.Number),
		strings.TrimSpace(r.Set),
	)
}

// Codes devuelve los códigos de ubicación de la fila, recortados y sin vacíos.
func (r *InventoryRow) Codes() []string {
	if r.WarehouseCode == "" {
		return nil
	}
	parts := strings.Split(r.WarehouseCode, ";")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			codes = append(codes, p)
		}
	}
	return codes
}

// SetCodes reescribe WarehouseCode a partir de la lista dada.
func (r *InventoryRow) SetCodes(codes []string) {
	r.WarehouseCode = strings.Join(codes, ";")
}

// ExtraField devuelve un campo no reconocido ("" si no existe).
func (r *InventoryRow) ExtraField(key string) string {
	if r.Extra == nil {
		return ""
	}
	return r.Extra[key]
}

// SetExtraField guarda un campo no reconocido, creando el mapa si hace falta.
func (r *InventoryRow) SetExtraField(key, value string) {
	if r.Extra == nil {
		r.Extra = make(map[string]string)
	}
	r.Extra[key] = value
}
