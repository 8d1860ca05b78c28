// Package csvio lectura y escritura de las tablas CSV del inventario.
// La entrada acepta ';' o ',' (auto-detectado) y exports antiguos en
// Windows-1250; la salida es siempre ';' en UTF-8. Este contrato de
// delimitadores y cabeceras es parte de la superficie de interoperabilidad
// con las hojas de cálculo de la tienda.
package csvio

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// sniffWindow cantidad de bytes inspeccionados para detectar el delimitador.
const sniffWindow = 2048

// Table una tabla delimitada ya parseada: cabecera normalizada en orden de
// archivo y filas como mapas cabecera -> valor.
type Table struct {
	Header []string
	Rows   []map[string]string
}

// NormalizeHeader recorta y pasa a minúsculas un nombre de columna.
// "images 1" (la forma de display de Shoper) se renombra a la clave interna "image1".
func NormalizeHeader(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "images 1" {
		return "image1"
	}
	return normalized
}

// SniffDelimiter detecta ';' o ',' contando ocurrencias en la muestra.
// Ante el empate (o ninguna aparición) gana la coma: el dialecto por defecto.
// Nunca falla: la detección fallida degrada al valor por defecto.
func SniffDelimiter(sample []byte) rune {
	semis := bytes.Count(sample, []byte(";"))
	commas := bytes.Count(sample, []byte(","))
	if semis > commas {
		return ';'
	}
	return ','
}

// ReadTable parsea una tabla delimitada completa desde r.
// Los bytes que no sean UTF-8 válido se reinterpretan como Windows-1250
// (exports de Excel polaco anteriores a la migración).
func ReadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer tabla: %w", err)
	}
	if !utf8.Valid(data) {
		decoded, derr := charmap.Windows1250.NewDecoder().Bytes(data)
		if derr == nil {
			data = decoded
		}
	}
	// BOM de Excel
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})

	sample := data
	if len(sample) > sniffWindow {
		sample = sample[:sniffWindow]
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = SniffDelimiter(sample)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear tabla: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}

	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = NormalizeHeader(h)
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, h := range header {
			if i < len(rec) {
				row[h] = rec[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	return &Table{Header: header, Rows: rows}, nil
}
