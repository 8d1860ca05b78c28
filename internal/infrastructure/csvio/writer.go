package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteTable escribe una tabla con delimitador ';' en UTF-8 (el contrato de
// salida de los imports de Shoper). displayHeader son los nombres tal como
// deben aparecer en el archivo; cada fila se consulta por la clave interna
// correspondiente vía keyFor.
func WriteTable(w io.Writer, displayHeader []string, rows []map[string]string, keyFor func(display string) string) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(displayHeader); err != nil {
		return fmt.Errorf("escribir cabecera: %w", err)
	}
	record := make([]string, len(displayHeader))
	for _, row := range rows {
		for i, display := range displayHeader {
			record[i] = row[keyFor(display)]
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("escribir fila: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DisplayName devuelve el nombre de columna tal como se muestra en los
// archivos de Shoper: la clave interna "image1" vuelve a ser "images 1".
func DisplayName(key string) string {
	if key == "image1" {
		return "images 1"
	}
	return key
}
