// Package storage implementa el direccionamiento físico del almacén de cartas:
// codificación de ubicaciones, ocupación por columna, asignación de la próxima
// posición libre y reempaquetado de columnas tras una retirada.
//
// Una ubicación es una tripleta (cartón, columna, posición) serializada como
// "K{cartón:02d}R{columna}P{posición:04d}". El formato está persistido en hojas
// de cálculo compartidas con la tienda, así que debe permanecer estable y la
// decodificación debe aceptar también la variante antigua sin ceros ("K1R1P1").
package storage

import (
	"fmt"
	"regexp"
)

// Location tripleta física decodificada de un código de almacén.
type Location struct {
	Box      int
	Column   int
	Position int
}

// Dimensions geometría del almacén. El despliegue de referencia es 8 cartones
// de 4 columnas de 1000 posiciones; la cuenta de cartones es lo que crece en
// la práctica cuando se compra más cartón.
type Dimensions struct {
	Boxes     int
	Columns   int
	Positions int
}

// DefaultDimensions devuelve la geometría del despliegue de referencia.
func DefaultDimensions() Dimensions {
	return Dimensions{Boxes: 8, Columns: 4, Positions: 1000}
}

// Capacity devuelve la cantidad total de posiciones del almacén.
func (d Dimensions) Capacity() int {
	return d.Boxes * d.Columns * d.Positions
}

// PerBox devuelve la cantidad de posiciones por cartón.
func (d Dimensions) PerBox() int {
	return d.Columns * d.Positions
}

// Contains indica si la ubicación cae dentro de la geometría.
func (d Dimensions) Contains(l Location) bool {
	return l.Box >= 1 && l.Box <= d.Boxes &&
		l.Column >= 1 && l.Column <= d.Columns &&
		l.Position >= 1 && l.Position <= d.Positions
}

// Encode convierte un índice lineal (desde 0) en su código canónico.
// Es total para todo idx >= 0: el límite de capacidad es responsabilidad del
// llamador, no de esta capa. idx negativo es un error de programación.
func (d Dimensions) Encode(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("storage: índice lineal negativo %d", idx))
	}
	pos := idx%d.Positions + 1
	column := (idx/d.Positions)%d.Columns + 1
	box := idx/d.PerBox() + 1
	return Format(box, column, pos)
}

// Index devuelve el índice lineal de la ubicación (inversa de Encode).
func (d Dimensions) Index(l Location) int {
	return (l.Box-1)*d.PerBox() + (l.Column-1)*d.Positions + (l.Position - 1)
}

// Encode con la geometría de referencia.
func Encode(idx int) string {
	return DefaultDimensions().Encode(idx)
}

// Index de una ubicación con la geometría de referencia.
func (l Location) Index() int {
	return DefaultDimensions().Index(l)
}

// String devuelve la forma canónica con relleno de ceros.
func (l Location) String() string {
	return Format(l.Box, l.Column, l.Position)
}

// Format serializa la tripleta en el formato canónico persistido.
func Format(box, column, position int) string {
	return fmt.Sprintf("K%02dR%dP%04d", box, column, position)
}

// codeRe acepta la forma canónica y la variante legada sin relleno.
// La columna es exactamente un dígito: el formato de ancho fijo lo limita a 1-9.
var codeRe = regexp.MustCompile(`^K(\d+)R(\d)P(\d+)$`)

// Decode interpreta un código de almacén. Devuelve ok=false para cualquier
// cadena que no coincida con el patrón; nunca es un error, los llamadores
// simplemente ignoran la entrada (celdas editadas a mano).
func Decode(code string) (Location, bool) {
	m := codeRe.FindStringSubmatch(code)
	if m == nil {
		return Location{}, false
	}
	return Location{
		Box:      atoi(m[1]),
		Column:   atoi(m[2]),
		Position: atoi(m[3]),
	}, true
}

// Describe devuelve la forma humana usada en los listados de pedidos,
// "Karton N | Kolumna N | Poz N", o "" si el código no es válido.
func Describe(code string) string {
	l, ok := Decode(code)
	if !ok {
		return ""
	}
	return fmt.Sprintf("Karton %d | Kolumna %d | Poz %d", l.Box, l.Column, l.Position)
}

// atoi sin error: el regex ya garantiza solo dígitos.
func atoi(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
