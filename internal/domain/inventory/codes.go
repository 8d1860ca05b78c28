// Package inventory servicios de dominio del inventario: emisión de códigos
// numéricos de producto estables por clave de identidad.
package inventory

// ProductCodeRegistry asigna a cada clave de identidad "name|number|set" un
// entero positivo estable. Un código emitido no se reasigna jamás; los códigos
// explícitos que llegan en los datos se reservan y el contador avanza más allá
// del máximo visto, de modo que importaciones repetidas con datos solapados
// nunca colisionan.
type ProductCodeRegistry struct {
	codes map[string]int
	next  int
}

// NewProductCodeRegistry construye un registro vacío con el contador en 1.
func NewProductCodeRegistry() *ProductCodeRegistry {
	return &ProductCodeRegistry{codes: make(map[string]int), next: 1}
}

// Assign devuelve el código de la clave, emitiéndolo si es la primera vez.
// explicit es el valor textual del campo product_code de la fila: si son solo
// dígitos se reserva ese número como código permanente de la clave y el
// contador salta por encima; si no, se emite el valor actual del contador.
func (r *ProductCodeRegistry) Assign(key, explicit string) int {
	if code, ok := r.codes[key]; ok {
		return code
	}
	if n, ok := parseDigits(explicit); ok {
		r.codes[key] = n
		if n >= r.next {
			r.next = n + 1
		}
		return n
	}
	code := r.next
	r.codes[key] = code
	r.next++
	return code
}

// Lookup devuelve el código ya emitido para la clave, si existe.
func (r *ProductCodeRegistry) Lookup(key string) (int, bool) {
	code, ok := r.codes[key]
	return code, ok
}

// Next devuelve el próximo valor del contador (para inspección y pruebas).
func (r *ProductCodeRegistry) Next() int {
	return r.next
}

// Len cantidad de claves con código emitido.
func (r *ProductCodeRegistry) Len() int {
	return len(r.codes)
}

// parseDigits interpreta una cadena compuesta exclusivamente de dígitos.
// A diferencia de strconv.Atoi no acepta signo ni espacios: "K1R1P1", "-3" o
// "1.0" no son códigos explícitos.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
