// Package catalog catálogo de expansiones: mapea el nombre de una expansión a
// su código corto (el que aparece en las consultas de precio y en los nombres
// de archivo de la tienda).
package catalog

import (
	"sync"

	"github.com/kartoteka/kartoteka-api/internal/domain/pricing"
)

// Set una expansión con su código corto.
type Set struct {
	Name string
	Code string
}

// Catalog índice de expansiones con búsqueda por nombre normalizado.
// Seguro para uso concurrente: las recargas reemplazan el índice completo.
type Catalog struct {
	mu     sync.RWMutex
	sets   []Set
	byName map[string]string
}

// New devuelve un catálogo vacío.
func New() *Catalog {
	return &Catalog{byName: make(map[string]string)}
}

func nameKey(name string) string {
	return pricing.Normalize(name, true)
}

// ReplaceAll sustituye el catálogo completo.
func (c *Catalog) ReplaceAll(sets []Set) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets = make([]Set, 0, len(sets))
	c.byName = make(map[string]string, len(sets))
	for _, s := range sets {
		c.addLocked(s)
	}
}

// Add incorpora una expansión; devuelve false si el nombre ya estaba.
func (c *Catalog) Add(s Set) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.addLocked(s)
}

func (c *Catalog) addLocked(s Set) bool {
	k := nameKey(s.Name)
	if k == "" {
		return false
	}
	if _, ok := c.byName[k]; ok {
		return false
	}
	c.byName[k] = s.Code
	c.sets = append(c.sets, s)
	return true
}

// Sets devuelve una copia de todas las expansiones en orden de alta.
func (c *Catalog) Sets() []Set {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Set(nil), c.sets...)
}

// SetCode devuelve el código corto de la expansión, buscando por nombre
// normalizado (mayúsculas, tildes y guiones no distinguen).
func (c *Catalog) SetCode(name string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	code, ok := c.byName[nameKey(name)]
	return code, ok
}

// Len número de expansiones cargadas.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sets)
}
