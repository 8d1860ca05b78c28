package repository

import "github.com/kartoteka/kartoteka-api/internal/domain/catalog"

// SetRepository define el puerto de persistencia del catálogo de expansiones.
type SetRepository interface {
	LoadAll() ([]catalog.Set, error)
	SaveAll(sets []catalog.Set) error
}
