package ports

import (
	"context"

	"github.com/kartoteka/kartoteka-api/internal/domain/catalog"
)

// SetCatalogProvider define el puerto hacia el catálogo remoto de expansiones.
type SetCatalogProvider interface {
	FetchSets(ctx context.Context) ([]catalog.Set, error)
}
