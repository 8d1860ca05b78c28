// Package catalog caso de uso del catálogo de expansiones: recarga desde
// disco, consulta de códigos cortos y actualización contra el catálogo remoto.
package catalog

import (
	"context"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	domcatalog "github.com/kartoteka/kartoteka-api/internal/domain/catalog"
	"github.com/kartoteka/kartoteka-api/internal/domain/repository"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// UseCase mantiene el catálogo en memoria sincronizado con disco y remoto.
type UseCase struct {
	catalog *domcatalog.Catalog
	repo    repository.SetRepository
	remote  ports.SetCatalogProvider
	log     *logger.Logger
}

// NewUseCase construye el caso de uso y carga el catálogo inicial; un disco
// sin archivos de expansiones deja el catálogo vacío.
func NewUseCase(repo repository.SetRepository, remote ports.SetCatalogProvider, log *logger.Logger) (*UseCase, error) {
	uc := &UseCase{
		catalog: domcatalog.New(),
		repo:    repo,
		remote:  remote,
		log:     log,
	}
	if err := uc.Reload(); err != nil {
		return nil, err
	}
	return uc, nil
}

// Reload vuelve a leer los archivos de expansiones y reemplaza el catálogo.
func (uc *UseCase) Reload() error {
	sets, err := uc.repo.LoadAll()
	if err != nil {
		return err
	}
	uc.catalog.ReplaceAll(sets)
	uc.log.Info().Int("sets", uc.catalog.Len()).Msg("catálogo de expansiones cargado")
	return nil
}

// Sets devuelve el catálogo completo.
func (uc *UseCase) Sets() *dto.CatalogResponse {
	sets := uc.catalog.Sets()
	out := &dto.CatalogResponse{Sets: make([]dto.SetResponse, 0, len(sets)), Total: len(sets)}
	for _, s := range sets {
		out.Sets = append(out.Sets, dto.SetResponse{Name: s.Name, Code: s.Code})
	}
	return out
}

// SetCode devuelve el código corto de una expansión por nombre.
func (uc *UseCase) SetCode(name string) (string, bool) {
	return uc.catalog.SetCode(name)
}

// Update baja el catálogo remoto, incorpora las expansiones que faltaban y
// persiste el resultado.
func (uc *UseCase) Update(ctx context.Context) (*dto.CatalogUpdateResponse, error) {
	remote, err := uc.remote.FetchSets(ctx)
	if err != nil {
		return nil, err
	}

	added := 0
	for _, s := range remote {
		if uc.catalog.Add(s) {
			added++
		}
	}
	if added > 0 {
		if err := uc.repo.SaveAll(uc.catalog.Sets()); err != nil {
			return nil, err
		}
	}
	uc.log.Info().Int("added", added).Int("total", uc.catalog.Len()).Msg("catálogo de expansiones actualizado")
	return &dto.CatalogUpdateResponse{Added: added, Total: uc.catalog.Len()}, nil
}
