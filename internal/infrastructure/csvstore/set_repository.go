package csvstore

import (
	"fmt"
	"os"

	"github.com/kartoteka/kartoteka-api/internal/domain/catalog"
	"github.com/kartoteka/kartoteka-api/internal/domain/repository"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvio"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

var setHeader = []string{"name", "code"}

// SetRepository catálogo de expansiones sobre archivos CSV "name;code".
// Lee de todos los archivos configurados (inglés y japonés); las altas nuevas
// se escriben en el primero.
type SetRepository struct {
	paths []string
	log   *logger.Logger
}

var _ repository.SetRepository = (*SetRepository)(nil)

// NewSetRepository construye el repositorio sobre los archivos dados.
func NewSetRepository(paths []string, log *logger.Logger) *SetRepository {
	return &SetRepository{paths: paths, log: log}
}

// LoadAll lee todas las expansiones en el orden de los archivos. Un archivo
// ausente se omite con aviso.
func (r *SetRepository) LoadAll() ([]catalog.Set, error) {
	var sets []catalog.Set
	for _, path := range r.paths {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				r.log.Warn().Str("file", path).Msg("archivo de expansiones ausente, se omite")
				continue
			}
			return nil, fmt.Errorf("abrir expansiones: %w", err)
		}
		table, rerr := csvio.ReadTable(f)
		f.Close()
		if rerr != nil {
			return nil, fmt.Errorf("leer expansiones: %w", rerr)
		}
		for _, raw := range table.Rows {
			if raw["name"] == "" {
				continue
			}
			sets = append(sets, catalog.Set{Name: raw["name"], Code: raw["code"]})
		}
	}
	return sets, nil
}

// SaveAll reescribe el primer archivo con el catálogo completo.
func (r *SetRepository) SaveAll(sets []catalog.Set) error {
	if len(r.paths) == 0 {
		return fmt.Errorf("sin archivo de expansiones configurado")
	}
	records := make([]map[string]string, 0, len(sets))
	for _, s := range sets {
		records = append(records, map[string]string{"name": s.Name, "code": s.Code})
	}
	f, err := os.Create(r.paths[0])
	if err != nil {
		return fmt.Errorf("escribir expansiones: %w", err)
	}
	defer f.Close()
	return csvio.WriteTable(f, setHeader, records, csvio.NormalizeHeader)
}
