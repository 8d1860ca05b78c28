package inventory

import (
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	dominv "github.com/kartoteka/kartoteka-api/internal/domain/inventory"
	"github.com/kartoteka/kartoteka-api/internal/domain/repository"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvio"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// UseCase operaciones del libro de inventario: fusión de imports, listado y
// export en formato Shoper. El registro de códigos se comparte con el resto
// de la aplicación para que los códigos emitidos sean estables.
type UseCase struct {
	repo     repository.SnapshotRepository
	registry *dominv.ProductCodeRegistry
	log      *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.SnapshotRepository, registry *dominv.ProductCodeRegistry, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, registry: registry, log: log}
}

// MergeFiles fusiona los CSV dados dentro del libro. El libro actual entra a
// la fusión como una tabla más, así que sus códigos de producto (explícitos y
// numéricos) quedan reservados antes de emitir nuevos.
func (uc *UseCase) MergeFiles(paths []string) (*dto.MergeResponse, error) {
	batchID := uuid.NewString()
	log := uc.log.With().Str("batch_id", batchID).Logger()

	out := &dto.MergeResponse{}
	err := uc.repo.Update(func(snap *entity.Snapshot) error {
		tables := make([]*csvio.Table, 0, len(paths)+1)
		tables = append(tables, snapshotTable(snap))

		for _, path := range paths {
			f, err := os.Open(path)
			if err != nil {
				if os.IsNotExist(err) {
					log.Warn().Str("file", path).Msg("archivo de entrada ausente, se omite")
					out.Skipped = append(out.Skipped, path)
					continue
				}
				return err
			}
			table, rerr := csvio.ReadTable(f)
			f.Close()
			if rerr != nil {
				return rerr
			}
			tables = append(tables, table)
		}

		m := NewMerger(uc.registry, uc.log)
		res := m.MergeTables(tables)

		snap.Header = res.Header
		snap.QtyField = res.QtyField
		snap.Rows = res.Rows

		out.Rows = len(res.Rows)
		out.QtyField = res.QtyField
		for _, r := range res.Rows {
			out.Qty += r.Qty
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info().Int("rows", out.Rows).Int("qty", out.Qty).Msg("libro de inventario fusionado")
	return out, nil
}

// List devuelve una página del libro.
func (uc *UseCase) List(page dto.PageRequest) (*dto.InventoryListResponse, error) {
	page.DefaultPage()
	snap, err := uc.repo.Load()
	if err != nil {
		return nil, err
	}

	total := len(snap.Rows)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	items := make([]dto.InventoryRowResponse, 0, end-start)
	for _, r := range snap.Rows[start:end] {
		items = append(items, toRowResponse(r))
	}
	return &dto.InventoryListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// ExportShoper escribe el libro en el formato de import de la tienda.
func (uc *UseCase) ExportShoper(w io.Writer) error {
	snap, err := uc.repo.Load()
	if err != nil {
		return err
	}
	return ExportShoperCSV(w, snap.Rows)
}

// snapshotTable proyecta el libro como una tabla de entrada para la fusión.
func snapshotTable(snap *entity.Snapshot) *csvio.Table {
	records := make([]map[string]string, 0, len(snap.Rows))
	for _, r := range snap.Rows {
		if r == nil {
			continue
		}
		records = append(records, r.Record(snap.QtyField))
	}
	return &csvio.Table{Header: append([]string(nil), snap.Header...), Rows: records}
}

func toRowResponse(r *entity.InventoryRow) dto.InventoryRowResponse {
	return dto.InventoryRowResponse{
		Name:          r.Name,
		Number:        r.Number,
		Set:           r.Set,
		Suffix:        r.Suffix,
		ProductCode:   r.ProductCode,
		WarehouseCode: r.WarehouseCode,
		Qty:           r.Qty,
		Price:         r.Price,
		Image:         r.Image,
		Extra:         r.Extra,
	}
}
