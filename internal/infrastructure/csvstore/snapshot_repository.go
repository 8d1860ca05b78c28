// Package csvstore persiste el libro de inventario como un único CSV en disco.
// El archivo es la fuente de verdad compartida por todos los casos de uso, así
// que cada operación se serializa con un mutex a nivel de repositorio; la
// lógica de dominio que recibe el snapshot sigue libre de candados.
package csvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	"github.com/kartoteka/kartoteka-api/internal/domain/repository"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvio"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// SnapshotRepository implementación CSV de repository.SnapshotRepository.
type SnapshotRepository struct {
	mu   sync.Mutex
	path string
	log  *logger.Logger
}

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// NewSnapshotRepository construye el repositorio sobre el archivo dado.
func NewSnapshotRepository(path string, log *logger.Logger) *SnapshotRepository {
	return &SnapshotRepository{path: path, log: log}
}

// Load lee el libro completo. Un archivo ausente es un libro vacío, no un
// error: el primer import lo crea.
func (r *SnapshotRepository) Load() (*entity.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// Save reescribe el libro completo de forma atómica (archivo temporal + rename).
func (r *SnapshotRepository) Save(snap *entity.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.save(snap)
}

// Update ejecuta fn sobre el libro y persiste el resultado, todo bajo el mismo
// candado. Si fn devuelve error no se escribe nada.
func (r *SnapshotRepository) Update(fn func(snap *entity.Snapshot) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap, err := r.load()
	if err != nil {
		return err
	}
	if err := fn(snap); err != nil {
		return err
	}
	return r.save(snap)
}

func (r *SnapshotRepository) load() (*entity.Snapshot, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.log.Warn().Str("file", r.path).Msg("libro de inventario ausente, se parte de uno vacío")
			return &entity.Snapshot{QtyField: entity.DefaultQtyColumn}, nil
		}
		return nil, fmt.Errorf("abrir libro de inventario: %w", err)
	}
	defer f.Close()

	table, err := csvio.ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("leer libro de inventario: %w", err)
	}

	qtyField := entity.DetectQtyColumn(table.Header)
	if qtyField == "" {
		qtyField = entity.DefaultQtyColumn
	}

	snap := &entity.Snapshot{
		Header:   table.Header,
		QtyField: qtyField,
		Rows:     make([]*entity.InventoryRow, 0, len(table.Rows)),
	}
	for _, raw := range table.Rows {
		snap.Rows = append(snap.Rows, entity.RowFromRecord(raw, qtyField))
	}
	return snap, nil
}

func (r *SnapshotRepository) save(snap *entity.Snapshot) error {
	if snap.QtyField == "" {
		snap.QtyField = entity.DefaultQtyColumn
	}
	snap.EnsureColumn(snap.QtyField)

	display := make([]string, len(snap.Header))
	for i, h := range snap.Header {
		display[i] = csvio.DisplayName(h)
	}
	records := make([]map[string]string, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		if row == nil {
			continue
		}
		records = append(records, row.Record(snap.QtyField))
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".magazyn-*.csv")
	if err != nil {
		return fmt.Errorf("crear temporal del libro: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := csvio.WriteTable(tmp, display, records, csvio.NormalizeHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("escribir libro de inventario: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cerrar temporal del libro: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("reemplazar libro de inventario: %w", err)
	}
	return nil
}
