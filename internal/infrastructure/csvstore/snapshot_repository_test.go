package csvstore_test

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvstore"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

func newRepo(t *testing.T) (*csvstore.SnapshotRepository, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "magazyn.csv")
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return csvstore.NewSnapshotRepository(path, log), path
}

func TestLoad_ArchivoAusenteEsLibroVacio(t *testing.T) {
	repo, _ := newRepo(t)
	snap, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Rows)
	assert.Equal(t, "ilość", snap.QtyField)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	snap := &entity.Snapshot{
		Header:   []string{"nazwa", "numer", "set", "warehouse_code", "ilość"},
		QtyField: "ilość",
		Rows: []*entity.InventoryRow{
			{Name: "Pikachu", Number: "1", Set: "Base", WarehouseCode: "K01R1P0001", Qty: 2},
		},
	}
	require.NoError(t, repo.Save(snap))

	got, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "Pikachu", got.Rows[0].Name)
	assert.Equal(t, "K01R1P0001", got.Rows[0].WarehouseCode)
	assert.Equal(t, 2, got.Rows[0].Qty)
	assert.Equal(t, "ilość", got.QtyField)
}

func TestSave_ColumnasExtraSobreviven(t *testing.T) {
	repo, _ := newRepo(t)
	row := &entity.InventoryRow{Name: "Mew", Number: "151", Set: "Base", Qty: 1}
	row.SetExtraField("kolor", "rosa")
	snap := &entity.Snapshot{
		Header:   []string{"nazwa", "numer", "set", "kolor", "ilość"},
		QtyField: "ilość",
		Rows:     []*entity.InventoryRow{row},
	}
	require.NoError(t, repo.Save(snap))

	got, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, got.Rows, 1)
	assert.Equal(t, "rosa", got.Rows[0].ExtraField("kolor"))
}

func TestUpdate_ErrorNoEscribe(t *testing.T) {
	repo, path := newRepo(t)
	require.NoError(t, repo.Save(&entity.Snapshot{
		Header:   []string{"nazwa", "numer", "set", "ilość"},
		QtyField: "ilość",
		Rows:     []*entity.InventoryRow{{Name: "Pikachu", Number: "1", Set: "Base", Qty: 1}},
	}))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = repo.Update(func(snap *entity.Snapshot) error {
		snap.Rows = nil
		return boom
	})
	require.ErrorIs(t, err, boom)

	after, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, before, after, "un fn fallido no debe tocar el archivo")
}

func TestUpdate_ConcurrenciaSerializada(t *testing.T) {
	repo, _ := newRepo(t)
	require.NoError(t, repo.Save(&entity.Snapshot{
		Header:   []string{"nazwa", "numer", "set", "ilość"},
		QtyField: "ilość",
		Rows:     []*entity.InventoryRow{{Name: "Pikachu", Number: "1", Set: "Base", Qty: 0}},
	}))

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_ = repo.Update(func(snap *entity.Snapshot) error {
				snap.Rows[0].Qty++
				return nil
			})
		}()
	}
	wg.Wait()

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, n, got.Rows[0].Qty, "cada incremento leyó el resultado del anterior")
}

func TestSave_QtyFieldVacioUsaElDefecto(t *testing.T) {
	repo, _ := newRepo(t)
	require.NoError(t, repo.Save(&entity.Snapshot{
		Header: []string{"nazwa", "numer", "set"},
		Rows:   []*entity.InventoryRow{{Name: "Eevee", Number: "133", Set: "Base", Qty: 3}},
	}))
	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "ilość", got.QtyField)
	assert.Equal(t, 3, got.Rows[0].Qty)
}
