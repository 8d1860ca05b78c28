package storage_test

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appstorage "github.com/kartoteka/kartoteka-api/internal/application/storage"
	"github.com/kartoteka/kartoteka-api/internal/domain"
	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	domstorage "github.com/kartoteka/kartoteka-api/internal/domain/storage"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvstore"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

func newUC(t *testing.T, dims domstorage.Dimensions, codes ...string) *appstorage.UseCase {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	repo := csvstore.NewSnapshotRepository(filepath.Join(t.TempDir(), "magazyn.csv"), log)
	if len(codes) > 0 {
		err := repo.Update(func(snap *entity.Snapshot) error {
			for _, col := range []string{"nazwa", "warehouse_code"} {
				snap.EnsureColumn(col)
			}
			for i, code := range codes {
				row := &entity.InventoryRow{Name: "Carta", Number: strconv.Itoa(i + 1)}
				row.SetCodes([]string{code})
				row.Qty = 1
				snap.Rows = append(snap.Rows, row)
			}
			return nil
		})
		require.NoError(t, err)
	}
	return appstorage.NewUseCase(repo, dims, log)
}

func TestNextFree_SaltaLosOcupados(t *testing.T) {
	uc := newUC(t, domstorage.Dimensions{Boxes: 2, Columns: 2, Positions: 10},
		"K01R1P0001", "K01R1P0002")

	out, err := uc.NextFree("")
	require.NoError(t, err)
	assert.Equal(t, "K01R1P0003", out.Code)
}

func TestNextFree_AlmacenLleno(t *testing.T) {
	uc := newUC(t, domstorage.Dimensions{Boxes: 1, Columns: 1, Positions: 2},
		"K01R1P0001", "K01R1P0002")

	out, err := uc.NextFree("")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrStorageExhausted, "sin huecos el almacén lleno debe rechazar")
}

func TestNextFree_AfterEnLaUltimaPosicion(t *testing.T) {
	uc := newUC(t, domstorage.Dimensions{Boxes: 1, Columns: 1, Positions: 2})

	out, err := uc.NextFree("K01R1P0002")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrStorageExhausted,
		"después de la última posición no existe hueco aunque el libro esté vacío")
}

func TestNextFree_AfterInvalido(t *testing.T) {
	uc := newUC(t, domstorage.DefaultDimensions())

	_, err := uc.NextFree("X99")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
