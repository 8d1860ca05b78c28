package fulfillment_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	appful "github.com/kartoteka/kartoteka-api/internal/application/fulfillment"
	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	"github.com/kartoteka/kartoteka-api/internal/domain"
	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	"github.com/kartoteka/kartoteka-api/internal/infrastructure/csvstore"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

type fakeShoper struct {
	orders []*entity.Order
}

func (f *fakeShoper) ListNewOrders(ctx context.Context) ([]*entity.Order, error) {
	return f.orders, nil
}

func (f *fakeShoper) AddProduct(ctx context.Context, p ports.ShoperProduct) (string, error) {
	return "", nil
}

func (f *fakeShoper) FindProductID(ctx context.Context, code string) (string, error) {
	return "", nil
}

func (f *fakeShoper) UpdateStock(ctx context.Context, productID string, stock int) error {
	return nil
}

type fakeReport struct {
	orders []dto.OrderAssignmentResponse
}

func (f *fakeReport) GeneratePickingList(orders []dto.OrderAssignmentResponse) ([]byte, error) {
	f.orders = orders
	return []byte("%PDF-fake"), nil
}

func seedBook(t *testing.T) *csvstore.SnapshotRepository {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	repo := csvstore.NewSnapshotRepository(filepath.Join(t.TempDir(), "magazyn.csv"), log)
	err := repo.Update(func(snap *entity.Snapshot) error {
		for _, col := range []string{"nazwa", "numer", "set", "product_code", "warehouse_code"} {
			snap.EnsureColumn(col)
		}
		pika := &entity.InventoryRow{Name: "Pikachu", Number: "1", Set: "base", ProductCode: "1"}
		pika.SetCodes([]string{"K01R1P0003", "K01R1P0001", "K02R4P0500"})
		pika.Qty = 3
		char := &entity.InventoryRow{Name: "Charizard", Number: "4", Set: "base", ProductCode: "2"}
		char.SetCodes([]string{"K01R2P0002"})
		char.Qty = 1
		snap.Rows = append(snap.Rows, pika, char)
		return nil
	})
	require.NoError(t, err)
	return repo
}

func newUC(t *testing.T, shoper ports.ShoperClient, report ports.PickingListGenerator) *appful.UseCase {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return appful.NewUseCase(seedBook(t), shoper, report, log)
}

func TestAssignNewOrders_AsignaUbicaciones(t *testing.T) {
	shoper := &fakeShoper{orders: []*entity.Order{
		{ID: "100", Products: []entity.OrderItem{
			{ProductCode: "1", Name: "Pikachu", Quantity: 2},
			{ProductCode: "2", Name: "Charizard", Quantity: 1},
		}},
	}}
	uc := newUC(t, shoper, &fakeReport{})

	out, err := uc.AssignNewOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Orders, 1)
	require.Len(t, out.Orders[0].Items, 2)

	assert.Equal(t, "100", out.Orders[0].OrderID)
	assert.Equal(t, "K01R1P0001;K01R1P0003", out.Orders[0].Items[0].WarehouseCode,
		"dos copias de Pikachu deben salir del grupo más compacto")
	assert.Equal(t, "K01R2P0002", out.Orders[0].Items[1].WarehouseCode)
	assert.Zero(t, out.Unassigned)
}

func TestAssignNewOrders_DisponibilidadCompartidaEntrePedidos(t *testing.T) {
	shoper := &fakeShoper{orders: []*entity.Order{
		{ID: "1", Products: []entity.OrderItem{{ProductCode: "2", Quantity: 1}}},
		{ID: "2", Products: []entity.OrderItem{{ProductCode: "2", Quantity: 1}}},
	}}
	uc := newUC(t, shoper, &fakeReport{})

	out, err := uc.AssignNewOrders(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "K01R2P0002", out.Orders[0].Items[0].WarehouseCode,
		"el primer pedido consume la única copia")
	assert.Empty(t, out.Orders[1].Items[0].WarehouseCode,
		"el segundo pedido queda sin asignar, no es un error")
	assert.Equal(t, 1, out.Unassigned)
}

func TestAssignNewOrders_ProductoDesconocido(t *testing.T) {
	shoper := &fakeShoper{orders: []*entity.Order{
		{ID: "7", Products: []entity.OrderItem{{ProductCode: "999", Name: "Mew", Quantity: 1}}},
	}}
	uc := newUC(t, shoper, &fakeReport{})

	out, err := uc.AssignNewOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Orders[0].Items[0].WarehouseCode)
	assert.Equal(t, 1, out.Unassigned)
}

func TestAssignNewOrders_SinTiendaConfigurada(t *testing.T) {
	uc := newUC(t, nil, &fakeReport{})

	_, err := uc.AssignNewOrders(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotConfigured,
		"sin cliente de tienda la operación debe avisar, no fallar en nil")
}

func TestPickingList_GeneraDocumento(t *testing.T) {
	shoper := &fakeShoper{orders: []*entity.Order{
		{ID: "100", Products: []entity.OrderItem{{ProductCode: "1", Name: "Pikachu", Quantity: 1}}},
	}}
	report := &fakeReport{}
	uc := newUC(t, shoper, report)

	pdf, err := uc.PickingList(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	require.Len(t, report.orders, 1, "el generador debe recibir los pedidos asignados")
	assert.Equal(t, "K01R1P0001", report.orders[0].Items[0].WarehouseCode)
}
