// Package fulfillment caso de uso de preparación de pedidos: baja los pedidos
// nuevos de la tienda, les asigna las ubicaciones físicamente más próximas y
// genera el documento de recogida.
package fulfillment

import (
	"context"
	"fmt"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	"github.com/kartoteka/kartoteka-api/internal/domain"
	domful "github.com/kartoteka/kartoteka-api/internal/domain/fulfillment"
	"github.com/kartoteka/kartoteka-api/internal/domain/repository"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// UseCase resuelve pedidos contra el libro de inventario.
type UseCase struct {
	repo   repository.SnapshotRepository
	shoper ports.ShoperClient
	report ports.PickingListGenerator
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.SnapshotRepository, shoper ports.ShoperClient, report ports.PickingListGenerator, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, shoper: shoper, report: report, log: log}
}

// AssignNewOrders baja los pedidos en estado "nuevo" y asigna a cada línea el
// conjunto de ubicaciones que minimiza la distancia de recorrido. La
// disponibilidad se consume entre pedidos del mismo lote: dos pedidos nunca
// reciben la misma copia física. Una línea sin disponibilidad queda sin
// asignar, no es un error.
func (uc *UseCase) AssignNewOrders(ctx context.Context) (*dto.AssignResponse, error) {
	if uc.shoper == nil {
		return nil, fmt.Errorf("%w: tienda Shoper", domain.ErrNotConfigured)
	}
	orders, err := uc.shoper.ListNewOrders(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := uc.repo.Load()
	if err != nil {
		return nil, err
	}

	domful.ChooseNearestLocations(orders, snap.Rows)

	out := &dto.AssignResponse{Orders: make([]dto.OrderAssignmentResponse, 0, len(orders))}
	for _, o := range orders {
		resp := dto.OrderAssignmentResponse{OrderID: o.ID}
		for _, it := range o.Products {
			if it.WarehouseCode == "" {
				out.Unassigned++
			}
			resp.Items = append(resp.Items, dto.OrderItemResponse{
				ProductCode:   it.ProductID(),
				Name:          it.Name,
				Quantity:      it.Quantity,
				WarehouseCode: it.WarehouseCode,
			})
		}
		out.Orders = append(out.Orders, resp)
	}
	uc.log.Info().Int("orders", len(out.Orders)).Int("unassigned", out.Unassigned).Msg("pedidos asignados")
	return out, nil
}

// PickingList asigna los pedidos nuevos y devuelve el documento de recogida en PDF.
func (uc *UseCase) PickingList(ctx context.Context) ([]byte, error) {
	assigned, err := uc.AssignNewOrders(ctx)
	if err != nil {
		return nil, err
	}
	return uc.report.GeneratePickingList(assigned.Orders)
}
