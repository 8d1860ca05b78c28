package ports

import "github.com/kartoteka/kartoteka-api/internal/application/dto"

// PickingListGenerator define el puerto de salida para el documento de
// recogida: los pedidos con sus ubicaciones asignadas, listos para recorrer
// el almacén en orden.
type PickingListGenerator interface {
	GeneratePickingList(orders []dto.OrderAssignmentResponse) ([]byte, error)
}
