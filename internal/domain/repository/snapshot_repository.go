package repository

import "github.com/kartoteka/kartoteka-api/internal/domain/entity"

// SnapshotRepository define el puerto de persistencia del libro de inventario (DIP).
// La implementación serializa todo acceso: Update ejecuta fn bajo el mismo
// candado que la lectura y la escritura, de modo que leer-modificar-guardar
// es atómico frente a peticiones concurrentes.
type SnapshotRepository interface {
	Load() (*entity.Snapshot, error)
	Save(snap *entity.Snapshot) error
	Update(fn func(snap *entity.Snapshot) error) error
}
