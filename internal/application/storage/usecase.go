// Package storage casos de uso sobre la geometría física del almacén:
// ocupación, primer hueco libre, recompactado de columnas y retirada de copias.
package storage

import (
	"fmt"

	"github.com/kartoteka/kartoteka-api/internal/application/dto"
	"github.com/kartoteka/kartoteka-api/internal/domain"
	"github.com/kartoteka/kartoteka-api/internal/domain/entity"
	"github.com/kartoteka/kartoteka-api/internal/domain/repository"
	domstorage "github.com/kartoteka/kartoteka-api/internal/domain/storage"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// UseCase opera el libro de inventario a través del repositorio de snapshot.
// La geometría (cajas, columnas, posiciones) viene de configuración y es fija
// durante la vida del proceso.
type UseCase struct {
	repo repository.SnapshotRepository
	dims domstorage.Dimensions
	log  *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.SnapshotRepository, dims domstorage.Dimensions, log *logger.Logger) *UseCase {
	return &UseCase{repo: repo, dims: dims, log: log}
}

// Occupancy calcula la ocupación por caja y columna del libro actual.
func (uc *UseCase) Occupancy() (*dto.OccupancyResponse, error) {
	snap, err := uc.repo.Load()
	if err != nil {
		return nil, err
	}
	occ := domstorage.ComputeOccupancy(snap.Rows, uc.dims)

	out := &dto.OccupancyResponse{
		Boxes:     uc.dims.Boxes,
		Columns:   uc.dims.Columns,
		Positions: uc.dims.Positions,
		Cells:     make([]dto.OccupancyCell, 0, uc.dims.Boxes*uc.dims.Columns),
	}
	for box := 1; box <= uc.dims.Boxes; box++ {
		for col := 1; col <= uc.dims.Columns; col++ {
			used := occ.Count(box, col)
			out.Cells = append(out.Cells, dto.OccupancyCell{
				Box:      box,
				Column:   col,
				Used:     used,
				Capacity: uc.dims.Positions,
				FreePct:  occ.FreePercent(box, col, uc.dims.Positions),
			})
		}
	}
	return out, nil
}

// NextFree devuelve el primer hueco libre del almacén. Con after se busca a
// partir de esa ubicación (piso monótono para rellenar en orden).
func (uc *UseCase) NextFree(after string) (*dto.NextFreeResponse, error) {
	startIdx := 0
	if after != "" {
		loc, ok := domstorage.Decode(after)
		if !ok {
			return nil, fmt.Errorf("%w: código de ubicación %q", domain.ErrInvalidInput, after)
		}
		startIdx = uc.dims.Index(loc) + 1
	}

	snap, err := uc.repo.Load()
	if err != nil {
		return nil, err
	}
	code := domstorage.NextFreeLocation(snap.Rows, uc.dims, startIdx)
	if code == "" {
		return nil, domain.ErrStorageExhausted
	}
	return &dto.NextFreeResponse{
		Code:        code,
		Description: domstorage.Describe(code),
	}, nil
}

// Describe traduce un código de ubicación a su forma legible.
func (uc *UseCase) Describe(code string) (*dto.LocationResponse, error) {
	loc, ok := domstorage.Decode(code)
	if !ok {
		return nil, fmt.Errorf("%w: código de ubicación %q", domain.ErrInvalidInput, code)
	}
	return &dto.LocationResponse{
		Code:        loc.String(),
		Box:         loc.Box,
		Column:      loc.Column,
		Position:    loc.Position,
		Description: domstorage.Describe(code),
	}, nil
}

// Repack renumera consecutivamente las posiciones de una columna, cerrando los
// huecos que dejaron las retiradas, y persiste el libro.
func (uc *UseCase) Repack(box, column int) (*dto.RepackResponse, error) {
	if box < 1 || box > uc.dims.Boxes || column < 1 || column > uc.dims.Columns {
		return nil, fmt.Errorf("%w: caja %d columna %d fuera de rango", domain.ErrInvalidInput, box, column)
	}

	out := &dto.RepackResponse{Box: box, Column: column}
	err := uc.repo.Update(func(snap *entity.Snapshot) error {
		domstorage.RepackColumn(snap.Rows, box, column)
		occ := domstorage.ComputeOccupancy(snap.Rows, uc.dims)
		out.Slots = occ.Count(box, column)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("box", box).Int("column", column).Int("slots", out.Slots).Msg("columna recompactada")
	return out, nil
}

// RemoveCode retira una copia física (un código de ubicación) del libro y
// recompacta la columna afectada. Retirar la última copia elimina la fila.
func (uc *UseCase) RemoveCode(code string) (*dto.RemoveCodeResponse, error) {
	if _, ok := domstorage.Decode(code); !ok {
		return nil, fmt.Errorf("%w: código de ubicación %q", domain.ErrInvalidInput, code)
	}

	out := &dto.RemoveCodeResponse{Code: code}
	err := uc.repo.Update(func(snap *entity.Snapshot) error {
		rows, removed := domstorage.RemoveWarehouseCode(snap.Rows, code)
		snap.Rows = rows
		out.Removed = removed
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !out.Removed {
		return nil, fmt.Errorf("%w: código de ubicación %s", domain.ErrNotFound, code)
	}
	uc.log.Info().Str("code", code).Msg("copia retirada del almacén")
	return out, nil
}
