package repository

import (
	"context"

	"github.com/utm-ti/inventario-api/internal/domain/entity"
)

// MovementFilter filtros del historial de movimientos.
type MovementFilter struct {
	ProductID *int64
	Type      string // entrada | salida | vacío = todos
	Limit     int
	Page      int // 1-based
}

// MovementRepository define el puerto de consulta del ledger de movimientos.
// El ledger es append-only: la interfaz pública no expone Update ni Delete,
// y Append solo lo invoca el motor transaccional (vía TxRepos).
type MovementRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Movement, error)
	ListByProduct(ctx context.Context, productID int64, limit, page int) ([]*entity.Movement, error)
	ListByType(ctx context.Context, movementType string, limit, page int) ([]*entity.Movement, error)
	ListAll(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
}
