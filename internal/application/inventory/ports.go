package inventory

import (
	"context"

	"github.com/utm-ti/inventario-api/internal/domain/entity"
)

// TxRepos agrupa las operaciones de escritura que solo existen dentro de una
// transacción de BD. Es la única vía para insertar movimientos o tocar el
// stock: fuera del motor transaccional estas operaciones no están disponibles,
// lo que hace estructuralmente imposible saltarse el ledger.
type TxRepos interface {
	// GetProductForUpdate lee el producto activo y bloquea su fila
	// (SELECT FOR UPDATE) hasta el fin de la transacción.
	// Devuelve nil si no existe o está inactivo.
	GetProductForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	// InsertProduct persiste un producto nuevo y completa ID y timestamps.
	InsertProduct(ctx context.Context, p *entity.Product) error
	// UpdateStock sobrescribe stock_actual y fecha_actualizacion.
	UpdateStock(ctx context.Context, productID, newStock int64) error
	// AppendMovement inserta una entrada inmutable del ledger y completa
	// ID y fecha asignados por el servidor.
	AppendMovement(ctx context.Context, m *entity.Movement) error
}

// TxRunner ejecuta fn dentro de una transacción de BD con commit/rollback
// garantizado en todo camino de salida. Garantiza atomicidad para el motor.
type TxRunner interface {
	Run(ctx context.Context, fn func(r TxRepos) error) error
}
