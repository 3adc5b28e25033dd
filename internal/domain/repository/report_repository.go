package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MovementTypeTotal total de movimientos de un tipo en un período.
type MovementTypeTotal struct {
	Type  string `db:"tipo_movimiento"`
	Total int64  `db:"total"`
}

// TopMovedProduct producto con mayor cantidad movida en un período.
type TopMovedProduct struct {
	Name       string `db:"nombre"`
	Code       string `db:"codigo_producto"`
	TotalMoved int64  `db:"total_movido"`
}

// ReportRepository consultas de solo lectura para el dashboard.
// Se recalculan bajo demanda; no mantienen estado materializado.
type ReportRepository interface {
	CountActiveProducts(ctx context.Context) (int64, error)
	CountLowStockProducts(ctx context.Context) (int64, error)
	InventoryValue(ctx context.Context) (decimal.Decimal, error)
	MovementTotalsByType(ctx context.Context, from, to time.Time) ([]MovementTypeTotal, error)
	TopMovedProducts(ctx context.Context, since time.Time, limit int) ([]TopMovedProduct, error)
}
