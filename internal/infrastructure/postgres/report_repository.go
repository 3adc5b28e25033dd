package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el dashboard.
// Nunca muta los stores: se recalcula todo bajo demanda.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// CountActiveProducts total de productos activos.
func (r *ReportRepo) CountActiveProducts(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM productos WHERE activo = true`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("reportes.CountActiveProducts: %w", err)
	}
	return total, nil
}

// CountLowStockProducts productos activos con stock en o bajo el umbral mínimo.
func (r *ReportRepo) CountLowStockProducts(ctx context.Context) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM productos WHERE activo = true AND stock_actual <= stock_minimo`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("reportes.CountLowStockProducts: %w", err)
	}
	return total, nil
}

// InventoryValue valor total del inventario: SUM(precio * stock_actual) sobre activos.
// COALESCE devuelve cero si no hay productos.
func (r *ReportRepo) InventoryValue(ctx context.Context) (decimal.Decimal, error) {
	var value decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(precio * stock_actual), 0) FROM productos WHERE activo = true`,
	).Scan(&value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reportes.InventoryValue: %w", err)
	}
	return value, nil
}

// MovementTotalsByType total de movimientos por tipo dentro del rango [from, to).
func (r *ReportRepo) MovementTotalsByType(ctx context.Context, from, to time.Time) ([]repository.MovementTypeTotal, error) {
	const query = `
		SELECT tipo_movimiento, COUNT(*) AS total
		FROM movimientos_inventario
		WHERE fecha_movimiento >= $1 AND fecha_movimiento < $2
		GROUP BY tipo_movimiento`
	var results []repository.MovementTypeTotal
	if err := pgxscan.Select(ctx, r.pool, &results, query, from, to); err != nil {
		return nil, fmt.Errorf("reportes.MovementTotalsByType: %w", err)
	}
	return results, nil
}

// TopMovedProducts productos con mayor cantidad total movida desde `since`,
// ordenados de mayor a menor.
func (r *ReportRepo) TopMovedProducts(ctx context.Context, since time.Time, limit int) ([]repository.TopMovedProduct, error) {
	const query = `
		SELECT p.nombre, COALESCE(p.codigo_producto, '') AS codigo_producto, SUM(m.cantidad) AS total_movido
		FROM movimientos_inventario m
		JOIN productos p ON m.producto_id = p.id
		WHERE m.fecha_movimiento >= $1
		GROUP BY p.id, p.nombre, p.codigo_producto
		ORDER BY total_movido DESC
		LIMIT $2`
	var results []repository.TopMovedProduct
	if err := pgxscan.Select(ctx, r.pool, &results, query, since, limit); err != nil {
		return nil, fmt.Errorf("reportes.TopMovedProducts: %w", err)
	}
	return results, nil
}
