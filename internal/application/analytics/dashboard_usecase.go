// Package analytics contiene las proyecciones de lectura del inventario:
// el dashboard con conteos, valoración y movimientos agregados.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/utm-ti/inventario-api/internal/application/dto"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

const (
	dashboardTopProducts = 5                   // productos en el widget de más movidos
	topMovedWindow       = 30 * 24 * time.Hour // ventana móvil para el top de movidos
)

// DashboardUseCase genera el resumen general del inventario.
//
// Fuente de datos: ReportRepository (consultas read-only recalculadas bajo
// demanda). Nunca muta los stores de productos ni el ledger.
type DashboardUseCase struct {
	reportRepo repository.ReportRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reportRepo repository.ReportRepository) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo}
}

// GetSnapshot construye el DashboardDTO.
//
// Cinco consultas en paralelo:
//  1. total de productos activos
//  2. productos con stock en o bajo el mínimo
//  3. valor del inventario (precio × stock)
//  4. movimientos del mes calendario en curso, agrupados por tipo
//  5. top 5 productos por cantidad movida en los últimos 30 días
func (uc *DashboardUseCase) GetSnapshot(ctx context.Context) (*dto.DashboardDTO, error) {
	now := time.Now()

	// Mes calendario en curso: día 1 a las 00:00 hasta el inicio del mes siguiente.
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)
	movedSince := now.Add(-topMovedWindow)

	type countResult struct {
		n   int64
		err error
	}
	type valueResult struct {
		v   decimal.Decimal
		err error
	}
	type monthResult struct {
		rows []repository.MovementTypeTotal
		err  error
	}
	type topResult struct {
		rows []repository.TopMovedProduct
		err  error
	}

	totalCh := make(chan countResult, 1)
	lowCh := make(chan countResult, 1)
	valueCh := make(chan valueResult, 1)
	monthCh := make(chan monthResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		n, err := uc.reportRepo.CountActiveProducts(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.reportRepo.CountLowStockProducts(ctx)
		lowCh <- countResult{n, err}
	}()
	go func() {
		v, err := uc.reportRepo.InventoryValue(ctx)
		valueCh <- valueResult{v, err}
	}()
	go func() {
		rows, err := uc.reportRepo.MovementTotalsByType(ctx, monthStart, monthEnd)
		monthCh <- monthResult{rows, err}
	}()
	go func() {
		rows, err := uc.reportRepo.TopMovedProducts(ctx, movedSince, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()

	total := <-totalCh
	low := <-lowCh
	value := <-valueCh
	month := <-monthCh
	top := <-topCh

	if total.err != nil {
		return nil, fmt.Errorf("dashboard: total de productos: %w", total.err)
	}
	if low.err != nil {
		return nil, fmt.Errorf("dashboard: stock bajo: %w", low.err)
	}
	if value.err != nil {
		return nil, fmt.Errorf("dashboard: valor de inventario: %w", value.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos del mes: %w", month.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: productos más movidos: %w", top.err)
	}

	monthly := make([]dto.MovementTypeTotalDTO, 0, len(month.rows))
	for _, row := range month.rows {
		monthly = append(monthly, dto.MovementTypeTotalDTO{Type: row.Type, Total: row.Total})
	}
	topMoved := make([]dto.TopMovedProductDTO, 0, len(top.rows))
	for _, row := range top.rows {
		topMoved = append(topMoved, dto.TopMovedProductDTO{Name: row.Name, Code: row.Code, TotalMoved: row.TotalMoved})
	}

	return &dto.DashboardDTO{
		TotalProducts:    total.n,
		LowStockProducts: low.n,
		InventoryValue:   value.v,
		MonthlyMovements: monthly,
		TopMovedProducts: topMoved,
	}, nil
}
