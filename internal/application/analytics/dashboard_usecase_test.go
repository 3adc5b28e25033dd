package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utm-ti/inventario-api/internal/application/analytics"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

// fakeReportRepo devuelve agregados fijos y captura los argumentos de las
// consultas para verificar las ventanas de tiempo.
type fakeReportRepo struct {
	totalErr error

	monthFrom, monthTo time.Time
	topSince           time.Time
	topLimit           int
}

func (r *fakeReportRepo) CountActiveProducts(context.Context) (int64, error) {
	return 12, r.totalErr
}

func (r *fakeReportRepo) CountLowStockProducts(context.Context) (int64, error) {
	return 3, nil
}

func (r *fakeReportRepo) InventoryValue(context.Context) (decimal.Decimal, error) {
	return decimal.NewFromFloat(1234.50), nil
}

func (r *fakeReportRepo) MovementTotalsByType(_ context.Context, from, to time.Time) ([]repository.MovementTypeTotal, error) {
	r.monthFrom, r.monthTo = from, to
	return []repository.MovementTypeTotal{
		{Type: "entrada", Total: 20},
		{Type: "salida", Total: 15},
	}, nil
}

func (r *fakeReportRepo) TopMovedProducts(_ context.Context, since time.Time, limit int) ([]repository.TopMovedProduct, error) {
	r.topSince, r.topLimit = since, limit
	return []repository.TopMovedProduct{
		{Name: "teclado", Code: "TEC-001", TotalMoved: 40},
		{Name: "mouse", Code: "MOU-001", TotalMoved: 25},
	}, nil
}

var _ repository.ReportRepository = (*fakeReportRepo)(nil)

// El snapshot agrega las cinco consultas con las ventanas correctas.
func TestDashboardSnapshot(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := analytics.NewDashboardUseCase(repo)

	snapshot, err := uc.GetSnapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(12), snapshot.TotalProducts)
	assert.Equal(t, int64(3), snapshot.LowStockProducts)
	assert.True(t, snapshot.InventoryValue.Equal(decimal.NewFromFloat(1234.50)))

	require.Len(t, snapshot.MonthlyMovements, 2)
	assert.Equal(t, "entrada", snapshot.MonthlyMovements[0].Type)
	assert.Equal(t, int64(20), snapshot.MonthlyMovements[0].Total)

	require.Len(t, snapshot.TopMovedProducts, 2)
	assert.Equal(t, "teclado", snapshot.TopMovedProducts[0].Name)
	assert.Equal(t, int64(40), snapshot.TopMovedProducts[0].TotalMoved)

	// Mes calendario: del día 1 a las 00:00 al inicio del mes siguiente.
	now := time.Now()
	wantStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	assert.Equal(t, wantStart, repo.monthFrom)
	assert.Equal(t, wantStart.AddDate(0, 1, 0), repo.monthTo)

	// Ventana móvil de 30 días y top 5.
	assert.WithinDuration(t, now.Add(-30*24*time.Hour), repo.topSince, 5*time.Second)
	assert.Equal(t, 5, repo.topLimit)
}

// Si cualquiera de las consultas falla, el snapshot completo falla.
func TestDashboardSnapshot_PropagaError(t *testing.T) {
	boom := errors.New("conexión perdida")
	uc := analytics.NewDashboardUseCase(&fakeReportRepo{totalErr: boom})

	_, err := uc.GetSnapshot(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}
