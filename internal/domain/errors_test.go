package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utm-ti/inventario-api/internal/domain"
)

// El error tipado debe detectarse con errors.Is contra el centinela y exponer
// las cantidades vía errors.As, incluso envuelto en otra capa.
func TestInsufficientStockError(t *testing.T) {
	var err error = &domain.InsufficientStockError{Available: 70, Requested: 200}

	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)

	wrapped := fmt.Errorf("aplicando movimiento: %w", err)
	assert.ErrorIs(t, wrapped, domain.ErrInsufficientStock)

	var target *domain.InsufficientStockError
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, int64(70), target.Available)
	assert.Equal(t, int64(200), target.Requested)

	assert.Contains(t, err.Error(), "70")
	assert.Contains(t, err.Error(), "200")
}

// Los centinelas son distinguibles entre sí.
func TestSentinelas_Distintos(t *testing.T) {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrInvalidInput,
		domain.ErrConflict,
		domain.ErrInsufficientStock,
		domain.ErrTransaction,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v no debe coincidir con %v", a, b)
		}
	}
}
