package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utm-ti/inventario-api/internal/domain"
)

// Cada error del dominio se traduce a su status y código HTTP.
func TestWriteDomainError_Mapeo(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"entrada inválida", domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
		{"no encontrado", domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
		{"conflicto", domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{"email duplicado", domain.ErrEmailAlreadyExists, fiber.StatusBadRequest, "EMAIL_EXISTS"},
		{"credenciales", domain.ErrInvalidCredentials, fiber.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"stock insuficiente (centinela)", domain.ErrInsufficientStock, fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		{"transaccional", fmt.Errorf("%w: commit: boom", domain.ErrTransaction), fiber.StatusServiceUnavailable, "TRANSACTION"},
		{"desconocido", fmt.Errorf("algo inesperado"), fiber.StatusInternalServerError, "INTERNAL"},
		{"envuelto", fmt.Errorf("capa extra: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeDomainError(c, tc.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			assert.Equal(t, tc.wantCode, decodeError(t, resp).Code)
		})
	}
}

// El error tipado de stock informa las cantidades en el mensaje.
func TestWriteDomainError_StockInsuficienteConCantidades(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeDomainError(c, &domain.InsufficientStockError{Available: 70, Requested: 200})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Equal(t, "stock insuficiente. Disponible: 70, Solicitado: 200", body.Message)
}
