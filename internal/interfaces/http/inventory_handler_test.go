package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utm-ti/inventario-api/internal/application/dto"
	"github.com/utm-ti/inventario-api/internal/application/inventory"
	"github.com/utm-ti/inventario-api/internal/domain/entity"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

// stubTxRunner transacción trivial sobre un único producto en memoria,
// suficiente para ejercitar el handler (la semántica transaccional completa
// se prueba en el paquete del motor).
type stubTxRunner struct {
	product   *entity.Product
	movements []*entity.Movement
}

func (s *stubTxRunner) Run(_ context.Context, fn func(inventory.TxRepos) error) error {
	return fn(s)
}

func (s *stubTxRunner) GetProductForUpdate(_ context.Context, id int64) (*entity.Product, error) {
	if s.product == nil || s.product.ID != id || !s.product.Active {
		return nil, nil
	}
	copied := *s.product
	return &copied, nil
}

func (s *stubTxRunner) InsertProduct(_ context.Context, p *entity.Product) error {
	p.ID = 1
	s.product = p
	return nil
}

func (s *stubTxRunner) UpdateStock(_ context.Context, _ int64, newStock int64) error {
	s.product.Stock = newStock
	return nil
}

func (s *stubTxRunner) AppendMovement(_ context.Context, m *entity.Movement) error {
	m.ID = int64(len(s.movements) + 1)
	m.Date = time.Now()
	s.movements = append(s.movements, m)
	return nil
}

// fakeMovementLister historial fijo para el listado.
type fakeMovementLister struct {
	movements  []*entity.Movement
	lastFilter repository.MovementFilter
}

func (f *fakeMovementLister) GetByID(_ context.Context, id int64) (*entity.Movement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMovementLister) ListByProduct(ctx context.Context, productID int64, limit, page int) ([]*entity.Movement, error) {
	return f.ListAll(ctx, repository.MovementFilter{ProductID: &productID, Limit: limit, Page: page})
}

func (f *fakeMovementLister) ListByType(ctx context.Context, movementType string, limit, page int) ([]*entity.Movement, error) {
	return f.ListAll(ctx, repository.MovementFilter{Type: movementType, Limit: limit, Page: page})
}

func (f *fakeMovementLister) ListAll(_ context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	f.lastFilter = filter
	return f.movements, nil
}

var _ repository.MovementRepository = (*fakeMovementLister)(nil)

func buildInventoryApp(runner *stubTxRunner, lister *fakeMovementLister) *fiber.App {
	app := fiber.New()
	handler := NewInventoryHandler(inventory.NewEngine(runner), lister)
	app.Post("/movimientos", handler.RegisterMovement)
	app.Get("/movimientos", handler.ListMovements)
	return app
}

// El registro responde con el cuerpo tipado: message, movimiento y nuevo_stock.
func TestRegisterMovement_RespuestaTipada(t *testing.T) {
	runner := &stubTxRunner{product: &entity.Product{
		ID: 1, Name: "teclado", Price: decimal.NewFromInt(10), Stock: 100, Active: true,
	}}
	app := buildInventoryApp(runner, &fakeMovementLister{})

	req := httptest.NewRequest(http.MethodPost, "/movimientos",
		strings.NewReader(`{"producto_id":1,"tipo_movimiento":"salida","cantidad":30}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out dto.RegisterMovementResponse
	require.NoError(t, json.Unmarshal(body, &out))
	assert.NotEmpty(t, out.Message)
	assert.Equal(t, int64(70), out.NewStock)
	assert.Equal(t, "salida", out.Movement.Type)
	assert.Equal(t, int64(30), out.Movement.Quantity)
	assert.NotZero(t, out.Movement.ID)

	// Las claves del JSON son las del contrato original.
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	for _, key := range []string{"message", "movimiento", "nuevo_stock"} {
		assert.Contains(t, raw, key)
	}
}

// El listado responde con la página tipada: movimientos, pagina, limite, total.
func TestListMovements_RespuestaTipada(t *testing.T) {
	lister := &fakeMovementLister{movements: []*entity.Movement{
		{ID: 2, ProductID: 1, UserID: 1, Type: "salida", Quantity: 5, Date: time.Now()},
		{ID: 1, ProductID: 1, UserID: 1, Type: "entrada", Quantity: 10, Date: time.Now()},
	}}
	app := buildInventoryApp(&stubTxRunner{}, lister)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/movimientos?limite=20&pagina=2", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out dto.MovementListResponse
	require.NoError(t, json.Unmarshal(body, &out))
	require.Len(t, out.Movements, 2)
	assert.Equal(t, 2, out.Page)
	assert.Equal(t, 20, out.Limit)
	assert.Equal(t, 2, out.Total)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &raw))
	for _, key := range []string{"movimientos", "pagina", "limite", "total"} {
		assert.Contains(t, raw, key)
	}

	assert.Equal(t, 20, lister.lastFilter.Limit)
	assert.Equal(t, 2, lister.lastFilter.Page)
}
