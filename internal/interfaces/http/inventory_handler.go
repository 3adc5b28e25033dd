package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/utm-ti/inventario-api/internal/application/dto"
	"github.com/utm-ti/inventario-api/internal/application/inventory"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

// InventoryHandler maneja los movimientos de inventario: el registro pasa por
// el motor transaccional; el historial es solo lectura sobre el ledger.
type InventoryHandler struct {
	engine       *inventory.Engine
	movementRepo repository.MovementRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(engine *inventory.Engine, movementRepo repository.MovementRepository) *InventoryHandler {
	return &InventoryHandler{engine: engine, movementRepo: movementRepo}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de inventario
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "producto_id, tipo_movimiento (entrada/salida), cantidad"
// @Success      201   {object}  dto.RegisterMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movimientos [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	movement, newStock, err := h.engine.ApplyMovement(c.Context(), inventory.MovementInput{
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Motive:      in.Motive,
		Observation: in.Observation,
		UserID:      GetUserID(c),
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegisterMovementResponse{
		Message:  "movimiento registrado exitosamente",
		Movement: dto.NewMovementDTO(movement),
		NewStock: newStock,
	})
}

// ListMovements godoc
// @Summary      Historial de movimientos
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        producto_id  query  int     false  "Filtrar por producto"
// @Param        tipo         query  string  false  "entrada | salida"
// @Param        limite       query  int     false  "Tamaño de página (50 por defecto)"
// @Param        pagina       query  int     false  "Página 1-based"
// @Success      200  {object}  dto.MovementListResponse
// @Router       /api/movimientos [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var in dto.MovementListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "filtros inválidos"})
	}
	in.DefaultPage()
	movements, err := h.movementRepo.ListAll(c.Context(), repository.MovementFilter{
		ProductID: in.ProductID,
		Type:      in.Type,
		Limit:     in.Limit,
		Page:      in.Page,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(dto.MovementListResponse{
		Movements:    dto.NewMovementDTOs(movements),
		PageResponse: dto.PageResponse{Page: in.Page, Limit: in.Limit, Total: len(movements)},
	})
}
