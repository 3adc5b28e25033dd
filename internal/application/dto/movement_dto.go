package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/utm-ti/inventario-api/internal/domain/entity"
)

// RegisterMovementRequest registro de un movimiento de inventario.
type RegisterMovementRequest struct {
	ProductID   int64            `json:"producto_id"`
	Type        string           `json:"tipo_movimiento"` // entrada | salida
	Quantity    int64            `json:"cantidad"`
	UnitPrice   *decimal.Decimal `json:"precio_unitario"`
	Motive      string           `json:"motivo"`
	Observation string           `json:"observaciones"`
}

// MovementListRequest filtros del historial de movimientos.
type MovementListRequest struct {
	ProductID *int64 `query:"producto_id"`
	Type      string `query:"tipo"`
	PageRequest
}

// MovementDTO entrada del ledger en respuestas (con datos denormalizados).
type MovementDTO struct {
	ID          int64            `json:"id"`
	ProductID   int64            `json:"producto_id"`
	UserID      int64            `json:"usuario_id"`
	Type        string           `json:"tipo_movimiento"`
	Quantity    int64            `json:"cantidad"`
	UnitPrice   *decimal.Decimal `json:"precio_unitario,omitempty"`
	Motive      string           `json:"motivo,omitempty"`
	Observation string           `json:"observaciones,omitempty"`
	Date        time.Time        `json:"fecha_movimiento"`
	ProductName string           `json:"producto_nombre,omitempty"`
	ProductCode string           `json:"codigo_producto,omitempty"`
	UserName    string           `json:"usuario_nombre,omitempty"`
}

// RegisterMovementResponse movimiento registrado más el stock resultante.
type RegisterMovementResponse struct {
	Message  string      `json:"message"`
	Movement MovementDTO `json:"movimiento"`
	NewStock int64       `json:"nuevo_stock"`
}

// MovementListResponse página del historial de movimientos.
type MovementListResponse struct {
	Movements []MovementDTO `json:"movimientos"`
	PageResponse
}

// NewMovementDTO mapea la entidad a DTO.
func NewMovementDTO(m *entity.Movement) MovementDTO {
	return MovementDTO{
		ID:          m.ID,
		ProductID:   m.ProductID,
		UserID:      m.UserID,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Motive:      m.Motive,
		Observation: m.Observation,
		Date:        m.Date,
		ProductName: m.ProductName,
		ProductCode: m.ProductCode,
		UserName:    m.UserName,
	}
}

// NewMovementDTOs mapea una lista de entidades.
func NewMovementDTOs(movements []*entity.Movement) []MovementDTO {
	out := make([]MovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, NewMovementDTO(m))
	}
	return out
}
