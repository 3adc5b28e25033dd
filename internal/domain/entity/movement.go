package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSalida  = "salida"
)

// ValidMovementType verifica que el tipo sea entrada o salida.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeSalida
}

// Movement es una entrada del ledger de inventario: inmutable una vez escrita.
// ID es BIGSERIAL, por lo que el orden de creación es estrictamente creciente.
// Quantity siempre es positiva; el signo lo da Type.
type Movement struct {
	ID          int64
	ProductID   int64
	UserID      int64
	Type        string // entrada | salida
	Quantity    int64
	UnitPrice   *decimal.Decimal // precio unitario al momento del movimiento (opcional)
	Motive      string
	Observation string
	Date        time.Time // fecha_movimiento, asignada por el servidor

	// Campos denormalizados para listados (JOIN con productos y usuarios).
	ProductName string
	ProductCode string
	UserName    string
}
