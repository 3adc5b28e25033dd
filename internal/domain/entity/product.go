package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// Stock es la cantidad actual y solo se modifica vía movimientos (motor transaccional);
// el invariante es Stock == suma de entradas - suma de salidas del ledger.
type Product struct {
	ID           int64
	Name         string
	Description  string
	CategoryID   *int64          // opcional
	Price        decimal.Decimal // precio de venta, nunca negativo
	Stock        int64           // cantidad actual, nunca negativa
	MinStock     int64           // umbral de stock bajo
	Code         string          // codigo_producto, único entre productos activos (vacío = sin código)
	ImageURL     string
	Active       bool   // soft-delete
	CategoryName string // denormalizado vía JOIN en lecturas; vacío sin categoría
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
