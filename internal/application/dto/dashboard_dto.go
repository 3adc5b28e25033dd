package dto

import "github.com/shopspring/decimal"

// MovementTypeTotalDTO total de movimientos de un tipo en el mes en curso.
type MovementTypeTotalDTO struct {
	Type  string `json:"tipo_movimiento"`
	Total int64  `json:"total"`
}

// TopMovedProductDTO producto más movido en los últimos 30 días.
type TopMovedProductDTO struct {
	Name       string `json:"nombre"`
	Code       string `json:"codigo_producto,omitempty"`
	TotalMoved int64  `json:"total_movido"`
}

// DashboardDTO resumen general del inventario.
type DashboardDTO struct {
	TotalProducts    int64                  `json:"total_productos"`
	LowStockProducts int64                  `json:"productos_stock_bajo"`
	InventoryValue   decimal.Decimal        `json:"valor_total_inventario"`
	MonthlyMovements []MovementTypeTotalDTO `json:"movimientos_mes"`
	TopMovedProducts []TopMovedProductDTO   `json:"productos_mas_movidos"`
}
