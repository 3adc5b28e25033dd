package entity

import "time"

// Category categoría de productos. Los productos la referencian de forma opcional.
type Category struct {
	ID          int64
	Name        string // único entre categorías activas
	Description string
	Active      bool
	CreatedAt   time.Time
}
