package repository

import (
	"context"

	"github.com/utm-ti/inventario-api/internal/domain/entity"
)

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	CategoryID *int64
	Search     string // substring sobre nombre o código, case-insensitive
	Limit      int
	Page       int // 1-based; offset = (Page-1)*Limit
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// No existe operación para escribir Stock directamente: el stock solo se
// modifica dentro del motor transaccional (UpdateStock vive en TxRepos).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	UpdateMutableFields(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id int64) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
