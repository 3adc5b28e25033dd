package repository

import (
	"context"

	"github.com/utm-ti/inventario-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	ListActive(ctx context.Context) ([]*entity.Category, error)
}
