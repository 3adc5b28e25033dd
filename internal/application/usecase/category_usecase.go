package usecase

import (
	"context"

	"github.com/utm-ti/inventario-api/internal/application/dto"
	"github.com/utm-ti/inventario-api/internal/domain"
	"github.com/utm-ti/inventario-api/internal/domain/entity"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

// CategoryUseCase gestiona categorías de productos.
type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

// Create crea una categoría. Nombre vacío -> ErrInvalidInput; duplicado -> ErrConflict.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*entity.Category, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := &entity.Category{Name: in.Name, Description: in.Description}
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListActive lista las categorías activas ordenadas por nombre.
func (uc *CategoryUseCase) ListActive(ctx context.Context) ([]*entity.Category, error) {
	return uc.categoryRepo.ListActive(ctx)
}
