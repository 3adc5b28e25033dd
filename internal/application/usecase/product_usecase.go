package usecase

import (
	"context"

	"github.com/utm-ti/inventario-api/internal/application/dto"
	"github.com/utm-ti/inventario-api/internal/application/inventory"
	"github.com/utm-ti/inventario-api/internal/domain"
	"github.com/utm-ti/inventario-api/internal/domain/entity"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

// ProductUseCase gestiona productos. La creación con stock inicial y cualquier
// cambio de stock pasan por el motor transaccional; aquí solo se editan los
// campos mutables (nombre, precio, umbral, código...).
type ProductUseCase struct {
	productRepo repository.ProductRepository
	engine      *inventory.Engine
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository, engine *inventory.Engine) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo, engine: engine}
}

// Create crea un producto; si trae stock inicial, el motor sintetiza el
// movimiento "Stock inicial" en la misma transacción.
// El código se pre-verifica contra los productos activos para responder
// ErrConflict temprano; el índice único parcial sigue siendo la garantía final.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, userID int64) (*entity.Product, error) {
	if in.Code != "" {
		existing, err := uc.productRepo.GetByCode(ctx, in.Code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrConflict
		}
	}
	return uc.engine.CreateProductWithInitialStock(ctx, inventory.CreateProductInput{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		MinStock:    in.MinStock,
		Code:        in.Code,
		ImageURL:    in.ImageURL,
	}, in.Stock, userID)
}

// GetByID obtiene un producto activo.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Update edita los campos mutables del producto (nunca el stock).
func (uc *ProductUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.Price.IsNegative() || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	product.Name = in.Name
	product.Description = in.Description
	product.CategoryID = in.CategoryID
	product.Price = in.Price
	product.MinStock = in.MinStock
	product.Code = in.Code
	product.ImageURL = in.ImageURL

	if err := uc.productRepo.UpdateMutableFields(ctx, product); err != nil {
		return nil, err
	}
	return uc.productRepo.GetByID(ctx, id)
}

// SoftDelete marca el producto como inactivo; el historial se conserva.
func (uc *ProductUseCase) SoftDelete(ctx context.Context, id int64) error {
	return uc.productRepo.SoftDelete(ctx, id)
}

// List lista productos activos con filtros y paginación.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) ([]*entity.Product, error) {
	in.DefaultPage()
	return uc.productRepo.List(ctx, repository.ProductFilter{
		CategoryID: in.CategoryID,
		Search:     in.Search,
		Limit:      in.Limit,
		Page:       in.Page,
	})
}
