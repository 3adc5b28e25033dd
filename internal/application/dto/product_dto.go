package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/utm-ti/inventario-api/internal/domain/entity"
)

// CreateProductRequest creación de producto. Stock es la cantidad inicial y
// genera un movimiento sintético "Stock inicial" si es mayor que cero.
type CreateProductRequest struct {
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	CategoryID  *int64          `json:"categoria_id"`
	Price       decimal.Decimal `json:"precio"`
	Stock       int64           `json:"stock_actual"`
	MinStock    int64           `json:"stock_minimo"`
	Code        string          `json:"codigo_producto"`
	ImageURL    string          `json:"imagen_url"`
}

// UpdateProductRequest campos editables del producto. El stock no está aquí:
// solo se modifica registrando movimientos.
type UpdateProductRequest struct {
	Name        string          `json:"nombre"`
	Description string          `json:"descripcion"`
	CategoryID  *int64          `json:"categoria_id"`
	Price       decimal.Decimal `json:"precio"`
	MinStock    int64           `json:"stock_minimo"`
	Code        string          `json:"codigo_producto"`
	ImageURL    string          `json:"imagen_url"`
}

// ProductListRequest filtros del listado de productos.
type ProductListRequest struct {
	CategoryID *int64 `query:"categoria"`
	Search     string `query:"buscar"`
	PageRequest
}

// ProductDTO representación de un producto en respuestas.
type ProductDTO struct {
	ID           int64           `json:"id"`
	Name         string          `json:"nombre"`
	Description  string          `json:"descripcion,omitempty"`
	CategoryID   *int64          `json:"categoria_id,omitempty"`
	CategoryName string          `json:"categoria_nombre,omitempty"`
	Price        decimal.Decimal `json:"precio"`
	Stock        int64           `json:"stock_actual"`
	MinStock     int64           `json:"stock_minimo"`
	Code         string          `json:"codigo_producto,omitempty"`
	ImageURL     string          `json:"imagen_url,omitempty"`
	CreatedAt    time.Time       `json:"fecha_creacion"`
	UpdatedAt    time.Time       `json:"fecha_actualizacion"`
}

// NewProductDTO mapea la entidad a DTO.
func NewProductDTO(p *entity.Product) ProductDTO {
	return ProductDTO{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Price:        p.Price,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		Code:         p.Code,
		ImageURL:     p.ImageURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// ProductListResponse página del listado de productos.
type ProductListResponse struct {
	Products []ProductDTO `json:"productos"`
	PageResponse
}

// NewProductDTOs mapea una lista de entidades.
func NewProductDTOs(products []*entity.Product) []ProductDTO {
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductDTO(p))
	}
	return out
}
