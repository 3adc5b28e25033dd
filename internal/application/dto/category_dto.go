package dto

import (
	"time"

	"github.com/utm-ti/inventario-api/internal/domain/entity"
)

// CreateCategoryRequest creación de categoría (solo admin).
type CreateCategoryRequest struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// CategoryDTO categoría en respuestas.
type CategoryDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion,omitempty"`
	CreatedAt   time.Time `json:"fecha_creacion"`
}

// NewCategoryDTO mapea la entidad a DTO.
func NewCategoryDTO(c *entity.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}
