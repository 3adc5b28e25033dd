package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/utm-ti/inventario-api/internal/domain"
	"github.com/utm-ti/inventario-api/internal/domain/entity"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una categoría nueva. Nombre duplicado -> ErrConflict.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	const query = `
		INSERT INTO categorias (nombre, descripcion)
		VALUES ($1, $2)
		RETURNING id, fecha_creacion`
	err := r.q.QueryRow(ctx, query, c.Name, nullIfEmpty(c.Description)).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert categoría: %w", err)
	}
	c.Active = true
	return nil
}

// GetByID obtiene una categoría activa por ID. Devuelve nil si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	const query = `
		SELECT id, nombre, descripcion, activo, fecha_creacion
		FROM categorias WHERE id = $1 AND activo = true`
	var c entity.Category
	var descripcion *string
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &descripcion, &c.Active, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get categoría: %w", err)
	}
	if descripcion != nil {
		c.Description = *descripcion
	}
	return &c, nil
}

// ListActive lista las categorías activas ordenadas por nombre.
func (r *CategoryRepo) ListActive(ctx context.Context) ([]*entity.Category, error) {
	const query = `
		SELECT id, nombre, descripcion, activo, fecha_creacion
		FROM categorias WHERE activo = true ORDER BY nombre`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categorías: %w", err)
	}
	defer rows.Close()

	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		var descripcion *string
		if err := rows.Scan(&c.ID, &c.Name, &descripcion, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan categoría: %w", err)
		}
		if descripcion != nil {
			c.Description = *descripcion
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
