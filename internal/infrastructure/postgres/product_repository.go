package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/utm-ti/inventario-api/internal/domain"
	"github.com/utm-ti/inventario-api/internal/domain/entity"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// psql builder de consultas con placeholders $1, $2, ... de PostgreSQL.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// productColumns columnas de productos en el orden que espera scanProduct.
const productColumns = `id, nombre, descripcion, categoria_id, precio, stock_actual, stock_minimo,
	codigo_producto, imagen_url, activo, fecha_creacion, fecha_actualizacion`

// productJoinColumns columnas de las lecturas con el nombre de la categoría
// denormalizado (LEFT JOIN: productos sin categoría devuelven NULL).
const productJoinColumns = `p.id, p.nombre, p.descripcion, p.categoria_id, p.precio, p.stock_actual, p.stock_minimo,
	p.codigo_producto, p.imagen_url, p.activo, c.nombre, p.fecha_creacion, p.fecha_actualizacion`

const productJoinFrom = ` FROM productos p LEFT JOIN categorias c ON p.categoria_id = c.id`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// No expone ninguna escritura de stock: eso vive en txRepos, dentro del motor transaccional.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. El motor de inventario usa su propia vía
// transaccional (TxRepos.InsertProduct); este método queda para productos sin stock inicial.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	const query = `
		INSERT INTO productos (nombre, descripcion, categoria_id, precio, stock_actual, stock_minimo, codigo_producto, imagen_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, fecha_creacion, fecha_actualizacion`
	err := r.q.QueryRow(ctx, query,
		p.Name, nullIfEmpty(p.Description), p.CategoryID, p.Price, p.Stock, p.MinStock,
		nullIfEmpty(p.Code), nullIfEmpty(p.ImageURL),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	p.Active = true
	return nil
}

// GetByID obtiene un producto activo por ID, con el nombre de su categoría.
// Devuelve nil si no existe o está inactivo.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productJoinColumns + productJoinFrom + ` WHERE p.id = $1 AND p.activo = true`
	p, err := scanProductWithCategory(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByCode obtiene un producto activo por código exacto (case-sensitive).
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	query := `SELECT ` + productJoinColumns + productJoinFrom + ` WHERE p.codigo_producto = $1 AND p.activo = true`
	p, err := scanProductWithCategory(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto por código: %w", err)
	}
	return p, nil
}

// UpdateMutableFields actualiza los campos editables del producto.
// stock_actual queda fuera a propósito: solo se modifica vía movimientos.
func (r *ProductRepo) UpdateMutableFields(ctx context.Context, p *entity.Product) error {
	const query = `
		UPDATE productos
		SET nombre = $2, descripcion = $3, categoria_id = $4, precio = $5,
		    stock_minimo = $6, codigo_producto = $7, imagen_url = $8,
		    fecha_actualizacion = now()
		WHERE id = $1 AND activo = true`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, nullIfEmpty(p.Description), p.CategoryID, p.Price,
		p.MinStock, nullIfEmpty(p.Code), nullIfEmpty(p.ImageURL),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el producto como inactivo. El historial de movimientos se conserva.
func (r *ProductRepo) SoftDelete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET activo = false, fecha_actualizacion = now() WHERE id = $1 AND activo = true`,
		id,
	)
	if err != nil {
		return fmt.Errorf("soft delete producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista productos activos con filtros opcionales de categoría y búsqueda
// (ILIKE sobre nombre o código), ordenados del más reciente al más antiguo.
func (r *ProductRepo) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	limit, offset := pageToLimitOffset(filter.Limit, filter.Page)

	builder := psql.Select(productJoinColumns).
		From("productos p").
		LeftJoin("categorias c ON p.categoria_id = c.id").
		Where(sq.Eq{"p.activo": true}).
		OrderBy("p.fecha_creacion DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if filter.CategoryID != nil {
		builder = builder.Where(sq.Eq{"p.categoria_id": *filter.CategoryID})
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"p.nombre": pattern},
			sq.ILike{"p.codigo_producto": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("construir query de productos: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		p, err := scanProductWithCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// scanProduct escanea una fila de productos manejando las columnas opcionales (NULL).
func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var descripcion, codigo, imagen *string
	err := row.Scan(
		&p.ID, &p.Name, &descripcion, &p.CategoryID, &p.Price, &p.Stock, &p.MinStock,
		&codigo, &imagen, &p.Active, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descripcion != nil {
		p.Description = *descripcion
	}
	if codigo != nil {
		p.Code = *codigo
	}
	if imagen != nil {
		p.ImageURL = *imagen
	}
	return &p, nil
}

// scanProductWithCategory escanea una fila de productos con el nombre de la
// categoría del LEFT JOIN (NULL si el producto no tiene categoría).
func scanProductWithCategory(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var descripcion, codigo, imagen, categoria *string
	err := row.Scan(
		&p.ID, &p.Name, &descripcion, &p.CategoryID, &p.Price, &p.Stock, &p.MinStock,
		&codigo, &imagen, &p.Active, &categoria, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descripcion != nil {
		p.Description = *descripcion
	}
	if codigo != nil {
		p.Code = *codigo
	}
	if imagen != nil {
		p.ImageURL = *imagen
	}
	if categoria != nil {
		p.CategoryName = *categoria
	}
	return &p, nil
}

// pageToLimitOffset traduce paginación 1-based a LIMIT/OFFSET con valores por defecto.
func pageToLimitOffset(limit, page int) (int, int) {
	if limit <= 0 {
		limit = 50
	}
	if page <= 0 {
		page = 1
	}
	return limit, (page - 1) * limit
}
