package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/utm-ti/inventario-api/internal/domain/entity"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// movementColumns columnas del listado de movimientos (con nombre de producto,
// código y nombre de usuario denormalizados vía JOIN).
const movementColumns = `m.id, m.producto_id, m.usuario_id, m.tipo_movimiento, m.cantidad,
	m.precio_unitario, m.motivo, m.observaciones, m.fecha_movimiento,
	p.nombre, p.codigo_producto, u.nombre`

// MovementRepo consultas de solo lectura sobre el ledger de movimientos.
// La inserción no está aquí: vive en txRepos y solo la ejecuta el motor
// transaccional, por lo que el ledger es append-only por construcción.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// GetByID obtiene un movimiento por ID. Devuelve nil si no existe.
func (r *MovementRepo) GetByID(ctx context.Context, id int64) (*entity.Movement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM movimientos_inventario m
		JOIN productos p ON m.producto_id = p.id
		JOIN usuarios u ON m.usuario_id = u.id
		WHERE m.id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return m, nil
}

// ListByProduct lista los movimientos de un producto, del más reciente al más antiguo.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64, limit, page int) ([]*entity.Movement, error) {
	return r.ListAll(ctx, repository.MovementFilter{ProductID: &productID, Limit: limit, Page: page})
}

// ListByType lista los movimientos de un tipo (entrada/salida), del más reciente al más antiguo.
func (r *MovementRepo) ListByType(ctx context.Context, movementType string, limit, page int) ([]*entity.Movement, error) {
	return r.ListAll(ctx, repository.MovementFilter{Type: movementType, Limit: limit, Page: page})
}

// ListAll lista movimientos con filtros opcionales de producto y tipo,
// ordenados por fecha de movimiento descendente.
func (r *MovementRepo) ListAll(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	limit, offset := pageToLimitOffset(filter.Limit, filter.Page)

	builder := psql.Select(movementColumns).
		From("movimientos_inventario m").
		Join("productos p ON m.producto_id = p.id").
		Join("usuarios u ON m.usuario_id = u.id").
		OrderBy("m.fecha_movimiento DESC", "m.id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if filter.ProductID != nil {
		builder = builder.Where(sq.Eq{"m.producto_id": *filter.ProductID})
	}
	if filter.Type != "" {
		builder = builder.Where(sq.Eq{"m.tipo_movimiento": filter.Type})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("construir query de movimientos: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// scanMovement escanea una fila del listado manejando columnas opcionales.
func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	var motivo, observaciones, codigo *string
	err := row.Scan(
		&m.ID, &m.ProductID, &m.UserID, &m.Type, &m.Quantity,
		&m.UnitPrice, &motivo, &observaciones, &m.Date,
		&m.ProductName, &codigo, &m.UserName,
	)
	if err != nil {
		return nil, err
	}
	if motivo != nil {
		m.Motive = *motivo
	}
	if observaciones != nil {
		m.Observation = *observaciones
	}
	if codigo != nil {
		m.ProductCode = *codigo
	}
	return &m, nil
}
