package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/utm-ti/inventario-api/internal/application/inventory"
	"github.com/utm-ti/inventario-api/internal/domain"
	"github.com/utm-ti/inventario-api/internal/domain/entity"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Los errores de infraestructura (begin, commit, fallos de escritura) se
// marcan con domain.ErrTransaction para distinguirlos de los de validación.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run adquiere una conexión (con watchdog de fugas), inicia una transacción,
// ejecuta fn con los repos atados a la tx y hace Commit o Rollback.
// El Rollback diferido cubre todo camino de salida, incluida la cancelación
// del contexto: nunca queda estado parcial visible.
func (r *TxRunner) Run(ctx context.Context, fn func(repos inventory.TxRepos) error) error {
	conn, release, err := acquireConn(ctx, r.pool, defaultLeakWarn)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrTransaction, err)
	}
	defer release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%w: begin: %v", domain.ErrTransaction, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(&txRepos{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%w: commit: %v", domain.ErrTransaction, err)
	}
	return nil
}

var _ inventory.TxRepos = (*txRepos)(nil)

// txRepos operaciones de escritura atadas a una transacción en curso.
type txRepos struct {
	tx pgx.Tx
}

// GetProductForUpdate lee el producto activo y bloquea su fila con
// SELECT FOR UPDATE: dos movimientos concurrentes sobre el mismo producto se
// serializan aquí; productos distintos no se bloquean entre sí.
func (r *txRepos) GetProductForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	const query = `
		SELECT id, nombre, descripcion, categoria_id, precio, stock_actual, stock_minimo,
		       codigo_producto, imagen_url, activo, fecha_creacion, fecha_actualizacion
		FROM productos
		WHERE id = $1 AND activo = true
		FOR UPDATE`
	p, err := scanProduct(r.tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get producto for update: %v", domain.ErrTransaction, err)
	}
	return p, nil
}

// InsertProduct persiste el producto y completa ID y timestamps asignados por el servidor.
func (r *txRepos) InsertProduct(ctx context.Context, p *entity.Product) error {
	const query = `
		INSERT INTO productos (nombre, descripcion, categoria_id, precio, stock_actual, stock_minimo, codigo_producto, imagen_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, fecha_creacion, fecha_actualizacion`
	err := r.tx.QueryRow(ctx, query,
		p.Name, nullIfEmpty(p.Description), p.CategoryID, p.Price, p.Stock, p.MinStock,
		nullIfEmpty(p.Code), nullIfEmpty(p.ImageURL),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("%w: insert producto: %v", domain.ErrTransaction, err)
	}
	p.Active = true
	return nil
}

// UpdateStock sobrescribe el stock del producto. Solo se invoca con la fila ya
// bloqueada por GetProductForUpdate dentro de la misma transacción.
func (r *txRepos) UpdateStock(ctx context.Context, productID, newStock int64) error {
	_, err := r.tx.Exec(ctx,
		`UPDATE productos SET stock_actual = $2, fecha_actualizacion = now() WHERE id = $1`,
		productID, newStock,
	)
	if err != nil {
		return fmt.Errorf("%w: update stock: %v", domain.ErrTransaction, err)
	}
	return nil
}

// AppendMovement inserta la entrada del ledger y completa ID y fecha del servidor.
// El id BIGSERIAL conserva el orden estricto de creación.
func (r *txRepos) AppendMovement(ctx context.Context, m *entity.Movement) error {
	const query = `
		INSERT INTO movimientos_inventario (producto_id, usuario_id, tipo_movimiento, cantidad, precio_unitario, motivo, observaciones)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, fecha_movimiento`
	err := r.tx.QueryRow(ctx, query,
		m.ProductID, m.UserID, m.Type, m.Quantity, m.UnitPrice,
		nullIfEmpty(m.Motive), nullIfEmpty(m.Observation),
	).Scan(&m.ID, &m.Date)
	if err != nil {
		return fmt.Errorf("%w: insert movimiento: %v", domain.ErrTransaction, err)
	}
	return nil
}

// nullIfEmpty mapea cadena vacía a NULL (columnas opcionales del esquema).
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
