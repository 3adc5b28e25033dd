package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/utm-ti/inventario-api/internal/domain"
	"github.com/utm-ti/inventario-api/internal/domain/entity"
)

// Engine es el motor transaccional de inventario: valida un movimiento contra
// el stock actual y, en una sola unidad atómica, inserta la entrada del ledger
// y sobrescribe el stock del producto.
//
// Corrección bajo concurrencia: la lectura del stock, la verificación de
// suficiencia y la escritura ocurren con la fila del producto bloqueada
// (SELECT FOR UPDATE) dentro de la misma transacción, por lo que dos
// movimientos concurrentes sobre el mismo producto se serializan y el stock
// nunca queda negativo ni se pierden actualizaciones. Movimientos sobre
// productos distintos no se bloquean entre sí.
type Engine struct {
	txRunner TxRunner
}

// NewEngine construye el motor con el runner transaccional.
func NewEngine(txRunner TxRunner) *Engine {
	return &Engine{txRunner: txRunner}
}

// MovementInput entrada para aplicar un movimiento de inventario.
type MovementInput struct {
	ProductID   int64
	Type        string // entrada | salida
	Quantity    int64  // siempre positiva; el signo lo da Type
	UnitPrice   *decimal.Decimal
	Motive      string
	Observation string
	UserID      int64 // usuario autenticado que registra el movimiento
}

// CreateProductInput atributos para crear un producto.
type CreateProductInput struct {
	Name        string
	Description string
	CategoryID  *int64
	Price       decimal.Decimal
	MinStock    int64
	Code        string
	ImageURL    string
}

// initialStockMotive motivo del movimiento sintético al crear un producto con stock.
const initialStockMotive = "Stock inicial"

// ApplyMovement valida y aplica un movimiento de forma atómica.
// Devuelve el movimiento registrado y el nuevo stock del producto.
//
// Orden de validación (cada una corta el proceso y ocurre antes de toda mutación):
//  1. producto existente y activo        -> domain.ErrNotFound
//  2. tipo entrada/salida                -> domain.ErrInvalidInput
//  3. cantidad > 0                       -> domain.ErrInvalidInput
//  4. salida con stock < cantidad        -> domain.InsufficientStockError
func (e *Engine) ApplyMovement(ctx context.Context, in MovementInput) (*entity.Movement, int64, error) {
	var (
		movement *entity.Movement
		newStock int64
	)
	err := e.txRunner.Run(ctx, func(r TxRepos) error {
		product, err := r.GetProductForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		movement, newStock, err = e.applyLocked(ctx, r, product, in)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return movement, newStock, nil
}

// CreateProductWithInitialStock crea el producto y, si initialQuantity > 0,
// sintetiza un movimiento de entrada "Stock inicial" por la misma vía atómica
// que ApplyMovement, de modo que el invariante
// stock == entradas - salidas se cumple desde la creación.
func (e *Engine) CreateProductWithInitialStock(ctx context.Context, in CreateProductInput, initialQuantity, userID int64) (*entity.Product, error) {
	if in.Name == "" || in.Price.IsNegative() || initialQuantity < 0 || in.MinStock < 0 {
		return nil, domain.ErrInvalidInput
	}

	product := &entity.Product{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Stock:       0,
		MinStock:    in.MinStock,
		Code:        in.Code,
		ImageURL:    in.ImageURL,
	}

	err := e.txRunner.Run(ctx, func(r TxRepos) error {
		if err := r.InsertProduct(ctx, product); err != nil {
			return err
		}
		if initialQuantity == 0 {
			return nil
		}
		// La fila recién insertada ya está bloqueada por esta transacción.
		price := in.Price
		_, newStock, err := e.applyLocked(ctx, r, product, MovementInput{
			ProductID: product.ID,
			Type:      entity.MovementTypeEntrada,
			Quantity:  initialQuantity,
			UnitPrice: &price,
			Motive:    initialStockMotive,
			UserID:    userID,
		})
		if err != nil {
			return err
		}
		product.Stock = newStock
		return nil
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// applyLocked aplica el movimiento sobre un producto cuya fila ya está
// bloqueada por la transacción en curso: valida tipo, cantidad y suficiencia,
// inserta la entrada del ledger y sobrescribe el stock.
func (e *Engine) applyLocked(ctx context.Context, r TxRepos, product *entity.Product, in MovementInput) (*entity.Movement, int64, error) {
	if !entity.ValidMovementType(in.Type) {
		return nil, 0, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, 0, domain.ErrInvalidInput
	}

	var newStock int64
	switch in.Type {
	case entity.MovementTypeEntrada:
		newStock = product.Stock + in.Quantity
	case entity.MovementTypeSalida:
		if product.Stock < in.Quantity {
			return nil, 0, &domain.InsufficientStockError{
				Available: product.Stock,
				Requested: in.Quantity,
			}
		}
		newStock = product.Stock - in.Quantity
	}

	movement := &entity.Movement{
		ProductID:   product.ID,
		UserID:      in.UserID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Motive:      in.Motive,
		Observation: in.Observation,
	}
	if err := r.AppendMovement(ctx, movement); err != nil {
		return nil, 0, err
	}
	if err := r.UpdateStock(ctx, product.ID, newStock); err != nil {
		return nil, 0, err
	}
	product.Stock = newStock
	return movement, newStock, nil
}
