package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utm-ti/inventario-api/internal/application/dto"
	"github.com/utm-ti/inventario-api/internal/application/usecase"
	"github.com/utm-ti/inventario-api/internal/domain"
	"github.com/utm-ti/inventario-api/internal/domain/entity"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

// fakeProductRepo repositorio de productos en memoria para el caso de uso.
// Registra el último filtro recibido para verificar la paginación.
type fakeProductRepo struct {
	products   map[int64]*entity.Product
	nextID     int64
	lastFilter repository.ProductFilter
	deleted    []int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*entity.Product)}
}

func (r *fakeProductRepo) seed(name string, stock int64) *entity.Product {
	r.nextID++
	p := &entity.Product{
		ID:     r.nextID,
		Name:   name,
		Price:  decimal.NewFromInt(10),
		Stock:  stock,
		Active: true,
	}
	r.products[p.ID] = p
	return p
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.nextID++
	p.ID = r.nextID
	copied := *p
	r.products[p.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok || !p.Active {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Active && p.Code == code {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) UpdateMutableFields(_ context.Context, p *entity.Product) error {
	existing, ok := r.products[p.ID]
	if !ok || !existing.Active {
		return domain.ErrNotFound
	}
	// El stock no forma parte de los campos mutables.
	stock := existing.Stock
	copied := *p
	copied.Stock = stock
	r.products[p.ID] = &copied
	return nil
}

func (r *fakeProductRepo) SoftDelete(_ context.Context, id int64) error {
	p, ok := r.products[id]
	if !ok || !p.Active {
		return domain.ErrNotFound
	}
	p.Active = false
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	r.lastFilter = filter
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Active {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func updateRequest(name string) dto.UpdateProductRequest {
	return dto.UpdateProductRequest{
		Name:     name,
		Price:    decimal.NewFromInt(15),
		MinStock: 2,
	}
}

// El nombre de la categoría denormalizado llega hasta el DTO de respuesta.
func TestProductGetByID_IncluyeNombreCategoria(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	categoryID := int64(7)
	p := repo.seed("monitor", 5)
	repo.products[p.ID].CategoryID = &categoryID
	repo.products[p.ID].CategoryName = "Monitores"

	got, err := uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Monitores", got.CategoryName)
	assert.Equal(t, "Monitores", dto.NewProductDTO(got).CategoryName)

	listed, err := uc.List(context.Background(), dto.ProductListRequest{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Monitores", listed[0].CategoryName)
}

// Código ya usado por un producto activo: ErrConflict antes de llegar al motor.
func TestProductCreate_CodigoDuplicado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	p := repo.seed("teclado", 5)
	repo.products[p.ID].Code = "TEC-001"

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:  "teclado copia",
		Price: decimal.NewFromInt(1),
		Code:  "TEC-001",
	}, 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// GetByID sobre un producto inexistente o inactivo.
func TestProductGetByID_NoEncontrado(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)

	_, err := uc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	p := repo.seed("monitor", 5)
	require.NoError(t, uc.SoftDelete(context.Background(), p.ID))
	_, err = uc.GetByID(context.Background(), p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Update edita los campos mutables pero nunca toca el stock.
func TestProductUpdate_NoTocaElStock(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)
	p := repo.seed("monitor", 37)

	in := updateRequest("monitor 24\"")
	in.Code = "MON-24"
	updated, err := uc.Update(context.Background(), p.ID, in)
	require.NoError(t, err)

	assert.Equal(t, "monitor 24\"", updated.Name)
	assert.Equal(t, "MON-24", updated.Code)
	assert.True(t, updated.Price.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, int64(37), updated.Stock, "el stock solo cambia vía movimientos")
}

// Validaciones de Update.
func TestProductUpdate_EntradaInvalida(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)
	p := repo.seed("monitor", 5)

	cases := []struct {
		name string
		in   dto.UpdateProductRequest
	}{
		{"nombre vacío", dto.UpdateProductRequest{Price: decimal.NewFromInt(1)}},
		{"precio negativo", dto.UpdateProductRequest{Name: "x", Price: decimal.NewFromInt(-1)}},
		{"mínimo negativo", dto.UpdateProductRequest{Name: "x", Price: decimal.NewFromInt(1), MinStock: -1}},
	}
	for _, tc := range cases {
		_, err := uc.Update(context.Background(), p.ID, tc.in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tc.name)
	}
}

// Update sobre producto inexistente.
func TestProductUpdate_NoEncontrado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo(), nil)

	_, err := uc.Update(context.Background(), 99, updateRequest("x"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// List aplica los valores por defecto de paginación antes de llegar al repo.
func TestProductList_PaginacionPorDefecto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)
	repo.seed("a", 1)
	repo.seed("b", 2)

	out, err := uc.List(context.Background(), dto.ProductListRequest{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, 50, repo.lastFilter.Limit)
	assert.Equal(t, 1, repo.lastFilter.Page)

	categoryID := int64(3)
	_, err = uc.List(context.Background(), dto.ProductListRequest{
		CategoryID:  &categoryID,
		Search:      "mon",
		PageRequest: dto.PageRequest{Limit: 10, Page: 2},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.CategoryID)
	assert.Equal(t, int64(3), *repo.lastFilter.CategoryID)
	assert.Equal(t, "mon", repo.lastFilter.Search)
	assert.Equal(t, 10, repo.lastFilter.Limit)
	assert.Equal(t, 2, repo.lastFilter.Page)
}

// SoftDelete marca inactivo y es idempotentemente rechazado la segunda vez.
func TestProductSoftDelete(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo, nil)
	p := repo.seed("monitor", 5)

	require.NoError(t, uc.SoftDelete(context.Background(), p.ID))
	assert.Equal(t, []int64{p.ID}, repo.deleted)

	err := uc.SoftDelete(context.Background(), p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
