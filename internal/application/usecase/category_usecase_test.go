package usecase_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utm-ti/inventario-api/internal/application/dto"
	"github.com/utm-ti/inventario-api/internal/application/usecase"
	"github.com/utm-ti/inventario-api/internal/domain"
	"github.com/utm-ti/inventario-api/internal/domain/entity"
	"github.com/utm-ti/inventario-api/internal/domain/repository"
)

// fakeCategoryRepo categorías en memoria con unicidad por nombre.
type fakeCategoryRepo struct {
	categories []*entity.Category
	nextID     int64
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	for _, existing := range r.categories {
		if existing.Active && existing.Name == c.Name {
			return domain.ErrConflict
		}
	}
	r.nextID++
	c.ID = r.nextID
	c.Active = true
	copied := *c
	r.categories = append(r.categories, &copied)
	return nil
}

func (r *fakeCategoryRepo) GetByID(_ context.Context, id int64) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.ID == id && c.Active {
			copied := *c
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) ListActive(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if c.Active {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

var _ repository.CategoryRepository = (*fakeCategoryRepo)(nil)

func TestCategoryCreate(t *testing.T) {
	uc := usecase.NewCategoryUseCase(&fakeCategoryRepo{})

	category, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Periféricos"})
	require.NoError(t, err)
	assert.NotZero(t, category.ID)

	// nombre vacío
	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// nombre duplicado
	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Periféricos"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCategoryListActive_OrdenadasPorNombre(t *testing.T) {
	repo := &fakeCategoryRepo{}
	uc := usecase.NewCategoryUseCase(repo)

	for _, name := range []string{"Monitores", "Accesorios", "Teclados"} {
		_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: name})
		require.NoError(t, err)
	}

	out, err := uc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Accesorios", out[0].Name)
	assert.Equal(t, "Monitores", out[1].Name)
	assert.Equal(t, "Teclados", out[2].Name)
}
