package service

import (
	"context"
	"testing"

	"gaming-storefront/internal/dto"
	"gaming-storefront/internal/model"
	"gaming-storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogAdd_PrependsAndAssignsID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first := env.addProduct(t, "", "Robux 400", 60000, 0)
	second := env.addProduct(t, "", "Robux 800", 110000, 10)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, testPlaceholder, first.Image)

	products, err := env.catalog.List(ctx, dto.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, second.ID, products[0].ID, "most recent first")
	assert.Equal(t, first.ID, products[1].ID)

	assert.Equal(t, []string{repository.ProductsKey, repository.ProductsKey}, env.notifier.changedKeys())
}

func TestCatalogAdd_DefaultsCategory(t *testing.T) {
	env := newTestEnv(t)

	p, err := env.catalog.Add(context.Background(), &dto.CreateProductRequest{Name: "Pass", BasePrice: price(1)})
	require.NoError(t, err)
	assert.Equal(t, model.CategoryGamePass, p.Category)
}

func TestCatalogAdd_Validation(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.CreateProductRequest
		field string
	}{
		{"missing name", dto.CreateProductRequest{BasePrice: price(1000)}, "name"},
		{"blank name", dto.CreateProductRequest{Name: "   ", BasePrice: price(1000)}, "name"},
		{"missing base price", dto.CreateProductRequest{Name: "X"}, "basePrice"},
		{"negative base price", dto.CreateProductRequest{Name: "X", BasePrice: price(-1)}, "basePrice"},
		{"discount too high", dto.CreateProductRequest{Name: "X", BasePrice: price(1), Discount: 100}, "discount"},
		{"negative discount", dto.CreateProductRequest{Name: "X", BasePrice: price(1), Discount: -1}, "discount"},
		{"unknown category", dto.CreateProductRequest{Name: "X", BasePrice: price(1), Category: "Skins"}, "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			ctx := context.Background()

			_, err := env.catalog.Add(ctx, &tt.req)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			products, err := env.catalog.List(ctx, dto.ProductFilter{})
			require.NoError(t, err)
			assert.Empty(t, products)
			assert.Empty(t, env.notifier.changedKeys())
		})
	}
}

func TestCatalogAdd_DuplicateID(t *testing.T) {
	env := newTestEnv(t)
	env.addProduct(t, "a", "A", 1000, 0)

	_, err := env.catalog.Add(context.Background(), &dto.CreateProductRequest{ID: "a", Name: "Again", BasePrice: price(1)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogUpdate_ReplacesInPlace(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.addProduct(t, "a", "A", 1000, 0)
	env.addProduct(t, "b", "B", 2000, 0)
	env.addProduct(t, "c", "C", 3000, 0)

	updated, err := env.catalog.Update(ctx, "b", &dto.UpdateProductRequest{
		Name:       ptr("B v2"),
		Discount:   ptr(25),
		IsFeatured: ptr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "B v2", updated.Name)
	assert.Equal(t, 2000.0, updated.BasePrice, "untouched fields survive")
	assert.InDelta(t, 1500, updated.FinalPrice(), 1e-9)

	products, err := env.catalog.List(ctx, dto.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{products[0].ID, products[1].ID, products[2].ID})
	assert.Equal(t, "B v2", products[1].Name)
	assert.True(t, products[1].IsFeatured)
}

func TestCatalogUpdate_UnknownIDIsValidationError(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.catalog.Update(context.Background(), "nope", &dto.UpdateProductRequest{Name: ptr("X")})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogUpdate_InvalidLeavesStoreUnchanged(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addProduct(t, "a", "A", 1000, 5)

	_, err := env.catalog.Update(ctx, "a", &dto.UpdateProductRequest{Discount: ptr(120)})
	require.ErrorIs(t, err, ErrValidation)

	p, err := env.catalog.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Discount)
}

func TestCatalogRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addProduct(t, "a", "A", 1000, 0)
	env.addProduct(t, "b", "B", 1000, 0)

	require.NoError(t, env.catalog.Remove(ctx, "a"))
	require.NoError(t, env.catalog.Remove(ctx, "a"), "removing twice is a no-op")
	require.NoError(t, env.catalog.Remove(ctx, "never-existed"))

	products, err := env.catalog.List(ctx, dto.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "b", products[0].ID)

	_, err = env.catalog.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogList_Filters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, req := range []dto.CreateProductRequest{
		{ID: "1", Name: "Robux 800", Category: model.CategoryGamePass, BasePrice: price(1), IsFeatured: true},
		{ID: "2", Name: "Akun ROBLOX Lama", Category: model.CategoryGameAccounts, BasePrice: price(1)},
		{ID: "3", Name: "Joki Mythic", Category: model.CategoryJokiServices, BasePrice: price(1), IsFeatured: true},
	} {
		_, err := env.catalog.Add(ctx, &req)
		require.NoError(t, err)
	}

	ids := func(filter dto.ProductFilter) []string {
		products, err := env.catalog.List(ctx, filter)
		require.NoError(t, err)
		out := []string{}
		for _, p := range products {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"3", "2", "1"}, ids(dto.ProductFilter{}))
	assert.Equal(t, []string{"2"}, ids(dto.ProductFilter{Category: model.CategoryGameAccounts}))
	assert.Equal(t, []string{"2", "1"}, ids(dto.ProductFilter{Query: "rob"}))
	assert.Equal(t, []string{"1"}, ids(dto.ProductFilter{Query: "ROBUX"}))
	assert.Equal(t, []string{"3", "1"}, ids(dto.ProductFilter{FeaturedOnly: true}))
	assert.Equal(t, []string{"1"}, ids(dto.ProductFilter{FeaturedOnly: true, Category: model.CategoryGamePass}))
	assert.Empty(t, ids(dto.ProductFilter{Query: "valorant"}))
}

func TestCatalog_PersistsAcrossInstances(t *testing.T) {
	path := t.TempDir() + "/shared.db"
	first := newTestEnvAt(t, path)
	first.addProduct(t, "a", "A", 1000, 0)

	second := newTestEnvAt(t, path)
	p, err := second.catalog.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "A", p.Name)
}
