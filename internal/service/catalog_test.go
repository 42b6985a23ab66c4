package service

import (
	"context"
	"testing"

	"storefront-api/internal/dto"
	"storefront-api/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsSortPriceLow(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db))

	seedProduct(t, db, productSpec{name: "Belt", price: 599, stock: 10, active: true})
	seedProduct(t, db, productSpec{name: "Watch", price: 1499, stock: 10, active: true})
	seedProduct(t, db, productSpec{name: "Wallet", price: 399, stock: 10, active: true})

	products, err := svc.ListProducts(ctx, &repository.ProductFilter{Sort: "price_low"})
	require.NoError(t, err)
	require.Len(t, products, 3)

	for i := 1; i < len(products); i++ {
		assert.True(t, products[i-1].Price.LessThanOrEqual(products[i].Price),
			"prices must be non-decreasing under price_low")
	}
}

func TestListProductsSearchCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db))

	seedProduct(t, db, productSpec{name: "Classic Analog Watch", price: 1499, stock: 5, active: true})
	seedProduct(t, db, productSpec{name: "Digital WATCH Pro", price: 999, stock: 5, active: true})
	seedProduct(t, db, productSpec{name: "Leather Belt", price: 599, stock: 5, active: true})

	products, err := svc.ListProducts(ctx, &repository.ProductFilter{Search: "watch"})
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Contains(t, []string{"Classic Analog Watch", "Digital WATCH Pro"}, p.Name)
	}
}

func TestListProductsFilters(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db))

	cat := seedCategory(t, db, "Watches", "watches")
	seedProduct(t, db, productSpec{name: "Watch", price: 1499, stock: 5, active: true, featured: true, categoryID: cat.ID})
	seedProduct(t, db, productSpec{name: "Belt", price: 599, stock: 5, active: true})
	seedProduct(t, db, productSpec{name: "Hidden", price: 99, stock: 5, active: false})

	t.Run("only active", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, &repository.ProductFilter{})
		require.NoError(t, err)
		assert.Len(t, products, 2)
	})

	t.Run("by category with populate", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, &repository.ProductFilter{CategoryID: cat.ID})
		require.NoError(t, err)
		require.Len(t, products, 1)
		require.NotNil(t, products[0].Category)
		assert.Equal(t, "watches", products[0].Category.Slug)
	})

	t.Run("featured", func(t *testing.T) {
		products, err := svc.ListProducts(ctx, &repository.ProductFilter{Featured: true})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "Watch", products[0].Name)
	})
}

func TestGetProductNotFound(t *testing.T) {
	svc := NewCatalogService(repository.NewProductRepository(newTestDB(t)))

	_, err := svc.GetProduct(context.Background(), "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	svc := NewCatalogService(repository.NewProductRepository(newTestDB(t)))

	_, err := svc.CreateProduct(context.Background(), &dto.CreateProductRequest{
		Name:        "Broken",
		Description: "bad price",
		Price:       decimal.NewFromInt(-1),
		CategoryID:  "cat",
	})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestUpdateProductPartialMerge(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db))

	product := seedProduct(t, db, productSpec{name: "Watch", price: 1499, stock: 5, active: true})

	newPrice := decimal.NewFromInt(1299)
	updated, err := svc.UpdateProduct(ctx, product.ID, &dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)

	assert.True(t, updated.Price.Equal(newPrice))
	assert.Equal(t, "Watch", updated.Name)
	assert.Equal(t, 5, updated.Stock)
}

func TestDeleteProductIsSoftDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewCatalogService(repository.NewProductRepository(db))

	product := seedProduct(t, db, productSpec{name: "Watch", price: 1499, stock: 5, active: true})

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	products, err := svc.ListProducts(ctx, &repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)

	// row survives for order history
	reloaded := reloadProduct(t, db, product.ID)
	assert.False(t, reloaded.IsActive)
}
