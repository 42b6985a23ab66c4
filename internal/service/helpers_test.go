package service

import (
	"context"
	"testing"

	"storefront-api/internal/client"
	"storefront-api/internal/model"
	"storefront-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, client.Migrate(db))
	return db
}

func newTestAuthService(t *testing.T, db *gorm.DB) AuthService {
	t.Helper()
	return NewAuthService(repository.NewUserRepository(db), "test-secret", 30)
}

func seedCategory(t *testing.T, db *gorm.DB, name, slug string) *model.Category {
	t.Helper()

	category := &model.Category{
		ID:   uuid.NewString(),
		Name: name,
		Slug: slug,
	}
	require.NoError(t, repository.NewCategoryRepository(db).Create(context.Background(), category))
	return category
}

type productSpec struct {
	name       string
	price      int64
	discount   int64
	stock      int
	sold       int
	featured   bool
	active     bool
	categoryID string
	images     []string
}

func seedProduct(t *testing.T, db *gorm.DB, spec productSpec) *model.Product {
	t.Helper()

	if spec.categoryID == "" {
		spec.categoryID = seedCategory(t, db, "cat-"+uuid.NewString(), "slug-"+uuid.NewString()).ID
	}

	product := &model.Product{
		ID:            uuid.NewString(),
		Name:          spec.name,
		Description:   spec.name + " description",
		Price:         decimal.NewFromInt(spec.price),
		DiscountPrice: decimal.NewFromInt(spec.discount),
		CategoryID:    spec.categoryID,
		Images:        spec.images,
		Stock:         spec.stock,
		Sold:          spec.sold,
		IsFeatured:    spec.featured,
		IsActive:      spec.active,
	}
	require.NoError(t, repository.NewProductRepository(db).Create(context.Background(), product))
	return product
}

func reloadProduct(t *testing.T, db *gorm.DB, productID string) *model.Product {
	t.Helper()

	var product model.Product
	require.NoError(t, db.Where("id = ?", productID).First(&product).Error)
	return &product
}

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.Order{}).Count(&count).Error)
	return count
}
