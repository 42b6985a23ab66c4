package repository

import (
	"context"
	"strings"
	"time"

	"storefront-api/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductFilter narrows and orders the active-product listing.
type ProductFilter struct {
	CategoryID string
	Search     string
	Featured   bool
	Sort       string // price_low, price_high, newest, popular
}

type ProductRepository interface {
	FindFiltered(ctx context.Context, filter *ProductFilter) ([]*model.Product, error)
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	FindManyActive(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*model.Product, error)
	FindRefs(ctx context.Context, productIDs []string) (map[string]*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Save(ctx context.Context, product *model.Product) error
	Deactivate(ctx context.Context, productID string) error
	AdjustStock(ctx context.Context, tx *gorm.DB, productID string, quantity int) error
	Seed(ctx context.Context, products []model.Product) error
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) FindFiltered(ctx context.Context, filter *ProductFilter) ([]*model.Product, error) {
	q := r.db.WithContext(ctx).
		Preload("Category").
		Where("is_active = ?", true)

	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Featured {
		q = q.Where("is_featured = ?", true)
	}
	if filter.Search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
	}

	switch filter.Sort {
	case "price_low":
		q = q.Order("price ASC")
	case "price_high":
		q = q.Order("price DESC")
	case "newest":
		q = q.Order("created_at DESC")
	case "popular":
		q = q.Order("sold DESC")
	}

	var products []*model.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) FindManyActive(ctx context.Context, tx *gorm.DB, productIDs []string) ([]*model.Product, error) {
	var products []*model.Product
	err := tx.WithContext(ctx).
		Where("id IN ? AND is_active = ?", productIDs, true).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}

// FindRefs loads current display fields for the given ids, keyed by id.
// Inactive and deleted products are simply absent from the result.
func (r *productRepoImpl) FindRefs(ctx context.Context, productIDs []string) (map[string]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Select("id", "name", "images").
		Where("id IN ?", productIDs).
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	refs := make(map[string]*model.Product, len(products))
	for _, p := range products {
		refs[p.ID] = p
	}

	return refs, nil
}

func (r *productRepoImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepoImpl) Save(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Deactivate hides the product from the catalog without removing the row,
// so existing order items keep a resolvable reference.
func (r *productRepoImpl) Deactivate(ctx context.Context, productID string) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// AdjustStock moves quantity units from stock to sold in one guarded
// update. Zero rows affected means the product is gone, inactive, or has
// less stock than requested, and surfaces as ErrRecordNotFound for the
// caller to map.
func (r *productRepoImpl) AdjustStock(ctx context.Context, tx *gorm.DB, productID string, quantity int) error {
	result := tx.WithContext(ctx).Model(&model.Product{}).
		Where("id = ? AND is_active = ? AND stock >= ?", productID, true, quantity).
		Updates(map[string]interface{}{
			"stock":      gorm.Expr("stock - ?", quantity),
			"sold":       gorm.Expr("sold + ?", quantity),
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *productRepoImpl) Seed(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&products).Error
}
