package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/mappers"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/models"
	"github.com/stealthycommerce/stealthy/internal/shared/db"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/query"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
	logger logger.Interface
}

func NewProductRepository(db *gorm.DB, logger logger.Interface) catalog.ProductRepository {
	return &ProductRepositoryImpl{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *catalog.Product) error {
	model := r.mapper.ProductToModel(product)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create product", "error", err, "name", product.Name())
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := product.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("product created successfully", "product_id", model.ID)
	return nil
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var model models.ProductModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get product by ID", "error", err, "product_id", id)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return r.mapper.ProductToDomain(&model)
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *catalog.Product) error {
	model := r.mapper.ProductToModel(product)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{}).
		Where("id = ?", product.ID()).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"brand":         model.Brand,
			"term":          model.Term,
			"active":        model.Active,
			"date_modified": model.DateModified,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update product", "error", result.Error, "product_id", product.ID())
		return fmt.Errorf("failed to update product: %w", result.Error)
	}
	// date_modified always changes, so zero rows means the product is gone.
	if result.RowsAffected == 0 {
		return catalog.ErrProductNotFound
	}

	r.logger.Infow("product updated successfully", "product_id", product.ID())
	return nil
}

func (r *ProductRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.ProductModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete product", "error", result.Error, "product_id", id)
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return catalog.ErrProductNotFound
	}

	r.logger.Infow("product deleted successfully", "product_id", id)
	return nil
}

func (r *ProductRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.ProductModel{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check product existence", "error", err, "product_id", id)
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return count > 0, nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter query.PageFilter) ([]*catalog.Product, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.ProductModel{}).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count products", "error", err)
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	var rows []*models.ProductModel
	if err := tx.Model(&models.ProductModel{}).
		Scopes(db.LatestModifiedFirst(""), db.Paginate(filter.Page, filter.Limit())).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products, err := r.mapper.ProductsToDomain(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
