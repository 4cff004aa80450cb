package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/stealthycommerce/stealthy/internal/domain/catalog"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/mappers"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/models"
	"github.com/stealthycommerce/stealthy/internal/shared/constants"
	"github.com/stealthycommerce/stealthy/internal/shared/db"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/query"
)

// searchOrderColumns maps search sort keys to SQL expressions over the o/p aliases.
var searchOrderColumns = map[string]string{
	catalog.SortByPrice:   "o.price",
	catalog.SortByName:    "p.name",
	catalog.SortByCreated: "COALESCE(o.date_modified, o.date_created)",
}

type OfferRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CatalogMapper
	logger logger.Interface
}

func NewOfferRepository(db *gorm.DB, logger logger.Interface) catalog.OfferRepository {
	return &OfferRepositoryImpl{
		db:     db,
		mapper: mappers.NewCatalogMapper(),
		logger: logger,
	}
}

func (r *OfferRepositoryImpl) Create(ctx context.Context, offer *catalog.Offer) error {
	model := r.mapper.OfferToModel(offer)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create offer", "error", err, "product_id", offer.ProductID())
		return fmt.Errorf("failed to create offer: %w", err)
	}

	if err := offer.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("offer created successfully", "offer_id", model.ID, "product_id", offer.ProductID())
	return nil
}

func (r *OfferRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Offer, error) {
	var model models.OfferModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get offer by ID", "error", err, "offer_id", id)
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}

	return r.mapper.OfferToDomain(&model)
}

func (r *OfferRepositoryImpl) Update(ctx context.Context, offer *catalog.Offer) error {
	model := r.mapper.OfferToModel(offer)

	result := db.GetTxFromContext(ctx, r.db).Model(&models.OfferModel{}).
		Where("id = ?", offer.ID()).
		Updates(map[string]interface{}{
			"product_id":      model.ProductID,
			"description":     model.Description,
			"price":           model.Price,
			"number_of_terms": model.NumberOfTerms,
			"active":          model.Active,
			"date_modified":   model.DateModified,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update offer", "error", result.Error, "offer_id", offer.ID())
		return fmt.Errorf("failed to update offer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrOfferNotFound
	}

	r.logger.Infow("offer updated successfully", "offer_id", offer.ID())
	return nil
}

func (r *OfferRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).Delete(&models.OfferModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete offer", "error", result.Error, "offer_id", id)
		return fmt.Errorf("failed to delete offer: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return catalog.ErrOfferNotFound
	}

	r.logger.Infow("offer deleted successfully", "offer_id", id)
	return nil
}

func (r *OfferRepositoryImpl) List(ctx context.Context, filter query.PageFilter) ([]*catalog.Offer, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.Model(&models.OfferModel{}).Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count offers", "error", err)
		return nil, 0, fmt.Errorf("failed to count offers: %w", err)
	}

	var rows []*models.OfferModel
	if err := tx.Model(&models.OfferModel{}).
		Scopes(db.LatestModifiedFirst(""), db.Paginate(filter.Page, filter.Limit())).
		Find(&rows).Error; err != nil {
		r.logger.Errorw("failed to list offers", "error", err)
		return nil, 0, fmt.Errorf("failed to list offers: %w", err)
	}

	offers, err := r.mapper.OffersToDomain(rows)
	if err != nil {
		return nil, 0, err
	}
	return offers, total, nil
}

func (r *OfferRepositoryImpl) FindWithProducts(ctx context.Context, ids []uint) (map[uint]*catalog.OfferWithProduct, error) {
	result := make(map[uint]*catalog.OfferWithProduct, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	unique := lo.Uniq(ids)

	var rows []*models.OfferWithProductRow
	err := db.GetTxFromContext(ctx, r.db).
		Table(constants.TableOffers+" AS o").
		Select("o.*, p.name AS product_name, p.brand AS product_brand, p.term AS product_term, "+
			"p.active AS product_active, p.date_created AS product_date_created, "+
			"p.date_modified AS product_date_modified").
		Joins("JOIN "+constants.TableProducts+" AS p ON p.id = o.product_id").
		Where("o.id IN ?", unique).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to load offers with products", "error", err, "offer_ids", unique)
		return nil, fmt.Errorf("failed to load offers with products: %w", err)
	}

	for _, row := range rows {
		op, err := r.mapper.OfferWithProductToDomain(row)
		if err != nil {
			return nil, err
		}
		result[op.Offer.ID()] = op
	}
	return result, nil
}

func (r *OfferRepositoryImpl) Search(ctx context.Context, filter catalog.SearchFilter) ([]*catalog.ProductOffer, int64, error) {
	activeCatalog := func() *gorm.DB {
		return db.GetTxFromContext(ctx, r.db).
			Table(constants.TableOffers+" AS o").
			Joins("JOIN "+constants.TableProducts+" AS p ON p.id = o.product_id").
			Where("o.active = ? AND p.active = ?", true, true)
	}

	var total int64
	if err := activeCatalog().Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count product offers", "error", err)
		return nil, 0, fmt.Errorf("failed to count product offers: %w", err)
	}

	q := activeCatalog().
		Select("p.id AS product_id, o.id AS offer_id, p.brand AS brand, p.name AS product_name, " +
			"o.description AS description, o.price AS price, " +
			"o.date_created AS offer_date_created, o.date_modified AS offer_date_modified")
	for _, clause := range filter.OrderClauses(searchOrderColumns, catalog.SortByCreated, "o.id") {
		q = q.Order(clause)
	}

	var rows []*models.ProductOfferRow
	err := q.
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to search product offers", "error", err, "sort_by", filter.SortBy)
		return nil, 0, fmt.Errorf("failed to search product offers: %w", err)
	}

	return r.mapper.ProductOffersToDomain(rows), total, nil
}
