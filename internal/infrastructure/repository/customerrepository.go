package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/stealthycommerce/stealthy/internal/domain/customer"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/mappers"
	"github.com/stealthycommerce/stealthy/internal/infrastructure/persistence/models"
	"github.com/stealthycommerce/stealthy/internal/shared/db"
	apperrors "github.com/stealthycommerce/stealthy/internal/shared/errors"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
)

type CustomerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
	logger logger.Interface
}

func NewCustomerRepository(db *gorm.DB, logger logger.Interface) customer.Repository {
	return &CustomerRepositoryImpl{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
		logger: logger,
	}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return customer.ErrEmailExists
		}
		r.logger.Errorw("failed to create customer", "error", err)
		return fmt.Errorf("failed to create customer: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("customer created successfully", "customer_id", model.ID)
	return nil
}

func (r *CustomerRepositoryImpl) GetByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get customer by ID", "error", err, "customer_id", id)
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *CustomerRepositoryImpl) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.CustomerModel{}).
		Where("id = ?", id).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check customer existence", "error", err, "customer_id", id)
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return count > 0, nil
}
