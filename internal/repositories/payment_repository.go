package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *PaymentRepository) FindByID(ctx context.Context, id string) (*model.Payment, error) {
	var payment model.Payment
	err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("payment")
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepository) ListByCompany(ctx context.Context, companyID string, status constants.PaymentStatus) ([]model.Payment, error) {
	query := r.db.WithContext(ctx).Where("company_id = ?", companyID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []model.Payment
	err := query.Order("created_at desc").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) ListByWorker(ctx context.Context, workerID string) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.db.WithContext(ctx).
		Where("worker_id = ?", workerID).
		Order("created_at desc").
		Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) List(ctx context.Context, status constants.PaymentStatus) ([]model.Payment, error) {
	query := r.db.WithContext(ctx).Model(&model.Payment{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var payments []model.Payment
	err := query.Order("created_at desc").Find(&payments).Error
	return payments, err
}

func (r *PaymentRepository) Save(ctx context.Context, payment *model.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}
