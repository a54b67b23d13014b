package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func (r *ProfileRepository) CreateWorker(ctx context.Context, profile *model.WorkerProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepository) FindWorkerByUserID(ctx context.Context, userID string) (*model.WorkerProfile, error) {
	var profile model.WorkerProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("worker profile")
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) SaveWorker(ctx context.Context, profile *model.WorkerProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *ProfileRepository) CreateCompany(ctx context.Context, profile *model.CompanyProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *ProfileRepository) FindCompanyByUserID(ctx context.Context, userID string) (*model.CompanyProfile, error) {
	var profile model.CompanyProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("company profile")
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) FindCompanyByID(ctx context.Context, id string) (*model.CompanyProfile, error) {
	var profile model.CompanyProfile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("company profile")
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) SaveCompany(ctx context.Context, profile *model.CompanyProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
