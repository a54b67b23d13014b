package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts the application, translating a violation of the
// (task, worker) unique index into the duplicate-application error so
// a racing second apply still fails cleanly.
func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	err := r.db.WithContext(ctx).Create(app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("application")
		}
		return nil, err
	}
	return &app, nil
}

// FindByTaskAndWorker returns nil without error when no application
// exists, since the duplicate check treats absence as the normal case.
func (r *ApplicationRepository) FindByTaskAndWorker(ctx context.Context, taskID, workerID string) (*model.Application, error) {
	var app model.Application
	err := r.db.WithContext(ctx).
		First(&app, "task_id = ? AND worker_id = ?", taskID, workerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByTask(ctx context.Context, taskID string) ([]model.Application, error) {
	var apps []model.Application
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("created_at asc").
		Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) ListByWorker(ctx context.Context, workerID string, status constants.ApplicationStatus) ([]model.Application, error) {
	query := r.db.WithContext(ctx).Where("worker_id = ?", workerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var apps []model.Application
	err := query.Order("created_at desc").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) Save(ctx context.Context, app *model.Application) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *ApplicationRepository) DeleteByTaskID(ctx context.Context, taskID string) error {
	return r.db.WithContext(ctx).Delete(&model.Application{}, "task_id = ?", taskID).Error
}
