package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
)

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, sub *model.Submission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*model.Submission, error) {
	var sub model.Submission
	err := r.db.WithContext(ctx).First(&sub, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("submission")
		}
		return nil, err
	}
	return &sub, nil
}

// FindByTaskAndWorker returns nil without error when the worker has not
// submitted yet; submitWork branches on that to create or amend.
func (r *SubmissionRepository) FindByTaskAndWorker(ctx context.Context, taskID, workerID string) (*model.Submission, error) {
	var sub model.Submission
	err := r.db.WithContext(ctx).
		First(&sub, "task_id = ? AND worker_id = ?", taskID, workerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepository) ListByTask(ctx context.Context, taskID string) ([]model.Submission, error) {
	var subs []model.Submission
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("submitted_at desc").
		Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) ListByWorker(ctx context.Context, workerID string, reviewStatus constants.ReviewStatus) ([]model.Submission, error) {
	query := r.db.WithContext(ctx).Where("worker_id = ?", workerID)
	if reviewStatus != "" {
		query = query.Where("review_status = ?", reviewStatus)
	}

	var subs []model.Submission
	err := query.Order("submitted_at desc").Find(&subs).Error
	return subs, err
}

func (r *SubmissionRepository) Save(ctx context.Context, sub *model.Submission) error {
	return r.db.WithContext(ctx).Save(sub).Error
}

func (r *SubmissionRepository) DeleteByTaskID(ctx context.Context, taskID string) error {
	return r.db.WithContext(ctx).Delete(&model.Submission{}, "task_id = ?", taskID).Error
}
