package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskFilter reproduces the discovery query of the task board: skill
// membership, payment range, exact duration, and substring search over
// title and description.
type TaskFilter struct {
	Status         constants.TaskStatus
	CompanyID      string
	AssignedWorker string
	Skill          string
	Category       string
	Duration       int
	MinPayment     *decimal.Decimal
	MaxPayment     *decimal.Decimal
	Search         string
	Limit          int
	Offset         int
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("task")
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	var tasks []model.Task
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.Task{}), filter).
		Order("created_at desc")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) Count(ctx context.Context, filter TaskFilter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&model.Task{}), filter).
		Count(&count).Error
	return count, err
}

// ListAssigned returns the worker's workspace: tasks the worker is
// assigned to that are still in flight.
func (r *TaskRepository) ListAssigned(ctx context.Context, workerID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("assigned_workers LIKE ?", jsonMemberPattern(workerID)).
		Where("status IN ?", []constants.TaskStatus{constants.TaskStatusAssigned, constants.TaskStatusSubmitted}).
		Order("deadline asc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update writes every mutable column under the optimistic version
// check. CompanyID is immutable and deliberately absent.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"title":             task.Title,
			"description":       task.Description,
			"required_skills":   task.RequiredSkills,
			"category":          task.Category,
			"duration":          task.Duration,
			"payment_amount":    task.PaymentAmount,
			"deadline":          task.Deadline,
			"number_of_workers": task.NumberOfWorkers,
			"assigned_workers":  task.AssignedWorkers,
			"status":            task.Status,
			"rejection_reason":  task.RejectionReason,
			"updated_at":        task.UpdatedAt,
			"version":           gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return apperrors.ErrOptimisticLock
	}

	task.Version++
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("task")
	}
	return nil
}

func (r *TaskRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Distinct("category").
		Order("category asc").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// DistinctSkills unpacks the JSON skill columns and dedupes in memory;
// sqlite has no array type to distinct over.
func (r *TaskRepository) DistinctSkills(ctx context.Context) ([]string, error) {
	var raw []string
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Pluck("required_skills", &raw).Error
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	skills := make([]string, 0)
	for _, doc := range raw {
		var list []string
		if err := json.Unmarshal([]byte(doc), &list); err != nil {
			continue
		}
		for _, s := range list {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				skills = append(skills, s)
			}
		}
	}
	sort.Strings(skills)
	return skills, nil
}

func (r *TaskRepository) applyFilter(query *gorm.DB, filter TaskFilter) *gorm.DB {
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CompanyID != "" {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.AssignedWorker != "" {
		query = query.Where("assigned_workers LIKE ?", jsonMemberPattern(filter.AssignedWorker))
	}
	if filter.Skill != "" {
		query = query.Where("required_skills LIKE ?", jsonMemberPattern(filter.Skill))
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Duration > 0 {
		query = query.Where("duration = ?", filter.Duration)
	}
	if filter.MinPayment != nil {
		query = query.Where("payment_amount >= ?", filter.MinPayment)
	}
	if filter.MaxPayment != nil {
		query = query.Where("payment_amount <= ?", filter.MaxPayment)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	return query
}

// jsonMemberPattern matches a quoted element inside a JSON array text
// column. IDs and skill names never contain quotes, so the match is
// exact.
func jsonMemberPattern(member string) string {
	return `%"` + member + `"%`
}
