package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"microtask-market.com/microtask-market/internal/cache"
	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
	"microtask-market.com/microtask-market/internal/policy"
	repository "microtask-market.com/microtask-market/internal/repositories"
)

// TaskService drives the task side of the lifecycle: creation and
// pre-approval edits by the company, moderation by the admin, and the
// discovery queries the task board runs.
type TaskService struct {
	tasks       *repository.TaskRepository
	apps        *repository.ApplicationRepository
	submissions *repository.SubmissionRepository
	facets      *cache.FacetCache
}

func NewTaskService(
	tasks *repository.TaskRepository,
	apps *repository.ApplicationRepository,
	submissions *repository.SubmissionRepository,
	facets *cache.FacetCache,
) *TaskService {
	return &TaskService{
		tasks:       tasks,
		apps:        apps,
		submissions: submissions,
		facets:      facets,
	}
}

type CreateTaskInput struct {
	Title           string
	Description     string
	RequiredSkills  []string
	Category        string
	Duration        int
	PaymentAmount   decimal.Decimal
	Deadline        time.Time
	NumberOfWorkers int
}

// TaskPatch is a partial update: nil fields are left untouched, which
// preserves the merge-only-provided-fields contract without reflecting
// over an arbitrary payload.
type TaskPatch struct {
	Title           *string
	Description     *string
	RequiredSkills  []string
	Category        *string
	Duration        *int
	PaymentAmount   *decimal.Decimal
	Deadline        *time.Time
	NumberOfWorkers *int
}

// Create posts a new task. Whatever status the caller may have had in
// mind, a fresh task always enters pendingApproval.
func (s *TaskService) Create(ctx context.Context, actor model.Actor, input CreateTaskInput) (*model.Task, error) {
	if err := policy.RequireRole(actor, constants.RoleCompany); err != nil {
		return nil, err
	}

	if input.Category == "" {
		input.Category = "General"
	}
	if input.NumberOfWorkers == 0 {
		input.NumberOfWorkers = 1
	}
	if err := validateTaskFields(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &model.Task{
		ID:              uuid.NewString(),
		CompanyID:       actor.ID,
		Title:           input.Title,
		Description:     input.Description,
		RequiredSkills:  input.RequiredSkills,
		Category:        input.Category,
		Duration:        input.Duration,
		PaymentAmount:   input.PaymentAmount,
		Deadline:        input.Deadline,
		NumberOfWorkers: input.NumberOfWorkers,
		AssignedWorkers: model.StringList{},
		Status:          constants.TaskStatusPendingApproval,
		Version:         1,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	s.facets.Invalidate(ctx, cache.KeyCategories, cache.KeySkills)
	return task, nil
}

// Update applies a partial edit while the task has not yet gone live.
// Editing a rejected task resubmits it for review.
func (s *TaskService) Update(ctx context.Context, actor model.Actor, taskID string, patch TaskPatch) (*model.Task, error) {
	if err := policy.RequireRole(actor, constants.RoleCompany); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireOwnership(actor, task.CompanyID); err != nil {
		return nil, err
	}
	if err := policy.RequireTaskStatus(task,
		constants.TaskStatusDraft,
		constants.TaskStatusPendingApproval,
		constants.TaskStatusRejected,
	); err != nil {
		return nil, err
	}

	applyTaskPatch(task, patch)

	if err := validateTaskFields(CreateTaskInput{
		Title:           task.Title,
		Description:     task.Description,
		Category:        task.Category,
		Duration:        task.Duration,
		PaymentAmount:   task.PaymentAmount,
		Deadline:        task.Deadline,
		NumberOfWorkers: task.NumberOfWorkers,
	}); err != nil {
		return nil, err
	}

	if task.Status == constants.TaskStatusRejected {
		task.Status = constants.TaskStatusPendingApproval
		task.RejectionReason = ""
	}
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	s.facets.Invalidate(ctx, cache.KeyCategories, cache.KeySkills)
	return task, nil
}

// Approve moves a moderated task onto the open board.
func (s *TaskService) Approve(ctx context.Context, actor model.Actor, taskID string) (*model.Task, error) {
	if err := policy.RequireRole(actor, constants.RoleAdmin); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireTaskStatus(task, constants.TaskStatusPendingApproval); err != nil {
		return nil, err
	}

	task.Status = constants.TaskStatusOpen
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Reject sends a moderated task back to the company with a reason.
func (s *TaskService) Reject(ctx context.Context, actor model.Actor, taskID, reason string) (*model.Task, error) {
	if err := policy.RequireRole(actor, constants.RoleAdmin); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireTaskStatus(task, constants.TaskStatusPendingApproval); err != nil {
		return nil, err
	}

	if reason == "" {
		reason = "Rejected by admin"
	}
	task.Status = constants.TaskStatusRejected
	task.RejectionReason = reason
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task and then its applications and submissions.
// The three deletes are separate writes: if a later one fails the
// earlier ones stand and the error is returned as-is.
func (s *TaskService) Delete(ctx context.Context, actor model.Actor, taskID string) error {
	if err := policy.RequireRole(actor, constants.RoleAdmin); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return err
	}
	if err := s.apps.DeleteByTaskID(ctx, taskID); err != nil {
		return err
	}
	if err := s.submissions.DeleteByTaskID(ctx, taskID); err != nil {
		return err
	}

	s.facets.Invalidate(ctx, cache.KeyCategories, cache.KeySkills)
	return nil
}

func (s *TaskService) Get(ctx context.Context, taskID string) (*model.Task, error) {
	return s.tasks.FindByID(ctx, taskID)
}

// GetOpen is the public single-task view: anything not on the open
// board is withheld.
func (s *TaskService) GetOpen(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task.Status != constants.TaskStatusOpen {
		return nil, apperrors.Forbidden("task is not available")
	}
	return task, nil
}

// Discover lists open tasks matching the board filters.
func (s *TaskService) Discover(ctx context.Context, filter repository.TaskFilter) ([]model.Task, int64, error) {
	filter.Status = constants.TaskStatusOpen
	filter.CompanyID = ""
	filter.AssignedWorker = ""

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.tasks.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// ListForCompany lists a company's own tasks, optionally by status.
func (s *TaskService) ListForCompany(ctx context.Context, actor model.Actor, status constants.TaskStatus, limit, offset int) ([]model.Task, int64, error) {
	if err := policy.RequireRole(actor, constants.RoleCompany); err != nil {
		return nil, 0, err
	}

	filter := repository.TaskFilter{
		CompanyID: actor.ID,
		Status:    status,
		Limit:     limit,
		Offset:    offset,
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.tasks.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// GetForCompany fetches one of the company's own tasks.
func (s *TaskService) GetForCompany(ctx context.Context, actor model.Actor, taskID string) (*model.Task, error) {
	if err := policy.RequireRole(actor, constants.RoleCompany); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := policy.RequireOwnership(actor, task.CompanyID); err != nil {
		return nil, err
	}
	return task, nil
}

// ListAll is the admin moderation queue.
func (s *TaskService) ListAll(ctx context.Context, actor model.Actor, status constants.TaskStatus, limit, offset int) ([]model.Task, int64, error) {
	if err := policy.RequireRole(actor, constants.RoleAdmin); err != nil {
		return nil, 0, err
	}

	filter := repository.TaskFilter{Status: status, Limit: limit, Offset: offset}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.tasks.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// ListAssigned is the worker workspace: assigned or submitted tasks.
func (s *TaskService) ListAssigned(ctx context.Context, actor model.Actor) ([]model.Task, error) {
	if err := policy.RequireRole(actor, constants.RoleWorker); err != nil {
		return nil, err
	}
	return s.tasks.ListAssigned(ctx, actor.ID)
}

// Categories returns the distinct category facet, cache-first.
func (s *TaskService) Categories(ctx context.Context) ([]string, error) {
	if values, ok := s.facets.Get(ctx, cache.KeyCategories); ok {
		return values, nil
	}

	categories, err := s.tasks.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.facets.Set(ctx, cache.KeyCategories, categories)
	return categories, nil
}

// Skills returns the distinct skill facet, cache-first.
func (s *TaskService) Skills(ctx context.Context) ([]string, error) {
	if values, ok := s.facets.Get(ctx, cache.KeySkills); ok {
		return values, nil
	}

	skills, err := s.tasks.DistinctSkills(ctx)
	if err != nil {
		return nil, err
	}

	s.facets.Set(ctx, cache.KeySkills, skills)
	return skills, nil
}

func validateTaskFields(input CreateTaskInput) error {
	if input.Title == "" {
		return apperrors.InvalidArgument("task title is required")
	}
	if input.Description == "" {
		return apperrors.InvalidArgument("task description is required")
	}
	if input.PaymentAmount.IsNegative() {
		return apperrors.InvalidArgument("payment amount must not be negative")
	}
	if input.Deadline.IsZero() {
		return apperrors.InvalidArgument("deadline is required")
	}
	if input.Duration < constants.MinTaskDurationDays || input.Duration > constants.MaxTaskDurationDays {
		return apperrors.InvalidArgument(fmt.Sprintf(
			"duration must be between %d and %d days",
			constants.MinTaskDurationDays, constants.MaxTaskDurationDays,
		))
	}
	if input.NumberOfWorkers < 1 {
		return apperrors.InvalidArgument("number of workers must be at least 1")
	}
	return nil
}

func applyTaskPatch(task *model.Task, patch TaskPatch) {
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.RequiredSkills != nil {
		task.RequiredSkills = patch.RequiredSkills
	}
	if patch.Category != nil {
		task.Category = *patch.Category
	}
	if patch.Duration != nil {
		task.Duration = *patch.Duration
	}
	if patch.PaymentAmount != nil {
		task.PaymentAmount = *patch.PaymentAmount
	}
	if patch.Deadline != nil {
		task.Deadline = *patch.Deadline
	}
	if patch.NumberOfWorkers != nil {
		task.NumberOfWorkers = *patch.NumberOfWorkers
	}
}
