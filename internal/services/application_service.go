package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
	"microtask-market.com/microtask-market/internal/policy"
	repository "microtask-market.com/microtask-market/internal/repositories"
)

// ApplicationService covers the bid half of the workflow: workers
// applying to open tasks and companies accepting or rejecting bids.
type ApplicationService struct {
	apps  *repository.ApplicationRepository
	tasks *repository.TaskRepository
}

func NewApplicationService(apps *repository.ApplicationRepository, tasks *repository.TaskRepository) *ApplicationService {
	return &ApplicationService{apps: apps, tasks: tasks}
}

type ApplyInput struct {
	Proposal             string
	ExpectedDeliveryTime string
	Attachment           string
}

// Apply files a worker's bid. The task must be on the open board and
// the worker must not have applied before.
func (s *ApplicationService) Apply(ctx context.Context, actor model.Actor, taskID string, input ApplyInput) (*model.Application, error) {
	if err := policy.RequireRole(actor, constants.RoleWorker); err != nil {
		return nil, err
	}
	if input.Proposal == "" {
		return nil, apperrors.InvalidArgument("proposal is required")
	}
	if input.ExpectedDeliveryTime == "" {
		return nil, apperrors.InvalidArgument("expected delivery time is required")
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status != constants.TaskStatusOpen {
		return nil, apperrors.InvalidTransition("task is not open for applications")
	}

	existing, err := s.apps.FindByTaskAndWorker(ctx, taskID, actor.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrDuplicateApplication
	}

	app := &model.Application{
		ID:                   uuid.NewString(),
		TaskID:               taskID,
		WorkerID:             actor.ID,
		Proposal:             input.Proposal,
		ExpectedDeliveryTime: input.ExpectedDeliveryTime,
		Attachment:           input.Attachment,
		Status:               constants.ApplicationStatusApplied,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.apps.Create(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// Accept marks the bid accepted and assigns the worker to the task.
// The assignment add is idempotent and the task leaves the open board
// on the first acceptance. Accepting beyond the declared worker count
// fails with the capacity error.
func (s *ApplicationService) Accept(ctx context.Context, actor model.Actor, applicationID string) (*model.Application, error) {
	app, task, err := s.loadOwned(ctx, actor, applicationID)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireApplicationStatus(app, constants.ApplicationStatusApplied); err != nil {
		return nil, err
	}

	alreadyAssigned := task.AssignedWorkers.Contains(app.WorkerID)
	if !alreadyAssigned && len(task.AssignedWorkers) >= task.NumberOfWorkers {
		return nil, apperrors.ErrCapacityExceeded
	}

	app.Status = constants.ApplicationStatusAccepted
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, err
	}

	if !alreadyAssigned {
		task.AssignedWorkers = append(task.AssignedWorkers, app.WorkerID)
		if task.Status == constants.TaskStatusOpen {
			task.Status = constants.TaskStatusAssigned
		}
		task.UpdatedAt = time.Now().UTC()

		if err := s.tasks.Update(ctx, task); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Reject marks the bid rejected. The task is untouched.
func (s *ApplicationService) Reject(ctx context.Context, actor model.Actor, applicationID string) (*model.Application, error) {
	app, _, err := s.loadOwned(ctx, actor, applicationID)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireApplicationStatus(app, constants.ApplicationStatusApplied); err != nil {
		return nil, err
	}

	app.Status = constants.ApplicationStatusRejected
	if err := s.apps.Save(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// ListForTask returns the bids on one of the company's own tasks.
func (s *ApplicationService) ListForTask(ctx context.Context, actor model.Actor, taskID string) ([]model.Application, error) {
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

	return s.apps.ListByTask(ctx, taskID)
}

// ListForWorker returns the worker's own bids, optionally by status.
func (s *ApplicationService) ListForWorker(ctx context.Context, actor model.Actor, status constants.ApplicationStatus) ([]model.Application, error) {
	if err := policy.RequireRole(actor, constants.RoleWorker); err != nil {
		return nil, err
	}
	return s.apps.ListByWorker(ctx, actor.ID, status)
}

func (s *ApplicationService) loadOwned(ctx context.Context, actor model.Actor, applicationID string) (*model.Application, *model.Task, error) {
	if err := policy.RequireRole(actor, constants.RoleCompany); err != nil {
		return nil, nil, err
	}

	app, err := s.apps.FindByID(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}

	task, err := s.tasks.FindByID(ctx, app.TaskID)
	if err != nil {
		return nil, nil, err
	}

	if err := policy.RequireOwnership(actor, task.CompanyID); err != nil {
		return nil, nil, err
	}
	return app, task, nil
}
