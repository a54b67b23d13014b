package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"microtask-market.com/microtask-market/internal/commission"
	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
	"microtask-market.com/microtask-market/internal/policy"
	repository "microtask-market.com/microtask-market/internal/repositories"
)

// SubmissionService handles delivered work: workers submitting files
// and companies reviewing them. An accepted review completes the task,
// bumps the worker's completed count, and opens a pending payment.
type SubmissionService struct {
	submissions *repository.SubmissionRepository
	tasks       *repository.TaskRepository
	payments    *repository.PaymentRepository
	profiles    *repository.ProfileRepository

	// commissionPercent is applied to every payment opened by an
	// accepted review.
	commissionPercent decimal.Decimal
}

func NewSubmissionService(
	submissions *repository.SubmissionRepository,
	tasks *repository.TaskRepository,
	payments *repository.PaymentRepository,
	profiles *repository.ProfileRepository,
	commissionPercent decimal.Decimal,
) *SubmissionService {
	return &SubmissionService{
		submissions:       submissions,
		tasks:             tasks,
		payments:          payments,
		profiles:          profiles,
		commissionPercent: commissionPercent,
	}
}

// Submit records delivered work for an assigned task. A resubmission
// appends the new files to the existing submission, replaces the
// description when one is given, and puts the review back to pending.
// The task lands on submitted either way.
func (s *SubmissionService) Submit(ctx context.Context, actor model.Actor, taskID, description string, files []model.SubmissionFile) (*model.Submission, error) {
	if err := policy.RequireRole(actor, constants.RoleWorker); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !task.AssignedWorkers.Contains(actor.ID) {
		return nil, apperrors.Forbidden("worker is not assigned to this task")
	}

	// Completed is terminal; a late resubmission cannot reopen it.
	if err := policy.RequireTaskStatus(task, constants.TaskStatusAssigned, constants.TaskStatusSubmitted); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for i := range files {
		if files[i].UploadedAt.IsZero() {
			files[i].UploadedAt = now
		}
	}

	sub, err := s.submissions.FindByTaskAndWorker(ctx, taskID, actor.ID)
	if err != nil {
		return nil, err
	}

	if sub != nil {
		sub.Files = append(sub.Files, files...)
		if description != "" {
			sub.Description = description
		}
		sub.SubmittedAt = now
		sub.ReviewStatus = constants.ReviewStatusPending

		if err := s.submissions.Save(ctx, sub); err != nil {
			return nil, err
		}
	} else {
		sub = &model.Submission{
			ID:           uuid.NewString(),
			TaskID:       taskID,
			WorkerID:     actor.ID,
			Files:        files,
			Description:  description,
			SubmittedAt:  now,
			ReviewStatus: constants.ReviewStatusPending,
			CreatedAt:    now,
		}

		if err := s.submissions.Create(ctx, sub); err != nil {
			return nil, err
		}
	}

	task.Status = constants.TaskStatusSubmitted
	task.UpdatedAt = now
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return sub, nil
}

// Review records the company's verdict. revisionRequested bumps the
// revision counter; accepted completes the task, credits the worker's
// completed-task count, and opens a pending payment for the task
// amount. The three accept effects are separate writes with no
// rollback: an error leaves the earlier writes in place.
func (s *SubmissionService) Review(ctx context.Context, actor model.Actor, submissionID string, reviewStatus constants.ReviewStatus, reviewNotes string) (*model.Submission, error) {
	if err := policy.RequireRole(actor, constants.RoleCompany); err != nil {
		return nil, err
	}

	switch reviewStatus {
	case constants.ReviewStatusAccepted, constants.ReviewStatusRejected, constants.ReviewStatusRevisionRequested:
	default:
		return nil, apperrors.InvalidArgument("invalid review status")
	}

	sub, err := s.submissions.FindByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, sub.TaskID)
	if err != nil {
		return nil, err
	}

	if err := policy.RequireOwnership(actor, task.CompanyID); err != nil {
		return nil, err
	}

	// Accepted and rejected are final verdicts; only work still under
	// review can receive one.
	if err := policy.RequireSubmissionStatus(sub, constants.ReviewStatusPending, constants.ReviewStatusRevisionRequested); err != nil {
		return nil, err
	}

	sub.ReviewStatus = reviewStatus
	sub.ReviewNotes = reviewNotes
	if reviewStatus == constants.ReviewStatusRevisionRequested {
		sub.RevisionCount++
	}

	if err := s.submissions.Save(ctx, sub); err != nil {
		return nil, err
	}

	if reviewStatus == constants.ReviewStatusAccepted {
		if err := s.completeTask(ctx, task, sub); err != nil {
			return nil, err
		}
	}

	return sub, nil
}

func (s *SubmissionService) completeTask(ctx context.Context, task *model.Task, sub *model.Submission) error {
	task.Status = constants.TaskStatusCompleted
	task.UpdatedAt = time.Now().UTC()
	if err := s.tasks.Update(ctx, task); err != nil {
		return err
	}

	// A worker without a profile still gets paid; only the counter is
	// skipped, as the original did.
	profile, err := s.profiles.FindWorkerByUserID(ctx, sub.WorkerID)
	if err == nil {
		profile.CompletedTasks++
		if err := s.profiles.SaveWorker(ctx, profile); err != nil {
			return err
		}
	} else if !apperrors.IsKind(err, apperrors.KindNotFound) {
		return err
	}

	payment := &model.Payment{
		ID:                 uuid.NewString(),
		TaskID:             task.ID,
		WorkerID:           sub.WorkerID,
		CompanyID:          task.CompanyID,
		Amount:             task.PaymentAmount,
		PlatformCommission: s.commissionPercent,
		Status:             constants.PaymentStatusPending,
		PaymentMethod:      "manual",
		EscrowStatus:       constants.EscrowStatusNone,
		CreatedAt:          time.Now().UTC(),
	}

	if err := commission.Apply(payment); err != nil {
		return err
	}

	return s.payments.Create(ctx, payment)
}

// ListForTask returns the submissions on one of the company's tasks.
func (s *SubmissionService) ListForTask(ctx context.Context, actor model.Actor, taskID string) ([]model.Submission, error) {
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

	return s.submissions.ListByTask(ctx, taskID)
}

// ListForWorker returns the worker's own submissions, optionally by
// review status.
func (s *SubmissionService) ListForWorker(ctx context.Context, actor model.Actor, reviewStatus constants.ReviewStatus) ([]model.Submission, error) {
	if err := policy.RequireRole(actor, constants.RoleWorker); err != nil {
		return nil, err
	}
	return s.submissions.ListByWorker(ctx, actor.ID, reviewStatus)
}
