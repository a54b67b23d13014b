package services

import (
	"context"
	"testing"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
)

func TestTaskService_CreateForcesPendingApproval(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)

	task := createPendingTask(t, env, company)

	if task.Status != constants.TaskStatusPendingApproval {
		t.Errorf("new task status = %s, want %s", task.Status, constants.TaskStatusPendingApproval)
	}
	if task.CompanyID != company.ID {
		t.Errorf("companyId = %s, want %s", task.CompanyID, company.ID)
	}
}

func TestTaskService_CreateValidation(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*CreateTaskInput)
	}{
		{"missing title", func(in *CreateTaskInput) { in.Title = "" }},
		{"missing description", func(in *CreateTaskInput) { in.Description = "" }},
		{"negative payment", func(in *CreateTaskInput) { in.PaymentAmount = money(t, "-1") }},
		{"duration too long", func(in *CreateTaskInput) { in.Duration = 4 }},
		{"duration too short", func(in *CreateTaskInput) { in.Duration = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := sampleTaskInput(t)
			tc.mutate(&input)

			_, err := env.tasks.Create(ctx, company, input)
			if !apperrors.IsKind(err, apperrors.KindInvalidArgument) {
				t.Errorf("expected invalid argument, got %v", err)
			}
		})
	}
}

func TestTaskService_CreateRequiresCompanyRole(t *testing.T) {
	env := newTestEnv(t, "0")

	_, err := env.tasks.Create(context.Background(), actor("worker-1", constants.RoleWorker), sampleTaskInput(t))
	if !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("expected forbidden, got %v", err)
	}
}

func TestTaskService_ApproveOnlyFromPendingApproval(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)
	admin := actor("admin-1", constants.RoleAdmin)
	ctx := context.Background()

	task := createPendingTask(t, env, company)

	approved, err := env.tasks.Approve(ctx, admin, task.ID)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != constants.TaskStatusOpen {
		t.Errorf("approved status = %s, want %s", approved.Status, constants.TaskStatusOpen)
	}

	// Second approval hits an open task and must be refused.
	_, err = env.tasks.Approve(ctx, admin, task.ID)
	if !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Errorf("expected invalid transition, got %v", err)
	}
}

func TestTaskService_ApproveRequiresAdmin(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)

	task := createPendingTask(t, env, company)

	_, err := env.tasks.Approve(context.Background(), company, task.ID)
	if !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("expected forbidden, got %v", err)
	}
}

func TestTaskService_RejectStoresReasonAndDefaults(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)
	admin := actor("admin-1", constants.RoleAdmin)
	ctx := context.Background()

	task := createPendingTask(t, env, company)
	rejected, err := env.tasks.Reject(ctx, admin, task.ID, "description too vague")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != constants.TaskStatusRejected {
		t.Errorf("status = %s, want rejected", rejected.Status)
	}
	if rejected.RejectionReason != "description too vague" {
		t.Errorf("reason = %q, want %q", rejected.RejectionReason, "description too vague")
	}

	other := createPendingTask(t, env, company)
	rejected, err = env.tasks.Reject(ctx, admin, other.ID, "")
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.RejectionReason != "Rejected by admin" {
		t.Errorf("default reason = %q", rejected.RejectionReason)
	}
}

func TestTaskService_UpdateResubmitsRejectedTask(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)
	admin := actor("admin-1", constants.RoleAdmin)
	ctx := context.Background()

	task := createPendingTask(t, env, company)
	if _, err := env.tasks.Reject(ctx, admin, task.ID, "description too vague"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	newDesc := "Label 200 images, with examples attached"
	updated, err := env.tasks.Update(ctx, company, task.ID, TaskPatch{Description: &newDesc})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.Status != constants.TaskStatusPendingApproval {
		t.Errorf("status after resubmit = %s, want pendingApproval", updated.Status)
	}
	if updated.RejectionReason != "" {
		t.Errorf("rejection reason should be cleared, got %q", updated.RejectionReason)
	}
	if updated.Description != newDesc {
		t.Errorf("description = %q, want %q", updated.Description, newDesc)
	}
	if updated.Title != "Label a dataset" {
		t.Errorf("untouched field changed: title = %q", updated.Title)
	}
}

func TestTaskService_UpdateRefusedOnceLive(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)
	ctx := context.Background()

	task := createOpenTask(t, env, company)

	title := "New title"
	_, err := env.tasks.Update(ctx, company, task.ID, TaskPatch{Title: &title})
	if !apperrors.IsKind(err, apperrors.KindInvalidTransition) {
		t.Errorf("expected invalid transition, got %v", err)
	}
}

func TestTaskService_UpdateRequiresOwnership(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)
	intruder := actor("company-2", constants.RoleCompany)
	ctx := context.Background()

	task := createPendingTask(t, env, company)

	title := "Hijacked"
	_, err := env.tasks.Update(ctx, intruder, task.ID, TaskPatch{Title: &title})
	if !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("expected forbidden, got %v", err)
	}
}

func TestTaskService_DeleteCascades(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)
	worker := actor("worker-1", constants.RoleWorker)
	admin := actor("admin-1", constants.RoleAdmin)
	ctx := context.Background()

	task := createOpenTask(t, env, company)

	if _, err := env.apps.Apply(ctx, worker, task.ID, ApplyInput{
		Proposal:             "I can do it",
		ExpectedDeliveryTime: "2 days",
	}); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if err := env.tasks.Delete(ctx, admin, task.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := env.tasks.Get(ctx, task.ID); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("task should be gone, got %v", err)
	}

	apps, err := env.appRepo.ListByTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("listing applications failed: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("expected cascade to delete applications, %d left", len(apps))
	}
}

func TestTaskService_DeleteRequiresAdmin(t *testing.T) {
	env := newTestEnv(t, "0")
	company := actor("company-1", constants.RoleCompany)

	task := createPendingTask(t, env, company)

	err := env.tasks.Delete(context.Background(), company, task.ID)
	if !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("expected forbidden, got %v", err)
	}
}
