package services

import (
	"context"
	"testing"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
)

func TestProfileService_VerifyCompany(t *testing.T) {
	env := newTestEnv(t, "0")
	admin := actor("admin-1", constants.RoleAdmin)
	ctx := context.Background()

	profile := seedCompanyProfile(t, env, "company-1")

	verified, err := env.profiles.VerifyCompany(ctx, admin, profile.ID, constants.VerificationApproved)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if verified.VerificationStatus != constants.VerificationApproved {
		t.Errorf("status = %s, want approved", verified.VerificationStatus)
	}

	reloaded, err := env.profileRepo.FindCompanyByID(ctx, profile.ID)
	if err != nil {
		t.Fatalf("reloading profile failed: %v", err)
	}
	if reloaded.VerificationStatus != constants.VerificationApproved {
		t.Errorf("persisted status = %s, want approved", reloaded.VerificationStatus)
	}
}

func TestProfileService_VerifyCompanyGuards(t *testing.T) {
	env := newTestEnv(t, "0")
	admin := actor("admin-1", constants.RoleAdmin)
	company := actor("company-1", constants.RoleCompany)
	ctx := context.Background()

	profile := seedCompanyProfile(t, env, company.ID)

	if _, err := env.profiles.VerifyCompany(ctx, company, profile.ID, constants.VerificationApproved); !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Errorf("company verifying itself should be forbidden, got %v", err)
	}

	if _, err := env.profiles.VerifyCompany(ctx, admin, profile.ID, "audited"); !apperrors.IsKind(err, apperrors.KindInvalidArgument) {
		t.Errorf("unknown status should be an invalid argument, got %v", err)
	}

	if _, err := env.profiles.VerifyCompany(ctx, admin, "no-such-profile", constants.VerificationRejected); !apperrors.IsKind(err, apperrors.KindNotFound) {
		t.Errorf("unknown profile should be not found, got %v", err)
	}

	// None of the failed calls may have touched the stored status.
	reloaded, err := env.profileRepo.FindCompanyByID(ctx, profile.ID)
	if err != nil {
		t.Fatalf("reloading profile failed: %v", err)
	}
	if reloaded.VerificationStatus != constants.VerificationPending {
		t.Errorf("status = %s, want pending", reloaded.VerificationStatus)
	}
}
