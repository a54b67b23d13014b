package services

import (
	"context"

	"microtask-market.com/microtask-market/internal/constants"
	apperrors "microtask-market.com/microtask-market/internal/errors"
	model "microtask-market.com/microtask-market/internal/models"
	"microtask-market.com/microtask-market/internal/policy"
	repository "microtask-market.com/microtask-market/internal/repositories"
)

// ProfileService serves the profile reads and partial updates. The
// aggregate counters on the profiles (completed tasks, earnings) are
// owned by the lifecycle services and not writable here.
type ProfileService struct {
	profiles *repository.ProfileRepository
}

func NewProfileService(profiles *repository.ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles}
}

type WorkerProfilePatch struct {
	Skills             []string
	PortfolioLinks     []model.PortfolioLink
	Bio                *string
	AvailabilityStatus *constants.AvailabilityStatus
}

type CompanyProfilePatch struct {
	CompanyName *string
	Domain      *string
	Logo        *string
	Description *string
}

// VerifyCompany records the admin's verdict on a company profile.
func (s *ProfileService) VerifyCompany(ctx context.Context, actor model.Actor, profileID string, status constants.VerificationStatus) (*model.CompanyProfile, error) {
	if err := policy.RequireRole(actor, constants.RoleAdmin); err != nil {
		return nil, err
	}

	switch status {
	case constants.VerificationPending, constants.VerificationApproved, constants.VerificationRejected:
	default:
		return nil, apperrors.InvalidArgument("invalid verification status")
	}

	profile, err := s.profiles.FindCompanyByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	profile.VerificationStatus = status
	if err := s.profiles.SaveCompany(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetWorker(ctx context.Context, actor model.Actor) (*model.WorkerProfile, error) {
	if err := policy.RequireRole(actor, constants.RoleWorker); err != nil {
		return nil, err
	}
	return s.profiles.FindWorkerByUserID(ctx, actor.ID)
}

func (s *ProfileService) UpdateWorker(ctx context.Context, actor model.Actor, patch WorkerProfilePatch) (*model.WorkerProfile, error) {
	if err := policy.RequireRole(actor, constants.RoleWorker); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindWorkerByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if patch.Skills != nil {
		profile.Skills = patch.Skills
	}
	if patch.PortfolioLinks != nil {
		profile.PortfolioLinks = patch.PortfolioLinks
	}
	if patch.Bio != nil {
		profile.Bio = *patch.Bio
	}
	if patch.AvailabilityStatus != nil {
		profile.AvailabilityStatus = *patch.AvailabilityStatus
	}

	if err := s.profiles.SaveWorker(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) GetCompany(ctx context.Context, actor model.Actor) (*model.CompanyProfile, error) {
	if err := policy.RequireRole(actor, constants.RoleCompany); err != nil {
		return nil, err
	}
	return s.profiles.FindCompanyByUserID(ctx, actor.ID)
}

func (s *ProfileService) UpdateCompany(ctx context.Context, actor model.Actor, patch CompanyProfilePatch) (*model.CompanyProfile, error) {
	if err := policy.RequireRole(actor, constants.RoleCompany); err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindCompanyByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if patch.CompanyName != nil {
		profile.CompanyName = *patch.CompanyName
	}
	if patch.Domain != nil {
		profile.Domain = *patch.Domain
	}
	if patch.Logo != nil {
		profile.Logo = *patch.Logo
	}
	if patch.Description != nil {
		profile.Description = *patch.Description
	}

	if err := s.profiles.SaveCompany(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
