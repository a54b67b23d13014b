package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"microtask-market.com/microtask-market/internal/constants"
	model "microtask-market.com/microtask-market/internal/models"
	repository "microtask-market.com/microtask-market/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&model.Task{},
		&model.Application{},
		&model.Submission{},
		&model.Payment{},
		&model.WorkerProfile{},
		&model.CompanyProfile{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testEnv struct {
	tasks    *TaskService
	apps     *ApplicationService
	subs     *SubmissionService
	payments *PaymentService
	profiles *ProfileService

	taskRepo    *repository.TaskRepository
	appRepo     *repository.ApplicationRepository
	subRepo     *repository.SubmissionRepository
	paymentRepo *repository.PaymentRepository
	profileRepo *repository.ProfileRepository
}

func newTestEnv(t *testing.T, commissionPercent string) *testEnv {
	db := setupTestDB(t)

	percent, err := decimal.NewFromString(commissionPercent)
	if err != nil {
		t.Fatalf("bad commission percent %q: %v", commissionPercent, err)
	}

	taskRepo := repository.NewTaskRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	subRepo := repository.NewSubmissionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	return &testEnv{
		tasks:       NewTaskService(taskRepo, appRepo, subRepo, nil),
		apps:        NewApplicationService(appRepo, taskRepo),
		subs:        NewSubmissionService(subRepo, taskRepo, paymentRepo, profileRepo, percent),
		payments:    NewPaymentService(paymentRepo, profileRepo),
		profiles:    NewProfileService(profileRepo),
		taskRepo:    taskRepo,
		appRepo:     appRepo,
		subRepo:     subRepo,
		paymentRepo: paymentRepo,
		profileRepo: profileRepo,
	}
}

func actor(id string, role constants.Role) model.Actor {
	return model.Actor{ID: id, Role: role, Status: constants.UserStatusActive}
}

func money(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func sampleTaskInput(t *testing.T) CreateTaskInput {
	return CreateTaskInput{
		Title:           "Label a dataset",
		Description:     "Label 200 images",
		RequiredSkills:  []string{"data-entry"},
		Duration:        2,
		PaymentAmount:   money(t, "100"),
		Deadline:        time.Now().UTC().AddDate(0, 0, 7),
		NumberOfWorkers: 1,
	}
}

// createPendingTask posts a task as the company; it lands in
// pendingApproval.
func createPendingTask(t *testing.T, env *testEnv, company model.Actor) *model.Task {
	t.Helper()
	task, err := env.tasks.Create(context.Background(), company, sampleTaskInput(t))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	return task
}

// createOpenTask posts and approves a task so it is on the open board.
func createOpenTask(t *testing.T, env *testEnv, company model.Actor) *model.Task {
	t.Helper()
	task := createPendingTask(t, env, company)

	approved, err := env.tasks.Approve(context.Background(), actor("admin-1", constants.RoleAdmin), task.ID)
	if err != nil {
		t.Fatalf("failed to approve task: %v", err)
	}
	return approved
}

func seedWorkerProfile(t *testing.T, env *testEnv, workerID string) *model.WorkerProfile {
	t.Helper()
	profile := &model.WorkerProfile{
		ID:                 uuid.NewString(),
		UserID:             workerID,
		AvailabilityStatus: constants.AvailabilityAvailable,
		Rating:             decimal.Zero,
		TotalEarnings:      decimal.Zero,
		CreatedAt:          time.Now().UTC(),
	}
	if err := env.profileRepo.CreateWorker(context.Background(), profile); err != nil {
		t.Fatalf("failed to seed worker profile: %v", err)
	}
	return profile
}

func seedCompanyProfile(t *testing.T, env *testEnv, companyID string) *model.CompanyProfile {
	t.Helper()
	profile := &model.CompanyProfile{
		ID:                 uuid.NewString(),
		UserID:             companyID,
		CompanyName:        "Acme Data Labs",
		VerificationStatus: constants.VerificationPending,
		Rating:             decimal.Zero,
		CreatedAt:          time.Now().UTC(),
	}
	if err := env.profileRepo.CreateCompany(context.Background(), profile); err != nil {
		t.Fatalf("failed to seed company profile: %v", err)
	}
	return profile
}
