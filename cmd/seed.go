package cmd

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	config "microtask-market.com/microtask-market/internal/configs"
	"microtask-market.com/microtask-market/internal/constants"
	model "microtask-market.com/microtask-market/internal/models"
	repository "microtask-market.com/microtask-market/internal/repositories"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample marketplace data",
	Long:  "Creates sample company and worker profiles and a handful of tasks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()
		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(database)
		profileRepo := repository.NewProfileRepository(database)

		ctx := context.Background()
		now := time.Now().UTC()

		companyID := uuid.NewString()
		workerID := uuid.NewString()

		company := &model.CompanyProfile{
			ID:                 uuid.NewString(),
			UserID:             companyID,
			CompanyName:        "Acme Labs",
			Domain:             "acme.example",
			Description:        "Short-turnaround data and content work",
			VerificationStatus: constants.VerificationApproved,
			Rating:             decimal.Zero,
			CreatedAt:          now,
		}
		if err := profileRepo.CreateCompany(ctx, company); err != nil {
			return err
		}

		worker := &model.WorkerProfile{
			ID:                 uuid.NewString(),
			UserID:             workerID,
			Skills:             model.StringList{"writing", "data-entry", "translation"},
			Bio:                "Freelancer taking short tasks",
			AvailabilityStatus: constants.AvailabilityAvailable,
			Rating:             decimal.Zero,
			TotalEarnings:      decimal.Zero,
			CreatedAt:          now,
		}
		if err := profileRepo.CreateWorker(ctx, worker); err != nil {
			return err
		}

		samples := []struct {
			title   string
			skills  model.StringList
			amount  string
			status  constants.TaskStatus
			workers int
		}{
			{"Translate product page", model.StringList{"translation"}, "40.00", constants.TaskStatusOpen, 1},
			{"Label 500 images", model.StringList{"data-entry"}, "25.00", constants.TaskStatusOpen, 3},
			{"Write launch blog post", model.StringList{"writing"}, "80.00", constants.TaskStatusPendingApproval, 1},
		}

		for _, s := range samples {
			amount, err := decimal.NewFromString(s.amount)
			if err != nil {
				return err
			}

			task := &model.Task{
				ID:              uuid.NewString(),
				CompanyID:       companyID,
				Title:           s.title,
				Description:     "Seeded sample task",
				RequiredSkills:  s.skills,
				Category:        "General",
				Duration:        2,
				PaymentAmount:   amount,
				Deadline:        now.AddDate(0, 0, 7),
				NumberOfWorkers: s.workers,
				AssignedWorkers: model.StringList{},
				Status:          s.status,
				Version:         1,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := taskRepo.Create(ctx, task); err != nil {
				return err
			}
		}

		log.Printf("seeded company user %s and worker user %s", companyID, workerID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
