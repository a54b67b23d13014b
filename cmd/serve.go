package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"microtask-market.com/microtask-market/internal/cache"
	config "microtask-market.com/microtask-market/internal/configs"
	httpapi "microtask-market.com/microtask-market/internal/http"
	repository "microtask-market.com/microtask-market/internal/repositories"
	"microtask-market.com/microtask-market/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Starts the micro-task marketplace HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		database := config.NewDatabaseClient(cfg.DatabaseDSN)

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		facets := cache.NewFacetCache(
			redisClient,
			time.Duration(cfg.FacetCacheTTLSeconds)*time.Second,
		)

		taskRepo := repository.NewTaskRepository(database)
		appRepo := repository.NewApplicationRepository(database)
		subRepo := repository.NewSubmissionRepository(database)
		paymentRepo := repository.NewPaymentRepository(database)
		profileRepo := repository.NewProfileRepository(database)

		taskService := services.NewTaskService(taskRepo, appRepo, subRepo, facets)
		appService := services.NewApplicationService(appRepo, taskRepo)
		subService := services.NewSubmissionService(subRepo, taskRepo, paymentRepo, profileRepo, cfg.CommissionPercent)
		paymentService := services.NewPaymentService(paymentRepo, profileRepo)
		profileService := services.NewProfileService(profileRepo)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e := echo.New()
		handler := httpapi.NewHandler(taskService, appService, subService, paymentService, profileService)
		httpapi.Register(e, handler, cfg.RateLimit, cfg.JWTSecret)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		echoCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()
		_ = e.Shutdown(echoCtx)

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
