package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "microtask-market.com/microtask-market/internal/models"
)

func NewDatabaseClient(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
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
		log.Fatalf("migration failed: %v", err)
	}

	return db
}
