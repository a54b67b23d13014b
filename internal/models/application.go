package model

import (
	"time"

	"microtask-market.com/microtask-market/internal/constants"
)

// Application is a worker's bid to perform a task. The composite unique
// index keeps a worker to at most one application per task.
type Application struct {
	ID                   string                      `gorm:"primaryKey;size:36" json:"id"`
	TaskID               string                      `gorm:"size:36;not null;uniqueIndex:idx_app_task_worker" json:"task_id"`
	WorkerID             string                      `gorm:"size:36;not null;uniqueIndex:idx_app_task_worker" json:"worker_id"`
	Proposal             string                      `gorm:"not null" json:"proposal"`
	ExpectedDeliveryTime string                      `gorm:"not null" json:"expected_delivery_time"`
	Attachment           string                      `json:"attachment,omitempty"`
	Status               constants.ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt            time.Time                   `json:"created_at"`
}
