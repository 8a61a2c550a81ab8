package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
)

func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted:
		return true
	}
	return false
}

type Task struct {
	ID          string       `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Title       string       `gorm:"not null;size:200" json:"title"`
	Description string       `gorm:"size:1000" json:"description"`
	AssignedTo  *string      `gorm:"size:36;index" json:"assigned_to"`
	Assignee    *Employee    `gorm:"foreignKey:AssignedTo" json:"assignee,omitempty"`
	AssignedBy  *string      `gorm:"size:36" json:"assigned_by"`
	Priority    TaskPriority `gorm:"not null;size:20;default:medium" json:"priority"`
	Status      TaskStatus   `gorm:"not null;size:20;default:pending" json:"status"`
	DueDate     *time.Time   `gorm:"type:date" json:"due_date"`
	CompletedAt *time.Time   `json:"completed_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
