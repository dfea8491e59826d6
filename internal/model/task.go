package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task is a single to-do item. CategoryName is denormalized: renaming or
// deleting a category leaves existing tasks untouched. DueDate is an opaque
// string, never parsed or validated.
type Task struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CategoryName    string    `json:"category_name" gorm:"size:255;not null"`
	TaskName        string    `json:"task_name" gorm:"size:255;not null"`
	TaskDescription string    `json:"task_description" gorm:"type:text"`
	IsUrgent        bool      `json:"is_urgent" gorm:"default:false"`
	DueDate         string    `json:"due_date" gorm:"size:64"`
	CreatedBy       string    `json:"created_by" gorm:"size:255;not null;index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
