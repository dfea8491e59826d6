package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups tasks by name only. There is no foreign key from Task;
// the relation is by value through Task.CategoryName.
type Category struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	CategoryName string    `json:"category_name" gorm:"size:255;not null;index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
