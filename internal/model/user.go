package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a credential record. Usernames are stored lowercased and looked up
// the same way, which makes the uniqueness check case-insensitive. Records
// are created on registration and never updated or deleted afterwards.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
