package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID           string `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string `json:"name" gorm:"type:varchar(255);not null"`
	Subscription string `json:"subscription" gorm:"type:varchar(50);not null;default:basic"`
	// Password holds the bcrypt hash. Never serialized; DTOs strip it again at
	// the API boundary.
	Password string `json:"-" gorm:"type:varchar(100);not null"`
}

// BeforeCreate assigns a UUID so ids are generated the same way on postgres
// and on the sqlite test driver.
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Subscription string `json:"subscription"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}
