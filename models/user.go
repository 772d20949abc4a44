package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. Password is stored only as a
// bcrypt hash and never serialized.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Username     string    `json:"username" db:"username" gorm:"type:varchar(150);not null;uniqueIndex:idx_user_username"`
	Email        string    `json:"email" db:"email" gorm:"type:varchar(254);not null;uniqueIndex:idx_user_email"`
	FirstName    string    `json:"first_name" db:"first_name" gorm:"type:varchar(150);not null"`
	LastName     string    `json:"last_name" db:"last_name" gorm:"type:varchar(150);not null"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:varchar(128);not null"`
	IsStaff      bool      `json:"-" db:"is_staff" gorm:"not null;default:false"`
	DateJoined   time.Time `json:"-" db:"date_joined" gorm:"type:timestamp;not null;autoCreateTime"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
