// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AdminUser is a back-office account.
type AdminUser struct {
	BaseModel    `bson:",inline"`
	Email        string     `json:"email" bson:"email" gorm:"uniqueIndex;size:255;not null"`
	Name         string     `json:"name" bson:"name" gorm:"size:100"`
	PasswordHash string     `json:"-" bson:"password_hash" gorm:"size:255;not null"`
	Role         AdminRole  `json:"role" bson:"role" gorm:"type:varchar(20);not null"`
	IsActive     bool       `json:"is_active" bson:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at" bson:"last_login_at,omitempty"`
}

func (u *AdminUser) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *AdminUser) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}
