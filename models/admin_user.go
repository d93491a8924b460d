package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// AdminUser represents the admin_users table. Admins review submissions; they
// never appear in the public showcase.
type AdminUser struct {
	AdminID      int       `gorm:"primaryKey;column:admin_id" json:"admin_id"`
	Email        string    `gorm:"column:email;size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;size:100" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *AdminUser) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
