package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application role constants
const (
	RoleAdmin          = "admin"
	RoleEnterpriseUser = "enterprise_user"
	RoleDCAUser        = "dca_user"
)

type User struct {
	ID        string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"not null;default:dca_user" json:"role"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`

	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

// BeforeCreate hook to generate UUID
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

// IsValidRole checks if a role is one of the known application roles
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleEnterpriseUser, RoleDCAUser:
		return true
	}
	return false
}
