package services

import (
	"fmt"

	"debt_flow_app_go/models"

	"gorm.io/gorm"
)

// GetUserRole looks up the application role for a user ID
func GetUserRole(db *gorm.DB, userID string) (string, error) {
	var user models.User
	if err := db.Select("role").First(&user, "id = ?", userID).Error; err != nil {
		return "", fmt.Errorf("failed to look up role for user %s: %w", userID, err)
	}
	return user.Role, nil
}

// HasRole reports whether the user holds the given role. Unknown users
// simply don't hold any role.
func HasRole(db *gorm.DB, userID, role string) (bool, error) {
	if !models.IsValidRole(role) {
		return false, fmt.Errorf("unknown role: %s", role)
	}

	var count int64
	err := db.Model(&models.User{}).
		Where("id = ? AND role = ?", userID, role).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check role for user %s: %w", userID, err)
	}
	return count > 0, nil
}
