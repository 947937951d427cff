package auth

import (
	"fmt"

	"gorm.io/gorm"
)

// Init creates or updates the users table, including the unique index on
// username that backs signup conflict detection.
func Init(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&User{}); err != nil {
		return fmt.Errorf("auto-migrate users: %w", err)
	}
	return nil
}
