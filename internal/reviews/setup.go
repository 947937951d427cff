package reviews

import (
	"fmt"

	"gorm.io/gorm"
)

// Init creates or updates the reviews table. The users table must exist
// first since listings join on it.
func Init(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&Review{}); err != nil {
		return fmt.Errorf("auto-migrate reviews: %w", err)
	}
	return nil
}
