package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/models"
)

// AutoMigrate creates the four tables when they are missing. Production
// schemas are managed outside this service; this is for local setups and tests.
func AutoMigrate(database *gorm.DB) error {
	if err := database.AutoMigrate(
		&models.Client{},
		&models.Bill{},
		&models.Employee{},
		&models.Attendance{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
