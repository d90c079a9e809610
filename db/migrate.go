package db

import (
	"gorm.io/gorm"

	"github.com/barbersalon/salon-api/models"
)

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.StaffMember{},
		&models.Specialization{},
		&models.GalleryImage{},
		&models.Booking{},
		&models.ContactMessage{},
	)
}
