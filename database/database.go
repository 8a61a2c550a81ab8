package database

import (
	"log"

	"staffhub/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to postgres. TranslateError is required so unique-constraint
// violations surface as gorm.ErrDuplicatedKey; the attendance check-in path
// depends on it.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Employee{},
		&models.AttendanceRecord{},
		&models.LeaveRequest{},
		&models.SalaryRecord{},
		&models.Task{},
	)
}

// SeedDefaultAdmin creates the bootstrap admin account if no admin exists.
func SeedDefaultAdmin(db *gorm.DB) error {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        "admin@staffhub.local",
		FullName:     "Administrator",
		PasswordHash: string(hashedPassword),
		Role:         models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Default admin user created (email: admin@staffhub.local, password: admin)")
	return nil
}
