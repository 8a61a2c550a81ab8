package service_test

import (
	"testing"
	"time"

	"staffhub/database"
	"staffhub/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createEmployee(t *testing.T, db *gorm.DB, code string) *models.Employee {
	t.Helper()
	employee := &models.Employee{
		EmployeeCode:  code,
		FullName:      "Test Employee " + code,
		Email:         code + "@staffhub.local",
		Department:    "Engineering",
		Designation:   "Engineer",
		DateOfJoining: date(2024, time.January, 15),
		Status:        models.EmployeeActive,
	}
	require.NoError(t, db.Create(employee).Error)
	return employee
}

func createUserWithRole(t *testing.T, db *gorm.DB, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Email:        email,
		FullName:     "Test User",
		PasswordHash: "x",
		Role:         role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
