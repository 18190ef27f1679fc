package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/roshjaison03/A-Simple-ERP-for-Sales-and-Employee-Management-System/internal/models"
)

func TestAutoMigrateCreatesTables(t *testing.T) {
	database, err := gorm.Open(sqlite.Open("file:migrate_test?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := AutoMigrate(database); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	for _, table := range []string{"sales", "bills", "employee_data", "attendance"} {
		if !database.Migrator().HasTable(table) {
			t.Fatalf("expected table %s to exist", table)
		}
	}
	if !database.Migrator().HasColumn(&models.Attendance{}, "workingHours") {
		t.Fatalf("expected attendance.workingHours column")
	}
	if !database.Migrator().HasColumn(&models.Employee{}, "Fullname") {
		t.Fatalf("expected employee_data.Fullname column")
	}
}

func TestLogLevel(t *testing.T) {
	cases := map[string]logger.LogLevel{
		"silent": logger.Silent,
		"error":  logger.Error,
		"info":   logger.Info,
		"":       logger.Warn,
		"loud":   logger.Warn,
	}
	for raw, want := range cases {
		if got := logLevel(raw); got != want {
			t.Fatalf("logLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}
