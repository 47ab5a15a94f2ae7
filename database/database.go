package database

import (
	"fmt"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lmoretti/workcrew-backend/config"
	"github.com/lmoretti/workcrew-backend/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(DB); err != nil {
		logrus.Fatalf("auto migrate failed: %v", err)
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Organization{},
		&models.User{},
		&models.Worker{},
		&models.Client{},
		&models.Worksite{},
		&models.Vehicle{},
		&models.Invoice{},
		&models.TimeEntry{},
		&models.LeaveBalance{},
		&models.LeaveRequest{},
		&models.Announcement{},
		&models.Notification{},
	)
}

var testSeq atomic.Int64

// OpenTest returns an in-memory SQLite database with the full schema,
// for package tests only. Each call gets its own database.
func OpenTest() (*gorm.DB, error) {
	dsn := fmt.Sprintf("file:test%d?mode=memory&cache=shared", testSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}
