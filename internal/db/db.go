package db

import (
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/BruksfildServices01/dance-school/internal/config"
	"github.com/BruksfildServices01/dance-school/internal/models"
)

const inMemoryDSN = "file:dance_school?mode=memory&cache=shared"

// NewDB opens the configured store and migrates the schema.
func NewDB(cfg *config.Config, log logrus.FieldLogger) (*gorm.DB, error) {
	url := cfg.DBUrl
	if cfg.UsesInMemoryStore() {
		log.Warn("DATABASE_URL is not set: using an in-memory sqlite store, data is lost on restart and this is unsafe for any real deployment")
		url = "sqlite://" + inMemoryDSN
	}

	db, err := Open(url)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	return db, nil
}

// Open accepts postgres URLs/DSNs, or "sqlite://<dsn>" for sqlite.
func Open(url string) (*gorm.DB, error) {
	isSQLite := strings.HasPrefix(url, "sqlite://")

	var dialector gorm.Dialector
	if isSQLite {
		dialector = sqlite.Open(strings.TrimPrefix(url, "sqlite://"))
	} else {
		dialector = postgres.Open(url)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt:    !isSQLite,
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if isSQLite {
		// A single connection that never expires keeps an in-memory
		// database alive and serializes writers.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		sqlDB.SetConnMaxIdleTime(0)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.DanceClass{},
		&models.Teacher{},
		&models.Schedule{},
		&models.Student{},
		&models.Registration{},
		&models.News{},
		&models.AuditLog{},
	)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
