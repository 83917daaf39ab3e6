package config

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"signalbench/internal/models"
)

var DB *gorm.DB

// InitDB initializes the database connection
func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// TranslateError maps duplicate-key and FK violations onto gorm sentinel
	// errors, which the store layer turns into the write-time taxonomy.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Failed to get database instance: ", err)
	}

	sqlDB.SetMaxIdleConns(50)
	sqlDB.SetMaxOpenConns(200)
	sqlDB.SetConnMaxLifetime(time.Hour)

	DB = db

	// Auto migrate all models
	err = DB.AutoMigrate(
		&models.User{},
		&models.OAuthAuthorization{},
		&models.OAuthAccessGrant{},
		&models.TradeSite{},
		&models.SymbolPair{},
		&models.TestConfigurationBase{},
		&models.ClassifierTestConfiguration{},
		&models.PredictionTestConfiguration{},
		&models.Task{},
		&models.Worker{},
		&models.TaskResult{},
		&models.TradeRecommendation{},
		&models.PerformanceComparison{},
		&models.Price{},
	)
	if err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}
}
