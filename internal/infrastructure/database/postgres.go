package database

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"github.com/tillworks/pos-api/internal/config"
	"github.com/tillworks/pos-api/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Staff entities
		&entity.Employee{},
		&entity.WorkLog{},

		// Catalog entities
		&entity.Category{},
		&entity.MenuItem{},
		&entity.IngredientRequirement{},

		// Ledger entities
		&entity.InventoryItem{},
		&entity.IngredientStock{},

		// Sales log entities
		&entity.Sale{},
		&entity.SaleLine{},

		// Floor entities
		&entity.DiningTable{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default data (categories, tables, admin employee)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Create default menu categories
	categories := []entity.Category{
		{Name: "Mains", Slug: "mains"},
		{Name: "Sides", Slug: "sides"},
		{Name: "Drinks", Slug: "drinks"},
		{Name: "Desserts", Slug: "desserts"},
	}

	for i := range categories {
		var existing entity.Category
		if err := db.Where("slug = ?", categories[i].Slug).First(&existing).Error; err != nil {
			if err := db.Create(&categories[i]).Error; err != nil {
				log.Printf("Warning: failed to create category %s: %v", categories[i].Name, err)
			}
		}
	}

	// Create default dining tables
	var tableCount int64
	db.Model(&entity.DiningTable{}).Count(&tableCount)
	if tableCount == 0 {
		tables := []entity.DiningTable{
			{TableNo: 1, SeatingCapacity: 2},
			{TableNo: 2, SeatingCapacity: 2},
			{TableNo: 3, SeatingCapacity: 4},
			{TableNo: 4, SeatingCapacity: 4},
			{TableNo: 5, SeatingCapacity: 6},
			{TableNo: 6, SeatingCapacity: 8},
		}
		for i := range tables {
			if err := db.Create(&tables[i]).Error; err != nil {
				log.Printf("Warning: failed to create table %d: %v", tables[i].TableNo, err)
			}
		}
	}

	// Create admin employee if configured via environment variables
	adminLoginID := viper.GetString("ADMIN_LOGIN_ID")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminLoginID != "" && adminPassword != "" {
		var existingAdmin entity.Employee
		if err := db.Where("login_id = ?", adminLoginID).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Administrator"
				}
				admin := entity.Employee{
					LoginID:      adminLoginID,
					PasswordHash: string(hashedPassword),
					Name:         adminName,
					Role:         "admin",
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin employee: %v", err)
				} else {
					log.Printf("Admin employee created: %s", adminLoginID)
				}
			}
		} else {
			log.Printf("Admin employee already exists: %s", adminLoginID)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
