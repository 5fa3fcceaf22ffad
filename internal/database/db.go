package database

import (
	"log"

	"github.com/900mahdi/mohasib3/internal/config"
	"github.com/900mahdi/mohasib3/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the database and migrates the settings table. The handle is
// returned rather than kept in a package global so state ownership stays
// with the caller.
func Init(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	if err := db.AutoMigrate(&models.Setting{}); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	log.Println("database ready, migration complete")
	return db
}
