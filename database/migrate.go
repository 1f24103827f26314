package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/restaurant-api/models"
	"github.com/yeremiapane/restaurant-api/utils"
)

// Models lists every persisted entity, parents before children.
func Models() []interface{} {
	return []interface{}{
		&models.Menu{},
		&models.Table{},
		&models.Reservation{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("db.AutoMigrate -> %w", err)
	}

	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
