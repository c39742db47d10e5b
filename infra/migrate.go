package infra

import (
	"recipe-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	)
}

func MigrateTokenDB(db *gorm.DB) error {
	return db.AutoMigrate(&models.BlacklistedToken{})
}
