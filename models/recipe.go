package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Recipe struct {
	gorm.Model
	Title       string          `gorm:"not null;size:255"`
	TimeMinutes int             `gorm:"not null"`
	Price       decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	Link        string          `gorm:"size:255"`
	// Image は MEDIA_ROOT からの相対パス（例: uploads/recipe/<uuid>.jpg）
	Image  string `gorm:"size:255"`
	UserID uint   `gorm:"not null;index"`

	Tags        []Tag        `gorm:"many2many:recipe_tags;"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients;"`
}

func (r Recipe) String() string {
	return r.Title
}
