package models

import "gorm.io/gorm"

type Ingredient struct {
	gorm.Model
	Name   string `gorm:"not null;size:255"`
	UserID uint   `gorm:"not null;index"`
}

func (i Ingredient) String() string {
	return i.Name
}
