package models

import "gorm.io/gorm"

// Tag is a label owned by a single user and attachable to that user's recipes.
type Tag struct {
	gorm.Model
	Name   string `gorm:"not null;size:255"`
	UserID uint   `gorm:"not null;index"`
}

func (t Tag) String() string {
	return t.Name
}
