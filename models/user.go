package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email       string `gorm:"not null;unique"`
	Password    string `gorm:"not null"`
	Name        string `gorm:"size:255"`
	IsActive    bool   `gorm:"not null;default:true"`
	IsStaff     bool   `gorm:"not null;default:false"`
	IsSuperuser bool   `gorm:"not null;default:false"`

	Tags        []Tag        `gorm:"constraint:OnDelete:CASCADE;"`
	Ingredients []Ingredient `gorm:"constraint:OnDelete:CASCADE;"`
	Recipes     []Recipe     `gorm:"constraint:OnDelete:CASCADE;"`
}

func (u User) String() string {
	return u.Email
}
