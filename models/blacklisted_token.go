package models

import "gorm.io/gorm"

// BlacklistedToken is an access token revoked by logout before its expiry.
type BlacklistedToken struct {
	gorm.Model
	Token     string `gorm:"not null;unique;index"`
	ExpiresAt int64  `gorm:"not null;index"`
}
